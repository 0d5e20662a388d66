package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cozinhapro/cozinha-api/internal/application/auth"
	"github.com/cozinhapro/cozinha-api/internal/application/catalog"
	"github.com/cozinhapro/cozinha-api/internal/application/labels"
	"github.com/cozinhapro/cozinha-api/internal/application/orders"
	"github.com/cozinhapro/cozinha-api/internal/application/production"
	"github.com/cozinhapro/cozinha-api/internal/application/stock"
	"github.com/cozinhapro/cozinha-api/internal/domain/entity"
	"github.com/cozinhapro/cozinha-api/pkg/logger"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	OrderUC      *orders.UseCase
	LabelUC      *labels.UseCase
	StockUC      *stock.UseCase
	ProductionUC *production.UseCase
	CatalogUC    *catalog.UseCase
	Logger       *logger.Logger
	JWTSecret    string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (requerem Bearer Token). RequireRole corta na borda
	// os papéis sem nenhum acesso ao grupo; a autorização fina
	// papel × status × destino fica nos casos de uso.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Orders (protegido)
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Post("/:id/accept", orderHandler.Accept)
	ordersGroup.Post("/:id/advance", orderHandler.Advance)
	ordersGroup.Post("/:id/cancel", orderHandler.Cancel)
	ordersGroup.Post("/:id/reopen", RequireRole(entity.RoleAdmin), orderHandler.Reopen)
	ordersGroup.Get("/:id/timeline", orderHandler.Timeline)
	ordersGroup.Get("/:id/items", orderHandler.Items)

	// Labels (protegido)
	labelsGroup := protected.Group("/labels")
	labelHandler := NewLabelHandler(deps.LabelUC)
	labelsGroup.Post("/", labelHandler.Create)
	labelsGroup.Get("/", labelHandler.List)
	labelsGroup.Post("/consume", labelHandler.Consume)
	labelsGroup.Get("/code/:code", labelHandler.GetByCode)
	labelsGroup.Post("/:id/revalidate", labelHandler.Revalidate)
	labelsGroup.Post("/:id/reset", RequireRole(entity.RoleAdmin), labelHandler.Reset)
	labelsGroup.Get("/:id/print", labelHandler.Print)

	// Stock (protegido)
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC, deps.Logger)
	stockGroup.Get("/balance", stockHandler.Balance)
	stockGroup.Get("/movements", stockHandler.Movements)
	stockGroup.Post("/counts", RequireRole(entity.RoleAdmin, entity.RoleEstoque, entity.RoleOperacao), stockHandler.RunCount)

	// Production (protegido, fluxo KDS). Só papéis da cozinha entram no grupo.
	prodGroup := protected.Group("/production", RequireRole(entity.RoleAdmin, entity.RoleLider, entity.RoleProducao))
	productionHandler := NewProductionHandler(deps.ProductionUC, deps.Logger)
	prodGroup.Post("/items/:id/assign", productionHandler.Assign)
	prodGroup.Post("/items/:id/start", productionHandler.Start)
	prodGroup.Post("/items/:id/finish", productionHandler.Finish)

	// Products (protegido)
	productsGroup := protected.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC)
	productsGroup.Post("/", productHandler.Create)
	productsGroup.Get("/", productHandler.List)
	productsGroup.Get("/:id", productHandler.GetByID)
}
