package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/cozinhapro/cozinha-api/docs" // spec gerada pelo swag init
	"github.com/cozinhapro/cozinha-api/internal/application/auth"
	"github.com/cozinhapro/cozinha-api/internal/application/catalog"
	"github.com/cozinhapro/cozinha-api/internal/application/labels"
	"github.com/cozinhapro/cozinha-api/internal/application/orders"
	"github.com/cozinhapro/cozinha-api/internal/application/production"
	"github.com/cozinhapro/cozinha-api/internal/application/stock"
	infrapdf "github.com/cozinhapro/cozinha-api/internal/infrastructure/pdf"
	"github.com/cozinhapro/cozinha-api/internal/infrastructure/postgres"
	httpRouter "github.com/cozinhapro/cozinha-api/internal/interfaces/http"
	"github.com/cozinhapro/cozinha-api/pkg/config"
	"github.com/cozinhapro/cozinha-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	orderRepo := postgres.NewOrderRepository(pool)
	itemRepo := postgres.NewOrderItemRepository(pool)
	eventRepo := postgres.NewOrderEventRepository(pool)
	labelRepo := postgres.NewLabelRepository(pool)
	movRepo := postgres.NewStockMovementRepository(pool)
	countRepo := postgres.NewInventoryCountRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	estabRepo := postgres.NewEstablishmentRepository(pool)
	productivityRepo := postgres.NewProductivityRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	pdfGenerator := infrapdf.NewMarotoLabelGenerator()

	orderUC := orders.NewUseCase(txRunner, orderRepo, itemRepo, eventRepo)
	labelUC := labels.NewUseCase(txRunner, labelRepo, productRepo, estabRepo, pdfGenerator)
	stockUC := stock.NewUseCase(txRunner, movRepo, countRepo, productRepo)
	productionUC := production.NewUseCase(itemRepo, orderRepo, productivityRepo)
	catalogUC := catalog.NewUseCase(productRepo)
	authUC := auth.NewUseCase(userRepo, estabRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CozinhaPro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		OrderUC:      orderUC,
		LabelUC:      labelUC,
		StockUC:      stockUC,
		ProductionUC: productionUC,
		CatalogUC:    catalogUC,
		Logger:       log,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("desligando servidor")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown do servidor HTTP")
	}
	log.Info().Msg("servidor finalizado")
}
