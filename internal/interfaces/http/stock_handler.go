package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cozinhapro/cozinha-api/internal/application/dto"
	"github.com/cozinhapro/cozinha-api/internal/application/stock"
	"github.com/cozinhapro/cozinha-api/pkg/logger"
)

// StockHandler trata saldo, extrato e contagem de estoque (protegido).
type StockHandler struct {
	uc  *stock.UseCase
	log *logger.Logger
}

// NewStockHandler constrói o handler.
func NewStockHandler(uc *stock.UseCase, log *logger.Logger) *StockHandler {
	return &StockHandler{uc: uc, log: log}
}

// Balance godoc
// @Summary      Saldo calculado do razão para produto+unidade
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  true  "ID do produto"
// @Param        unit        query  string  true  "Unidade"
// @Success      200  {object}  dto.BalanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/balance [get]
func (h *StockHandler) Balance(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	unit := c.Query("unit")
	if productID == "" || unit == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id e unit são obrigatórios"})
	}
	out, err := h.uc.Balance(c.UserContext(), GetActor(c), productID, unit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Extrato do razão de um produto
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  true   "ID do produto"
// @Param        from        query  string  false  "Início (RFC3339)"
// @Param        to          query  string  false  "Fim (RFC3339)"
// @Param        limit       query  int     false  "Limite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {array}  entity.StockMovement
// @Router       /api/stock/movements [get]
func (h *StockHandler) Movements(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id é obrigatório"})
	}
	from, err := parseTimeQuery(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido (RFC3339)"})
	}
	to, err := parseTimeQuery(c, "to")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido (RFC3339)"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.Movements(c.UserContext(), GetActor(c), productID, from, to, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RunCount godoc
// @Summary      Executar contagem de estoque (reconciliação)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RunCountRequest  true  "Itens contados"
// @Success      200   {object}  dto.RunCountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/stock/counts [post]
func (h *StockHandler) RunCount(c *fiber.Ctx) error {
	var in dto.RunCountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, sideEffects, err := h.uc.RunInventoryCount(c.UserContext(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	for _, se := range sideEffects {
		h.log.Warn().Str("op", se.Op).Err(se.Err).Msg("efeito colateral da contagem falhou")
	}
	return c.JSON(out)
}

func parseTimeQuery(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
