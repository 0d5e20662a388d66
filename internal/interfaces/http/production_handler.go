package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cozinhapro/cozinha-api/internal/application/dto"
	"github.com/cozinhapro/cozinha-api/internal/application/production"
	"github.com/cozinhapro/cozinha-api/pkg/logger"
)

// ProductionHandler trata o fluxo KDS dos itens de produção (protegido).
type ProductionHandler struct {
	uc  *production.UseCase
	log *logger.Logger
}

// NewProductionHandler constrói o handler.
func NewProductionHandler(uc *production.UseCase, log *logger.Logger) *ProductionHandler {
	return &ProductionHandler{uc: uc, log: log}
}

// Assign godoc
// @Summary      Atribuir colaborador a um item de produção
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "ID do item"
// @Param        body  body  dto.AssignCollaboratorRequest  true  "Colaborador"
// @Success      204   "Atribuído"
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/production/items/{id}/assign [post]
func (h *ProductionHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignCollaboratorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.AssignCollaborator(c.UserContext(), GetActor(c), c.Params("id"), in.CollaboratorID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Start godoc
// @Summary      Iniciar produção de um item
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do item"
// @Success      204  "Iniciado"
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/production/items/{id}/start [post]
func (h *ProductionHandler) Start(c *fiber.Ctx) error {
	if err := h.uc.StartItem(c.UserContext(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Finish godoc
// @Summary      Finalizar produção de um item
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do item"
// @Success      204  "Finalizado"
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/production/items/{id}/finish [post]
func (h *ProductionHandler) Finish(c *fiber.Ctx) error {
	sideEffects, err := h.uc.FinishItem(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	for _, se := range sideEffects {
		h.log.Warn().Str("op", se.Op).Err(se.Err).Msg("efeito colateral da finalização falhou")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
