package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cozinhapro/cozinha-api/internal/application/dto"
	"github.com/cozinhapro/cozinha-api/internal/application/labels"
)

// LabelHandler trata o ciclo de vida das etiquetas de estoque (protegido).
type LabelHandler struct {
	uc *labels.UseCase
}

// NewLabelHandler constrói o handler.
func NewLabelHandler(uc *labels.UseCase) *LabelHandler {
	return &LabelHandler{uc: uc}
}

// Create godoc
// @Summary      Criar etiqueta (idempotente por código)
// @Tags         labels
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLabelRequest  true  "Dados da etiqueta"
// @Success      201   {object}  dto.LabelResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/labels [post]
func (h *LabelHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLabelRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CreateLabel(c.UserContext(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Consume godoc
// @Summary      Consumir etiqueta contra um pedido (separação)
// @Tags         labels
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConsumeLabelRequest  true  "Código lido + pedido"
// @Success      200   {object}  dto.ConsumeLabelResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/labels/consume [post]
func (h *LabelHandler) Consume(c *fiber.Ctx) error {
	var in dto.ConsumeLabelRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.ConsumeLabel(c.UserContext(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Revalidate godoc
// @Summary      Revalidar etiqueta (limpa notas de validade)
// @Tags         labels
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da etiqueta"
// @Success      204  "Revalidada"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/labels/{id}/revalidate [post]
func (h *LabelHandler) Revalidate(c *fiber.Ctx) error {
	if err := h.uc.RevalidateLabel(c.UserContext(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Reset godoc
// @Summary      Resetar etiqueta ao estado recém-criada (somente admin)
// @Tags         labels
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da etiqueta"
// @Success      204  "Resetada"
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/labels/{id}/reset [post]
func (h *LabelHandler) Reset(c *fiber.Ctx) error {
	if err := h.uc.ResetLabel(c.UserContext(), GetActor(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByCode godoc
// @Summary      Resolver etiqueta por código
// @Tags         labels
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Código da etiqueta"
// @Success      200   {object}  dto.LabelResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/labels/code/{code} [get]
func (h *LabelHandler) GetByCode(c *fiber.Ctx) error {
	out, err := h.uc.GetByCode(c.UserContext(), GetActor(c), c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar etiquetas do estabelecimento
// @Tags         labels
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtro de status"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {array}  dto.LabelResponse
// @Router       /api/labels [get]
func (h *LabelHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.UserContext(), GetActor(c), c.Query("status"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Print godoc
// @Summary      Folha imprimível da etiqueta (PDF com QR)
// @Tags         labels
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID da etiqueta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/labels/{id}/print [get]
func (h *LabelHandler) Print(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.PrintLabel(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdfBytes)
}
