package labels

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cozinhapro/cozinha-api/internal/application/dto"
	"github.com/cozinhapro/cozinha-api/internal/domain"
	"github.com/cozinhapro/cozinha-api/internal/domain/entity"
	"github.com/cozinhapro/cozinha-api/internal/domain/repository"
)

// Papéis autorizados por operação de etiqueta.
var (
	createRoles     = []string{entity.RoleAdmin, entity.RoleEstoque, entity.RoleProducao}
	consumeRoles    = []string{entity.RoleAdmin, entity.RoleOperacao, entity.RoleEstoque}
	revalidateRoles = []string{entity.RoleAdmin, entity.RoleEstoque}
)

func roleIn(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// UseCase implementa o ciclo de vida da etiqueta de estoque: criação
// idempotente, consumo na separação, revalidação e reset administrativo.
type UseCase struct {
	txRunner    TxRunner
	labelRepo   repository.LabelRepository
	productRepo repository.ProductRepository
	estabRepo   repository.EstablishmentRepository
	pdf         PDFGenerator
}

// NewUseCase constrói o caso de uso de etiquetas.
func NewUseCase(
	txRunner TxRunner,
	labelRepo repository.LabelRepository,
	productRepo repository.ProductRepository,
	estabRepo repository.EstablishmentRepository,
	pdf PDFGenerator,
) *UseCase {
	return &UseCase{txRunner: txRunner, labelRepo: labelRepo, productRepo: productRepo, estabRepo: estabRepo, pdf: pdf}
}

// CreateLabel cria a etiqueta em disponivel com zero consumido e garante,
// de forma idempotente, exatamente um movimento LABEL_IN correspondente.
// Um segundo evento de criação com o mesmo código não duplica nada: devolve
// a etiqueta existente e completa o movimento apenas se ele faltar.
func (uc *UseCase) CreateLabel(ctx context.Context, actor domain.Actor, in dto.CreateLabelRequest) (*dto.LabelResponse, error) {
	if !roleIn(createRoles, actor.Role) {
		return nil, domain.ErrForbidden
	}
	code := strings.TrimSpace(in.Code)
	unit := strings.ToUpper(strings.TrimSpace(in.Unit))
	if in.ProductID == "" || code == "" || unit == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.EstablishmentID != actor.EstablishmentID {
		return nil, domain.ErrNotFound
	}

	var result *entity.InventoryLabel
	err = uc.txRunner.RunLabel(ctx, func(
		labelRepo repository.LabelRepository,
		movRepo repository.StockMovementRepository,
		_ repository.OrderLabelLinkRepository,
		_ repository.OrderRepository,
		_ repository.OrderItemRepository,
	) error {
		now := time.Now()

		existing, err := labelRepo.GetByCode(actor.EstablishmentID, code)
		if err != nil {
			return err
		}
		label := existing
		if label == nil {
			label = &entity.InventoryLabel{
				ID:              uuid.New().String(),
				EstablishmentID: actor.EstablishmentID,
				ProductID:       product.ID,
				ProductName:     product.Name,
				Code:            code,
				Qty:             in.Quantity,
				UsedQty:         decimal.Zero,
				Unit:            unit,
				Status:          entity.LabelStatusDisponivel,
				Notes:           in.Notes,
				CreatedBy:       actor.UserID,
				CreatedAt:       now,
				UpdatedAt:       now,
			}
			if err := labelRepo.Create(label); err != nil {
				return err
			}
		}

		// Idempotência: no máximo um LABEL_IN por etiqueta, mesmo sob retry.
		exists, err := movRepo.ExistsByLabelAndType(label.ID, entity.MovementTypeLabelIn)
		if err != nil {
			return err
		}
		if !exists {
			if err := movRepo.Create(&entity.StockMovement{
				ID:              uuid.New().String(),
				EstablishmentID: actor.EstablishmentID,
				ProductID:       label.ProductID,
				Unit:            label.Unit,
				Quantity:        label.Qty,
				Direction:       entity.DirectionIn,
				Type:            entity.MovementTypeLabelIn,
				LabelID:         &label.ID,
				Details:         "entrada por criação de etiqueta " + label.Code,
				CreatedBy:       actor.UserID,
				CreatedAt:       now,
			}); err != nil {
				return err
			}
		}
		result = label
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toLabelResponse(result), nil
}

// RevalidateLabel limpa as notas/metadados da etiqueta (correção
// administrativa não destrutiva). Não mexe em status, consumo nem vínculos.
func (uc *UseCase) RevalidateLabel(ctx context.Context, actor domain.Actor, labelID string) error {
	if !roleIn(revalidateRoles, actor.Role) {
		return domain.ErrForbidden
	}
	label, err := uc.labelRepo.GetByID(labelID)
	if err != nil {
		return err
	}
	if label == nil || label.EstablishmentID != actor.EstablishmentID {
		return domain.ErrNotFound
	}
	label.Notes = ""
	label.UpdatedAt = time.Now()
	return uc.labelRepo.Update(label)
}

// ResetLabel é a variante destrutiva: volta o status para disponivel, zera o
// consumo e anula o vínculo com pedido — desfaz uma separação. Somente admin.
// Não emite movimento compensatório; a correção do razão é uma contagem.
func (uc *UseCase) ResetLabel(ctx context.Context, actor domain.Actor, labelID string) error {
	if actor.Role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	label, err := uc.labelRepo.GetByID(labelID)
	if err != nil {
		return err
	}
	if label == nil || label.EstablishmentID != actor.EstablishmentID {
		return domain.ErrNotFound
	}
	label.Status = entity.LabelStatusDisponivel
	label.UsedQty = decimal.Zero
	label.OrderID = nil
	label.Notes = ""
	label.UpdatedAt = time.Now()
	return uc.labelRepo.Update(label)
}

// GetByCode resolve a etiqueta por código dentro do estabelecimento do ator.
func (uc *UseCase) GetByCode(ctx context.Context, actor domain.Actor, rawCode string) (*dto.LabelResponse, error) {
	label, err := uc.labelRepo.GetByCode(actor.EstablishmentID, strings.TrimSpace(rawCode))
	if err != nil {
		return nil, err
	}
	if label == nil {
		return nil, domain.ErrNotFound
	}
	return toLabelResponse(label), nil
}

// List lista etiquetas do estabelecimento, com filtro opcional de status.
func (uc *UseCase) List(ctx context.Context, actor domain.Actor, status string, limit, offset int) ([]dto.LabelResponse, error) {
	list, err := uc.labelRepo.ListByEstablishment(actor.EstablishmentID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LabelResponse, 0, len(list))
	for _, l := range list {
		out = append(out, *toLabelResponse(l))
	}
	return out, nil
}

// PrintLabel gera o PDF imprimível da etiqueta (QR + produto + lote).
func (uc *UseCase) PrintLabel(ctx context.Context, actor domain.Actor, labelID string) ([]byte, error) {
	label, err := uc.labelRepo.GetByID(labelID)
	if err != nil {
		return nil, err
	}
	if label == nil || label.EstablishmentID != actor.EstablishmentID {
		return nil, domain.ErrNotFound
	}
	estab, err := uc.estabRepo.GetByID(actor.EstablishmentID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateLabelPDF(ctx, label, estab)
}

func toLabelResponse(l *entity.InventoryLabel) *dto.LabelResponse {
	return &dto.LabelResponse{
		ID:          l.ID,
		Code:        l.Code,
		ProductID:   l.ProductID,
		ProductName: l.ProductName,
		Quantity:    l.Qty,
		UsedQty:     l.UsedQty,
		Unit:        l.Unit,
		Status:      l.Status,
		Notes:       l.Notes,
		CreatedAt:   l.CreatedAt,
	}
}
