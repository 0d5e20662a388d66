package labels

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cozinhapro/cozinha-api/internal/application/dto"
	"github.com/cozinhapro/cozinha-api/internal/domain"
	"github.com/cozinhapro/cozinha-api/internal/domain/entity"
	labeldom "github.com/cozinhapro/cozinha-api/internal/domain/label"
	ordersm "github.com/cozinhapro/cozinha-api/internal/domain/order"
	"github.com/cozinhapro/cozinha-api/internal/domain/repository"
	"github.com/cozinhapro/cozinha-api/pkg/normalize"
)

// ConsumeLabel aplica o protocolo de separação: resolve a etiqueta a partir
// do texto lido do QR, consome a quantidade pedida (ou o saldo restante por
// padrão) contra o pedido e emite o movimento OUT_ORDER e o vínculo.
//
// A sequência movimento + vínculo + atualização da etiqueta roda em uma única
// transação, com a linha da etiqueta bloqueada (FOR UPDATE): dois consumidores
// simultâneos não podem passar ambos pela checagem de saldo. O status vira
// "usada" exatamente quando used_qty alcança qty; antes disso a etiqueta
// continua disponível para outros pedidos.
func (uc *UseCase) ConsumeLabel(ctx context.Context, actor domain.Actor, in dto.ConsumeLabelRequest) (*dto.ConsumeLabelResponse, error) {
	if !roleIn(consumeRoles, actor.Role) {
		return nil, domain.ErrForbidden
	}
	if in.OrderID == "" {
		return nil, domain.ErrInvalidInput
	}
	code, err := labeldom.ParseCode(in.RawCode)
	if err != nil {
		return nil, err
	}

	var resp *dto.ConsumeLabelResponse
	err = uc.txRunner.RunLabel(ctx, func(
		labelRepo repository.LabelRepository,
		movRepo repository.StockMovementRepository,
		linkRepo repository.OrderLabelLinkRepository,
		orderRepo repository.OrderRepository,
		itemRepo repository.OrderItemRepository,
	) error {
		label, err := labelRepo.GetByCodeForUpdate(actor.EstablishmentID, code)
		if err != nil {
			return err
		}
		if label == nil {
			return domain.ErrNotFound
		}
		if !label.Consumable() {
			return domain.ErrLabelConsumed
		}
		available := label.Available()
		if !available.GreaterThan(decimal.Zero) {
			return domain.ErrLabelConsumed
		}

		ord, err := orderRepo.GetByID(in.OrderID)
		if err != nil {
			return err
		}
		if ord == nil || ord.EstablishmentID != actor.EstablishmentID {
			return domain.ErrNotFound
		}
		if ordersm.Terminal(ord.Status) {
			return domain.ErrConflict
		}

		// Quantidade: parcial informada pelo chamador, ou o saldo por padrão.
		consume := available
		if in.Quantity != nil {
			consume = *in.Quantity
			if !consume.GreaterThan(decimal.Zero) {
				return domain.ErrInvalidInput
			}
			if consume.GreaterThan(available) {
				return fmt.Errorf("solicitado %s, disponível %s: %w",
					consume.String(), available.String(), domain.ErrInsufficientBalance)
			}
		}

		itemID, err := matchOrderItem(itemRepo, label, in.OrderItemID, ord.ID)
		if err != nil {
			return err
		}

		now := time.Now()
		if err := movRepo.Create(&entity.StockMovement{
			ID:              uuid.New().String(),
			EstablishmentID: actor.EstablishmentID,
			ProductID:       label.ProductID,
			Unit:            label.Unit,
			Quantity:        consume,
			Direction:       entity.DirectionOut,
			Type:            entity.MovementTypeOutOrder,
			LabelID:         &label.ID,
			OrderID:         &ord.ID,
			Details:         "separação etiqueta " + label.Code,
			CreatedBy:       actor.UserID,
			CreatedAt:       now,
		}); err != nil {
			return err
		}

		if err := linkRepo.Create(&entity.OrderLabelLink{
			ID:          uuid.New().String(),
			OrderID:     ord.ID,
			LabelID:     label.ID,
			OrderItemID: itemID,
			Quantity:    consume,
			Unit:        label.Unit,
			CreatedBy:   actor.UserID,
			CreatedAt:   now,
		}); err != nil {
			return err
		}

		label.UsedQty = label.UsedQty.Add(consume)
		label.OrderID = &ord.ID
		if label.UsedQty.GreaterThanOrEqual(label.Qty) {
			label.Status = entity.LabelStatusUsada
		}
		label.UpdatedAt = now
		if err := labelRepo.Update(label); err != nil {
			return err
		}

		resp = &dto.ConsumeLabelResponse{
			LabelID:     label.ID,
			Code:        label.Code,
			Consumed:    consume,
			Remaining:   label.Available(),
			LabelStatus: label.Status,
			OrderItemID: itemID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// matchOrderItem vincula o consumo a um item do pedido. O chamador pode
// apontar o item; senão, tenta-se o match por nome normalizado do produto.
// O vínculo é informativo: sem match a separação prossegue com itemID nil.
func matchOrderItem(itemRepo repository.OrderItemRepository, label *entity.InventoryLabel, explicitID, orderID string) (*string, error) {
	if explicitID != "" {
		item, err := itemRepo.GetByID(explicitID)
		if err != nil {
			return nil, err
		}
		if item == nil || item.OrderID != orderID {
			return nil, domain.ErrNotFound
		}
		return &item.ID, nil
	}

	items, err := itemRepo.ListByOrder(orderID)
	if err != nil {
		return nil, err
	}
	want := normalize.Name(label.ProductName)
	for _, it := range items {
		if normalize.Name(it.ProductName) == want {
			id := it.ID
			return &id, nil
		}
	}
	return nil, nil
}
