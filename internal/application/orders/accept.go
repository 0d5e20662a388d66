package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cozinhapro/cozinha-api/internal/domain"
	"github.com/cozinhapro/cozinha-api/internal/domain/entity"
	ordersm "github.com/cozinhapro/cozinha-api/internal/domain/order"
	"github.com/cozinhapro/cozinha-api/internal/domain/repository"
)

// AcceptOrder aceita um pedido recém-criado (pedido_criado → aceitou_pedido).
// Na mesma transação: consolida os line items por produto normalizado,
// consulta o saldo do razão por produto e substitui os itens de produção por
// uma linha por produto distinto — pending com a falta registrada quando o
// estoque não cobre, no_production_needed quando cobre. Registra ator e
// timestamp de aceitação e emite um evento na linha do tempo.
func (uc *UseCase) AcceptOrder(ctx context.Context, actor domain.Actor, orderID string) error {
	return uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		lineRepo repository.OrderLineItemRepository,
		itemRepo repository.OrderItemRepository,
		eventRepo repository.OrderEventRepository,
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		ord, err := loadScoped(orderRepo, actor, orderID)
		if err != nil {
			return err
		}
		if err := ordersm.CanAccept(actor.Role, ord.Status); err != nil {
			return err
		}

		lines, err := lineRepo.ListByOrder(ord.ID)
		if err != nil {
			return err
		}
		consolidated := consolidateLines(lines)
		if len(consolidated) == 0 {
			return fmt.Errorf("pedido sem itens: %w", domain.ErrConflict)
		}

		now := time.Now()
		items := make([]*entity.OrderItem, 0, len(consolidated))
		for _, c := range consolidated {
			onHand := decimal.Zero
			var productID *string
			product, err := productRepo.GetByNormalizedName(actor.EstablishmentID, c.NormalizedName)
			if err != nil {
				return err
			}
			if product != nil {
				productID = &product.ID
				onHand, err = movRepo.Balance(actor.EstablishmentID, product.ID, c.Unit)
				if err != nil {
					return err
				}
			}

			item := &entity.OrderItem{
				ID:          uuid.New().String(),
				OrderID:     ord.ID,
				ProductID:   productID,
				ProductName: c.ProductName,
				Unit:        c.Unit,
				Quantity:    c.Quantity,
				MissingQty:  decimal.Zero,
				Status:      entity.ItemStatusNoProductionNeeded,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if onHand.LessThan(c.Quantity) {
				item.Status = entity.ItemStatusPending
				item.MissingQty = c.Quantity.Sub(onHand)
			}
			items = append(items, item)
		}

		// Substitui qualquer conjunto anterior: a aceitação é a única dona
		// dos itens de produção.
		if err := itemRepo.ReplaceForOrder(ord.ID, items); err != nil {
			return err
		}

		from := ord.Status
		ord.Status = ordersm.StatusAceito
		ord.AcceptedBy = &actor.UserID
		ord.AcceptedAt = &now
		ord.UpdatedAt = now
		if err := orderRepo.Update(ord); err != nil {
			return err
		}

		return eventRepo.Create(&entity.OrderStatusEvent{
			ID:         uuid.New().String(),
			OrderID:    ord.ID,
			FromStatus: from,
			ToStatus:   ordersm.StatusAceito,
			Visible:    true,
			ActorID:    actor.UserID,
			ActorRole:  actor.Role,
			CreatedAt:  now,
		})
	})
}
