package orders

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cozinhapro/cozinha-api/internal/application/dto"
	"github.com/cozinhapro/cozinha-api/internal/domain"
	"github.com/cozinhapro/cozinha-api/internal/domain/entity"
	ordersm "github.com/cozinhapro/cozinha-api/internal/domain/order"
	"github.com/cozinhapro/cozinha-api/internal/domain/repository"
)

// CancelOrder cancela o pedido com motivo obrigatório. Etiquetas já separadas
// não são revertidas: estoque consumido permanece consumido e a compensação
// é uma contagem de reconciliação manual (ou ResetLabel, caso a caso).
func (uc *UseCase) CancelOrder(ctx context.Context, actor domain.Actor, orderID string, in dto.CancelOrderRequest) error {
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return domain.ErrEmptyReason
	}
	return uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		_ repository.OrderLineItemRepository,
		_ repository.OrderItemRepository,
		eventRepo repository.OrderEventRepository,
		_ repository.StockMovementRepository,
		_ repository.ProductRepository,
	) error {
		ord, err := loadScoped(orderRepo, actor, orderID)
		if err != nil {
			return err
		}
		if err := ordersm.CanCancel(actor.Role, ord.Status); err != nil {
			return err
		}

		now := time.Now()
		from := ord.Status
		ord.Status = ordersm.StatusCancelado
		ord.CanceledBy = &actor.UserID
		ord.CanceledAt = &now
		ord.CancelReason = &reason
		ord.UpdatedAt = now
		if err := orderRepo.Update(ord); err != nil {
			return err
		}

		return eventRepo.Create(&entity.OrderStatusEvent{
			ID:         uuid.New().String(),
			OrderID:    ord.ID,
			FromStatus: from,
			ToStatus:   ordersm.StatusCancelado,
			Visible:    true,
			Note:       reason,
			ActorID:    actor.UserID,
			ActorRole:  actor.Role,
			CreatedAt:  now,
		})
	})
}

// ReopenOrder reabre um pedido cancelado de volta para aceitou_pedido.
// Política única imposta no servidor: somente admin.
func (uc *UseCase) ReopenOrder(ctx context.Context, actor domain.Actor, orderID string, in dto.ReopenOrderRequest) error {
	return uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		_ repository.OrderLineItemRepository,
		_ repository.OrderItemRepository,
		eventRepo repository.OrderEventRepository,
		_ repository.StockMovementRepository,
		_ repository.ProductRepository,
	) error {
		ord, err := loadScoped(orderRepo, actor, orderID)
		if err != nil {
			return err
		}
		if err := ordersm.CanReopen(actor.Role, ord.Status); err != nil {
			return err
		}

		now := time.Now()
		from := ord.Status
		ord.Status = ordersm.StatusAceito
		ord.ReopenedBy = &actor.UserID
		ord.ReopenedAt = &now
		ord.UpdatedAt = now
		if err := orderRepo.Update(ord); err != nil {
			return err
		}

		return eventRepo.Create(&entity.OrderStatusEvent{
			ID:         uuid.New().String(),
			OrderID:    ord.ID,
			FromStatus: from,
			ToStatus:   ordersm.StatusAceito,
			Label:      "reaberto",
			Visible:    true,
			Note:       in.Note,
			ActorID:    actor.UserID,
			ActorRole:  actor.Role,
			CreatedAt:  now,
		})
	})
}
