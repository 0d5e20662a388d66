package orders

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cozinhapro/cozinha-api/internal/application/dto"
	"github.com/cozinhapro/cozinha-api/internal/domain"
	"github.com/cozinhapro/cozinha-api/internal/domain/entity"
	ordersm "github.com/cozinhapro/cozinha-api/internal/domain/order"
	"github.com/cozinhapro/cozinha-api/internal/domain/repository"
)

// AdvanceOrder avança o pedido para o status proposto pelo cliente. A tabela
// de adjacência do front é só dica de UX: a legalidade (papel × status atual
// × destino, anti-skip) é revalidada aqui, com a linha do pedido bloqueada.
// Sair de em_preparo exige todos os itens de produção resolvidos — checado
// neste momento, nunca cacheado.
func (uc *UseCase) AdvanceOrder(ctx context.Context, actor domain.Actor, orderID string, in dto.AdvanceOrderRequest) error {
	if !ordersm.Valid(in.ToStatus) {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		_ repository.OrderLineItemRepository,
		itemRepo repository.OrderItemRepository,
		eventRepo repository.OrderEventRepository,
		_ repository.StockMovementRepository,
		_ repository.ProductRepository,
	) error {
		ord, err := loadScoped(orderRepo, actor, orderID)
		if err != nil {
			return err
		}
		if err := ordersm.CanAdvance(actor.Role, ord.Status, in.ToStatus); err != nil {
			return err
		}

		if ordersm.Effective(ord.Status) == ordersm.StatusEmPreparo {
			items, err := itemRepo.ListByOrder(ord.ID)
			if err != nil {
				return err
			}
			for _, it := range items {
				if !it.ProductionSettled() {
					return domain.ErrProductionPending
				}
			}
		}

		now := time.Now()
		from := ord.Status
		ord.Status = in.ToStatus
		ord.UpdatedAt = now
		if err := orderRepo.Update(ord); err != nil {
			return err
		}

		return eventRepo.Create(&entity.OrderStatusEvent{
			ID:         uuid.New().String(),
			OrderID:    ord.ID,
			FromStatus: from,
			ToStatus:   in.ToStatus,
			Visible:    true,
			Note:       in.Note,
			ActorID:    actor.UserID,
			ActorRole:  actor.Role,
			CreatedAt:  now,
		})
	})
}
