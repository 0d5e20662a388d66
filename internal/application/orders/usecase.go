package orders

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cozinhapro/cozinha-api/internal/application/dto"
	"github.com/cozinhapro/cozinha-api/internal/domain"
	"github.com/cozinhapro/cozinha-api/internal/domain/entity"
	ordersm "github.com/cozinhapro/cozinha-api/internal/domain/order"
	"github.com/cozinhapro/cozinha-api/internal/domain/repository"
)

// UseCase implementa o ciclo de vida do pedido: criação, aceitação, avanço,
// cancelamento, reabertura e leitura da linha do tempo. É a autoridade de
// transição do servidor; toda validação papel × status × destino acontece
// aqui, dentro da transação, independente do que o cliente propôs.
type UseCase struct {
	txRunner  TxRunner
	orderRepo repository.OrderRepository
	itemRepo  repository.OrderItemRepository
	eventRepo repository.OrderEventRepository
}

// NewUseCase constrói o caso de uso de pedidos.
func NewUseCase(
	txRunner TxRunner,
	orderRepo repository.OrderRepository,
	itemRepo repository.OrderItemRepository,
	eventRepo repository.OrderEventRepository,
) *UseCase {
	return &UseCase{txRunner: txRunner, orderRepo: orderRepo, itemRepo: itemRepo, eventRepo: eventRepo}
}

// CreateOrder cria o pedido em pedido_criado com itens de texto livre,
// consolidados por produto+unidade já na criação.
func (uc *UseCase) CreateOrder(ctx context.Context, actor domain.Actor, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if strings.TrimSpace(it.ProductName) == "" || strings.TrimSpace(it.Unit) == "" {
			return nil, domain.ErrInvalidInput
		}
		if !it.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}
	consolidated := consolidateRequests(in.Items)

	now := time.Now()
	ord := &entity.Order{
		ID:              uuid.New().String(),
		EstablishmentID: actor.EstablishmentID,
		Status:          ordersm.StatusCriado,
		CustomerName:    strings.TrimSpace(in.CustomerName),
		Notes:           in.Notes,
		CreatedBy:       actor.UserID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		lineRepo repository.OrderLineItemRepository,
		_ repository.OrderItemRepository,
		_ repository.OrderEventRepository,
		_ repository.StockMovementRepository,
		_ repository.ProductRepository,
	) error {
		number, err := orderRepo.NextNumber(actor.EstablishmentID)
		if err != nil {
			return err
		}
		ord.Number = number
		if err := orderRepo.Create(ord); err != nil {
			return err
		}
		lines := make([]*entity.OrderLineItem, 0, len(consolidated))
		for _, c := range consolidated {
			lines = append(lines, &entity.OrderLineItem{
				ID:          uuid.New().String(),
				OrderID:     ord.ID,
				ProductName: c.ProductName,
				Quantity:    c.Quantity,
				Unit:        c.Unit,
				CreatedAt:   now,
			})
		}
		return lineRepo.BulkCreate(lines)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(ord), nil
}

// loadScoped busca o pedido com lock de linha e valida o escopo do
// estabelecimento. Divergência de tenant responde como não-encontrado, sem
// vazar a existência do registro.
func loadScoped(orderRepo repository.OrderRepository, actor domain.Actor, orderID string) (*entity.Order, error) {
	ord, err := orderRepo.GetByIDForUpdate(orderID)
	if err != nil {
		return nil, err
	}
	if ord == nil || ord.EstablishmentID != actor.EstablishmentID {
		return nil, domain.ErrNotFound
	}
	return ord, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:           o.ID,
		Number:       o.Number,
		Status:       o.Status,
		CustomerName: o.CustomerName,
		Notes:        o.Notes,
		CreatedAt:    o.CreatedAt,
		AcceptedAt:   o.AcceptedAt,
		CanceledAt:   o.CanceledAt,
		CancelReason: o.CancelReason,
	}
}

// GetOrder devolve o pedido escopado ao estabelecimento do ator.
func (uc *UseCase) GetOrder(ctx context.Context, actor domain.Actor, orderID string) (*dto.OrderResponse, error) {
	ord, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if ord == nil || ord.EstablishmentID != actor.EstablishmentID {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(ord), nil
}

// ListItems devolve os itens de produção do pedido.
func (uc *UseCase) ListItems(ctx context.Context, actor domain.Actor, orderID string) ([]dto.OrderItemResponse, error) {
	ord, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if ord == nil || ord.EstablishmentID != actor.EstablishmentID {
		return nil, domain.ErrNotFound
	}
	items, err := uc.itemRepo.ListByOrder(orderID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.OrderItemResponse{
			ID:          it.ID,
			ProductName: it.ProductName,
			Unit:        it.Unit,
			Quantity:    it.Quantity,
			MissingQty:  it.MissingQty,
			Status:      it.Status,
			StartedAt:   it.StartedAt,
			FinishedAt:  it.FinishedAt,
		})
	}
	return out, nil
}

// List devolve os pedidos do estabelecimento do ator, com filtro opcional de
// status, mais recentes primeiro.
func (uc *UseCase) List(ctx context.Context, actor domain.Actor, status string, limit, offset int) ([]dto.OrderResponse, error) {
	ords, err := uc.orderRepo.ListByEstablishment(actor.EstablishmentID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(ords))
	for _, o := range ords {
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}
