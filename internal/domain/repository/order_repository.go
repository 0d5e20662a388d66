package repository

import "github.com/cozinhapro/cozinha-api/internal/domain/entity"

// OrderRepository define a porta de persistência de pedidos.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	// GetByIDForUpdate bloqueia a linha do pedido (SELECT FOR UPDATE) durante
	// a sequência ler-validar-gravar de uma transição.
	GetByIDForUpdate(id string) (*entity.Order, error)
	Update(order *entity.Order) error
	// NextNumber devolve o próximo número sequencial do estabelecimento.
	NextNumber(establishmentID string) (int64, error)
	ListByEstablishment(establishmentID, status string, limit, offset int) ([]*entity.Order, error)
}

// OrderLineItemRepository define a porta para os itens de texto livre do pedido.
type OrderLineItemRepository interface {
	BulkCreate(items []*entity.OrderLineItem) error
	ListByOrder(orderID string) ([]*entity.OrderLineItem, error)
}

// OrderEventRepository define a porta da linha do tempo (append-only).
type OrderEventRepository interface {
	Create(event *entity.OrderStatusEvent) error
	ListByOrder(orderID string) ([]*entity.OrderStatusEvent, error)
}
