package repository

import "github.com/cozinhapro/cozinha-api/internal/domain/entity"

// OrderItemRepository define a porta dos itens rastreados de produção.
type OrderItemRepository interface {
	// ReplaceForOrder apaga os itens anteriores do pedido e insere os novos,
	// na mesma transação. A aceitação recria o conjunto inteiro.
	ReplaceForOrder(orderID string, items []*entity.OrderItem) error
	GetByID(id string) (*entity.OrderItem, error)
	Update(item *entity.OrderItem) error
	ListByOrder(orderID string) ([]*entity.OrderItem, error)
}
