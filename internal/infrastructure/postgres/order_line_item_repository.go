package postgres

import (
	"context"
	"fmt"

	"github.com/cozinhapro/cozinha-api/internal/domain/entity"
	"github.com/cozinhapro/cozinha-api/internal/domain/repository"
)

var _ repository.OrderLineItemRepository = (*OrderLineItemRepo)(nil)

// OrderLineItemRepo persiste os itens de texto livre gravados na criação do pedido.
type OrderLineItemRepo struct {
	q Querier
}

// NewOrderLineItemRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewOrderLineItemRepository(q Querier) *OrderLineItemRepo {
	return &OrderLineItemRepo{q: q}
}

// BulkCreate insere os itens do pedido na transação de criação.
func (r *OrderLineItemRepo) BulkCreate(items []*entity.OrderLineItem) error {
	query := `
		INSERT INTO order_line_items (id, order_id, product_name, quantity, unit, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, it := range items {
		_, err := r.q.Exec(context.Background(), query,
			it.ID, it.OrderID, it.ProductName, it.Quantity, it.Unit, it.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert order line item: %w", err)
		}
	}
	return nil
}

// ListByOrder devolve os itens do pedido na ordem de inserção.
func (r *OrderLineItemRepo) ListByOrder(orderID string) ([]*entity.OrderLineItem, error) {
	query := `
		SELECT id, order_id, product_name, quantity, unit, created_at
		FROM order_line_items WHERE order_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order line items: %w", err)
	}
	defer rows.Close()

	var out []*entity.OrderLineItem
	for rows.Next() {
		var it entity.OrderLineItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductName, &it.Quantity, &it.Unit, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order line item: %w", err)
		}
		out = append(out, &it)
	}
	return out, rows.Err()
}
