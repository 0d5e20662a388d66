package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cozinhapro/cozinha-api/internal/domain/entity"
	"github.com/cozinhapro/cozinha-api/internal/domain/repository"
)

var _ repository.OrderItemRepository = (*OrderItemRepo)(nil)

const orderItemColumns = `id, order_id, product_id, product_name, unit, quantity, missing_qty,
	status, collaborator_id, started_at, finished_at, created_at, updated_at`

// OrderItemRepo persiste os itens rastreados de produção derivados na aceitação.
type OrderItemRepo struct {
	q Querier
}

// NewOrderItemRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewOrderItemRepository(q Querier) *OrderItemRepo {
	return &OrderItemRepo{q: q}
}

// ReplaceForOrder apaga os itens anteriores do pedido e insere o conjunto novo.
// Chamado dentro da transação de aceitação; a reaceitação recria tudo.
func (r *OrderItemRepo) ReplaceForOrder(orderID string, items []*entity.OrderItem) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, orderID); err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	query := `
		INSERT INTO order_items (id, order_id, product_id, product_name, unit, quantity, missing_qty,
			status, collaborator_id, started_at, finished_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	for _, it := range items {
		_, err := r.q.Exec(ctx, query,
			it.ID, it.OrderID, it.ProductID, it.ProductName, it.Unit, it.Quantity, it.MissingQty,
			it.Status, it.CollaboratorID, it.StartedAt, it.FinishedAt, it.CreatedAt, it.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetByID obtém um item de produção por ID.
func (r *OrderItemRepo) GetByID(id string) (*entity.OrderItem, error) {
	query := `SELECT ` + orderItemColumns + ` FROM order_items WHERE id = $1`
	var it entity.OrderItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Unit, &it.Quantity, &it.MissingQty,
		&it.Status, &it.CollaboratorID, &it.StartedAt, &it.FinishedAt, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order item: %w", err)
	}
	return &it, nil
}

// Update grava status de produção, colaborador e marcas de tempo do item.
func (r *OrderItemRepo) Update(item *entity.OrderItem) error {
	query := `
		UPDATE order_items SET status = $2, collaborator_id = $3, started_at = $4,
			finished_at = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Status, item.CollaboratorID, item.StartedAt, item.FinishedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order item: %w", err)
	}
	return nil
}

// ListByOrder devolve os itens de produção do pedido na ordem de criação.
func (r *OrderItemRepo) ListByOrder(orderID string) ([]*entity.OrderItem, error) {
	query := `SELECT ` + orderItemColumns + ` FROM order_items WHERE order_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	var out []*entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(
			&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Unit, &it.Quantity, &it.MissingQty,
			&it.Status, &it.CollaboratorID, &it.StartedAt, &it.FinishedAt, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		out = append(out, &it)
	}
	return out, rows.Err()
}
