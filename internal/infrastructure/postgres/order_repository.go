package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cozinhapro/cozinha-api/internal/domain"
	"github.com/cozinhapro/cozinha-api/internal/domain/entity"
	"github.com/cozinhapro/cozinha-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, establishment_id, number, status, customer_name, notes, created_by,
	accepted_by, accepted_at, canceled_by, canceled_at, cancel_reason, reopened_by, reopened_at,
	created_at, updated_at`

// OrderRepo implementação do porto OrderRepository sobre PostgreSQL (usável com pool ou tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository constrói o adaptador de persistência de pedidos. Passar pool ou tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste um novo pedido.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, establishment_id, number, status, customer_name, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.EstablishmentID, order.Number, order.Status,
		order.CustomerName, order.Notes, order.CreatedBy, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtém um pedido por ID.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByIDForUpdate obtém um pedido por ID bloqueando a linha (FOR UPDATE).
func (r *OrderRepo) GetByIDForUpdate(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

func (r *OrderRepo) scanOne(query string, args ...any) (*entity.Order, error) {
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&o.ID, &o.EstablishmentID, &o.Number, &o.Status, &o.CustomerName, &o.Notes, &o.CreatedBy,
		&o.AcceptedBy, &o.AcceptedAt, &o.CanceledBy, &o.CanceledAt, &o.CancelReason,
		&o.ReopenedBy, &o.ReopenedAt, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// Update grava status e campos de auditoria do pedido.
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE orders SET status = $2, customer_name = $3, notes = $4,
			accepted_by = $5, accepted_at = $6, canceled_by = $7, canceled_at = $8,
			cancel_reason = $9, reopened_by = $10, reopened_at = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Status, order.CustomerName, order.Notes,
		order.AcceptedBy, order.AcceptedAt, order.CanceledBy, order.CanceledAt,
		order.CancelReason, order.ReopenedBy, order.ReopenedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// NextNumber devolve o próximo número sequencial do estabelecimento.
// MAX+1 dentro da transação que cria o pedido; a unicidade é garantida por
// constraint (establishment_id, number).
func (r *OrderRepo) NextNumber(establishmentID string) (int64, error) {
	query := `SELECT COALESCE(MAX(number), 0) + 1 FROM orders WHERE establishment_id = $1`
	var next int64
	if err := r.q.QueryRow(context.Background(), query, establishmentID).Scan(&next); err != nil {
		return 0, fmt.Errorf("next order number: %w", err)
	}
	return next, nil
}

// ListByEstablishment lista pedidos do estabelecimento, opcionalmente filtrados
// por status, mais recentes primeiro.
func (r *OrderRepo) ListByEstablishment(establishmentID, status string, limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE establishment_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, establishmentID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var out []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID, &o.EstablishmentID, &o.Number, &o.Status, &o.CustomerName, &o.Notes, &o.CreatedBy,
			&o.AcceptedBy, &o.AcceptedAt, &o.CanceledBy, &o.CanceledAt, &o.CancelReason,
			&o.ReopenedBy, &o.ReopenedAt, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, &o)
	}
	return out, rows.Err()
}
