package postgres

import (
	"context"
	"fmt"

	"github.com/cozinhapro/cozinha-api/internal/domain/entity"
	"github.com/cozinhapro/cozinha-api/internal/domain/repository"
)

var _ repository.OrderEventRepository = (*OrderEventRepo)(nil)

// OrderEventRepo persiste a linha do tempo do pedido. Append-only: não há
// Update nem Delete aqui de propósito.
type OrderEventRepo struct {
	q Querier
}

// NewOrderEventRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewOrderEventRepository(q Querier) *OrderEventRepo {
	return &OrderEventRepo{q: q}
}

// Create insere um evento de transição na linha do tempo.
func (r *OrderEventRepo) Create(event *entity.OrderStatusEvent) error {
	query := `
		INSERT INTO order_status_events (id, order_id, from_status, to_status, label, visible, note, actor_id, actor_role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		event.ID, event.OrderID, event.FromStatus, event.ToStatus, event.Label,
		event.Visible, event.Note, event.ActorID, event.ActorRole, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order event: %w", err)
	}
	return nil
}

// ListByOrder devolve os eventos do pedido em ordem cronológica.
func (r *OrderEventRepo) ListByOrder(orderID string) ([]*entity.OrderStatusEvent, error) {
	query := `
		SELECT id, order_id, from_status, to_status, label, visible, note, actor_id, actor_role, created_at
		FROM order_status_events WHERE order_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order events: %w", err)
	}
	defer rows.Close()

	var out []*entity.OrderStatusEvent
	for rows.Next() {
		var e entity.OrderStatusEvent
		if err := rows.Scan(
			&e.ID, &e.OrderID, &e.FromStatus, &e.ToStatus, &e.Label,
			&e.Visible, &e.Note, &e.ActorID, &e.ActorRole, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order event: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}
