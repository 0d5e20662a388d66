package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cozinhapro/cozinha-api/internal/domain/entity"
	"github.com/cozinhapro/cozinha-api/internal/domain/repository"
)

var _ repository.InventoryCountRepository = (*InventoryCountRepo)(nil)

// InventoryCountRepo persiste sessões de contagem de estoque e seus itens.
type InventoryCountRepo struct {
	q Querier
}

// NewInventoryCountRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewInventoryCountRepository(q Querier) *InventoryCountRepo {
	return &InventoryCountRepo{q: q}
}

// Create insere o cabeçalho da sessão de contagem.
func (r *InventoryCountRepo) Create(count *entity.InventoryCount) error {
	query := `
		INSERT INTO inventory_counts (id, establishment_id, note, started_at, finished_at, item_count, product_count, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		count.ID, count.EstablishmentID, count.Note, count.StartedAt, count.FinishedAt,
		count.ItemCount, count.ProductCount, count.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert inventory count: %w", err)
	}
	return nil
}

// GetByID obtém uma sessão de contagem por ID.
func (r *InventoryCountRepo) GetByID(id string) (*entity.InventoryCount, error) {
	query := `
		SELECT id, establishment_id, note, started_at, finished_at, item_count, product_count, created_by
		FROM inventory_counts WHERE id = $1`
	var c entity.InventoryCount
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.EstablishmentID, &c.Note, &c.StartedAt, &c.FinishedAt,
		&c.ItemCount, &c.ProductCount, &c.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory count: %w", err)
	}
	return &c, nil
}

// UpdateSummary grava os totais finais e FinishedAt no cabeçalho da sessão.
func (r *InventoryCountRepo) UpdateSummary(count *entity.InventoryCount) error {
	query := `
		UPDATE inventory_counts SET finished_at = $2, item_count = $3, product_count = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		count.ID, count.FinishedAt, count.ItemCount, count.ProductCount,
	)
	if err != nil {
		return fmt.Errorf("update inventory count summary: %w", err)
	}
	return nil
}

// CreateItem insere um item contado da sessão.
func (r *InventoryCountRepo) CreateItem(item *entity.InventoryCountItem) error {
	query := `
		INSERT INTO inventory_count_items (id, count_id, product_id, product_name, unit, counted_qty, system_qty, diff, status, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.CountID, item.ProductID, item.ProductName, item.Unit,
		item.CountedQty, item.SystemQty, item.Diff, item.Status, item.Message, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory count item: %w", err)
	}
	return nil
}

// ListItems devolve os itens da sessão na ordem de inserção.
func (r *InventoryCountRepo) ListItems(countID string) ([]*entity.InventoryCountItem, error) {
	query := `
		SELECT id, count_id, product_id, product_name, unit, counted_qty, system_qty, diff, status, message, created_at
		FROM inventory_count_items WHERE count_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, countID)
	if err != nil {
		return nil, fmt.Errorf("list inventory count items: %w", err)
	}
	defer rows.Close()

	var out []*entity.InventoryCountItem
	for rows.Next() {
		var it entity.InventoryCountItem
		if err := rows.Scan(
			&it.ID, &it.CountID, &it.ProductID, &it.ProductName, &it.Unit,
			&it.CountedQty, &it.SystemQty, &it.Diff, &it.Status, &it.Message, &it.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory count item: %w", err)
		}
		out = append(out, &it)
	}
	return out, rows.Err()
}
