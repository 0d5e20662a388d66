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

var _ repository.LabelRepository = (*LabelRepo)(nil)
var _ repository.OrderLabelLinkRepository = (*OrderLabelLinkRepo)(nil)

const labelColumns = `id, establishment_id, product_id, product_name, code, qty, used_qty, unit,
	status, order_id, notes, created_by, created_at, updated_at`

// LabelRepo implementação do porto LabelRepository sobre PostgreSQL.
type LabelRepo struct {
	q Querier
}

// NewLabelRepository constrói o adaptador de etiquetas. Passar pool ou tx (Querier).
func NewLabelRepository(q Querier) *LabelRepo {
	return &LabelRepo{q: q}
}

// Create persiste uma nova etiqueta. Código é único por estabelecimento.
func (r *LabelRepo) Create(label *entity.InventoryLabel) error {
	query := `
		INSERT INTO inventory_labels (id, establishment_id, product_id, product_name, code, qty, used_qty, unit, status, order_id, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		label.ID, label.EstablishmentID, label.ProductID, label.ProductName, label.Code,
		label.Qty, label.UsedQty, label.Unit, label.Status, label.OrderID, label.Notes,
		label.CreatedBy, label.CreatedAt, label.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert label: %w", err)
	}
	return nil
}

// GetByID obtém uma etiqueta por ID.
func (r *LabelRepo) GetByID(id string) (*entity.InventoryLabel, error) {
	query := `SELECT ` + labelColumns + ` FROM inventory_labels WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByCode obtém uma etiqueta por código dentro do estabelecimento.
func (r *LabelRepo) GetByCode(establishmentID, code string) (*entity.InventoryLabel, error) {
	query := `SELECT ` + labelColumns + ` FROM inventory_labels WHERE establishment_id = $1 AND code = $2`
	return r.scanOne(query, establishmentID, code)
}

// GetByCodeForUpdate obtém a etiqueta bloqueando a linha (FOR UPDATE) para o
// protocolo de consumo na separação.
func (r *LabelRepo) GetByCodeForUpdate(establishmentID, code string) (*entity.InventoryLabel, error) {
	query := `SELECT ` + labelColumns + ` FROM inventory_labels WHERE establishment_id = $1 AND code = $2 FOR UPDATE`
	return r.scanOne(query, establishmentID, code)
}

func (r *LabelRepo) scanOne(query string, args ...any) (*entity.InventoryLabel, error) {
	var l entity.InventoryLabel
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&l.ID, &l.EstablishmentID, &l.ProductID, &l.ProductName, &l.Code, &l.Qty, &l.UsedQty,
		&l.Unit, &l.Status, &l.OrderID, &l.Notes, &l.CreatedBy, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get label: %w", err)
	}
	return &l, nil
}

// Update grava saldo consumido, status, vínculo de pedido e notas da etiqueta.
func (r *LabelRepo) Update(label *entity.InventoryLabel) error {
	query := `
		UPDATE inventory_labels SET used_qty = $2, status = $3, order_id = $4, notes = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		label.ID, label.UsedQty, label.Status, label.OrderID, label.Notes, label.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update label: %w", err)
	}
	return nil
}

// ListByEstablishment lista etiquetas do estabelecimento, opcionalmente por
// status, mais recentes primeiro.
func (r *LabelRepo) ListByEstablishment(establishmentID, status string, limit, offset int) ([]*entity.InventoryLabel, error) {
	query := `SELECT ` + labelColumns + `
		FROM inventory_labels
		WHERE establishment_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, establishmentID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list labels: %w", err)
	}
	defer rows.Close()

	var out []*entity.InventoryLabel
	for rows.Next() {
		var l entity.InventoryLabel
		if err := rows.Scan(
			&l.ID, &l.EstablishmentID, &l.ProductID, &l.ProductName, &l.Code, &l.Qty, &l.UsedQty,
			&l.Unit, &l.Status, &l.OrderID, &l.Notes, &l.CreatedBy, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan label: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}

// OrderLabelLinkRepo persiste os vínculos pedido × etiqueta gerados no consumo.
type OrderLabelLinkRepo struct {
	q Querier
}

// NewOrderLabelLinkRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewOrderLabelLinkRepository(q Querier) *OrderLabelLinkRepo {
	return &OrderLabelLinkRepo{q: q}
}

// Create insere um vínculo de consumo.
func (r *OrderLabelLinkRepo) Create(link *entity.OrderLabelLink) error {
	query := `
		INSERT INTO order_label_links (id, order_id, label_id, order_item_id, quantity, unit, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		link.ID, link.OrderID, link.LabelID, link.OrderItemID,
		link.Quantity, link.Unit, link.CreatedBy, link.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order label link: %w", err)
	}
	return nil
}

// ListByOrder devolve os vínculos do pedido em ordem cronológica.
func (r *OrderLabelLinkRepo) ListByOrder(orderID string) ([]*entity.OrderLabelLink, error) {
	query := `
		SELECT id, order_id, label_id, order_item_id, quantity, unit, created_by, created_at
		FROM order_label_links WHERE order_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order label links: %w", err)
	}
	defer rows.Close()

	var out []*entity.OrderLabelLink
	for rows.Next() {
		var l entity.OrderLabelLink
		if err := rows.Scan(
			&l.ID, &l.OrderID, &l.LabelID, &l.OrderItemID, &l.Quantity, &l.Unit, &l.CreatedBy, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order label link: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}
