package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cozinhapro/cozinha-api/internal/domain/entity"
	"github.com/cozinhapro/cozinha-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementação do razão de estoque sobre PostgreSQL.
// Append-only: só Create e leituras.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository constrói o adaptador do razão. Passar pool ou tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create insere um movimento no razão.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, establishment_id, product_id, unit, quantity, direction, type, label_id, order_id, count_id, details, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.EstablishmentID, movement.ProductID, movement.Unit,
		movement.Quantity, movement.Direction, movement.Type,
		movement.LabelID, movement.OrderID, movement.CountID,
		movement.Details, movement.CreatedBy, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ExistsByLabelAndType verifica se já existe movimento daquele tipo para a
// etiqueta (idempotência do LABEL_IN).
func (r *StockMovementRepo) ExistsByLabelAndType(labelID, movementType string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM stock_movements WHERE label_id = $1 AND type = $2)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, labelID, movementType).Scan(&exists); err != nil {
		return false, fmt.Errorf("check movement exists: %w", err)
	}
	return exists, nil
}

// Balance soma os movimentos assinados do produto+unidade. O saldo nunca é um
// contador gravado; esta agregação é a fonte da verdade.
func (r *StockMovementRepo) Balance(establishmentID, productID, unit string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN direction = 'OUT' THEN -quantity ELSE quantity END), 0)
		FROM stock_movements
		WHERE establishment_id = $1 AND product_id = $2 AND unit = $3`
	var balance decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, establishmentID, productID, unit).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("stock balance: %w", err)
	}
	return balance, nil
}

// ListByProduct devolve o extrato do produto, com janela de tempo opcional,
// mais recentes primeiro.
func (r *StockMovementRepo) ListByProduct(establishmentID, productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, establishment_id, product_id, unit, quantity, direction, type, label_id, order_id, count_id, details, created_by, created_at
		FROM stock_movements
		WHERE establishment_id = $1 AND product_id = $2
			AND ($3::timestamptz IS NULL OR created_at >= $3)
			AND ($4::timestamptz IS NULL OR created_at <= $4)
		ORDER BY created_at DESC
		LIMIT $5 OFFSET $6`
	rows, err := r.q.Query(context.Background(), query, establishmentID, productID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()

	var out []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(
			&m.ID, &m.EstablishmentID, &m.ProductID, &m.Unit, &m.Quantity, &m.Direction, &m.Type,
			&m.LabelID, &m.OrderID, &m.CountID, &m.Details, &m.CreatedBy, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}
