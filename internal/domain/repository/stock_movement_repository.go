package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cozinhapro/cozinha-api/internal/domain/entity"
)

// StockMovementRepository define a porta do razão de estoque (append-only).
// O saldo nunca é um contador gravado: Balance soma os movimentos
// (a view current_stock no banco materializa a mesma agregação para leitura).
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// ExistsByLabelAndType verifica idempotência da criação de etiqueta:
	// no máximo um LABEL_IN por etiqueta, tolerando retries do cliente.
	ExistsByLabelAndType(labelID, movementType string) (bool, error)
	Balance(establishmentID, productID, unit string) (decimal.Decimal, error)
	ListByProduct(establishmentID, productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
}
