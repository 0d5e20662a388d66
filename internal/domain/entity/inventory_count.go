package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Resultado por item de uma contagem de estoque.
const (
	CountItemOK       = "ok"        // contado == saldo do sistema
	CountItemWarning  = "warning"   // divergência: movimento de ajuste emitido
	CountItemNotFound = "not_found" // produto não resolvido pelo nome
)

// InventoryCount é uma sessão pontual de reconciliação entre a contagem
// física e o saldo calculado do razão.
type InventoryCount struct {
	ID              string
	EstablishmentID string
	Note            string
	StartedAt       time.Time
	FinishedAt      *time.Time
	ItemCount       int
	ProductCount    int
	CreatedBy       string
}

// InventoryCountItem é um produto+unidade contado dentro de uma sessão,
// com o antes/depois capturado no momento da contagem.
type InventoryCountItem struct {
	ID          string
	CountID     string
	ProductID   *string
	ProductName string
	Unit        string
	CountedQty  decimal.Decimal
	SystemQty   decimal.Decimal
	Diff        decimal.Decimal
	Status      string // ok | warning | not_found
	Message     string
	CreatedAt   time.Time
}
