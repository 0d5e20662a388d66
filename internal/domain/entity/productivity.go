package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductivityRecord é o registro de produtividade gravado quando um item de
// produção é finalizado. Efeito colateral best-effort: a falha é logada e não
// falha a transição de status do item.
type ProductivityRecord struct {
	ID              string
	EstablishmentID string
	OrderItemID     string
	CollaboratorID  string
	ProductName     string
	Quantity        decimal.Decimal
	DurationSeconds int64
	CreatedAt       time.Time
}
