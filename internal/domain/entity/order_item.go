package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de produção por item do pedido.
const (
	ItemStatusPending            = "pending"
	ItemStatusInProgress         = "in_progress"
	ItemStatusDone               = "done"
	ItemStatusNoProductionNeeded = "no_production_needed" // estoque cobria o pedido na aceitação
)

// OrderItem é o item rastreado de produção, derivado dos line items na
// aceitação: uma linha por produto distinto, com sub-status de produção.
// MissingQty = quantidade pedida menos saldo em estoque no momento da aceitação.
type OrderItem struct {
	ID             string
	OrderID        string
	ProductID      *string // nil quando o nome digitado não bate com o catálogo
	ProductName    string
	Unit           string
	Quantity       decimal.Decimal
	MissingQty     decimal.Decimal
	Status         string
	CollaboratorID *string
	StartedAt      *time.Time
	FinishedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ProductionSettled informa se o item não bloqueia mais a saída de em_preparo.
func (i *OrderItem) ProductionSettled() bool {
	return i.Status == ItemStatusDone || i.Status == ItemStatusNoProductionNeeded
}
