package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order é um pedido de compra escopado a um estabelecimento.
// O status só muda pelas operações do ciclo de vida; o pedido nunca é apagado.
type Order struct {
	ID              string
	EstablishmentID string
	Number          int64 // número sequencial legível por humanos
	Status          string
	CustomerName    string
	Notes           string
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Campos de auditoria por transição.
	AcceptedBy   *string
	AcceptedAt   *time.Time
	CanceledBy   *string
	CanceledAt   *time.Time
	CancelReason *string
	ReopenedBy   *string
	ReopenedAt   *time.Time
}

// OrderLineItem é um item solicitado no pedido, gravado na criação como texto
// livre (ainda não validado contra o catálogo). Unidade normalizada em maiúsculas.
type OrderLineItem struct {
	ID          string
	OrderID     string
	ProductName string
	Quantity    decimal.Decimal
	Unit        string
	CreatedAt   time.Time
}
