package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de etiqueta de estoque.
// "available" é alias legado ainda presente em registros antigos; tratar
// como equivalente a disponivel na resolução por código.
const (
	LabelStatusDisponivel  = "disponivel"
	LabelStatusSeparada    = "separada"
	LabelStatusUsada       = "usada"
	LabelStatusCancelada   = "cancelada"
	LabelStatusLegacyAlias = "available"
)

// InventoryLabel é uma unidade física rastreável de estoque com código único
// (impresso também como QR). Pode ser consumida parcialmente por vários
// pedidos; invariante: 0 <= UsedQty <= Qty, e o status vira "usada" somente
// quando UsedQty == Qty.
type InventoryLabel struct {
	ID              string
	EstablishmentID string
	ProductID       string
	ProductName     string
	Code            string
	Qty             decimal.Decimal
	UsedQty         decimal.Decimal
	Unit            string
	Status          string
	OrderID         *string // último pedido que consumiu (vínculo informativo)
	Notes           string  // payload original da criação: manipulação, validade, lote...
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Available devolve o saldo ainda não consumido da etiqueta.
func (l *InventoryLabel) Available() decimal.Decimal {
	return l.Qty.Sub(l.UsedQty)
}

// Consumable informa se a etiqueta aceita consumo (status disponível ou alias legado).
func (l *InventoryLabel) Consumable() bool {
	return l.Status == LabelStatusDisponivel || l.Status == LabelStatusLegacyAlias
}
