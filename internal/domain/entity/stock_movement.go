package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direções de movimento. A quantidade é sempre positiva; o sinal vem da direção.
const (
	DirectionIn  = "IN"
	DirectionOut = "OUT"
)

// Tipos de movimento do razão de estoque.
const (
	MovementTypeLabelIn  = "LABEL_IN"          // entrada pela criação de etiqueta
	MovementTypeOutOrder = "OUT_ORDER"         // consumo de etiqueta na separação de pedido
	MovementTypeAdjust   = "ajuste_inventario" // ajuste emitido por contagem de estoque
)

// StockMovement é uma linha append-only do razão de estoque. O saldo de um
// produto+unidade é sempre a soma assinada dos movimentos, nunca um contador
// mutável.
type StockMovement struct {
	ID              string
	EstablishmentID string
	ProductID       string
	Unit            string
	Quantity        decimal.Decimal // sempre positiva
	Direction       string          // IN | OUT
	Type            string
	LabelID         *string
	OrderID         *string
	CountID         *string
	Details         string
	CreatedBy       string
	CreatedAt       time.Time
}

// Signed devolve a contribuição assinada do movimento para o saldo.
func (m *StockMovement) Signed() decimal.Decimal {
	if m.Direction == DirectionOut {
		return m.Quantity.Neg()
	}
	return m.Quantity
}
