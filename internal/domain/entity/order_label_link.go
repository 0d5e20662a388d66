package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLabelLink registra um consumo de etiqueta contra um pedido
// (pedido × etiqueta × quantidade usada × unidade). O vínculo com um item
// específico é informativo: a separação prossegue mesmo sem match de produto.
type OrderLabelLink struct {
	ID          string
	OrderID     string
	LabelID     string
	OrderItemID *string
	Quantity    decimal.Decimal
	Unit        string
	CreatedBy   string
	CreatedAt   time.Time
}
