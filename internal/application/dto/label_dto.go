package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLabelRequest criação de etiqueta de estoque. Notes carrega o payload
// original de criação (datas de manipulação/validade, lote, etc.).
type CreateLabelRequest struct {
	ProductID string          `json:"product_id"`
	Code      string          `json:"code"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      string          `json:"unit"`
	Notes     string          `json:"notes"`
}

// ConsumeLabelRequest consumo de etiqueta contra um pedido (separação).
// RawCode é o texto livre lido do QR; Quantity vazio consome o saldo restante.
type ConsumeLabelRequest struct {
	RawCode     string           `json:"raw_code"`
	OrderID     string           `json:"order_id"`
	OrderItemID string           `json:"order_item_id,omitempty"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
}

// ConsumeLabelResponse resultado da separação.
type ConsumeLabelResponse struct {
	LabelID     string          `json:"label_id"`
	Code        string          `json:"code"`
	Consumed    decimal.Decimal `json:"consumed"`
	Remaining   decimal.Decimal `json:"remaining"`
	LabelStatus string          `json:"label_status"`
	OrderItemID *string         `json:"order_item_id,omitempty"`
}

// LabelResponse projeção da etiqueta para a API.
type LabelResponse struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UsedQty     decimal.Decimal `json:"used_qty"`
	Unit        string          `json:"unit"`
	Status      string          `json:"status"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
