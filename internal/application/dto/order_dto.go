package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItemRequest item digitado na criação do pedido.
type LineItemRequest struct {
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
}

// CreateOrderRequest criação de pedido com itens de texto livre.
type CreateOrderRequest struct {
	CustomerName string            `json:"customer_name"`
	Notes        string            `json:"notes"`
	Items        []LineItemRequest `json:"items"`
}

// AdvanceOrderRequest o cliente propõe o próximo status da tabela de
// adjacência; o servidor revalida de forma independente.
type AdvanceOrderRequest struct {
	ToStatus string `json:"to_status"`
	Note     string `json:"note"`
}

// CancelOrderRequest motivo obrigatório e não vazio.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// ReopenOrderRequest nota opcional.
type ReopenOrderRequest struct {
	Note string `json:"note"`
}

// OrderResponse projeção do pedido para a API.
type OrderResponse struct {
	ID           string     `json:"id"`
	Number       int64      `json:"number"`
	Status       string     `json:"status"`
	CustomerName string     `json:"customer_name,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	AcceptedAt   *time.Time `json:"accepted_at,omitempty"`
	CanceledAt   *time.Time `json:"canceled_at,omitempty"`
	CancelReason *string    `json:"cancel_reason,omitempty"`
}

// OrderItemResponse item de produção rastreado.
type OrderItemResponse struct {
	ID          string          `json:"id"`
	ProductName string          `json:"product_name"`
	Unit        string          `json:"unit"`
	Quantity    decimal.Decimal `json:"quantity"`
	MissingQty  decimal.Decimal `json:"missing_qty"`
	Status      string          `json:"status"`
	StartedAt   *time.Time      `json:"started_at,omitempty"`
	FinishedAt  *time.Time      `json:"finished_at,omitempty"`
}

// TimelineEventResponse evento da linha do tempo do pedido.
type TimelineEventResponse struct {
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	Label      string    `json:"label,omitempty"`
	Note       string    `json:"note,omitempty"`
	ActorID    string    `json:"actor_id"`
	ActorRole  string    `json:"actor_role"`
	CreatedAt  time.Time `json:"created_at"`
}
