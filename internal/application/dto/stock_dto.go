package dto

import "github.com/shopspring/decimal"

// CountEntryRequest uma tupla (produto, unidade, quantidade contada).
type CountEntryRequest struct {
	ProductName string          `json:"product_name"`
	Unit        string          `json:"unit"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// RunCountRequest sessão de contagem de estoque.
type RunCountRequest struct {
	Note    string              `json:"note"`
	Entries []CountEntryRequest `json:"entries"`
}

// CountItemResult resultado individual de um item da contagem; falhas
// parciais não abortam o lote.
type CountItemResult struct {
	ProductName string          `json:"product_name"`
	Unit        string          `json:"unit"`
	CountedQty  decimal.Decimal `json:"counted_qty"`
	SystemQty   decimal.Decimal `json:"system_qty"`
	Diff        decimal.Decimal `json:"diff"`
	Status      string          `json:"status"` // ok | warning | not_found
	Message     string          `json:"message,omitempty"`
}

// RunCountResponse resultado da sessão de contagem.
type RunCountResponse struct {
	CountID      string            `json:"count_id"`
	ItemCount    int               `json:"item_count"`
	ProductCount int               `json:"product_count"`
	Results      []CountItemResult `json:"results"`
}

// BalanceResponse saldo calculado do razão para produto+unidade.
type BalanceResponse struct {
	ProductID string          `json:"product_id"`
	Unit      string          `json:"unit"`
	Balance   decimal.Decimal `json:"balance"`
}
