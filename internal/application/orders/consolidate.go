package orders

import (
	"github.com/shopspring/decimal"

	"github.com/cozinhapro/cozinha-api/internal/application/dto"
	"github.com/cozinhapro/cozinha-api/internal/domain/entity"
	"github.com/cozinhapro/cozinha-api/pkg/normalize"
)

// consolidatedItem é um produto+unidade com as quantidades somadas.
type consolidatedItem struct {
	ProductName    string // primeiro nome digitado, preservado para exibição
	NormalizedName string
	Unit           string
	Quantity       decimal.Decimal
}

// consolidateRequests agrupa itens digitados por produto+unidade normalizados,
// somando quantidades. Protege contra linhas duplicadas de submissões
// repetidas do formulário. A ordem de primeira aparição é preservada.
func consolidateRequests(items []dto.LineItemRequest) []consolidatedItem {
	index := map[string]int{}
	var out []consolidatedItem
	for _, it := range items {
		key := normalize.Key(it.ProductName, it.Unit)
		if i, ok := index[key]; ok {
			out[i].Quantity = out[i].Quantity.Add(it.Quantity)
			continue
		}
		index[key] = len(out)
		out = append(out, consolidatedItem{
			ProductName:    it.ProductName,
			NormalizedName: normalize.Name(it.ProductName),
			Unit:           normalize.Unit(it.Unit),
			Quantity:       it.Quantity,
		})
	}
	return out
}

// consolidateLines idem, sobre line items já persistidos (usado na aceitação).
func consolidateLines(lines []*entity.OrderLineItem) []consolidatedItem {
	reqs := make([]dto.LineItemRequest, 0, len(lines))
	for _, l := range lines {
		reqs = append(reqs, dto.LineItemRequest{ProductName: l.ProductName, Quantity: l.Quantity, Unit: l.Unit})
	}
	return consolidateRequests(reqs)
}
