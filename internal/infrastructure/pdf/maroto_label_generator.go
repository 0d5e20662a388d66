// Package pdf implementa a folha imprimível da etiqueta de estoque.
//
// Layout da página A6 (uma etiqueta por folha):
//
//	┌─────────────────────────────────┐
//	│  NOME DO ESTABELECIMENTO        │
//	│  ─────────────────────────────  │
//	│  PRODUTO (destaque)             │
//	│  Quantidade + Unidade           │
//	│  Notas (manipulação, validade)  │
//	│  ─────────────────────────────  │
//	│            [ QR ]               │
//	│       código da etiqueta        │
//	└─────────────────────────────────┘
package pdf

import (
	"context"
	"encoding/json"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/cozinhapro/cozinha-api/internal/application/labels"
	"github.com/cozinhapro/cozinha-api/internal/domain/entity"
)

var _ labels.PDFGenerator = (*MarotoLabelGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoLabelGenerator implementa labels.PDFGenerator usando Maroto v2.
type MarotoLabelGenerator struct{}

// NewMarotoLabelGenerator constrói o gerador.
func NewMarotoLabelGenerator() *MarotoLabelGenerator { return &MarotoLabelGenerator{} }

// GenerateLabelPDF gera o PDF da etiqueta e devolve seus bytes.
// O QR carrega o payload JSON {"lt": codigo}, o mesmo formato que o leitor
// da separação reconhece em primeiro lugar.
func (g *MarotoLabelGenerator) GenerateLabelPDF(
	_ context.Context,
	label *entity.InventoryLabel,
	establishment *entity.Establishment,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A6).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Etiqueta "+label.Code, true).
		WithAuthor(establishment.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New(establishment.Name, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Center, Color: colorPrimary, Top: 1,
		}),
	)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(row.New(12).Add(col.New(12).Add(
		text.New(label.ProductName, props.Text{
			Style: fontstyle.Bold, Size: 14, Align: align.Center, Top: 2,
		}),
	)))
	m.AddRows(row.New(7).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%s %s", label.Qty.String(), label.Unit), props.Text{
			Size: 11, Align: align.Center, Top: 1,
		}),
	)))
	if label.Notes != "" {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New(label.Notes, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
		)))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	m.AddRows(row.New(45).Add(col.New(12).Add(
		code.NewQr(qrPayload(label.Code), props.Rect{Percent: 90, Center: true}),
	)))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New(label.Code, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Center, Color: colorGray, Top: 1,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar etiqueta: %w", err)
	}
	return doc.GetBytes(), nil
}

func qrPayload(codeValue string) string {
	b, _ := json.Marshal(map[string]string{"lt": codeValue})
	return string(b)
}
