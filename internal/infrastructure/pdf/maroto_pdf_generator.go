// Package pdf genera el resumen de indicadores de ventas de un establecimiento en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Establecimiento      │  Período + fecha de emisión  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Indicador | Valor                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESTAQUES: producto más vendido / método preferido          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Vendas-api/internal/application/dto"
	"github.com/jhoicas/Vendas-api/internal/application/report"
	"github.com/jhoicas/Vendas-api/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ report.SummaryRenderer = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa report.SummaryRenderer usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateSummaryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateSummaryPDF(_ context.Context, in report.SummaryDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumo de vendas", true).
		WithAuthor(in.EstablishmentName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(in))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(kpiHeaderRow())
	for _, r := range kpiRows(in.Info) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(highlightRows(in.Info)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: establecimiento (izq) y período + emisión (der).
func headerRow(in report.SummaryDocument) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(in.EstablishmentName, "Estabelecimento"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Resumo de vendas", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PERÍODO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(in.Period, "Todo o período"), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
			text.New("Emitido em: "+in.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func kpiHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Indicador", 8, align.Left),
		h("Valor", 4, align.Right),
	)
}

// kpiRows: una fila por indicador.
func kpiRows(info dto.OrdersInfoResponse) []core.Row {
	items := []struct{ label, value string }{
		{"Número de vendas", strconv.Itoa(info.OrdersCount)},
		{"Produtos cadastrados", strconv.Itoa(info.ProductsCount)},
		{"Produtos vendidos", strconv.Itoa(info.ProductsSold)},
		{"Valor total vendido", money.FormatBRL(info.TotalSales)},
		{"Custo total", money.FormatBRL(info.TotalCost)},
		{"Lucro total", money.FormatBRL(info.TotalProfit)},
	}
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(8).Add(text.New(it.label, props.Text{Size: 9, Align: align.Left, Top: 1, Left: 1})),
			col.New(4).Add(text.New(it.value, props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// highlightRows: producto más vendido y método de pago preferido, cuando existen.
func highlightRows(info dto.OrdersInfoResponse) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("DESTAQUES", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
		)),
	}
	rows = append(rows,
		highlight("Produto mais vendido", info.HighestSellingProduct, "unidades"),
		highlight("Método de pagamento preferido", info.PreferredPaymentMethod, "vendas"),
	)
	return rows
}

func highlight(label string, nc *dto.NamedCount, unit string) core.Row {
	value := "-"
	if nc != nil {
		value = fmt.Sprintf("%s (%d %s)", nonEmpty(nc.Name, nc.ID), nc.Count, unit)
	}
	return row.New(7).Add(
		col.New(6).Add(text.New(label+":", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1, Left: 1})),
		col.New(6).Add(text.New(value, props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
