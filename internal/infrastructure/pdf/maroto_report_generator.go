// Package pdf implementa la generación del reporte imprimible de existencias.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Venus Inventory — Reporte de existencias │ Fecha    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Ítem | Presentación | Unidad | Stock        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: ítems listados                                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/venus-soft/venus-inventory-api/internal/application/ledger"
	"github.com/venus-soft/venus-inventory-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ledger.StockReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa ledger.StockReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateStockReport genera el PDF del inventario y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateStockReport(
	_ context.Context,
	generatedAt time.Time,
	items []*entity.Inventory,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de existencias", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, item := range items {
		m.AddRows(itemRow(item))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalRow(len(items)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar reporte de existencias: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(generatedAt time.Time) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("Venus Inventory — Reporte de existencias", props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary, Align: align.Left,
			}),
		),
		col.New(4).Add(
			text.New(generatedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 9, Color: colorGray, Align: align.Right, Top: 3,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Size: 9, Style: fontstyle.Bold, Color: colorPrimary}
	return row.New(7).Add(
		col.New(2).Add(text.New("Código", header)),
		col.New(4).Add(text.New("Ítem", header)),
		col.New(2).Add(text.New("Presentación", header)),
		col.New(2).Add(text.New("Unidad", header)),
		col.New(2).Add(text.New("Stock", props.Text{
			Size: 9, Style: fontstyle.Bold, Color: colorPrimary, Align: align.Right,
		})),
	)
}

func itemRow(item *entity.Inventory) core.Row {
	cell := props.Text{Size: 9}
	return row.New(6).Add(
		col.New(2).Add(text.New(item.FNo, cell)),
		col.New(4).Add(text.New(item.Name, cell)),
		col.New(2).Add(text.New(item.Pack, cell)),
		col.New(2).Add(text.New(item.Unit, cell)),
		col.New(2).Add(text.New(fmt.Sprintf("%d", item.CurrentStock), props.Text{
			Size: 9, Align: align.Right,
		})),
	)
}

func totalRow(count int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total de ítems: %d", count), props.Text{
				Size: 9, Style: fontstyle.Bold, Align: align.Right, Top: 2,
			}),
		),
	)
}
