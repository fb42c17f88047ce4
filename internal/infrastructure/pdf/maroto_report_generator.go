// Package pdf genera el reporte del resumen de conciliación de inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Resumen de conciliación + fecha de generación       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | Producto | Esp. | Esc. | Var. | Total | Esp.$   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: unidades esperadas / escaneadas / valor escaneado  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/recuento-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa recuento.ReportRenderer usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// RenderSummary genera el PDF del resumen y devuelve sus bytes. Un resumen
// vacío produce un reporte válido con la tabla sin filas.
func (g *MarotoReportGenerator) RenderSummary(items []dto.ScannedItem, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen de conciliación de inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, it := range items {
		m.AddRows(itemRow(it))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(items))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del reporte + fecha de generación.
func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("RESUMEN DE CONCILIACIÓN DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla, mismas siete columnas que la hoja de
// resultados del libro.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("ID", 2, align.Left),
		h("Producto", 3, align.Left),
		h("Esperado", 1, align.Center),
		h("Escaneado", 1, align.Center),
		h("Varianza", 1, align.Center),
		h("Total", 2, align.Right),
		h("Total esperado", 2, align.Right),
	)
}

// itemRow: una fila por registro del resumen.
func itemRow(it dto.ScannedItem) core.Row {
	cell := func(v string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(v, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		cell(it.ItemID, 2, align.Left),
		cell(it.ProductName, 3, align.Left),
		cell(strconv.Itoa(it.ExpectedQty), 1, align.Center),
		cell(strconv.Itoa(it.ScannedQty), 1, align.Center),
		cell(strconv.Itoa(it.Variance), 1, align.Center),
		cell("$"+it.TotalPrice.StringFixed(2), 2, align.Right),
		cell("$"+it.ExpectedTotalPrice.StringFixed(2), 2, align.Right),
	)
}

// totalsRow: agregados del inventario completo.
func totalsRow(items []dto.ScannedItem) core.Row {
	var expected, scanned int
	total := decimal.Zero
	for _, it := range items {
		expected += it.ExpectedQty
		scanned += it.ScannedQty
		total = total.Add(it.TotalPrice)
	}

	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf(
				"Artículos: %d   |   Unidades esperadas: %d   |   Unidades escaneadas: %d   |   Valor escaneado: $%s",
				len(items), expected, scanned, total.StringFixed(2),
			), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Right: 1,
			}),
		),
	)
}
