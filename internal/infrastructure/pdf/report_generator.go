// Package pdf genera la representación imprimible del reporte mensual de
// proveedores con Maroto v2.
//
// Layout de la página A4:
//
//	┌──────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte mensual de proveedores + periodo        │
//	│  ──────────────────────────────────────────────────────  │
//	│  TABLA: Código | Artículo | Esperado | Contado | Diff    │
//	│  ──────────────────────────────────────────────────────  │
//	│  PIE: total de artículos y discrepancias                 │
//	└──────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

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

	"github.com/jhoicas/stockflow-api/internal/application/closing"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
)

var _ closing.ReportRenderer = (*MarotoReportGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// MarotoReportGenerator implementa closing.ReportRenderer usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// Render genera el PDF del reporte mensual y devuelve sus bytes.
func (g *MarotoReportGenerator) Render(month string, rows []dto.MonthlyReportRow) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		Build()

	m := maroto.New(cfg)

	m.AddRows(
		row.New(12).Add(
			col.New(8).Add(
				text.New("Reporte mensual de proveedores", props.Text{
					Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
				}),
			),
			col.New(4).Add(
				text.New("Periodo: "+month, props.Text{
					Size: 11, Align: align.Right, Color: colorGray,
				}),
			),
		),
		row.New(2).Add(col.New(12).Add(line.New())),
	)

	m.AddRows(tableHeader())
	diffCount := 0
	for _, r := range rows {
		if r.HasDiff {
			diffCount++
		}
		m.AddRows(tableRow(r))
	}

	m.AddRows(
		row.New(2).Add(col.New(12).Add(line.New())),
		row.New(8).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("%d artículos, %d con discrepancia", len(rows), diffCount),
					props.Text{Size: 9, Align: align.Right, Color: colorGray},
				),
			),
		),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func tableHeader() core.Row {
	bold := props.Text{Size: 9, Style: fontstyle.Bold, Color: colorPrimary}
	boldRight := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right, Color: colorPrimary}
	return row.New(7).Add(
		col.New(2).Add(text.New("Código", bold)),
		col.New(4).Add(text.New("Artículo", bold)),
		col.New(2).Add(text.New("Esperado", boldRight)),
		col.New(2).Add(text.New("Contado", boldRight)),
		col.New(2).Add(text.New("Diferencia", boldRight)),
	)
}

func tableRow(r dto.MonthlyReportRow) core.Row {
	plain := props.Text{Size: 9}
	right := props.Text{Size: 9, Align: align.Right}
	diffProps := right
	if r.HasDiff {
		diffProps = props.Text{Size: 9, Align: align.Right, Style: fontstyle.Bold, Color: colorAlert}
	}
	name := r.ItemName
	if r.IsNewItem {
		name += " (nuevo)"
	}
	return row.New(6).Add(
		col.New(2).Add(text.New(r.ItemCode, plain)),
		col.New(4).Add(text.New(name, plain)),
		col.New(2).Add(text.New(fmt.Sprintf("%d", r.ExpectedQty), right)),
		col.New(2).Add(text.New(fmt.Sprintf("%d", r.ActualQty), right)),
		col.New(2).Add(text.New(fmt.Sprintf("%+d", r.Diff), diffProps)),
	)
}
