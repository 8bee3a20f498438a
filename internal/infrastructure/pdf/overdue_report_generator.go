// Package pdf implementa la exportación en PDF del reporte de mantenimientos
// vencidos del dashboard.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total de bombas vencidas / instituciones          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Institución | Bombas con mantenimiento vencido  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: criterio de vencimiento + solicitante              │
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

	"github.com/SantosRojas/inventory-api/internal/application/dashboard"
	"github.com/SantosRojas/inventory-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

var _ dashboard.OverdueReportGenerator = (*OverdueReportGenerator)(nil)

// OverdueReportGenerator implementa dashboard.OverdueReportGenerator usando
// Maroto v2.
type OverdueReportGenerator struct{}

// NewOverdueReportGenerator construye el generador.
func NewOverdueReportGenerator() *OverdueReportGenerator { return &OverdueReportGenerator{} }

// GenerateOverdueReport genera el PDF del resumen y devuelve sus bytes.
func (g *OverdueReportGenerator) GenerateOverdueReport(
	_ context.Context,
	summary dto.OverdueMaintenanceSummaryDTO,
	requestedBy string,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Mantenimientos Vencidos", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(summary.Institutions) {
		m.AddRows(r)
	}
	if len(summary.Institutions) == 0 {
		m.AddRows(emptyRow())
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(requestedBy)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título del reporte (izq) y fecha de generación (der).
func headerRow(generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("REPORTE DE MANTENIMIENTOS VENCIDOS", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New("Inventario de bombas de infusión", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado:", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorGray, Top: 2,
			}),
			text.New(generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 8,
			}),
		),
	)
}

// summaryRow: totales agregados del reporte.
func summaryRow(summary dto.OverdueMaintenanceSummaryDTO) core.Row {
	return row.New(14).Add(
		col.New(6).Add(
			text.New("Bombas con mantenimiento vencido", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%d", summary.TotalOverduePumps), props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorAlert, Top: 6,
			}),
		),
		col.New(6).Add(
			text.New("Instituciones afectadas", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%d", len(summary.Institutions)), props.Text{
				Style: fontstyle.Bold, Size: 14, Top: 6,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de instituciones.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Institución", 8, align.Left),
		h("Bombas vencidas", 3, align.Right),
	)
}

// tableRows: una fila por institución, en el orden del reporte.
func tableRows(institutions []dto.OverdueInstitutionDTO) []core.Row {
	result := make([]core.Row, 0, len(institutions))
	for i, inst := range institutions {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", i+1),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(8).Add(text.New(
				inst.InstitutionName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				fmt.Sprintf("%d", inst.OverdueMaintenanceCount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func emptyRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("No hay bombas con mantenimiento vencido.", props.Text{
			Size: 9, Align: align.Center, Color: colorGray, Top: 3,
		}),
	))
}

// footerRows: criterio de vencimiento y solicitante.
func footerRows(requestedBy string) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New(
				"Criterio: bombas cuyo último mantenimiento fue hace más de 2 años "+
					"o que no registran mantenimiento.",
				props.Text{Size: 7, Color: colorGray, Top: 2},
			),
		)),
	}
	if requestedBy != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("Solicitado por: "+requestedBy, props.Text{
				Size: 7, Color: colorGray, Top: 1,
			}),
		)))
	}
	return rows
}
