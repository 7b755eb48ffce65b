// Package pdf implementa la generación del reporte de movimientos de una obra.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la obra  │  Fecha de generación          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Ítem | Tipo | Cantidad | Motivo | Usuario    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total de movimientos, entradas y salidas           │
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

	"github.com/pedrolucasmota/obralog-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 194, Green: 65, Blue: 12}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 22, Green: 130, Blue: 93}
	colorRed     = &props.Color{Red: 185, Green: 28, Blue: 28}
)

// MarotoMovementsReport implementa report.MovementsPDFGenerator usando Maroto v2.
type MarotoMovementsReport struct{}

// NewMarotoMovementsReport construye el generador.
func NewMarotoMovementsReport() *MarotoMovementsReport { return &MarotoMovementsReport{} }

// GenerateMovementsPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoMovementsReport) GenerateMovementsPDF(
	_ context.Context,
	site *entity.ConstructionSite,
	movements []*entity.SiteMovement,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de movimientos - "+site.Name, true).
		WithAuthor("ObraLog", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(site, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, mov := range movements {
		m.AddRows(movementRow(mov))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(summaryRow(movements))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la obra (izq) y fecha de generación (der).
func headerRow(site *entity.ConstructionSite, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(site.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Movimientos de inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	return row.New(7).Add(
		col.New(2).Add(text.New("Fecha", header)),
		col.New(3).Add(text.New("Ítem", header)),
		col.New(1).Add(text.New("Tipo", header)),
		col.New(2).Add(text.New("Cantidad", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Right,
		})),
		col.New(2).Add(text.New("Motivo", header)),
		col.New(2).Add(text.New("Usuario", header)),
	)
}

func movementRow(mov *entity.SiteMovement) core.Row {
	typeColor := colorGreen
	if mov.Type == entity.MovementTypeOUT {
		typeColor = colorRed
	}
	cell := props.Text{Size: 8, Top: 1}
	return row.New(6).Add(
		col.New(2).Add(text.New(mov.Date.Format("02/01/2006 15:04"), cell)),
		col.New(3).Add(text.New(mov.ItemName, cell)),
		col.New(1).Add(text.New(mov.Type, props.Text{
			Size: 8, Top: 1, Style: fontstyle.Bold, Color: typeColor,
		})),
		col.New(2).Add(text.New(mov.Quantity.String()+" "+mov.ItemUnit, props.Text{
			Size: 8, Top: 1, Align: align.Right,
		})),
		col.New(2).Add(text.New(mov.Reason, cell)),
		col.New(2).Add(text.New(mov.UserName, cell)),
	)
}

func summaryRow(movements []*entity.SiteMovement) core.Row {
	var ins, outs int
	for _, m := range movements {
		if m.Type == entity.MovementTypeIN {
			ins++
		} else {
			outs++
		}
	}
	summary := fmt.Sprintf("%d movimientos: %d entradas, %d salidas", len(movements), ins, outs)
	return row.New(8).Add(
		col.New(12).Add(text.New(summary, props.Text{
			Size: 8, Top: 2, Color: colorGray, Align: align.Right,
		})),
	)
}
