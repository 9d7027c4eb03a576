// Package pdf implementa la generación del estado de cuenta de un socio
// usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del bar        │  Fecha de generación       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SOCIO: Nombre + N° socio + saldo actual                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Producto | Cant | P.Unit | Importe           │
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

	"github.com/jhoicas/Barra-api/internal/domain/entity"
	"github.com/jhoicas/Barra-api/internal/domain/repository"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// StatementGenerator implementa report.StatementPDFGenerator usando Maroto v2.
type StatementGenerator struct {
	barName string
}

// NewStatementGenerator construye el generador. barName encabeza el documento.
func NewStatementGenerator(barName string) *StatementGenerator {
	return &StatementGenerator{barName: barName}
}

// GenerateStatementPDF genera el PDF del estado de cuenta y devuelve sus bytes.
func (g *StatementGenerator) GenerateStatementPDF(
	_ context.Context,
	user *entity.User,
	rows []repository.TransactionRow,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de cuenta", true).
		WithAuthor(g.barName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.barName, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(memberRow(user))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(rows) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del bar (izq) y fecha de generación (der).
func headerRow(barName string, generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(barName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Estado de cuenta", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
		),
	)
}

// memberRow: datos del socio y su saldo actual.
func memberRow(user *entity.User) core.Row {
	balanceColor := colorPrimary
	if user.Balance.IsNegative() {
		balanceColor = colorRed
	}
	return row.New(14).Add(
		col.New(8).Add(
			text.New("SOCIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s  (N° %s)", user.Name, user.MemberNo), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
		),
		col.New(4).Add(
			text.New("Saldo actual", props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
			text.New(user.Balance.StringFixed(2)+" €", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
				Color: balanceColor,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 3, align.Left),
		h("Producto", 4, align.Left),
		h("Cant.", 1, align.Center),
		h("P.Unit.", 2, align.Right),
		h("Importe", 2, align.Right),
	)
}

// tableDetailRows: una fila por línea del ledger, las más recientes primero.
func tableDetailRows(rows []repository.TransactionRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, t := range rows {
		amountColor := colorPrimary
		if t.Amount.IsNegative() {
			amountColor = colorRed
		}
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(
				t.CreatedAt.Format("02/01/2006 15:04"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				t.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", t.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				t.UnitPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				t.Amount.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: amountColor},
			)),
		))
	}
	return result
}
