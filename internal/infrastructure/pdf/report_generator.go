// Package pdf rend les rapports financiers en PDF avec Maroto v2.
//
// Layout de la page A4 :
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER : Titre du rapport + période + date de génération   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INDICATEURS : libellé / valeur                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLEAUX : un bloc par tableau du rapport                  │
//	└─────────────────────────────────────────────────────────────┘
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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/obame-dev/editions-api/internal/application/finance"
)

var (
	colorPrimary = &props.Color{Red: 31, Green: 54, Blue: 97}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// printer fr-FR : séparateur de milliers insécable, virgule décimale.
var printer = message.NewPrinter(language.French)

var _ finance.Exporter = (*ReportGenerator)(nil)

// ReportGenerator implémente finance.Exporter au format PDF.
type ReportGenerator struct{}

func NewReportGenerator() *ReportGenerator { return &ReportGenerator{} }

func (g *ReportGenerator) ContentType() string { return "application/pdf" }
func (g *ReportGenerator) Extension() string   { return "pdf" }

// Render génère le PDF et retourne ses bytes.
func (g *ReportGenerator) Render(doc *finance.ReportDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRows(doc)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(doc)...)

	for _, table := range doc.Tables {
		m.AddRows(line.NewRow(2))
		m.AddRows(tableRows(table)...)
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf : génération du document : %w", err)
	}
	return out.GetBytes(), nil
}

func headerRows(doc *finance.ReportDocument) []core.Row {
	period := "Toute la période"
	if doc.Period.StartDate != "" || doc.Period.EndDate != "" {
		period = fmt.Sprintf("Du %s au %s", orDash(doc.Period.StartDate), orDash(doc.Period.EndDate))
	}
	return []core.Row{
		row.New(12).Add(
			col.New(8).Add(
				text.New(doc.Title, props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary}),
			),
			col.New(4).Add(
				text.New("Généré le "+doc.GeneratedAt.Format("02/01/2006"), props.Text{
					Size: 8, Align: align.Right, Color: colorGray,
				}),
			),
		),
		row.New(6).Add(
			col.New(12).Add(
				text.New(period, props.Text{Size: 9, Color: colorGray}),
			),
		),
	}
}

func summaryRows(doc *finance.ReportDocument) []core.Row {
	rows := make([]core.Row, 0, len(doc.Summary))
	for _, entry := range doc.Summary {
		rows = append(rows, row.New(6).Add(
			col.New(7).Add(text.New(entry.Label, props.Text{Size: 9})),
			col.New(5).Add(text.New(formatValue(entry.Value), props.Text{
				Size: 9, Align: align.Right, Style: fontstyle.Bold,
			})),
		))
	}
	return rows
}

func tableRows(table finance.ReportTable) []core.Row {
	width := 12 / len(table.Headers)
	rest := 12 - width*len(table.Headers)

	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New(table.Name, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary}),
		)),
	}

	header := row.New(5)
	for i, h := range table.Headers {
		w := width
		if i == 0 {
			w += rest
		}
		header.Add(col.New(w).Add(text.New(h, props.Text{Style: fontstyle.Bold, Size: 8})))
	}
	rows = append(rows, header)

	for _, cells := range table.Rows {
		r := row.New(5)
		for i, cell := range cells {
			w := width
			if i == 0 {
				w += rest
			}
			r.Add(col.New(w).Add(text.New(formatValue(cell), props.Text{Size: 8})))
		}
		rows = append(rows, r)
	}
	return rows
}

// formatValue formate une cellule : montants en fr-FR, le reste tel quel.
func formatValue(v any) string {
	switch x := v.(type) {
	case decimal.Decimal:
		return printer.Sprintf("%.2f", x.InexactFloat64())
	case int:
		return printer.Sprintf("%d", x)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
