// Package excel rend les rapports financiers en classeur XLSX (excelize).
package excel

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/obame-dev/editions-api/internal/application/finance"
)

var _ finance.Exporter = (*ReportExporter)(nil)

// ReportExporter implémente finance.Exporter au format XLSX : une feuille
// d'indicateurs puis une feuille par tableau du rapport.
type ReportExporter struct{}

func NewReportExporter() *ReportExporter { return &ReportExporter{} }

func (e *ReportExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
func (e *ReportExporter) Extension() string { return "xlsx" }

// Render génère le classeur et retourne ses bytes.
func (e *ReportExporter) Render(doc *finance.ReportDocument) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Synthèse"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("excel : renommer la feuille : %w", err)
	}

	f.SetCellValue(summarySheet, "A1", doc.Title)
	f.SetCellValue(summarySheet, "A2", "Du")
	f.SetCellValue(summarySheet, "B2", doc.Period.StartDate)
	f.SetCellValue(summarySheet, "A3", "Au")
	f.SetCellValue(summarySheet, "B3", doc.Period.EndDate)
	f.SetCellValue(summarySheet, "A4", "Généré le")
	f.SetCellValue(summarySheet, "B4", doc.GeneratedAt.Format("02/01/2006 15:04"))

	for i, entry := range doc.Summary {
		rowNo := i + 6
		f.SetCellValue(summarySheet, "A"+fmt.Sprint(rowNo), entry.Label)
		setCell(f, summarySheet, "B"+fmt.Sprint(rowNo), entry.Value)
	}

	for _, table := range doc.Tables {
		sheet := sheetName(table.Name)
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("excel : feuille %q : %w", sheet, err)
		}
		for colNo, h := range table.Headers {
			cell, _ := excelize.CoordinatesToCellName(colNo+1, 1)
			f.SetCellValue(sheet, cell, h)
		}
		for rowNo, cells := range table.Rows {
			for colNo, v := range cells {
				cell, _ := excelize.CoordinatesToCellName(colNo+1, rowNo+2)
				setCell(f, sheet, cell, v)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel : écriture du classeur : %w", err)
	}
	return buf.Bytes(), nil
}

// setCell écrit une cellule en conservant le type : les montants deviennent
// des nombres Excel, pas des libellés.
func setCell(f *excelize.File, sheet, cell string, v any) {
	if d, ok := v.(decimal.Decimal); ok {
		f.SetCellValue(sheet, cell, d.InexactFloat64())
		return
	}
	f.SetCellValue(sheet, cell, v)
}

// sheetName tronque à 31 caractères, la limite des noms de feuille Excel.
func sheetName(name string) string {
	runes := []rune(name)
	if len(runes) <= 31 {
		return name
	}
	return string(runes[:31])
}
