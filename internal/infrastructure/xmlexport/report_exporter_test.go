package xmlexport_test

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obame-dev/editions-api/internal/application/dto"
	"github.com/obame-dev/editions-api/internal/application/finance"
	"github.com/obame-dev/editions-api/internal/infrastructure/xmlexport"
)

func TestRender_StructureDuDocument(t *testing.T) {
	exp := xmlexport.NewReportExporter()
	doc := &finance.ReportDocument{
		Title:       "Rapport des ventes",
		ReportType:  finance.ReportSales,
		Period:      dto.PeriodDTO{StartDate: "2026-01-01", EndDate: "2026-01-31"},
		GeneratedAt: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
		Summary: []finance.SummaryEntry{
			{Label: "Chiffre d'affaires total", Value: decimal.RequireFromString("1234.5")},
			{Label: "Commandes", Value: 7},
		},
		Tables: []finance.ReportTable{
			{
				Name:    "Ventes par discipline",
				Headers: []string{"Discipline", "CA"},
				Rows: [][]any{
					{"Mathématiques", decimal.RequireFromString("1000")},
					{"Non spécifié", decimal.RequireFromString("234.5")},
				},
			},
		},
	}

	out, err := exp.Render(doc)
	require.NoError(t, err)

	parsed := etree.NewDocument()
	require.NoError(t, parsed.ReadFromBytes(out))

	root := parsed.SelectElement("rapport")
	require.NotNil(t, root)
	assert.Equal(t, "sales", root.SelectAttrValue("type", ""))
	assert.Equal(t, "Rapport des ventes", root.SelectAttrValue("titre", ""))

	periode := root.SelectElement("periode")
	require.NotNil(t, periode)
	assert.Equal(t, "2026-01-01", periode.SelectAttrValue("debut", ""))
	assert.Equal(t, "2026-01-31", periode.SelectAttrValue("fin", ""))

	indicateurs := root.SelectElement("indicateurs").SelectElements("indicateur")
	require.Len(t, indicateurs, 2)
	// Les montants sortent toujours avec deux décimales.
	assert.Equal(t, "1234.50", indicateurs[0].Text())
	assert.Equal(t, "7", indicateurs[1].Text())

	tableaux := root.SelectElement("tableaux").SelectElements("tableau")
	require.Len(t, tableaux, 1)
	lignes := tableaux[0].SelectElements("ligne")
	require.Len(t, lignes, 2)
	champs := lignes[0].SelectElements("champ")
	require.Len(t, champs, 2)
	assert.Equal(t, "Discipline", champs[0].SelectAttrValue("nom", ""))
	assert.Equal(t, "Mathématiques", champs[0].Text())
	assert.Equal(t, "1000.00", champs[1].Text())
}

func TestContentTypeEtExtension(t *testing.T) {
	exp := xmlexport.NewReportExporter()
	assert.Equal(t, "application/xml", exp.ContentType())
	assert.Equal(t, "xml", exp.Extension())
}
