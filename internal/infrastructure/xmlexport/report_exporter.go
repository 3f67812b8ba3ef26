// Package xmlexport rend les rapports financiers en XML (etree).
package xmlexport

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/obame-dev/editions-api/internal/application/finance"
)

var _ finance.Exporter = (*ReportExporter)(nil)

// ReportExporter implémente finance.Exporter au format XML.
type ReportExporter struct{}

func NewReportExporter() *ReportExporter { return &ReportExporter{} }

func (e *ReportExporter) ContentType() string { return "application/xml" }
func (e *ReportExporter) Extension() string   { return "xml" }

// Render sérialise le document :
//
//	<rapport type="..." genereLe="...">
//	  <periode debut="..." fin="..."/>
//	  <indicateurs><indicateur libelle="...">valeur</indicateur>...</indicateurs>
//	  <tableaux><tableau nom="..."><ligne><champ nom="...">valeur</champ>...</ligne>...</tableau></tableaux>
//	</rapport>
func (e *ReportExporter) Render(doc *finance.ReportDocument) ([]byte, error) {
	d := etree.NewDocument()
	d.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := d.CreateElement("rapport")
	root.CreateAttr("type", doc.ReportType)
	root.CreateAttr("titre", doc.Title)
	root.CreateAttr("genereLe", doc.GeneratedAt.Format("2006-01-02T15:04:05"))

	periode := root.CreateElement("periode")
	periode.CreateAttr("debut", doc.Period.StartDate)
	periode.CreateAttr("fin", doc.Period.EndDate)

	indicateurs := root.CreateElement("indicateurs")
	for _, entry := range doc.Summary {
		ind := indicateurs.CreateElement("indicateur")
		ind.CreateAttr("libelle", entry.Label)
		ind.SetText(stringify(entry.Value))
	}

	tableaux := root.CreateElement("tableaux")
	for _, table := range doc.Tables {
		t := tableaux.CreateElement("tableau")
		t.CreateAttr("nom", table.Name)
		for _, cells := range table.Rows {
			ligne := t.CreateElement("ligne")
			for i, v := range cells {
				champ := ligne.CreateElement("champ")
				if i < len(table.Headers) {
					champ.CreateAttr("nom", table.Headers[i])
				}
				champ.SetText(stringify(v))
			}
		}
	}

	d.Indent(2)
	out, err := d.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml : sérialisation : %w", err)
	}
	return out, nil
}

func stringify(v any) string {
	if d, ok := v.(decimal.Decimal); ok {
		return d.StringFixed(2)
	}
	return fmt.Sprint(v)
}
