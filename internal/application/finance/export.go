package finance

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/obame-dev/editions-api/internal/application/dto"
	"github.com/obame-dev/editions-api/internal/domain"
)

// Types de rapport acceptés par GET /api/finance et son export.
const (
	ReportOverview           = "overview"
	ReportSales              = "sales"
	ReportRoyalties          = "royalties"
	ReportPartnerPerformance = "partner_performance"
)

// ReportDocument forme aplatie d'un rapport, commune aux trois formats
// d'export : un titre, des indicateurs clés et des tableaux.
type ReportDocument struct {
	Title       string
	ReportType  string
	Period      dto.PeriodDTO
	GeneratedAt time.Time
	Summary     []SummaryEntry
	Tables      []ReportTable
}

// SummaryEntry indicateur clé du rapport. Value est une string, un int ou un
// decimal.Decimal ; chaque exporteur applique son propre formatage.
type SummaryEntry struct {
	Label string
	Value any
}

// ReportTable tableau d'un rapport exporté.
type ReportTable struct {
	Name    string
	Headers []string
	Rows    [][]any
}

// Exporter rend un document de rapport dans un format de fichier.
type Exporter interface {
	// ContentType type MIME du fichier produit.
	ContentType() string
	// Extension extension de fichier, sans point.
	Extension() string
	// Render sérialise le document.
	Render(doc *ReportDocument) ([]byte, error)
}

// ExportResult fichier d'export prêt à servir.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// Export construit le rapport demandé puis le rend dans le format voulu.
// Retourne domain.ErrInvalidInput si le type ou le format est inconnu.
func (uc *UseCase) Export(ctx context.Context, reportType, format string, period dto.PeriodDTO, start, end *time.Time) (*ExportResult, error) {
	exp, ok := uc.exporters[format]
	if !ok {
		return nil, fmt.Errorf("format %q : %w", format, domain.ErrInvalidInput)
	}

	var (
		doc *ReportDocument
		err error
	)
	switch reportType {
	case ReportOverview:
		var report *dto.OverviewDTO
		if report, err = uc.Overview(ctx, start, end); err == nil {
			doc = overviewDocument(report, period)
		}
	case ReportSales:
		var report *dto.SalesReportDTO
		if report, err = uc.SalesReport(ctx, period, start, end); err == nil {
			doc = salesDocument(report)
		}
	case ReportRoyalties:
		var report *dto.RoyaltiesReportDTO
		if report, err = uc.RoyaltiesReport(ctx, period, start, end); err == nil {
			doc = royaltiesDocument(report)
		}
	case ReportPartnerPerformance:
		var report *dto.PartnerPerformanceDTO
		if report, err = uc.PartnerPerformance(ctx, period, start, end); err == nil {
			doc = partnersDocument(report)
		}
	default:
		return nil, fmt.Errorf("type %q : %w", reportType, domain.ErrInvalidInput)
	}
	if err != nil {
		return nil, err
	}

	content, err := exp.Render(doc)
	if err != nil {
		return nil, fmt.Errorf("rendu %s : %w", format, err)
	}

	return &ExportResult{
		Content:     content,
		ContentType: exp.ContentType(),
		Filename:    fmt.Sprintf("rapport-%s-%s.%s", reportType, doc.GeneratedAt.Format("2006-01-02"), exp.Extension()),
	}, nil
}

func overviewDocument(r *dto.OverviewDTO, period dto.PeriodDTO) *ReportDocument {
	doc := &ReportDocument{
		Title:       "Vue d'ensemble financière",
		ReportType:  ReportOverview,
		Period:      period,
		GeneratedAt: time.Now(),
		Summary: []SummaryEntry{
			{Label: "Chiffre d'affaires total", Value: r.TotalRevenue},
			{Label: "Commandes", Value: r.TotalOrders},
			{Label: "Œuvres au catalogue", Value: r.TotalWorks},
			{Label: "Partenaires", Value: r.TotalPartners},
			{Label: "Panier moyen", Value: r.AverageOrderValue},
			{Label: "Articles vendus", Value: r.TotalItemsSold},
		},
	}

	top := ReportTable{
		Name:    "Meilleures œuvres",
		Headers: []string{"Œuvre", "Quantité", "CA"},
	}
	for _, w := range r.TopWorks {
		top.Rows = append(top.Rows, []any{w.Title, w.Quantity, w.Revenue})
	}

	trends := ReportTable{
		Name:    "Tendance mensuelle",
		Headers: []string{"Mois", "CA ventes directes", "Commandes"},
	}
	for _, t := range r.MonthlyTrends {
		trends.Rows = append(trends.Rows, []any{t.Month, t.Revenue, t.Orders})
	}

	disciplines := ReportTable{
		Name:    "CA par discipline (ventes directes)",
		Headers: []string{"Discipline", "CA"},
	}
	for _, name := range sortedKeys(r.DisciplineRevenue) {
		disciplines.Rows = append(disciplines.Rows, []any{name, r.DisciplineRevenue[name]})
	}

	recent := ReportTable{
		Name:    "Commandes récentes",
		Headers: []string{"Commande", "Client", "Statut", "Articles", "Total"},
	}
	for _, o := range r.RecentOrders {
		recent.Rows = append(recent.Rows, []any{o.ID, o.CustomerName, o.Status, o.ItemCount, o.Total})
	}

	doc.Tables = []ReportTable{top, trends, disciplines, recent}
	return doc
}

func salesDocument(r *dto.SalesReportDTO) *ReportDocument {
	doc := &ReportDocument{
		Title:       "Rapport des ventes",
		ReportType:  ReportSales,
		Period:      r.Period,
		GeneratedAt: time.Now(),
		Summary: []SummaryEntry{
			{Label: "Chiffre d'affaires total", Value: r.TotalRevenue},
			{Label: "Commandes", Value: r.TotalOrders},
			{Label: "Articles vendus", Value: r.TotalItemsSold},
			{Label: "Panier moyen", Value: r.AverageOrderValue},
		},
	}

	disciplines := ReportTable{
		Name:    "Ventes par discipline",
		Headers: []string{"Discipline", "CA"},
	}
	for _, name := range sortedKeys(r.SalesByDiscipline) {
		disciplines.Rows = append(disciplines.Rows, []any{name, r.SalesByDiscipline[name]})
	}

	top := ReportTable{
		Name:    "Meilleures ventes",
		Headers: []string{"Œuvre", "Quantité", "CA"},
	}
	for _, w := range r.TopSellingWorks {
		top.Rows = append(top.Rows, []any{w.Title, w.Quantity, w.Revenue})
	}

	orders := ReportTable{
		Name:    "Commandes",
		Headers: []string{"Commande", "Date", "Client", "Statut", "Articles", "Total"},
	}
	for _, o := range r.Orders {
		orders.Rows = append(orders.Rows, []any{
			o.ID, o.CreatedAt.Format("02/01/2006"), o.CustomerName, o.Status, o.ItemCount, o.Total,
		})
	}

	doc.Tables = []ReportTable{disciplines, top, orders}
	return doc
}

func royaltiesDocument(r *dto.RoyaltiesReportDTO) *ReportDocument {
	doc := &ReportDocument{
		Title:       "Rapport des droits d'auteur",
		ReportType:  ReportRoyalties,
		Period:      r.Period,
		GeneratedAt: time.Now(),
		Summary: []SummaryEntry{
			{Label: "Droits totaux", Value: r.TotalRoyalties},
			{Label: "Droits en attente", Value: r.TotalPending},
		},
	}

	byAuthor := ReportTable{
		Name:    "Droits par bénéficiaire",
		Headers: []string{"Bénéficiaire", "Total", "Payé", "En attente"},
	}
	for _, id := range sortedKeys(r.RoyaltiesByAuthor) {
		b := r.RoyaltiesByAuthor[id]
		byAuthor.Rows = append(byAuthor.Rows, []any{b.Author, b.Total, b.Paid, b.Pending})
	}

	pending := ReportTable{
		Name:    "Paiements en attente",
		Headers: []string{"Œuvre", "Bénéficiaire", "Montant", "Date"},
	}
	for _, p := range r.PendingPayments {
		pending.Rows = append(pending.Rows, []any{
			p.Work.Title, p.Author.Name, p.Amount, p.CreatedAt.Format("02/01/2006"),
		})
	}

	doc.Tables = []ReportTable{byAuthor, pending}
	return doc
}

func partnersDocument(r *dto.PartnerPerformanceDTO) *ReportDocument {
	doc := &ReportDocument{
		Title:       "Performance des partenaires",
		ReportType:  ReportPartnerPerformance,
		Period:      r.Period,
		GeneratedAt: time.Now(),
		Summary: []SummaryEntry{
			{Label: "Partenaires actifs", Value: r.ActivePartners},
			{Label: "Chiffre d'affaires partenaires", Value: r.TotalRevenue},
		},
	}

	table := ReportTable{
		Name:    "Partenaires",
		Headers: []string{"Partenaire", "Type", "Statut", "Commandes", "Articles", "CA", "Panier moyen"},
	}
	for _, p := range r.Partners {
		table.Rows = append(table.Rows, []any{
			p.Name, p.Type, p.UserStatus, p.OrdersCount, p.TotalItems, p.TotalRevenue, p.AvgOrderValue,
		})
	}

	doc.Tables = []ReportTable{table}
	return doc
}

// sortedKeys clés triées pour un ordre d'export déterministe.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
