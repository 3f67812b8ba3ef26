// Package finance contient les cas d'usage du reporting financier PDG :
// les quatre rapports (overview, sales, royalties, partner_performance)
// et leur export (PDF, XLSX, XML).
//
// Toutes les fonctions sont des calculs purs sur les lignes retournées par
// FinanceRepository : pas de cache, pas d'état partagé entre requêtes, chaque
// appel requête la base à neuf.
package finance

import (
	"github.com/obame-dev/editions-api/internal/domain/repository"
)

// Bornes des classements.
const (
	topWorksOverview  = 5
	topWorksSales     = 10
	recentOrdersLimit = 10
	recentRoyalties   = 10
	trendMonths       = 6
)

// Valeur de repli des relations absentes, telle qu'affichée par le dashboard.
const fallbackNA = "N/A"

// UseCase orchestre les consultations et applique les règles d'agrégation.
type UseCase struct {
	repo      repository.FinanceRepository
	exporters map[string]Exporter
}

// New construit le cas d'usage. exporters peut être nil si l'export n'est pas
// exposé (tests).
func New(repo repository.FinanceRepository, exporters map[string]Exporter) *UseCase {
	return &UseCase{repo: repo, exporters: exporters}
}

// strOr déréférence p ou retourne fallback si nil / vide.
func strOr(p *string, fallback string) string {
	if p != nil && *p != "" {
		return *p
	}
	return fallback
}
