package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Les quatre rapports financiers consommés par le dashboard PDG.
// Les noms de champs JSON sont le contrat avec le front : ne pas les changer.

// ── Rapport overview ──────────────────────────────────────────────────────────

// OverviewDTO vue d'ensemble financière.
//
// MethodologyNote signale au consommateur que DisciplineRevenue ne couvre que
// les ventes directes alors que TotalRevenue et TopWorks incluent aussi le CA
// des commandes livrées. Divergence héritée du système, exposée plutôt que
// corrigée silencieusement.
type OverviewDTO struct {
	TotalRevenue      decimal.Decimal            `json:"totalRevenue"`
	TotalOrders       int                        `json:"totalOrders"`
	TotalWorks        int                        `json:"totalWorks"`
	TotalPartners     int                        `json:"totalPartners"`
	AverageOrderValue decimal.Decimal            `json:"averageOrderValue"`
	TotalItemsSold    int                        `json:"totalItemsSold"`
	RecentOrders      []RecentOrderDTO           `json:"recentOrders"`
	TopWorks          []TopWorkDTO               `json:"topWorks"`
	MonthlyTrends     []MonthlyTrendDTO          `json:"monthlyTrends"`
	DisciplineRevenue map[string]decimal.Decimal `json:"disciplineRevenue"`
	MethodologyNote   string                     `json:"methodologyNote"`
}

// RecentOrderDTO commande récente annotée pour l'overview.
type RecentOrderDTO struct {
	ID           string          `json:"id"`
	Status       string          `json:"status"`
	Total        decimal.Decimal `json:"total"`
	ItemCount    int             `json:"itemCount"`
	CustomerName string          `json:"customerName"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// TopWorkDTO œuvre classée par CA combiné (ventes directes + commandes livrées).
type TopWorkDTO struct {
	WorkID   string          `json:"workId"`
	Title    string          `json:"title"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// MonthlyTrendDTO point de la tendance sur 6 mois glissants.
// Revenue = ventes directes uniquement ; Orders = toutes les commandes du mois.
type MonthlyTrendDTO struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}

// ── Rapport sales ─────────────────────────────────────────────────────────────

// SalesReportDTO rapport des ventes détaillé.
type SalesReportDTO struct {
	Period            PeriodDTO                  `json:"period"`
	TotalRevenue      decimal.Decimal            `json:"totalRevenue"`
	TotalOrders       int                        `json:"totalOrders"`
	TotalItemsSold    int                        `json:"totalItemsSold"`
	AverageOrderValue decimal.Decimal            `json:"averageOrderValue"`
	SalesByDiscipline map[string]decimal.Decimal `json:"salesByDiscipline"`
	TopSellingWorks   []TopWorkDTO               `json:"topSellingWorks"`
	Orders            []SalesOrderDTO            `json:"orders"`
}

// PartyDTO sous-objet client ou partenaire d'une commande, avec repli "N/A".
type PartyDTO struct {
	Name string `json:"name"`
}

// WorkRefDTO référence d'œuvre dans une ligne de commande, champs null-safe.
type WorkRefDTO struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Discipline string `json:"discipline"`
	Author     string `json:"author"`
}

// SalesOrderItemDTO ligne détaillée d'une commande du rapport des ventes.
type SalesOrderItemDTO struct {
	ID       string          `json:"id"`
	Work     WorkRefDTO      `json:"work"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// SalesOrderDTO commande détaillée du rapport des ventes.
// ItemsCount duplique ItemCount : alias conservé pour les anciens clients.
type SalesOrderDTO struct {
	ID           string              `json:"id"`
	Status       string              `json:"status"`
	Total        decimal.Decimal     `json:"total"`
	ItemCount    int                 `json:"itemCount"`
	ItemsCount   int                 `json:"itemsCount"`
	CustomerName string              `json:"customerName"`
	User         PartyDTO            `json:"user"`
	Partner      PartyDTO            `json:"partner"`
	Items        []SalesOrderItemDTO `json:"items"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// ── Rapport royalties ─────────────────────────────────────────────────────────

// RoyaltiesReportDTO rapport des droits d'auteur.
type RoyaltiesReportDTO struct {
	Period            PeriodDTO                   `json:"period"`
	TotalRoyalties    decimal.Decimal             `json:"totalRoyalties"`
	TotalPending      decimal.Decimal             `json:"totalPending"`
	RoyaltiesByAuthor map[string]AuthorRoyaltyDTO `json:"royaltiesByAuthor"`
	RecentRoyalties   []RoyaltyDetailDTO          `json:"recentRoyalties"`
	PendingPayments   []PendingRoyaltyDTO         `json:"pendingPayments"`
}

// AuthorRoyaltyDTO cumuls par bénéficiaire. Total == Paid + Pending.
type AuthorRoyaltyDTO struct {
	Author  string          `json:"author"`
	Total   decimal.Decimal `json:"total"`
	Paid    decimal.Decimal `json:"paid"`
	Pending decimal.Decimal `json:"pending"`
}

// RoyaltyWorkDTO œuvre d'un droit, relations null-safe.
type RoyaltyWorkDTO struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Discipline string `json:"discipline"`
	Author     string `json:"author"`
	Concepteur string `json:"concepteur"`
}

// RoyaltyUserDTO bénéficiaire d'un droit, imbriqué à côté de l'œuvre.
type RoyaltyUserDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RoyaltyDetailDTO droit récent avec ses relations.
type RoyaltyDetailDTO struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Paid      bool            `json:"paid"`
	Work      RoyaltyWorkDTO  `json:"work"`
	User      RoyaltyUserDTO  `json:"user"`
	CreatedAt time.Time       `json:"createdAt"`
}

// PendingWorkDTO projection réduite de l'œuvre d'un droit en attente.
type PendingWorkDTO struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// PendingAuthorDTO bénéficiaire d'un droit en attente.
type PendingAuthorDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PendingRoyaltyDTO droit non payé (liste complète, non plafonnée).
type PendingRoyaltyDTO struct {
	ID        string           `json:"id"`
	Amount    decimal.Decimal  `json:"amount"`
	Work      PendingWorkDTO   `json:"work"`
	Author    PendingAuthorDTO `json:"author"`
	CreatedAt time.Time        `json:"createdAt"`
}

// ── Rapport partner_performance ───────────────────────────────────────────────

// PartnerPerformanceDTO rapport de performance des partenaires.
// Partners contient tout le roster : un partenaire sans commande éligible
// apparaît avec des statistiques à zéro.
type PartnerPerformanceDTO struct {
	Period         PeriodDTO         `json:"period"`
	ActivePartners int               `json:"activePartners"`
	TotalRevenue   decimal.Decimal   `json:"totalRevenue"`
	Partners       []PartnerStatsDTO `json:"partners"`
}

// PartnerStatsDTO statistiques d'un partenaire sur la période.
type PartnerStatsDTO struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	OrdersCount   int             `json:"ordersCount"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalItems    int             `json:"totalItems"`
	AvgOrderValue decimal.Decimal `json:"avgOrderValue"`
	UserStatus    string          `json:"userStatus"`
}
