package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SaleRow vente directe avec ses relations aplaties (œuvre, discipline, auteur).
// Produit par la DB ; le use case agrège.
type SaleRow struct {
	ID             string
	WorkID         string
	WorkTitle      string
	DisciplineName *string
	AuthorName     *string
	Quantity       int
	Amount         decimal.Decimal
	CreatedAt      time.Time
}

// OrderItemRow ligne de commande enrichie de l'œuvre référencée.
type OrderItemRow struct {
	ID             string
	WorkID         string
	WorkTitle      string
	DisciplineName *string
	AuthorName     *string
	Quantity       int
	Price          decimal.Decimal
}

// OrderRow commande avec ses lignes et les noms résolus du client/partenaire.
// Total vaut zéro quand la colonne est NULL (montant alors dérivé des lignes).
type OrderRow struct {
	ID                string
	Status            string
	Total             decimal.Decimal
	PaymentReference  *string
	UserName          *string
	PartnerID         *string
	PartnerName       *string
	PartnerUserStatus *string
	CreatedAt         time.Time
	Items             []OrderItemRow
}

// ComputedTotal même règle que entity.Order : total explicite si positif,
// sinon somme prix × quantité des lignes.
func (o *OrderRow) ComputedTotal() decimal.Decimal {
	if o.Total.IsPositive() {
		return o.Total
	}
	sum := decimal.Zero
	for _, it := range o.Items {
		sum = sum.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}

// ItemCount somme des quantités des lignes.
func (o *OrderRow) ItemCount() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}

// CountsForPartnerPerformance règle d'éligibilité du rapport partenaires :
// commande rattachée à un partenaire ET engagée (statut VALIDATED, PROCESSING,
// SHIPPED ou DELIVERED, ou PENDING avec référence de paiement).
func (o *OrderRow) CountsForPartnerPerformance() bool {
	if o.PartnerID == nil {
		return false
	}
	switch o.Status {
	case "VALIDATED", "PROCESSING", "SHIPPED", "DELIVERED":
		return true
	case "PENDING":
		return o.PaymentReference != nil && *o.PaymentReference != ""
	}
	return false
}

// RoyaltyRow droit d'auteur avec œuvre, discipline, auteur/concepteur et
// bénéficiaire aplatis. Tous les noms sont optionnels (relations absentes).
type RoyaltyRow struct {
	ID             string
	WorkID         string
	WorkTitle      string
	DisciplineName *string
	AuthorName     *string
	ConcepteurName *string
	UserID         string
	UserName       *string
	Amount         decimal.Decimal
	Paid           bool
	CreatedAt      time.Time
}

// PartnerRow partenaire avec le statut de son utilisateur lié (nil si aucun).
type PartnerRow struct {
	ID         string
	Name       string
	Type       string
	UserStatus *string
}

// FinanceRepository consultations en lecture seule qui alimentent les quatre
// rapports financiers. start/end nil = pas de borne. Les implémentations ne
// modifient jamais les données.
type FinanceRepository interface {
	// SalesInRange ventes directes de la période, avec œuvre/discipline/auteur.
	SalesInRange(ctx context.Context, start, end *time.Time) ([]SaleRow, error)

	// OrdersInRange commandes de la période, tous statuts, avec lignes et
	// relations, triées par createdAt décroissant.
	OrdersInRange(ctx context.Context, start, end *time.Time) ([]OrderRow, error)

	// PartnerOrdersInRange commandes rattachées à un partenaire (tous statuts ;
	// l'éligibilité fine est appliquée par le use case).
	PartnerOrdersInRange(ctx context.Context, start, end *time.Time) ([]OrderRow, error)

	// RoyaltiesInRange droits d'auteur de la période, createdAt décroissant.
	RoyaltiesInRange(ctx context.Context, start, end *time.Time) ([]RoyaltyRow, error)

	// Partners roster complet des partenaires, y compris sans commande.
	Partners(ctx context.Context) ([]PartnerRow, error)

	// CountWorks taille du catalogue (jamais filtrée par période).
	CountWorks(ctx context.Context) (int, error)

	// CountUsersByRole nombre d'utilisateurs d'un rôle donné.
	CountUsersByRole(ctx context.Context, role string) (int, error)

	// SumSalesAmount somme des montants de ventes directes entre deux bornes.
	SumSalesAmount(ctx context.Context, start, end time.Time) (decimal.Decimal, error)

	// CountOrdersBetween nombre de commandes créées entre deux bornes (tous statuts).
	CountOrdersBetween(ctx context.Context, start, end time.Time) (int, error)
}
