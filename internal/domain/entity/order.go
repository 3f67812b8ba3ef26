package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statuts du cycle de vie d'une commande.
const (
	OrderStatusPending    = "PENDING"
	OrderStatusValidated  = "VALIDATED"
	OrderStatusProcessing = "PROCESSING"
	OrderStatusShipped    = "SHIPPED"
	OrderStatusDelivered  = "DELIVERED"
	OrderStatusCancelled  = "CANCELLED"
)

// Order représente une commande client ou partenaire.
// Total peut être zéro (non renseigné) ; dans ce cas le montant est dérivé
// des lignes. Voir ComputedTotal.
type Order struct {
	ID               string
	UserID           *string
	PartnerID        *string
	Status           string
	Total            decimal.Decimal // 0 = non renseigné
	PaymentReference *string
	CreatedAt        time.Time
	Items            []OrderItem
}

// OrderItem ligne de commande : une œuvre, une quantité, le prix au moment de l'achat.
type OrderItem struct {
	ID       string
	OrderID  string
	WorkID   string
	Quantity int
	Price    decimal.Decimal
}

// ComputedTotal applique la règle de montant utilisée dans tous les rapports :
// le champ total explicite s'il est strictement positif, sinon la somme
// prix × quantité des lignes.
func (o *Order) ComputedTotal() decimal.Decimal {
	if o.Total.IsPositive() {
		return o.Total
	}
	sum := decimal.Zero
	for _, it := range o.Items {
		sum = sum.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}

// CountsForPartnerPerformance indique si la commande entre dans le rapport de
// performance partenaires : rattachée à un partenaire ET engagée (statut
// VALIDATED/PROCESSING/SHIPPED/DELIVERED, ou PENDING déjà payée).
func (o *Order) CountsForPartnerPerformance() bool {
	if o.PartnerID == nil {
		return false
	}
	switch o.Status {
	case OrderStatusValidated, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered:
		return true
	case OrderStatusPending:
		return o.PaymentReference != nil && *o.PaymentReference != ""
	}
	return false
}

// ValidOrderTransition vérifie une transition de statut. CANCELLED et
// DELIVERED sont terminaux.
func ValidOrderTransition(from, to string) bool {
	if from == OrderStatusCancelled || from == OrderStatusDelivered {
		return false
	}
	switch to {
	case OrderStatusCancelled:
		return true
	case OrderStatusValidated:
		return from == OrderStatusPending
	case OrderStatusProcessing:
		return from == OrderStatusValidated
	case OrderStatusShipped:
		return from == OrderStatusProcessing
	case OrderStatusDelivered:
		return from == OrderStatusShipped
	}
	return false
}
