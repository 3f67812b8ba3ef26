package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale vente directe (point de vente), indépendante du circuit de commande.
// Immuable une fois créée.
type Sale struct {
	ID        string
	WorkID    string
	Quantity  int
	Amount    decimal.Decimal
	CreatedAt time.Time
}
