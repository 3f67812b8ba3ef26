package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Royalty droit d'auteur : montant dû à un auteur ou concepteur pour une œuvre.
// Paid est un drapeau à deux états (payé / en attente), sans autre cycle de vie.
type Royalty struct {
	ID        string
	WorkID    string
	UserID    string
	Amount    decimal.Decimal
	Paid      bool
	CreatedAt time.Time
}
