package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statuts de publication d'une œuvre.
const (
	WorkStatusDraft     = "DRAFT"
	WorkStatusPublished = "PUBLISHED"
	WorkStatusArchived  = "ARCHIVED"
)

// Work représente une œuvre du catalogue (livre).
// Le chiffre d'affaires et les ventes lui sont attribués.
type Work struct {
	ID           string
	Title        string
	ISBN         string
	Price        decimal.Decimal
	DisciplineID string
	AuthorID     *string // auteur rattaché, optionnel
	ConcepteurID *string // concepteur à l'origine du projet, optionnel
	Stock        int
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
