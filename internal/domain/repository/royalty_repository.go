package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/obame-dev/editions-api/internal/domain/entity"
)

// WorkRevenue CA livré d'une œuvre avec ses bénéficiaires potentiels.
type WorkRevenue struct {
	WorkID       string
	AuthorID     *string
	ConcepteurID *string
	Revenue      decimal.Decimal
}

// RoyaltyRepository accès aux droits d'auteur.
type RoyaltyRepository interface {
	// CreateBatch insère plusieurs droits calculés d'un coup.
	CreateBatch(ctx context.Context, royalties []*entity.Royalty) error
	List(ctx context.Context, start, end *time.Time, onlyUnpaid bool) ([]entity.Royalty, error)
	// MarkPaid passe les droits indiqués à l'état payé. Idempotent.
	MarkPaid(ctx context.Context, ids []string) error
	// DeliveredRevenueByWork CA livré par œuvre sur la période, pour le calcul
	// des droits : somme prix × quantité des lignes de commandes DELIVERED.
	DeliveredRevenueByWork(ctx context.Context, start, end *time.Time) ([]WorkRevenue, error)
}
