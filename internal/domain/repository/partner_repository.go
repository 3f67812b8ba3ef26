package repository

import (
	"context"

	"github.com/obame-dev/editions-api/internal/domain/entity"
)

// PartnerWithUser partenaire avec le statut de l'utilisateur lié.
type PartnerWithUser struct {
	entity.Partner
	UserStatus *string
}

// PartnerRepository accès aux partenaires revendeurs.
type PartnerRepository interface {
	Create(ctx context.Context, p *entity.Partner) error
	GetByID(ctx context.Context, id string) (*PartnerWithUser, error)
	List(ctx context.Context) ([]PartnerWithUser, error)
	// UpdateUserStatus change le statut de l'utilisateur lié au partenaire
	// (c'est de lui que dérive l'activité du partenaire).
	UpdateUserStatus(ctx context.Context, partnerID, status string) error
}
