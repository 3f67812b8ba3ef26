package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/obame-dev/editions-api/internal/application/dto"
	"github.com/obame-dev/editions-api/internal/domain"
	"github.com/obame-dev/editions-api/internal/domain/entity"
	"github.com/obame-dev/editions-api/internal/domain/repository"
)

// Statut affiché pour un partenaire sans utilisateur lié.
const partnerStatusUnknown = "UNKNOWN"

// PartnerUseCase gestion des partenaires revendeurs.
type PartnerUseCase struct {
	partners repository.PartnerRepository
}

func NewPartnerUseCase(partners repository.PartnerRepository) *PartnerUseCase {
	return &PartnerUseCase{partners: partners}
}

// Create enregistre un partenaire.
func (uc *PartnerUseCase) Create(ctx context.Context, req dto.CreatePartnerRequest) (*dto.PartnerResponse, error) {
	p := &entity.Partner{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Type:      req.Type,
		UserID:    req.UserID,
		CreatedAt: time.Now(),
	}
	if err := uc.partners.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("création du partenaire : %w", err)
	}
	return uc.Get(ctx, p.ID)
}

// Get retourne un partenaire avec son statut dérivé.
func (uc *PartnerUseCase) Get(ctx context.Context, id string) (*dto.PartnerResponse, error) {
	p, err := uc.partners.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lecture du partenaire : %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("partenaire %s : %w", id, domain.ErrNotFound)
	}
	resp := partnerResponse(p)
	return &resp, nil
}

// List liste tous les partenaires.
func (uc *PartnerUseCase) List(ctx context.Context) ([]dto.PartnerResponse, error) {
	rows, err := uc.partners.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing des partenaires : %w", err)
	}
	out := make([]dto.PartnerResponse, 0, len(rows))
	for i := range rows {
		out = append(out, partnerResponse(&rows[i]))
	}
	return out, nil
}

// UpdateStatus change le statut de l'utilisateur lié au partenaire.
func (uc *PartnerUseCase) UpdateStatus(ctx context.Context, id string, req dto.UpdatePartnerRequest) (*dto.PartnerResponse, error) {
	p, err := uc.partners.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lecture du partenaire : %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("partenaire %s : %w", id, domain.ErrNotFound)
	}
	if p.UserID == nil {
		return nil, fmt.Errorf("partenaire sans utilisateur lié : %w", domain.ErrConflict)
	}
	if err := uc.partners.UpdateUserStatus(ctx, id, req.Status); err != nil {
		return nil, fmt.Errorf("mise à jour du statut : %w", err)
	}
	return uc.Get(ctx, id)
}

func partnerResponse(p *repository.PartnerWithUser) dto.PartnerResponse {
	status := partnerStatusUnknown
	if p.UserStatus != nil && *p.UserStatus != "" {
		status = *p.UserStatus
	}
	return dto.PartnerResponse{
		ID:         p.ID,
		Name:       p.Name,
		Type:       p.Type,
		UserStatus: status,
	}
}
