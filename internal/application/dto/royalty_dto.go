package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CalculateRoyaltiesRequest déclenche le calcul des droits sur une période.
// Rate est la part du CA livré reversée (ex : 0.10 pour 10 %).
type CalculateRoyaltiesRequest struct {
	StartDate string          `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string          `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Rate      decimal.Decimal `json:"rate" validate:"required"`
}

// PayRoyaltiesRequest passe des droits à l'état payé.
type PayRoyaltiesRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,uuid4"`
}

// RoyaltyResponse droit d'auteur persisté.
type RoyaltyResponse struct {
	ID        string          `json:"id"`
	WorkID    string          `json:"workId"`
	UserID    string          `json:"userId"`
	Amount    decimal.Decimal `json:"amount"`
	Paid      bool            `json:"paid"`
	CreatedAt time.Time       `json:"createdAt"`
}

// PartnerResponse partenaire avec son statut d'activité dérivé.
type PartnerResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	UserStatus string `json:"userStatus"`
}

// UpdatePartnerRequest mise à jour du statut d'un partenaire (via son
// utilisateur lié).
type UpdatePartnerRequest struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE INACTIVE SUSPENDED"`
}

// CreatePartnerRequest enregistrement d'un partenaire revendeur.
type CreatePartnerRequest struct {
	Name   string  `json:"name" validate:"required,min=2"`
	Type   string  `json:"type" validate:"required,oneof=LIBRAIRIE ECOLE DISTRIBUTEUR"`
	UserID *string `json:"userId" validate:"omitempty,uuid4"`
}
