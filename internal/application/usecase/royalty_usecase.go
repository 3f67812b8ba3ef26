package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/obame-dev/editions-api/internal/application/dto"
	"github.com/obame-dev/editions-api/internal/application/finance"
	"github.com/obame-dev/editions-api/internal/domain"
	"github.com/obame-dev/editions-api/internal/domain/entity"
	"github.com/obame-dev/editions-api/internal/domain/repository"
)

var one = decimal.NewFromInt(1)

// RoyaltyUseCase calcul et paiement des droits d'auteur.
type RoyaltyUseCase struct {
	royalties repository.RoyaltyRepository
}

func NewRoyaltyUseCase(royalties repository.RoyaltyRepository) *RoyaltyUseCase {
	return &RoyaltyUseCase{royalties: royalties}
}

// Calculate génère les droits de la période : rate × CA livré de chaque œuvre,
// un droit par bénéficiaire (auteur et concepteur reçoivent chacun leur part).
// Les œuvres sans bénéficiaire sont ignorées.
func (uc *RoyaltyUseCase) Calculate(ctx context.Context, req dto.CalculateRoyaltiesRequest) ([]dto.RoyaltyResponse, error) {
	if !req.Rate.IsPositive() || req.Rate.GreaterThan(one) {
		return nil, fmt.Errorf("taux hors de ]0;1] : %w", domain.ErrInvalidInput)
	}
	start, end, err := finance.ParsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%s : %w", err, domain.ErrInvalidInput)
	}

	revenues, err := uc.royalties.DeliveredRevenueByWork(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("CA livré par œuvre : %w", err)
	}

	now := time.Now()
	batch := []*entity.Royalty{}
	for _, rev := range revenues {
		if rev.Revenue.IsZero() {
			continue
		}
		amount := rev.Revenue.Mul(req.Rate).Round(2)
		for _, beneficiary := range []*string{rev.AuthorID, rev.ConcepteurID} {
			if beneficiary == nil {
				continue
			}
			batch = append(batch, &entity.Royalty{
				ID:        uuid.NewString(),
				WorkID:    rev.WorkID,
				UserID:    *beneficiary,
				Amount:    amount,
				Paid:      false,
				CreatedAt: now,
			})
		}
	}

	if len(batch) > 0 {
		if err := uc.royalties.CreateBatch(ctx, batch); err != nil {
			return nil, fmt.Errorf("enregistrement des droits : %w", err)
		}
	}

	out := make([]dto.RoyaltyResponse, 0, len(batch))
	for _, r := range batch {
		out = append(out, royaltyResponse(r))
	}
	return out, nil
}

// Pay marque les droits indiqués comme payés. Idempotent.
func (uc *RoyaltyUseCase) Pay(ctx context.Context, req dto.PayRoyaltiesRequest) error {
	if err := uc.royalties.MarkPaid(ctx, req.IDs); err != nil {
		return fmt.Errorf("paiement des droits : %w", err)
	}
	return nil
}

// List liste les droits d'une période, payés inclus ou non.
func (uc *RoyaltyUseCase) List(ctx context.Context, start, end *time.Time, onlyUnpaid bool) ([]dto.RoyaltyResponse, error) {
	rows, err := uc.royalties.List(ctx, start, end, onlyUnpaid)
	if err != nil {
		return nil, fmt.Errorf("listing des droits : %w", err)
	}
	out := make([]dto.RoyaltyResponse, 0, len(rows))
	for i := range rows {
		out = append(out, royaltyResponse(&rows[i]))
	}
	return out, nil
}

func royaltyResponse(r *entity.Royalty) dto.RoyaltyResponse {
	return dto.RoyaltyResponse{
		ID:        r.ID,
		WorkID:    r.WorkID,
		UserID:    r.UserID,
		Amount:    r.Amount,
		Paid:      r.Paid,
		CreatedAt: r.CreatedAt,
	}
}
