package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/obame-dev/editions-api/internal/application/dto"
)

// RoyaltiesReport construit le rapport des droits d'auteur de la période.
// Invariant par bénéficiaire : total = payé + en attente.
func (uc *UseCase) RoyaltiesReport(ctx context.Context, period dto.PeriodDTO, start, end *time.Time) (*dto.RoyaltiesReportDTO, error) {
	rows, err := uc.repo.RoyaltiesInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("droits de la période : %w", err)
	}

	out := &dto.RoyaltiesReportDTO{
		Period:            period,
		TotalRoyalties:    decimal.Zero,
		TotalPending:      decimal.Zero,
		RoyaltiesByAuthor: map[string]dto.AuthorRoyaltyDTO{},
		RecentRoyalties:   []dto.RoyaltyDetailDTO{},
		PendingPayments:   []dto.PendingRoyaltyDTO{},
	}

	for _, r := range rows {
		out.TotalRoyalties = out.TotalRoyalties.Add(r.Amount)

		bucket, ok := out.RoyaltiesByAuthor[r.UserID]
		if !ok {
			bucket = dto.AuthorRoyaltyDTO{
				Author:  strOr(r.UserName, fallbackNA),
				Total:   decimal.Zero,
				Paid:    decimal.Zero,
				Pending: decimal.Zero,
			}
		}
		bucket.Total = bucket.Total.Add(r.Amount)
		if r.Paid {
			bucket.Paid = bucket.Paid.Add(r.Amount)
		} else {
			bucket.Pending = bucket.Pending.Add(r.Amount)
			out.TotalPending = out.TotalPending.Add(r.Amount)

			// Liste complète des impayés, non plafonnée.
			out.PendingPayments = append(out.PendingPayments, dto.PendingRoyaltyDTO{
				ID:     r.ID,
				Amount: r.Amount,
				Work: dto.PendingWorkDTO{
					ID:    r.WorkID,
					Title: r.WorkTitle,
				},
				Author: dto.PendingAuthorDTO{
					ID:   r.UserID,
					Name: strOr(r.UserName, fallbackNA),
				},
				CreatedAt: r.CreatedAt,
			})
		}
		out.RoyaltiesByAuthor[r.UserID] = bucket

		// Lignes déjà triées par createdAt décroissant.
		if len(out.RecentRoyalties) < recentRoyalties {
			out.RecentRoyalties = append(out.RecentRoyalties, dto.RoyaltyDetailDTO{
				ID:     r.ID,
				Amount: r.Amount,
				Paid:   r.Paid,
				Work: dto.RoyaltyWorkDTO{
					ID:         r.WorkID,
					Title:      r.WorkTitle,
					Discipline: strOr(r.DisciplineName, fallbackNA),
					Author:     strOr(r.AuthorName, fallbackNA),
					Concepteur: strOr(r.ConcepteurName, fallbackNA),
				},
				User: dto.RoyaltyUserDTO{
					ID:   r.UserID,
					Name: strOr(r.UserName, fallbackNA),
				},
				CreatedAt: r.CreatedAt,
			})
		}
	}

	return out, nil
}
