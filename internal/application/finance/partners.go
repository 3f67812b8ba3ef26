package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/obame-dev/editions-api/internal/application/dto"
	"github.com/obame-dev/editions-api/internal/domain/entity"
	"github.com/obame-dev/editions-api/internal/domain/repository"
)

// Statut affiché quand un partenaire n'a pas d'utilisateur lié.
const partnerStatusUnknown = "UNKNOWN"

// PartnerPerformance construit le rapport de performance des partenaires.
// Le roster complet est retourné : un partenaire sans commande éligible
// apparaît avec des statistiques à zéro. Seules comptent les commandes
// engagées (cf. OrderRow.CountsForPartnerPerformance).
func (uc *UseCase) PartnerPerformance(ctx context.Context, period dto.PeriodDTO, start, end *time.Time) (*dto.PartnerPerformanceDTO, error) {
	ordersCh := make(chan []repository.OrderRow, 1)
	rosterCh := make(chan []repository.PartnerRow, 1)
	errCh := make(chan error, 2)

	go func() {
		rows, err := uc.repo.PartnerOrdersInRange(ctx, start, end)
		if err != nil {
			errCh <- fmt.Errorf("commandes partenaires : %w", err)
			return
		}
		ordersCh <- rows
	}()
	go func() {
		rows, err := uc.repo.Partners(ctx)
		if err != nil {
			errCh <- fmt.Errorf("roster des partenaires : %w", err)
			return
		}
		rosterCh <- rows
	}()

	var (
		orders []repository.OrderRow
		roster []repository.PartnerRow
	)
	for i := 0; i < 2; i++ {
		select {
		case orders = <-ordersCh:
		case roster = <-rosterCh:
		case err := <-errCh:
			return nil, err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	out := &dto.PartnerPerformanceDTO{
		Period:       period,
		TotalRevenue: decimal.Zero,
		Partners:     make([]dto.PartnerStatsDTO, 0, len(roster)),
	}

	// Le roster pilote : index par partenaire, dans l'ordre du roster.
	index := make(map[string]int, len(roster))
	for _, p := range roster {
		index[p.ID] = len(out.Partners)
		out.Partners = append(out.Partners, dto.PartnerStatsDTO{
			ID:            p.ID,
			Name:          p.Name,
			Type:          p.Type,
			TotalRevenue:  decimal.Zero,
			AvgOrderValue: decimal.Zero,
			UserStatus:    strOr(p.UserStatus, partnerStatusUnknown),
		})
		if p.UserStatus != nil && *p.UserStatus == entity.UserStatusActive {
			out.ActivePartners++
		}
	}

	for i := range orders {
		o := &orders[i]
		if !o.CountsForPartnerPerformance() {
			continue
		}
		pos, ok := index[*o.PartnerID]
		if !ok {
			// Commande orpheline (partenaire supprimé) : hors roster, ignorée.
			continue
		}
		stats := &out.Partners[pos]
		stats.OrdersCount++
		stats.TotalRevenue = stats.TotalRevenue.Add(o.ComputedTotal())
		stats.TotalItems += o.ItemCount()
		out.TotalRevenue = out.TotalRevenue.Add(o.ComputedTotal())
	}

	for i := range out.Partners {
		if out.Partners[i].OrdersCount > 0 {
			n := decimal.NewFromInt(int64(out.Partners[i].OrdersCount))
			out.Partners[i].AvgOrderValue = out.Partners[i].TotalRevenue.Div(n).Round(2)
		}
	}

	return out, nil
}
