package finance

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/obame-dev/editions-api/internal/application/dto"
	"github.com/obame-dev/editions-api/internal/domain/entity"
	"github.com/obame-dev/editions-api/internal/domain/repository"
)

// Note de méthodologie exposée dans l'overview : disciplineRevenue ne couvre
// que les ventes directes, contrairement à totalRevenue et topWorks.
const overviewMethodologyNote = "disciplineRevenue ne comptabilise que les ventes directes ; " +
	"totalRevenue et topWorks incluent également les commandes livrées."

// Libellé de discipline quand l'œuvre n'en a pas.
const disciplineUnspecified = "Non spécifié"

var frenchMonths = [...]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

func monthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", frenchMonths[t.Month()-1], t.Year())
}

// Overview construit la vue d'ensemble financière sur la période demandée.
// La tendance mensuelle ignore la période : toujours les 6 derniers mois
// calendaires, mois courant inclus.
func (uc *UseCase) Overview(ctx context.Context, start, end *time.Time) (*dto.OverviewDTO, error) {
	salesCh := make(chan []repository.SaleRow, 1)
	ordersCh := make(chan []repository.OrderRow, 1)
	worksCh := make(chan int, 1)
	partnersCh := make(chan int, 1)
	errCh := make(chan error, 4)

	go func() {
		rows, err := uc.repo.SalesInRange(ctx, start, end)
		if err != nil {
			errCh <- fmt.Errorf("ventes de la période : %w", err)
			return
		}
		salesCh <- rows
	}()
	go func() {
		rows, err := uc.repo.OrdersInRange(ctx, start, end)
		if err != nil {
			errCh <- fmt.Errorf("commandes de la période : %w", err)
			return
		}
		ordersCh <- rows
	}()
	go func() {
		n, err := uc.repo.CountWorks(ctx)
		if err != nil {
			errCh <- fmt.Errorf("comptage des œuvres : %w", err)
			return
		}
		worksCh <- n
	}()
	go func() {
		n, err := uc.repo.CountUsersByRole(ctx, entity.RolePartenaire)
		if err != nil {
			errCh <- fmt.Errorf("comptage des partenaires : %w", err)
			return
		}
		partnersCh <- n
	}()

	var (
		sales      []repository.SaleRow
		orders     []repository.OrderRow
		totalWorks int
		partners   int
	)
	for i := 0; i < 4; i++ {
		select {
		case sales = <-salesCh:
		case orders = <-ordersCh:
		case totalWorks = <-worksCh:
		case partners = <-partnersCh:
		case err := <-errCh:
			return nil, err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	out := &dto.OverviewDTO{
		TotalWorks:        totalWorks,
		TotalPartners:     partners,
		TotalOrders:       len(orders),
		AverageOrderValue: decimal.Zero,
		RecentOrders:      []dto.RecentOrderDTO{},
		MonthlyTrends:     []dto.MonthlyTrendDTO{},
		DisciplineRevenue: map[string]decimal.Decimal{},
		MethodologyNote:   overviewMethodologyNote,
	}

	// CA global : ventes directes + commandes livrées.
	revenue := decimal.Zero
	for _, s := range sales {
		revenue = revenue.Add(s.Amount)
	}
	ordersTotal := decimal.Zero
	for i := range orders {
		o := &orders[i]
		ordersTotal = ordersTotal.Add(o.ComputedTotal())
		out.TotalItemsSold += o.ItemCount()
		if o.Status == entity.OrderStatusDelivered {
			revenue = revenue.Add(o.ComputedTotal())
		}
	}
	out.TotalRevenue = revenue
	if len(orders) > 0 {
		out.AverageOrderValue = ordersTotal.Div(decimal.NewFromInt(int64(len(orders)))).Round(2)
	}

	// Commandes récentes : déjà triées par createdAt décroissant.
	for i := range orders {
		if len(out.RecentOrders) == recentOrdersLimit {
			break
		}
		o := &orders[i]
		name := strOr(o.UserName, strOr(o.PartnerName, fallbackNA))
		out.RecentOrders = append(out.RecentOrders, dto.RecentOrderDTO{
			ID:           o.ID,
			Status:       o.Status,
			Total:        o.ComputedTotal(),
			ItemCount:    o.ItemCount(),
			CustomerName: name,
			CreatedAt:    o.CreatedAt,
		})
	}

	// Top œuvres : CA combiné ventes directes + lignes des commandes livrées.
	deliveredItems := func(yield func(repository.OrderItemRow)) {
		for i := range orders {
			if orders[i].Status != entity.OrderStatusDelivered {
				continue
			}
			for _, it := range orders[i].Items {
				yield(it)
			}
		}
	}
	out.TopWorks = topWorks(sales, deliveredItems, topWorksOverview)

	// CA par discipline : ventes directes uniquement (cf. MethodologyNote).
	for _, s := range sales {
		key := strOr(s.DisciplineName, disciplineUnspecified)
		out.DisciplineRevenue[key] = out.DisciplineRevenue[key].Add(s.Amount)
	}

	trends, err := uc.monthlyTrends(ctx)
	if err != nil {
		return nil, err
	}
	out.MonthlyTrends = trends

	return out, nil
}

// monthlyTrends calcule la tendance des 6 derniers mois calendaires :
// CA des ventes directes et nombre de commandes, mois par mois.
func (uc *UseCase) monthlyTrends(ctx context.Context) ([]dto.MonthlyTrendDTO, error) {
	now := time.Now()
	loc := now.Location()
	trends := make([]dto.MonthlyTrendDTO, 0, trendMonths)

	for i := trendMonths - 1; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Millisecond)

		amount, err := uc.repo.SumSalesAmount(ctx, monthStart, monthEnd)
		if err != nil {
			return nil, fmt.Errorf("ventes du mois %s : %w", monthLabel(monthStart), err)
		}
		count, err := uc.repo.CountOrdersBetween(ctx, monthStart, monthEnd)
		if err != nil {
			return nil, fmt.Errorf("commandes du mois %s : %w", monthLabel(monthStart), err)
		}
		trends = append(trends, dto.MonthlyTrendDTO{
			Month:   monthLabel(monthStart),
			Revenue: amount,
			Orders:  count,
		})
	}
	return trends, nil
}

// topWorks cumule par œuvre le CA des ventes directes puis des lignes de
// commande fournies, et retourne les limit premières par CA décroissant.
// L'ordre d'insertion départage les égalités (tri stable).
func topWorks(sales []repository.SaleRow, items func(func(repository.OrderItemRow)), limit int) []dto.TopWorkDTO {
	type acc struct {
		title    string
		quantity int
		revenue  decimal.Decimal
	}
	byWork := map[string]*acc{}
	order := []string{}

	add := func(workID, title string, qty int, amount decimal.Decimal) {
		a, ok := byWork[workID]
		if !ok {
			a = &acc{title: title, revenue: decimal.Zero}
			byWork[workID] = a
			order = append(order, workID)
		}
		a.quantity += qty
		a.revenue = a.revenue.Add(amount)
	}

	for _, s := range sales {
		add(s.WorkID, s.WorkTitle, s.Quantity, s.Amount)
	}
	if items != nil {
		items(func(it repository.OrderItemRow) {
			add(it.WorkID, it.WorkTitle, it.Quantity, it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		})
	}

	sort.SliceStable(order, func(i, j int) bool {
		return byWork[order[i]].revenue.GreaterThan(byWork[order[j]].revenue)
	})

	top := make([]dto.TopWorkDTO, 0, limit)
	for _, id := range order {
		if len(top) == limit {
			break
		}
		a := byWork[id]
		top = append(top, dto.TopWorkDTO{
			WorkID:   id,
			Title:    a.title,
			Quantity: a.quantity,
			Revenue:  a.revenue,
		})
	}
	return top
}
