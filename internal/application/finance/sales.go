package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/obame-dev/editions-api/internal/application/dto"
	"github.com/obame-dev/editions-api/internal/domain/repository"
)

// SalesReport construit le rapport des ventes : commandes (tous statuts) et
// ventes directes de la période, combinées.
func (uc *UseCase) SalesReport(ctx context.Context, period dto.PeriodDTO, start, end *time.Time) (*dto.SalesReportDTO, error) {
	salesCh := make(chan []repository.SaleRow, 1)
	ordersCh := make(chan []repository.OrderRow, 1)
	errCh := make(chan error, 2)

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

	var (
		sales  []repository.SaleRow
		orders []repository.OrderRow
	)
	for i := 0; i < 2; i++ {
		select {
		case sales = <-salesCh:
		case orders = <-ordersCh:
		case err := <-errCh:
			return nil, err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	out := &dto.SalesReportDTO{
		Period:            period,
		TotalOrders:       len(orders),
		AverageOrderValue: decimal.Zero,
		SalesByDiscipline: map[string]decimal.Decimal{},
		Orders:            make([]dto.SalesOrderDTO, 0, len(orders)),
	}

	// CA et volumes : commandes (tous statuts) + ventes directes.
	ordersRevenue := decimal.Zero
	for i := range orders {
		o := &orders[i]
		ordersRevenue = ordersRevenue.Add(o.ComputedTotal())
		out.TotalItemsSold += o.ItemCount()
	}
	revenue := ordersRevenue
	for _, s := range sales {
		revenue = revenue.Add(s.Amount)
		out.TotalItemsSold += s.Quantity
	}
	out.TotalRevenue = revenue
	if len(orders) > 0 {
		out.AverageOrderValue = ordersRevenue.Div(decimal.NewFromInt(int64(len(orders)))).Round(2)
	}

	// CA par discipline : lignes de commande (prix × quantité) + ventes directes.
	for i := range orders {
		for _, it := range orders[i].Items {
			key := strOr(it.DisciplineName, disciplineUnspecified)
			amount := it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
			out.SalesByDiscipline[key] = out.SalesByDiscipline[key].Add(amount)
		}
	}
	for _, s := range sales {
		key := strOr(s.DisciplineName, disciplineUnspecified)
		out.SalesByDiscipline[key] = out.SalesByDiscipline[key].Add(s.Amount)
	}

	// Top œuvres sur le CA combiné, toutes commandes confondues.
	allItems := func(yield func(repository.OrderItemRow)) {
		for i := range orders {
			for _, it := range orders[i].Items {
				yield(it)
			}
		}
	}
	out.TopSellingWorks = topWorks(sales, allItems, topWorksSales)

	for i := range orders {
		out.Orders = append(out.Orders, salesOrderDTO(&orders[i]))
	}

	return out, nil
}

// salesOrderDTO projette une commande en ligne détaillée du rapport.
// itemsCount duplique itemCount, alias conservé pour les anciens clients.
func salesOrderDTO(o *repository.OrderRow) dto.SalesOrderDTO {
	items := make([]dto.SalesOrderItemDTO, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.SalesOrderItemDTO{
			ID: it.ID,
			Work: dto.WorkRefDTO{
				ID:         it.WorkID,
				Title:      it.WorkTitle,
				Discipline: strOr(it.DisciplineName, fallbackNA),
				Author:     strOr(it.AuthorName, fallbackNA),
			},
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}

	count := o.ItemCount()
	return dto.SalesOrderDTO{
		ID:           o.ID,
		Status:       o.Status,
		Total:        o.ComputedTotal(),
		ItemCount:    count,
		ItemsCount:   count,
		CustomerName: strOr(o.UserName, strOr(o.PartnerName, fallbackNA)),
		User:         dto.PartyDTO{Name: strOr(o.UserName, fallbackNA)},
		Partner:      dto.PartyDTO{Name: strOr(o.PartnerName, fallbackNA)},
		Items:        items,
		CreatedAt:    o.CreatedAt,
	}
}
