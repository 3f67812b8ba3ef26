package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/obame-dev/editions-api/internal/application/dto"
	"github.com/obame-dev/editions-api/internal/domain"
	"github.com/obame-dev/editions-api/internal/domain/entity"
	"github.com/obame-dev/editions-api/internal/domain/repository"
)

// SaleUseCase ventes directes (point de vente).
type SaleUseCase struct {
	sales repository.SaleRepository
	works repository.WorkRepository
}

func NewSaleUseCase(sales repository.SaleRepository, works repository.WorkRepository) *SaleUseCase {
	return &SaleUseCase{sales: sales, works: works}
}

// Create enregistre une vente directe et décrémente le stock. À défaut de
// montant explicite : prix catalogue × quantité.
func (uc *SaleUseCase) Create(ctx context.Context, req dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	work, err := uc.works.GetByID(ctx, req.WorkID)
	if err != nil {
		return nil, fmt.Errorf("lecture de l'œuvre : %w", err)
	}
	if work == nil {
		return nil, fmt.Errorf("œuvre %s : %w", req.WorkID, domain.ErrNotFound)
	}
	if work.Stock < req.Quantity {
		return nil, fmt.Errorf("œuvre %s : %w", req.WorkID, domain.ErrInsufficientStock)
	}

	amount := work.Price.Mul(decimal.NewFromInt(int64(req.Quantity)))
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("montant négatif : %w", domain.ErrInvalidInput)
		}
		amount = *req.Amount
	}

	sale := &entity.Sale{
		ID:        uuid.NewString(),
		WorkID:    req.WorkID,
		Quantity:  req.Quantity,
		Amount:    amount,
		CreatedAt: time.Now(),
	}
	if err := uc.sales.Create(ctx, sale); err != nil {
		return nil, fmt.Errorf("création de la vente : %w", err)
	}
	if err := uc.works.AdjustStock(ctx, req.WorkID, -req.Quantity); err != nil {
		return nil, fmt.Errorf("décrément du stock : %w", err)
	}

	return &dto.SaleResponse{
		ID:        sale.ID,
		WorkID:    sale.WorkID,
		Quantity:  sale.Quantity,
		Amount:    sale.Amount,
		CreatedAt: sale.CreatedAt,
	}, nil
}

// List liste les ventes directes d'une période.
func (uc *SaleUseCase) List(ctx context.Context, start, end *time.Time) ([]dto.SaleResponse, error) {
	rows, err := uc.sales.List(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("listing des ventes : %w", err)
	}
	out := make([]dto.SaleResponse, 0, len(rows))
	for _, s := range rows {
		out = append(out, dto.SaleResponse{
			ID:        s.ID,
			WorkID:    s.WorkID,
			Quantity:  s.Quantity,
			Amount:    s.Amount,
			CreatedAt: s.CreatedAt,
		})
	}
	return out, nil
}
