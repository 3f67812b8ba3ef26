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

// OrderUseCase création et suivi des commandes.
type OrderUseCase struct {
	orders repository.OrderRepository
	works  repository.WorkRepository
}

func NewOrderUseCase(orders repository.OrderRepository, works repository.WorkRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, works: works}
}

// Create enregistre une commande PENDING. Le prix de chaque ligne est repris
// du catalogue au moment de la commande ; le stock est décrémenté.
func (uc *OrderUseCase) Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if req.UserID == nil && req.PartnerID == nil {
		return nil, fmt.Errorf("commande sans client ni partenaire : %w", domain.ErrInvalidInput)
	}

	order := &entity.Order{
		ID:               uuid.NewString(),
		UserID:           req.UserID,
		PartnerID:        req.PartnerID,
		Status:           entity.OrderStatusPending,
		Total:            decimal.Zero,
		PaymentReference: req.PaymentReference,
		CreatedAt:        time.Now(),
	}

	for _, item := range req.Items {
		work, err := uc.works.GetByID(ctx, item.WorkID)
		if err != nil {
			return nil, fmt.Errorf("lecture de l'œuvre : %w", err)
		}
		if work == nil {
			return nil, fmt.Errorf("œuvre %s : %w", item.WorkID, domain.ErrNotFound)
		}
		if work.Stock < item.Quantity {
			return nil, fmt.Errorf("œuvre %s : %w", item.WorkID, domain.ErrInsufficientStock)
		}
		order.Items = append(order.Items, entity.OrderItem{
			ID:       uuid.NewString(),
			OrderID:  order.ID,
			WorkID:   item.WorkID,
			Quantity: item.Quantity,
			Price:    work.Price,
		})
	}

	if err := uc.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("création de la commande : %w", err)
	}
	for _, it := range order.Items {
		if err := uc.works.AdjustStock(ctx, it.WorkID, -it.Quantity); err != nil {
			return nil, fmt.Errorf("décrément du stock : %w", err)
		}
	}

	resp := orderResponse(order)
	return &resp, nil
}

// UpdateStatus applique une transition de statut. CANCELLED et DELIVERED sont
// terminaux ; l'annulation réapprovisionne le stock.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id string, req dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lecture de la commande : %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("commande %s : %w", id, domain.ErrNotFound)
	}
	if !entity.ValidOrderTransition(order.Status, req.Status) {
		return nil, fmt.Errorf("%s → %s : %w", order.Status, req.Status, domain.ErrInvalidTransition)
	}

	if err := uc.orders.UpdateStatus(ctx, id, req.Status); err != nil {
		return nil, fmt.Errorf("mise à jour du statut : %w", err)
	}
	if req.Status == entity.OrderStatusCancelled {
		for _, it := range order.Items {
			if err := uc.works.AdjustStock(ctx, it.WorkID, it.Quantity); err != nil {
				return nil, fmt.Errorf("réapprovisionnement du stock : %w", err)
			}
		}
	}

	order.Status = req.Status
	resp := orderResponse(order)
	return &resp, nil
}

// Get retourne une commande avec ses lignes.
func (uc *OrderUseCase) Get(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lecture de la commande : %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("commande %s : %w", id, domain.ErrNotFound)
	}
	resp := orderResponse(order)
	return &resp, nil
}

// List liste les commandes selon le filtre.
func (uc *OrderUseCase) List(ctx context.Context, f repository.OrderFilter) ([]dto.OrderResponse, error) {
	rows, err := uc.orders.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("listing des commandes : %w", err)
	}
	out := make([]dto.OrderResponse, 0, len(rows))
	for i := range rows {
		out = append(out, orderResponse(&rows[i]))
	}
	return out, nil
}

func orderResponse(o *entity.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ID:       it.ID,
			WorkID:   it.WorkID,
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}
	return dto.OrderResponse{
		ID:               o.ID,
		UserID:           o.UserID,
		PartnerID:        o.PartnerID,
		Status:           o.Status,
		Total:            o.ComputedTotal(),
		PaymentReference: o.PaymentReference,
		Items:            items,
		CreatedAt:        o.CreatedAt,
	}
}
