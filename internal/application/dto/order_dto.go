package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderItemRequest ligne de commande à créer. Le prix est repris du
// catalogue au moment de la commande.
type CreateOrderItemRequest struct {
	WorkID   string `json:"workId" validate:"required,uuid4"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest création d'une commande client ou partenaire.
type CreateOrderRequest struct {
	UserID           *string                  `json:"userId" validate:"omitempty,uuid4"`
	PartnerID        *string                  `json:"partnerId" validate:"omitempty,uuid4"`
	PaymentReference *string                  `json:"paymentReference"`
	Items            []CreateOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderStatusRequest transition de statut.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING VALIDATED PROCESSING SHIPPED DELIVERED CANCELLED"`
}

// OrderItemResponse ligne de commande persistée.
type OrderItemResponse struct {
	ID       string          `json:"id"`
	WorkID   string          `json:"workId"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// OrderResponse commande avec son montant calculé.
type OrderResponse struct {
	ID               string              `json:"id"`
	UserID           *string             `json:"userId"`
	PartnerID        *string             `json:"partnerId"`
	Status           string              `json:"status"`
	Total            decimal.Decimal     `json:"total"`
	PaymentReference *string             `json:"paymentReference"`
	Items            []OrderItemResponse `json:"items"`
	CreatedAt        time.Time           `json:"createdAt"`
}

// CreateSaleRequest vente directe. Amount est optionnel : à défaut,
// prix catalogue × quantité.
type CreateSaleRequest struct {
	WorkID   string           `json:"workId" validate:"required,uuid4"`
	Quantity int              `json:"quantity" validate:"required,min=1"`
	Amount   *decimal.Decimal `json:"amount"`
}

// SaleResponse vente directe persistée.
type SaleResponse struct {
	ID        string          `json:"id"`
	WorkID    string          `json:"workId"`
	Quantity  int             `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`
}
