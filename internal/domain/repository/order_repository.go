package repository

import (
	"context"
	"time"

	"github.com/obame-dev/editions-api/internal/domain/entity"
)

// OrderFilter critères de listing des commandes.
type OrderFilter struct {
	UserID    string
	PartnerID string
	Status    string
	Start     *time.Time
	End       *time.Time
	Limit     int
	Offset    int
}

// OrderRepository accès aux commandes (écriture + lecture détaillée).
type OrderRepository interface {
	// Create persiste la commande et ses lignes dans la même transaction.
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context, f OrderFilter) ([]entity.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
