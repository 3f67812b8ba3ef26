package repository

import (
	"context"
	"time"

	"github.com/obame-dev/editions-api/internal/domain/entity"
)

// SaleRepository accès aux ventes directes.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	List(ctx context.Context, start, end *time.Time) ([]entity.Sale, error)
}
