package repository

import (
	"context"

	"github.com/obame-dev/editions-api/internal/domain/entity"
)

// DisciplineRepository accès aux disciplines.
type DisciplineRepository interface {
	Create(ctx context.Context, d *entity.Discipline) error
	GetByID(ctx context.Context, id string) (*entity.Discipline, error)
	List(ctx context.Context) ([]entity.Discipline, error)
}
