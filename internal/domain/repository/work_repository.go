package repository

import (
	"context"

	"github.com/obame-dev/editions-api/internal/domain/entity"
)

// WorkWithRelations œuvre avec les noms résolus de ses relations.
type WorkWithRelations struct {
	entity.Work
	DisciplineName string
	AuthorName     *string
	ConcepteurName *string
}

// WorkRepository accès au catalogue.
type WorkRepository interface {
	Create(ctx context.Context, work *entity.Work) error
	Update(ctx context.Context, work *entity.Work) error
	GetByID(ctx context.Context, id string) (*WorkWithRelations, error)
	List(ctx context.Context, disciplineID string) ([]WorkWithRelations, error)
	// AdjustStock décrémente (delta négatif) ou réapprovisionne le stock.
	AdjustStock(ctx context.Context, id string, delta int) error
}
