package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/obame-dev/editions-api/internal/application/dto"
	"github.com/obame-dev/editions-api/internal/domain/entity"
	"github.com/obame-dev/editions-api/internal/domain/repository"
)

// DisciplineUseCase gestion des disciplines du catalogue.
type DisciplineUseCase struct {
	disciplines repository.DisciplineRepository
}

func NewDisciplineUseCase(disciplines repository.DisciplineRepository) *DisciplineUseCase {
	return &DisciplineUseCase{disciplines: disciplines}
}

func (uc *DisciplineUseCase) Create(ctx context.Context, req dto.CreateDisciplineRequest) (*dto.DisciplineResponse, error) {
	d := &entity.Discipline{ID: uuid.NewString(), Name: req.Name}
	if err := uc.disciplines.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("création de la discipline : %w", err)
	}
	return &dto.DisciplineResponse{ID: d.ID, Name: d.Name}, nil
}

func (uc *DisciplineUseCase) List(ctx context.Context) ([]dto.DisciplineResponse, error) {
	rows, err := uc.disciplines.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing des disciplines : %w", err)
	}
	out := make([]dto.DisciplineResponse, 0, len(rows))
	for _, d := range rows {
		out = append(out, dto.DisciplineResponse{ID: d.ID, Name: d.Name})
	}
	return out, nil
}
