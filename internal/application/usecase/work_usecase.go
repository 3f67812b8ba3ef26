// Package usecase regroupe les cas d'usage métier hors finance et auth :
// catalogue, commandes, ventes directes, droits d'auteur et partenaires.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/obame-dev/editions-api/internal/application/dto"
	"github.com/obame-dev/editions-api/internal/domain"
	"github.com/obame-dev/editions-api/internal/domain/entity"
	"github.com/obame-dev/editions-api/internal/domain/repository"
)

// WorkUseCase gestion du catalogue d'œuvres.
type WorkUseCase struct {
	works       repository.WorkRepository
	disciplines repository.DisciplineRepository
}

func NewWorkUseCase(works repository.WorkRepository, disciplines repository.DisciplineRepository) *WorkUseCase {
	return &WorkUseCase{works: works, disciplines: disciplines}
}

// Create ajoute une œuvre au catalogue, en statut DRAFT.
func (uc *WorkUseCase) Create(ctx context.Context, req dto.CreateWorkRequest) (*dto.WorkResponse, error) {
	if !req.Price.IsPositive() {
		return nil, fmt.Errorf("prix non positif : %w", domain.ErrInvalidInput)
	}
	if d, err := uc.disciplines.GetByID(ctx, req.DisciplineID); err != nil {
		return nil, fmt.Errorf("discipline : %w", err)
	} else if d == nil {
		return nil, fmt.Errorf("discipline %s : %w", req.DisciplineID, domain.ErrNotFound)
	}

	now := time.Now()
	work := &entity.Work{
		ID:           uuid.NewString(),
		Title:        req.Title,
		ISBN:         req.ISBN,
		Price:        req.Price,
		DisciplineID: req.DisciplineID,
		AuthorID:     req.AuthorID,
		ConcepteurID: req.ConcepteurID,
		Stock:        req.Stock,
		Status:       entity.WorkStatusDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.works.Create(ctx, work); err != nil {
		return nil, fmt.Errorf("création de l'œuvre : %w", err)
	}
	return uc.Get(ctx, work.ID)
}

// Update modifie partiellement une œuvre.
func (uc *WorkUseCase) Update(ctx context.Context, id string, req dto.UpdateWorkRequest) (*dto.WorkResponse, error) {
	current, err := uc.works.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lecture de l'œuvre : %w", err)
	}
	if current == nil {
		return nil, fmt.Errorf("œuvre %s : %w", id, domain.ErrNotFound)
	}

	work := current.Work
	if req.Title != nil {
		work.Title = *req.Title
	}
	if req.Price != nil {
		if !req.Price.IsPositive() {
			return nil, fmt.Errorf("prix non positif : %w", domain.ErrInvalidInput)
		}
		work.Price = *req.Price
	}
	if req.Stock != nil {
		work.Stock = *req.Stock
	}
	if req.Status != nil {
		work.Status = *req.Status
	}
	work.UpdatedAt = time.Now()

	if err := uc.works.Update(ctx, &work); err != nil {
		return nil, fmt.Errorf("mise à jour de l'œuvre : %w", err)
	}
	return uc.Get(ctx, id)
}

// Get retourne une œuvre avec ses relations résolues.
func (uc *WorkUseCase) Get(ctx context.Context, id string) (*dto.WorkResponse, error) {
	w, err := uc.works.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lecture de l'œuvre : %w", err)
	}
	if w == nil {
		return nil, fmt.Errorf("œuvre %s : %w", id, domain.ErrNotFound)
	}
	resp := workResponse(w)
	return &resp, nil
}

// List liste le catalogue, optionnellement filtré par discipline.
func (uc *WorkUseCase) List(ctx context.Context, disciplineID string) ([]dto.WorkResponse, error) {
	rows, err := uc.works.List(ctx, disciplineID)
	if err != nil {
		return nil, fmt.Errorf("listing du catalogue : %w", err)
	}
	out := make([]dto.WorkResponse, 0, len(rows))
	for i := range rows {
		out = append(out, workResponse(&rows[i]))
	}
	return out, nil
}

func workResponse(w *repository.WorkWithRelations) dto.WorkResponse {
	return dto.WorkResponse{
		ID:         w.ID,
		Title:      w.Title,
		ISBN:       w.ISBN,
		Price:      w.Price,
		Discipline: w.DisciplineName,
		Author:     w.AuthorName,
		Concepteur: w.ConcepteurName,
		Stock:      w.Stock,
		Status:     w.Status,
		CreatedAt:  w.CreatedAt,
	}
}
