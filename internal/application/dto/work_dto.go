package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWorkRequest ajout d'une œuvre au catalogue.
type CreateWorkRequest struct {
	Title        string          `json:"title" validate:"required,min=1"`
	ISBN         string          `json:"isbn" validate:"required,min=10,max=17"`
	Price        decimal.Decimal `json:"price" validate:"required"`
	DisciplineID string          `json:"disciplineId" validate:"required,uuid4"`
	AuthorID     *string         `json:"authorId" validate:"omitempty,uuid4"`
	ConcepteurID *string         `json:"concepteurId" validate:"omitempty,uuid4"`
	Stock        int             `json:"stock" validate:"omitempty,min=0"`
}

// UpdateWorkRequest modification partielle d'une œuvre.
type UpdateWorkRequest struct {
	Title  *string          `json:"title" validate:"omitempty,min=1"`
	Price  *decimal.Decimal `json:"price"`
	Stock  *int             `json:"stock" validate:"omitempty,min=0"`
	Status *string          `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
}

// WorkResponse œuvre avec relations résolues.
type WorkResponse struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	ISBN       string          `json:"isbn"`
	Price      decimal.Decimal `json:"price"`
	Discipline string          `json:"discipline"`
	Author     *string         `json:"author"`
	Concepteur *string         `json:"concepteur"`
	Stock      int             `json:"stock"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// DisciplineResponse discipline du catalogue.
type DisciplineResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateDisciplineRequest ajout d'une discipline.
type CreateDisciplineRequest struct {
	Name string `json:"name" validate:"required,min=2"`
}
