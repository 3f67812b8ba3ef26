package repository

import (
	"context"

	"github.com/obame-dev/editions-api/internal/domain/entity"
)

// UserRepository accès aux utilisateurs.
// Les méthodes Get/Find retournent (nil, nil) quand la ressource n'existe pas.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, role string) ([]entity.User, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
