// Package auth gère l'inscription, la connexion et l'émission des tokens.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/obame-dev/editions-api/internal/application/dto"
	"github.com/obame-dev/editions-api/internal/domain"
	"github.com/obame-dev/editions-api/internal/domain/entity"
	"github.com/obame-dev/editions-api/internal/domain/repository"
	"github.com/obame-dev/editions-api/pkg/jwt"
)

// Config paramètres de signature des tokens.
type Config struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// UseCase cas d'usage d'authentification.
type UseCase struct {
	users repository.UserRepository
	cfg   Config
}

func New(users repository.UserRepository, cfg Config) *UseCase {
	return &UseCase{users: users, cfg: cfg}
}

// Register inscrit un utilisateur. Le rôle par défaut est CLIENT ; l'email
// doit être libre.
func (uc *UseCase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	role := req.Role
	if role == "" {
		role = entity.RoleClient
	}
	if !entity.ValidRole(role) {
		return nil, fmt.Errorf("rôle %q : %w", role, domain.ErrInvalidInput)
	}

	existing, err := uc.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("recherche par email : %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hachage du mot de passe : %w", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         role,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("création de l'utilisateur : %w", err)
	}

	resp := userResponse(user)
	return &resp, nil
}

// Login vérifie les identifiants et émet un token JWT portant le rôle.
// Message identique que l'email soit inconnu ou le mot de passe faux.
func (uc *UseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("recherche par email : %w", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	// Seul un compte ACTIVE peut se connecter : INACTIVE et SUSPENDED sont
	// tous deux refusés.
	if user.Status != entity.UserStatusActive {
		return nil, domain.ErrForbidden
	}

	token, err := jwt.Generate(uc.cfg.Secret, user.ID, user.Role, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("émission du token : %w", err)
	}

	return &dto.LoginResponse{Token: token, User: userResponse(user)}, nil
}

func userResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
