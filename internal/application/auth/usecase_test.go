package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/obame-dev/editions-api/internal/application/auth"
	"github.com/obame-dev/editions-api/internal/application/dto"
	"github.com/obame-dev/editions-api/internal/domain"
	"github.com/obame-dev/editions-api/internal/domain/entity"
)

// Dépôt utilisateurs en mémoire, indexé par email.
type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{byEmail: map[string]*entity.User{}}
	for _, u := range users {
		r.byEmail[u.Email] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) List(_ context.Context, _ string) ([]entity.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) UpdateStatus(_ context.Context, _, _ string) error { return nil }

func testConfig() auth.Config {
	return auth.Config{Secret: "secret-de-test", Issuer: "editions-api-test", ExpMinutes: 15}
}

func userWithStatus(t *testing.T, status string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("motdepasse"), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		ID:           "11111111-1111-1111-1111-111111111111",
		Email:        "utilisateur@editions.fr",
		PasswordHash: string(hash),
		Name:         "Claire Ondo",
		Role:         entity.RoleClient,
		Status:       status,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CompteActif(t *testing.T) {
	uc := auth.New(newFakeUserRepo(userWithStatus(t, entity.UserStatusActive)), testConfig())

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "utilisateur@editions.fr", Password: "motdepasse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, entity.RoleClient, resp.User.Role)
}

// Seul un compte ACTIVE se connecte : INACTIVE et SUSPENDED sont refusés.
func TestLogin_CompteNonActifRefuse(t *testing.T) {
	for _, status := range []string{entity.UserStatusInactive, entity.UserStatusSuspended} {
		uc := auth.New(newFakeUserRepo(userWithStatus(t, status)), testConfig())

		resp, err := uc.Login(context.Background(), dto.LoginRequest{
			Email: "utilisateur@editions.fr", Password: "motdepasse",
		})
		assert.Nil(t, resp, "statut %s", status)
		assert.ErrorIs(t, err, domain.ErrForbidden, "statut %s", status)
	}
}

// Même erreur que l'email soit inconnu ou le mot de passe faux : pas
// d'énumération de comptes.
func TestLogin_IdentifiantsInvalides(t *testing.T) {
	uc := auth.New(newFakeUserRepo(userWithStatus(t, entity.UserStatusActive)), testConfig())

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "inconnu@editions.fr", Password: "motdepasse",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email: "utilisateur@editions.fr", Password: "mauvais-mot-de-passe",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_RoleClientParDefaut(t *testing.T) {
	uc := auth.New(newFakeUserRepo(), testConfig())

	resp, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "nouveau@editions.fr", Password: "motdepasse", Name: "Paul Mba",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleClient, resp.Role)
	assert.Equal(t, entity.UserStatusActive, resp.Status)
}

func TestRegister_EmailDejaPris(t *testing.T) {
	uc := auth.New(newFakeUserRepo(userWithStatus(t, entity.UserStatusActive)), testConfig())

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "utilisateur@editions.fr", Password: "motdepasse", Name: "Doublon",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_RoleInvalide(t *testing.T) {
	uc := auth.New(newFakeUserRepo(), testConfig())

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "nouveau@editions.fr", Password: "motdepasse", Name: "Paul Mba", Role: "ADMIN",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
