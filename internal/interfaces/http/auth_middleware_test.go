package http_test

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obame-dev/editions-api/internal/domain/entity"
	apphttp "github.com/obame-dev/editions-api/internal/interfaces/http"
	pkgjwt "github.com/obame-dev/editions-api/pkg/jwt"
)

const (
	testJWTSecret = "secret-de-test"
	testUserID    = "11111111-1111-1111-1111-111111111111"
	testIssuer    = "editions-api-test"
	testExpMin    = 15
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp monte le middleware d'authentification, RequireRole si des rôles
// sont fournis, puis un handler factice qui renvoie 200.
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{apphttp.AuthMiddleware(testJWTSecret)}
	if len(allowedRoles) > 0 {
		handlers = append(handlers, apphttp.RequireRole(allowedRoles...))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId": apphttp.GetUserID(c),
			"role":   apphttp.GetRole(c),
		})
	})
	app.Get("/protege", handlers...)
	return app
}

// tokenForRole génère un Bearer token valide pour le rôle donné.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	token, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + token
}

// doRequest exécute GET /protege avec l'en-tête Authorization fourni et
// retourne le statut et le corps.
func doRequest(t *testing.T, app *fiber.App, authHeader string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("GET", "/protege", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SansToken(t *testing.T) {
	app := buildTestApp()
	status, body := doRequest(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, body, "Non authentifié")
}

func TestAuthMiddleware_EnTeteMalforme(t *testing.T) {
	app := buildTestApp()
	for _, header := range []string{"Bearer", "Basic abc123", "Bearer "} {
		status, body := doRequest(t, app, header)
		assert.Equal(t, fiber.StatusUnauthorized, status, "en-tête %q", header)
		assert.Contains(t, body, "Non authentifié")
	}
}

func TestAuthMiddleware_TokenInvalide(t *testing.T) {
	app := buildTestApp()
	status, body := doRequest(t, app, "Bearer pas-un-jwt")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, body, "Non authentifié")
}

func TestAuthMiddleware_MauvaisSecret(t *testing.T) {
	app := buildTestApp()
	token, err := pkgjwt.Generate("autre-secret", testUserID, entity.RolePDG, testIssuer, testExpMin)
	require.NoError(t, err)

	status, body := doRequest(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, body, "Non authentifié")
}

func TestAuthMiddleware_TokenExpire(t *testing.T) {
	app := buildTestApp()
	token, err := pkgjwt.Generate(testJWTSecret, testUserID, entity.RolePDG, testIssuer, -5)
	require.NoError(t, err)

	status, body := doRequest(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, body, "Non authentifié")
}

func TestAuthMiddleware_TokenValide(t *testing.T) {
	app := buildTestApp()
	status, body := doRequest(t, app, tokenForRole(t, entity.RoleClient))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, testUserID)
	assert.Contains(t, body, entity.RoleClient)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_RoleAutorise(t *testing.T) {
	app := buildTestApp(entity.RolePDG)
	status, _ := doRequest(t, app, tokenForRole(t, entity.RolePDG))
	assert.Equal(t, fiber.StatusOK, status)
}

func TestRequireRole_RoleRefuse(t *testing.T) {
	app := buildTestApp(entity.RolePDG)
	for _, role := range []string{
		entity.RoleAuteur, entity.RoleConcepteur, entity.RoleRepresentant,
		entity.RolePartenaire, entity.RoleClient,
	} {
		status, body := doRequest(t, app, tokenForRole(t, role))
		assert.Equal(t, fiber.StatusForbidden, status, "rôle %s", role)
		assert.Contains(t, body, "Accès non autorisé")
	}
}

// Chaque refus d'accès est journalisé avec le rôle tenté et le chemin.
func TestRequireRole_RefusJournalise(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = prev }()

	app := buildTestApp(entity.RolePDG)
	status, _ := doRequest(t, app, tokenForRole(t, entity.RoleClient))
	require.Equal(t, fiber.StatusForbidden, status)

	logged := buf.String()
	assert.Contains(t, logged, entity.RoleClient)
	assert.Contains(t, logged, testUserID)
	assert.Contains(t, logged, "/protege")
}

func TestRequireRole_PlusieursRoles(t *testing.T) {
	app := buildTestApp(entity.RolePDG, entity.RoleRepresentant)

	status, _ := doRequest(t, app, tokenForRole(t, entity.RoleRepresentant))
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = doRequest(t, app, tokenForRole(t, entity.RoleClient))
	assert.Equal(t, fiber.StatusForbidden, status)
}
