package http_test

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obame-dev/editions-api/internal/application/finance"
	"github.com/obame-dev/editions-api/internal/domain/entity"
	"github.com/obame-dev/editions-api/internal/domain/repository"
	"github.com/obame-dev/editions-api/internal/infrastructure/xmlexport"
	apphttp "github.com/obame-dev/editions-api/internal/interfaces/http"
)

// Dépôt financier vide : suffisant pour exercer le routage, le RBAC et la
// validation des paramètres.
type emptyFinanceRepo struct{}

func (emptyFinanceRepo) SalesInRange(context.Context, *time.Time, *time.Time) ([]repository.SaleRow, error) {
	return nil, nil
}
func (emptyFinanceRepo) OrdersInRange(context.Context, *time.Time, *time.Time) ([]repository.OrderRow, error) {
	return nil, nil
}
func (emptyFinanceRepo) PartnerOrdersInRange(context.Context, *time.Time, *time.Time) ([]repository.OrderRow, error) {
	return nil, nil
}
func (emptyFinanceRepo) RoyaltiesInRange(context.Context, *time.Time, *time.Time) ([]repository.RoyaltyRow, error) {
	return nil, nil
}
func (emptyFinanceRepo) Partners(context.Context) ([]repository.PartnerRow, error) { return nil, nil }
func (emptyFinanceRepo) CountWorks(context.Context) (int, error)                   { return 0, nil }
func (emptyFinanceRepo) CountUsersByRole(context.Context, string) (int, error)     { return 0, nil }
func (emptyFinanceRepo) SumSalesAmount(context.Context, time.Time, time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}
func (emptyFinanceRepo) CountOrdersBetween(context.Context, time.Time, time.Time) (int, error) {
	return 0, nil
}

func buildFinanceApp() *fiber.App {
	uc := finance.New(emptyFinanceRepo{}, map[string]finance.Exporter{
		"xml": xmlexport.NewReportExporter(),
	})
	handler := apphttp.NewFinanceHandler(uc)

	app := fiber.New()
	api := app.Group("/api", apphttp.AuthMiddleware(testJWTSecret))
	pdgOnly := apphttp.RequireRole(entity.RolePDG)
	api.Get("/finance", pdgOnly, handler.GetReport)
	api.Get("/finance/export", pdgOnly, handler.Export)
	return app
}

func getFinance(t *testing.T, app *fiber.App, path, authHeader string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
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

func TestGetFinance_SansToken(t *testing.T) {
	app := buildFinanceApp()
	status, body := getFinance(t, app, "/api/finance", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, body, "Non authentifié")
}

// Seul le PDG accède au reporting financier.
func TestGetFinance_ReserveAuPDG(t *testing.T) {
	app := buildFinanceApp()
	for _, role := range []string{
		entity.RoleAuteur, entity.RoleConcepteur, entity.RoleRepresentant,
		entity.RolePartenaire, entity.RoleClient,
	} {
		status, body := getFinance(t, app, "/api/finance", tokenForRole(t, role))
		assert.Equal(t, fiber.StatusForbidden, status, "rôle %s", role)
		assert.Contains(t, body, "Accès non autorisé")
	}
}

// Sans paramètre type, le rapport par défaut est l'overview.
func TestGetFinance_OverviewParDefaut(t *testing.T) {
	app := buildFinanceApp()
	status, body := getFinance(t, app, "/api/finance", tokenForRole(t, entity.RolePDG))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "totalRevenue")
	assert.Contains(t, body, "monthlyTrends")
	assert.Contains(t, body, "methodologyNote")
}

func TestGetFinance_QuatreTypesDeRapport(t *testing.T) {
	app := buildFinanceApp()
	auth := tokenForRole(t, entity.RolePDG)

	cases := []struct {
		reportType string
		marker     string
	}{
		{"overview", "disciplineRevenue"},
		{"sales", "topSellingWorks"},
		{"royalties", "royaltiesByAuthor"},
		{"partner_performance", "activePartners"},
	}
	for _, tc := range cases {
		status, body := getFinance(t, app, "/api/finance?type="+tc.reportType, auth)
		assert.Equal(t, fiber.StatusOK, status, "type %s", tc.reportType)
		assert.Contains(t, body, tc.marker, "type %s", tc.reportType)
	}
}

func TestGetFinance_TypeInconnu(t *testing.T) {
	app := buildFinanceApp()
	status, body := getFinance(t, app, "/api/finance?type=inventaire", tokenForRole(t, entity.RolePDG))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "Type de données non valide")
}

func TestGetFinance_DatesInvalides(t *testing.T) {
	app := buildFinanceApp()
	auth := tokenForRole(t, entity.RolePDG)

	status, body := getFinance(t, app, "/api/finance?startDate=01-01-2026", auth)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "Format de date invalide")

	status, body = getFinance(t, app, "/api/finance?startDate=2026-02-01&endDate=2026-01-01", auth)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "Format de date invalide")
}

func TestGetFinance_PeriodeValide(t *testing.T) {
	app := buildFinanceApp()
	status, _ := getFinance(t, app, "/api/finance?type=sales&startDate=2026-01-01&endDate=2026-01-31",
		tokenForRole(t, entity.RolePDG))
	assert.Equal(t, fiber.StatusOK, status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Export
// ──────────────────────────────────────────────────────────────────────────────

func TestExportFinance_XML(t *testing.T) {
	app := buildFinanceApp()
	req := httptest.NewRequest("GET", "/api/finance/export?type=overview&format=xml", nil)
	req.Header.Set("Authorization", tokenForRole(t, entity.RolePDG))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "xml")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "rapport-overview-")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "<rapport")
}

func TestExportFinance_FormatInconnu(t *testing.T) {
	app := buildFinanceApp()
	status, _ := getFinance(t, app, "/api/finance/export?format=csv", tokenForRole(t, entity.RolePDG))
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestExportFinance_ReserveAuPDG(t *testing.T) {
	app := buildFinanceApp()
	status, body := getFinance(t, app, "/api/finance/export", tokenForRole(t, entity.RoleClient))
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Contains(t, body, "Accès non autorisé")
}
