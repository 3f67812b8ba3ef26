package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/obame-dev/editions-api/internal/application/dto"
	"github.com/obame-dev/editions-api/internal/application/finance"
)

// FinanceHandler sert les rapports financiers du dashboard PDG.
type FinanceHandler struct {
	uc *finance.UseCase
}

func NewFinanceHandler(uc *finance.UseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// Corps du 400 quand le type de rapport est inconnu.
const msgInvalidType = "Type de données non valide"

// GetReport godoc
// @Summary      Rapport financier
// @Description  Retourne le rapport demandé par ?type= : overview, sales, royalties ou partner_performance.
// @Tags         finance
// @Produce      json
// @Param        type       query  string  false  "overview | sales | royalties | partner_performance"  default(overview)
// @Param        startDate  query  string  false  "YYYY-MM-DD"
// @Param        endDate    query  string  false  "YYYY-MM-DD (inclus jusqu'à 23:59:59.999)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/finance [get]
func (h *FinanceHandler) GetReport(c *fiber.Ctx) error {
	reportType := c.Query("type", finance.ReportOverview)
	period := dto.PeriodDTO{StartDate: c.Query("startDate"), EndDate: c.Query("endDate")}

	start, end, err := finance.ParsePeriod(period.StartDate, period.EndDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Format de date invalide"})
	}

	switch reportType {
	case finance.ReportOverview:
		out, err := h.uc.Overview(c.Context(), start, end)
		if err != nil {
			return handleError(c, err)
		}
		return c.JSON(out)
	case finance.ReportSales:
		out, err := h.uc.SalesReport(c.Context(), period, start, end)
		if err != nil {
			return handleError(c, err)
		}
		return c.JSON(out)
	case finance.ReportRoyalties:
		out, err := h.uc.RoyaltiesReport(c.Context(), period, start, end)
		if err != nil {
			return handleError(c, err)
		}
		return c.JSON(out)
	case finance.ReportPartnerPerformance:
		out, err := h.uc.PartnerPerformance(c.Context(), period, start, end)
		if err != nil {
			return handleError(c, err)
		}
		return c.JSON(out)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msgInvalidType})
	}
}

// Export godoc
// @Summary      Export d'un rapport financier
// @Description  Produit le rapport demandé en PDF, XLSX ou XML.
// @Tags         finance
// @Produce      application/pdf
// @Param        type       query  string  false  "overview | sales | royalties | partner_performance"  default(overview)
// @Param        format     query  string  false  "pdf | xlsx | xml"  default(pdf)
// @Param        startDate  query  string  false  "YYYY-MM-DD"
// @Param        endDate    query  string  false  "YYYY-MM-DD"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/finance/export [get]
func (h *FinanceHandler) Export(c *fiber.Ctx) error {
	reportType := c.Query("type", finance.ReportOverview)
	format := c.Query("format", "pdf")
	period := dto.PeriodDTO{StartDate: c.Query("startDate"), EndDate: c.Query("endDate")}

	start, end, err := finance.ParsePeriod(period.StartDate, period.EndDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Format de date invalide"})
	}

	result, err := h.uc.Export(c.Context(), reportType, format, period, start, end)
	if err != nil {
		return handleError(c, err)
	}

	c.Set(fiber.HeaderContentType, result.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+result.Filename+`"`)
	return c.Send(result.Content)
}
