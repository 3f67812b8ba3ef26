package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/obame-dev/editions-api/internal/application/dto"
	"github.com/obame-dev/editions-api/internal/application/finance"
	"github.com/obame-dev/editions-api/internal/application/usecase"
	"github.com/obame-dev/editions-api/internal/domain/repository"
)

// OrderHandler gère les commandes.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Créer une commande
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "commande"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateStatus godoc
// @Summary      Changer le statut d'une commande
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "id de la commande"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "nouveau statut"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.UpdateStatus(c.Context(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Consulter une commande
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "id de la commande"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Lister les commandes
// @Tags         orders
// @Produce      json
// @Param        userId     query  string  false  "filtre par client"
// @Param        partnerId  query  string  false  "filtre par partenaire"
// @Param        status     query  string  false  "filtre par statut"
// @Param        startDate  query  string  false  "YYYY-MM-DD"
// @Param        endDate    query  string  false  "YYYY-MM-DD"
// @Param        limit      query  int     false  "pagination"
// @Param        offset     query  int     false  "pagination"
// @Success      200  {array}  dto.OrderResponse
// @Security     BearerAuth
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	start, end, err := finance.ParsePeriod(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Format de date invalide"})
	}

	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Paramètres de pagination invalides"})
	}
	page.DefaultPage()

	out, err := h.uc.List(c.Context(), repository.OrderFilter{
		UserID:    c.Query("userId"),
		PartnerID: c.Query("partnerId"),
		Status:    c.Query("status"),
		Start:     start,
		End:       end,
		Limit:     page.Limit,
		Offset:    page.Offset,
	})
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
