package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/obame-dev/editions-api/internal/application/dto"
	"github.com/obame-dev/editions-api/internal/application/finance"
	"github.com/obame-dev/editions-api/internal/application/usecase"
)

// RoyaltyHandler gère le calcul et le paiement des droits d'auteur.
type RoyaltyHandler struct {
	uc *usecase.RoyaltyUseCase
}

func NewRoyaltyHandler(uc *usecase.RoyaltyUseCase) *RoyaltyHandler {
	return &RoyaltyHandler{uc: uc}
}

// Calculate godoc
// @Summary      Calculer les droits d'une période
// @Description  Génère un droit par bénéficiaire : taux × CA livré de chaque œuvre.
// @Tags         royalties
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CalculateRoyaltiesRequest  true  "période et taux"
// @Success      201   {array}   dto.RoyaltyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/royalties/calculate [post]
func (h *RoyaltyHandler) Calculate(c *fiber.Ctx) error {
	var in dto.CalculateRoyaltiesRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Calculate(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Pay godoc
// @Summary      Payer des droits
// @Tags         royalties
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PayRoyaltiesRequest  true  "ids des droits"
// @Success      204   "payé"
// @Failure      400   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/royalties/pay [post]
func (h *RoyaltyHandler) Pay(c *fiber.Ctx) error {
	var in dto.PayRoyaltiesRequest
	if !parseBody(c, &in) {
		return nil
	}
	if err := h.uc.Pay(c.Context(), in); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Lister les droits
// @Tags         royalties
// @Produce      json
// @Param        startDate  query  string  false  "YYYY-MM-DD"
// @Param        endDate    query  string  false  "YYYY-MM-DD"
// @Param        unpaid     query  bool    false  "uniquement les impayés"
// @Success      200  {array}  dto.RoyaltyResponse
// @Security     BearerAuth
// @Router       /api/royalties [get]
func (h *RoyaltyHandler) List(c *fiber.Ctx) error {
	start, end, err := finance.ParsePeriod(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Format de date invalide"})
	}
	out, err := h.uc.List(c.Context(), start, end, c.QueryBool("unpaid"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
