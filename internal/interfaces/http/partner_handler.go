package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/obame-dev/editions-api/internal/application/dto"
	"github.com/obame-dev/editions-api/internal/application/usecase"
)

// PartnerHandler gère les partenaires revendeurs.
type PartnerHandler struct {
	uc *usecase.PartnerUseCase
}

func NewPartnerHandler(uc *usecase.PartnerUseCase) *PartnerHandler {
	return &PartnerHandler{uc: uc}
}

// Create godoc
// @Summary      Enregistrer un partenaire
// @Tags         partners
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartnerRequest  true  "partenaire"
// @Success      201   {object}  dto.PartnerResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/partners [post]
func (h *PartnerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePartnerRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Consulter un partenaire
// @Tags         partners
// @Produce      json
// @Param        id  path  string  true  "id du partenaire"
// @Success      200  {object}  dto.PartnerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/partners/{id} [get]
func (h *PartnerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Lister les partenaires
// @Tags         partners
// @Produce      json
// @Success      200  {array}  dto.PartnerResponse
// @Security     BearerAuth
// @Router       /api/partners [get]
func (h *PartnerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Changer le statut d'un partenaire
// @Description  Change le statut de l'utilisateur lié, dont dérive l'activité du partenaire.
// @Tags         partners
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "id du partenaire"
// @Param        body  body  dto.UpdatePartnerRequest  true  "nouveau statut"
// @Success      200   {object}  dto.PartnerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/partners/{id} [put]
func (h *PartnerHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdatePartnerRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.UpdateStatus(c.Context(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
