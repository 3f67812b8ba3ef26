package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/obame-dev/editions-api/internal/application/dto"
	"github.com/obame-dev/editions-api/internal/application/usecase"
)

// DisciplineHandler gère les disciplines du catalogue.
type DisciplineHandler struct {
	uc *usecase.DisciplineUseCase
}

func NewDisciplineHandler(uc *usecase.DisciplineUseCase) *DisciplineHandler {
	return &DisciplineHandler{uc: uc}
}

// Create godoc
// @Summary      Ajouter une discipline
// @Tags         disciplines
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDisciplineRequest  true  "discipline"
// @Success      201   {object}  dto.DisciplineResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/disciplines [post]
func (h *DisciplineHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDisciplineRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Lister les disciplines
// @Tags         disciplines
// @Produce      json
// @Success      200  {array}  dto.DisciplineResponse
// @Security     BearerAuth
// @Router       /api/disciplines [get]
func (h *DisciplineHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
