package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/obame-dev/editions-api/internal/application/dto"
	"github.com/obame-dev/editions-api/internal/application/usecase"
)

// WorkHandler gère le catalogue d'œuvres.
type WorkHandler struct {
	uc *usecase.WorkUseCase
}

func NewWorkHandler(uc *usecase.WorkUseCase) *WorkHandler {
	return &WorkHandler{uc: uc}
}

// Create godoc
// @Summary      Ajouter une œuvre
// @Tags         works
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWorkRequest  true  "œuvre"
// @Success      201   {object}  dto.WorkResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/works [post]
func (h *WorkHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWorkRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Modifier une œuvre
// @Tags         works
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "id de l'œuvre"
// @Param        body  body  dto.UpdateWorkRequest  true  "champs à modifier"
// @Success      200   {object}  dto.WorkResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/works/{id} [put]
func (h *WorkHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateWorkRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Consulter une œuvre
// @Tags         works
// @Produce      json
// @Param        id  path  string  true  "id de l'œuvre"
// @Success      200  {object}  dto.WorkResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/works/{id} [get]
func (h *WorkHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Lister le catalogue
// @Tags         works
// @Produce      json
// @Param        disciplineId  query  string  false  "filtre par discipline"
// @Success      200  {array}  dto.WorkResponse
// @Security     BearerAuth
// @Router       /api/works [get]
func (h *WorkHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("disciplineId"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
