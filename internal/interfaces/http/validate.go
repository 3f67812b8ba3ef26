package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/obame-dev/editions-api/internal/application/dto"
)

var validate = validator.New()

// parseBody décode le corps JSON puis applique les tags validate du DTO.
// Retourne false si une réponse 400 a déjà été écrite.
func parseBody(c *fiber.Ctx, out any) bool {
	if err := c.BodyParser(out); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Corps de requête invalide"})
		return false
	}
	if err := validate.Struct(out); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Validation échouée : " + err.Error()})
		return false
	}
	return true
}
