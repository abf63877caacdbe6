package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain"
)

const ErrInvalidJsonPayload = "invalid json payload"

// domainErrorResponse maps domain errors to HTTP status codes. NotFound is a
// 404, a rejected state transition is a 409; anything else is a 500 with the
// bare error text.
func domainErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case domain.IsNotFoundError(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case domain.IsInvalidStateError(err):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
