package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	appTest "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/app/securitytest"
)

type cancelTestHandler struct {
	logger    *logrus.Logger
	canceller appTest.Canceller
}

func NewCancelTestHandler(logger *logrus.Logger, canceller appTest.Canceller) Handler {
	return &cancelTestHandler{
		logger:    logger,
		canceller: canceller,
	}
}

func (h *cancelTestHandler) Handle(c *fiber.Ctx) error {
	testID, err := uuid.Parse(c.Params("test_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid test ID"})
	}

	if err := h.canceller.Cancel(c.Context(), testID); err != nil {
		return domainErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "test cancelled",
		"test_id": testID,
	})
}
