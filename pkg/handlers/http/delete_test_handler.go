package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	appTest "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/app/securitytest"
)

type deleteTestHandler struct {
	logger  *logrus.Logger
	deleter appTest.Deleter
}

func NewDeleteTestHandler(logger *logrus.Logger, deleter appTest.Deleter) Handler {
	return &deleteTestHandler{
		logger:  logger,
		deleter: deleter,
	}
}

func (h *deleteTestHandler) Handle(c *fiber.Ctx) error {
	testID, err := uuid.Parse(c.Params("test_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid test ID"})
	}

	if err := h.deleter.Delete(c.Context(), testID); err != nil {
		h.logger.WithError(err).Error("failed to delete security test")
		return domainErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "test deleted successfully",
		"test_id": testID,
	})
}
