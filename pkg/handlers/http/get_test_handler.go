package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	domainTest "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/securitytest"
)

type getTestHandler struct {
	logger *logrus.Logger
	repo   domainTest.Repository
}

func NewGetTestHandler(logger *logrus.Logger, repo domainTest.Repository) Handler {
	return &getTestHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *getTestHandler) Handle(c *fiber.Ctx) error {
	testID, err := uuid.Parse(c.Params("test_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid test ID"})
	}

	test, err := h.repo.GetTest(c.Context(), testID)
	if err != nil {
		return domainErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(test)
}
