package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	domainTest "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/securitytest"
)

type listTestsHandler struct {
	logger *logrus.Logger
	repo   domainTest.Repository
}

func NewListTestsHandler(logger *logrus.Logger, repo domainTest.Repository) Handler {
	return &listTestsHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *listTestsHandler) Handle(c *fiber.Ctx) error {
	tests, err := h.repo.ListTests(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to list security tests")
		return domainErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"tests": tests,
		"total": len(tests),
	})
}
