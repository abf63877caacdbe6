package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	appTest "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/app/securitytest"
	domainTest "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/securitytest"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/handlers/http/request"
)

type executeVariantHandler struct {
	logger   *logrus.Logger
	executor appTest.RunExecutor
	updater  appTest.StatusUpdater
	repo     domainTest.Repository
}

// NewExecuteVariantHandler runs a single (variant, model) pair synchronously,
// bypassing the queue. Useful for spot checks and demos.
func NewExecuteVariantHandler(
	logger *logrus.Logger,
	executor appTest.RunExecutor,
	updater appTest.StatusUpdater,
	repo domainTest.Repository,
) Handler {
	return &executeVariantHandler{
		logger:   logger,
		executor: executor,
		updater:  updater,
		repo:     repo,
	}
}

func (h *executeVariantHandler) Handle(c *fiber.Ctx) error {
	variantID, err := uuid.Parse(c.Params("variant_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid variant ID"})
	}

	var req request.ExecuteVariantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	run, err := h.executor.Execute(c.Context(), variantID, domainTest.ModelConfig{
		Vendor:   req.Model.Vendor,
		Model:    req.Model.Model,
		Category: req.Model.Category,
		Options:  req.Model.Options,
	})
	if err != nil {
		h.logger.WithError(err).Error("failed to execute model run")
		return domainErrorResponse(c, err)
	}

	if test, err := h.repo.TestForVariant(c.Context(), variantID); err == nil {
		if _, err := h.updater.Update(c.Context(), test.ID); err != nil {
			h.logger.WithError(err).WithField("test_id", test.ID).Error("failed to update test status")
		}
	}

	return c.Status(fiber.StatusOK).JSON(run)
}
