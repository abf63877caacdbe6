package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	appTest "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/app/securitytest"
)

type evaluateRunHandler struct {
	logger    *logrus.Logger
	evaluator appTest.RunEvaluator
}

func NewEvaluateRunHandler(logger *logrus.Logger, evaluator appTest.RunEvaluator) Handler {
	return &evaluateRunHandler{
		logger:    logger,
		evaluator: evaluator,
	}
}

func (h *evaluateRunHandler) Handle(c *fiber.Ctx) error {
	runID, err := uuid.Parse(c.Params("run_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid run ID"})
	}

	score, err := h.evaluator.Evaluate(c.Context(), runID)
	if err != nil {
		h.logger.WithError(err).Error("failed to evaluate model run")
		return domainErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(score)
}
