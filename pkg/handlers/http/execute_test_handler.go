package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	appTest "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/app/securitytest"
)

type executeTestHandler struct {
	logger    *logrus.Logger
	scheduler appTest.Scheduler
}

func NewExecuteTestHandler(logger *logrus.Logger, scheduler appTest.Scheduler) Handler {
	return &executeTestHandler{
		logger:    logger,
		scheduler: scheduler,
	}
}

func (h *executeTestHandler) Handle(c *fiber.Ctx) error {
	testID, err := uuid.Parse(c.Params("test_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid test ID"})
	}

	jobs, err := h.scheduler.Schedule(c.Context(), testID)
	if err != nil {
		h.logger.WithError(err).Error("failed to schedule test runs")
		return domainErrorResponse(c, err)
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"test_id":       testID,
		"jobs_enqueued": jobs,
	})
}
