package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	appAnalytics "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/app/analytics"
)

type testAnalyticsHandler struct {
	logger *logrus.Logger
	getter appAnalytics.TestReportGetter
}

func NewTestAnalyticsHandler(logger *logrus.Logger, getter appAnalytics.TestReportGetter) Handler {
	return &testAnalyticsHandler{
		logger: logger,
		getter: getter,
	}
}

func (h *testAnalyticsHandler) Handle(c *fiber.Ctx) error {
	testID, err := uuid.Parse(c.Params("test_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid test ID"})
	}

	report, err := h.getter.Get(c.Context(), testID)
	if err != nil {
		return domainErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(report)
}
