package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	appAnalytics "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/app/analytics"
)

type dashboardAnalyticsHandler struct {
	logger *logrus.Logger
	getter appAnalytics.DashboardGetter
}

func NewDashboardAnalyticsHandler(logger *logrus.Logger, getter appAnalytics.DashboardGetter) Handler {
	return &dashboardAnalyticsHandler{
		logger: logger,
		getter: getter,
	}
}

func (h *dashboardAnalyticsHandler) Handle(c *fiber.Ctx) error {
	dashboard, err := h.getter.Get(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to compute dashboard analytics")
		return domainErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dashboard)
}
