package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	appAnalytics "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/app/analytics"
)

type vendorComparisonHandler struct {
	logger *logrus.Logger
	getter appAnalytics.VendorComparisonGetter
}

func NewVendorComparisonHandler(logger *logrus.Logger, getter appAnalytics.VendorComparisonGetter) Handler {
	return &vendorComparisonHandler{
		logger: logger,
		getter: getter,
	}
}

func (h *vendorComparisonHandler) Handle(c *fiber.Ctx) error {
	vendors, err := h.getter.Get(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to compute vendor comparison")
		return domainErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"vendors": vendors})
}
