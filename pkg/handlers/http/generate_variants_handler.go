package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	appTest "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/app/securitytest"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/config"
)

type generateVariantsHandler struct {
	logger   *logrus.Logger
	expander appTest.VariantExpander
	cfg      config.ExecutionConfig
}

func NewGenerateVariantsHandler(
	logger *logrus.Logger,
	expander appTest.VariantExpander,
	cfg config.ExecutionConfig,
) Handler {
	return &generateVariantsHandler{
		logger:   logger,
		expander: expander,
		cfg:      cfg,
	}
}

func (h *generateVariantsHandler) Handle(c *fiber.Ctx) error {
	testID, err := uuid.Parse(c.Params("test_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid test ID"})
	}

	count := c.QueryInt("count", h.cfg.DefaultVariantsPerTechnique)
	if count <= 0 {
		count = h.cfg.DefaultVariantsPerTechnique
	}

	variantCount, err := h.expander.Expand(c.Context(), testID, count)
	if err != nil {
		h.logger.WithError(err).Error("failed to generate style variants")
		return domainErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"test_id":        testID,
		"total_variants": variantCount,
	})
}
