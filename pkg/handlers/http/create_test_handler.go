package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	appTest "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/app/securitytest"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/config"
	domainTest "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/securitytest"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/handlers/http/request"
)

type createTestHandler struct {
	logger   *logrus.Logger
	creator  appTest.Creator
	expander appTest.VariantExpander
	cfg      config.ExecutionConfig
}

func NewCreateTestHandler(
	logger *logrus.Logger,
	creator appTest.Creator,
	expander appTest.VariantExpander,
	cfg config.ExecutionConfig,
) Handler {
	return &createTestHandler{
		logger:   logger,
		creator:  creator,
		expander: expander,
		cfg:      cfg,
	}
}

func (h *createTestHandler) Handle(c *fiber.Ctx) error {
	var req request.CreateTestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(h.cfg.MaxBaselinePrompts); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	countPerTechnique := req.VariantsPerTechnique
	if countPerTechnique <= 0 {
		countPerTechnique = h.cfg.DefaultVariantsPerTechnique
	}

	models := make([]domainTest.ModelConfig, 0, len(req.TargetModels))
	for _, m := range req.TargetModels {
		models = append(models, domainTest.ModelConfig{
			Vendor:   m.Vendor,
			Model:    m.Model,
			Category: m.Category,
			Options:  m.Options,
		})
	}

	test, err := h.creator.Create(c.Context(), appTest.CreateTestInput{
		Name:                 req.Name,
		Description:          req.Description,
		ScenarioID:           req.ScenarioID,
		BaselinePrompts:      req.BaselinePrompts,
		Techniques:           req.Techniques,
		TargetModels:         models,
		VariantsPerTechnique: countPerTechnique,
	})
	if err != nil {
		h.logger.WithError(err).Error("failed to create security test")
		return domainErrorResponse(c, err)
	}

	variantCount, err := h.expander.Expand(c.Context(), test.ID, countPerTechnique)
	if err != nil {
		h.logger.WithError(err).Error("failed to generate style variants")
		return domainErrorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"test":           test,
		"total_variants": variantCount,
	})
}
