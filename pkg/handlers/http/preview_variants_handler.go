package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/app/variant"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/config"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/handlers/http/request"
)

type previewVariantsHandler struct {
	logger    *logrus.Logger
	generator variant.Generator
	cfg       config.ExecutionConfig
}

// NewPreviewVariantsHandler generates variants without persisting anything,
// so operators can inspect what a technique produces before running a test.
func NewPreviewVariantsHandler(
	logger *logrus.Logger,
	generator variant.Generator,
	cfg config.ExecutionConfig,
) Handler {
	return &previewVariantsHandler{
		logger:    logger,
		generator: generator,
		cfg:       cfg,
	}
}

func (h *previewVariantsHandler) Handle(c *fiber.Ctx) error {
	var req request.PreviewVariantsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	count := req.CountPerTechnique
	if count <= 0 {
		count = h.cfg.DefaultVariantsPerTechnique
	}

	variants := h.generator.Generate(req.Prompt, req.Techniques, count, req.ScenarioID)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"prompt":   req.Prompt,
		"variants": variants,
		"count":    len(variants),
	})
}
