package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/scenario"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/infra/seed"
)

type listScenariosHandler struct {
	logger *logrus.Logger
	repo   scenario.Repository
}

func NewListScenariosHandler(logger *logrus.Logger, repo scenario.Repository) Handler {
	return &listScenariosHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *listScenariosHandler) Handle(c *fiber.Ctx) error {
	scenarios, err := h.repo.List(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to list attack scenarios")
		return domainErrorResponse(c, err)
	}

	out := make([]fiber.Map, 0, len(scenarios))
	for _, s := range scenarios {
		out = append(out, fiber.Map{
			"id":                    s.ID,
			"scenario_id":           s.ScenarioID,
			"name":                  s.Name,
			"description":           s.Description,
			"target_model_category": s.TargetModelCategory,
			"compliance_frameworks": s.ComplianceFrameworks,
			"attack_techniques":     s.AttackTechniques,
			"vendor_promise_tested": s.VendorPromiseTested,
			"default_prompts":       seed.DefaultBaselinePrompts[s.ScenarioID],
		})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}
