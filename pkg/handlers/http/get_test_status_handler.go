package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	appTest "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/app/securitytest"
)

type getTestStatusHandler struct {
	logger  *logrus.Logger
	updater appTest.StatusUpdater
}

func NewGetTestStatusHandler(logger *logrus.Logger, updater appTest.StatusUpdater) Handler {
	return &getTestStatusHandler{
		logger:  logger,
		updater: updater,
	}
}

func (h *getTestStatusHandler) Handle(c *fiber.Ctx) error {
	testID, err := uuid.Parse(c.Params("test_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid test ID"})
	}

	summary, err := h.updater.Update(c.Context(), testID)
	if err != nil {
		return domainErrorResponse(c, err)
	}

	progress := 0
	if summary.TotalRuns > 0 {
		progress = summary.RunsCompleted * 100 / summary.TotalRuns
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"test_id": summary.TestID,
		"status":  summary.Status,
		"progress": fiber.Map{
			"percent_complete": progress,
			"runs_completed":   summary.RunsCompleted,
			"total_runs":       summary.TotalRuns,
		},
		"results_summary": fiber.Map{
			"vulnerabilities_found": summary.VulnerabilitiesFound,
			"avg_risk_score":        summary.AvgRiskScore,
			"risk_level":            summary.RiskLevel,
		},
	})
}
