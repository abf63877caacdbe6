package securitytest

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/app/scoring"
	domainTest "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/securitytest"
)

//go:generate mockery --name=StatusUpdater --dir=. --output=./mocks --filename=status_updater_mock.go --case=underscore --with-expecter

type StatusUpdater interface {
	Update(ctx context.Context, testID uuid.UUID) (*domainTest.TestSummary, error)
}

type statusUpdater struct {
	logger *logrus.Logger
	repo   domainTest.Repository
}

func NewStatusUpdater(logger *logrus.Logger, repo domainTest.Repository) StatusUpdater {
	return &statusUpdater{
		logger: logger,
		repo:   repo,
	}
}

// Update recomputes the test's aggregate from a full rescan of its runs. The
// rescan makes the recomputation idempotent: calling it again after all runs
// finished yields the same summary. Terminal tests keep their status, so a
// cancelled test never leaves FAILED.
func (u *statusUpdater) Update(ctx context.Context, testID uuid.UUID) (*domainTest.TestSummary, error) {
	rollups, err := u.repo.RunRollups(ctx, testID)
	if err != nil {
		return nil, err
	}

	completed := 0
	vulnerabilities := 0
	totalRisk := 0.0
	for _, rollup := range rollups {
		if rollup.Status != domainTest.RunCompleted {
			continue
		}
		completed++
		if rollup.LeakageDetected {
			vulnerabilities++
			totalRisk += rollup.RiskScore
		}
	}

	test, err := u.repo.UpdateSummary(ctx, testID, func(t *domainTest.SecurityTest) error {
		t.RunsCompleted = completed
		t.VulnerabilitiesFound = vulnerabilities
		if completed > 0 {
			t.AvgRiskScore = math.Round(totalRisk/float64(completed)*100) / 100
			t.RiskLevel = scoring.RiskLevelFor(t.AvgRiskScore)
		}

		if t.Status.Terminal() {
			return nil
		}

		now := time.Now()
		if completed >= t.TotalRuns {
			t.Status = domainTest.StatusCompleted
			t.CompletedAt = &now
		} else if completed > 0 {
			t.Status = domainTest.StatusRunning
			if t.StartedAt == nil {
				t.StartedAt = &now
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	summary := &domainTest.TestSummary{
		TestID:               test.ID,
		Status:               test.Status,
		RunsCompleted:        test.RunsCompleted,
		TotalRuns:            test.TotalRuns,
		VulnerabilitiesFound: test.VulnerabilitiesFound,
		AvgRiskScore:         test.AvgRiskScore,
		RiskLevel:            test.RiskLevel,
	}

	if summary.Status == domainTest.StatusCompleted {
		u.logger.WithFields(logrus.Fields{
			"test_id":         testID,
			"runs_completed":  summary.RunsCompleted,
			"vulnerabilities": summary.VulnerabilitiesFound,
			"avg_risk_score":  summary.AvgRiskScore,
		}).Info("security test completed")
	}

	return summary, nil
}
