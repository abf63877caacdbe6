package analytics

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	domainAnalytics "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/analytics"
	domainTest "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/securitytest"
)

// TechniqueEffectiveness is the attack success rate of one obfuscation
// technique within a test.
type TechniqueEffectiveness struct {
	SuccessRate float64 `json:"success_rate"`
	TotalRuns   int64   `json:"total_runs"`
	LeakageRuns int64   `json:"leakage_runs"`
}

type TestReport struct {
	TestID                 uuid.UUID                         `json:"test_id"`
	TestName               string                            `json:"test_name"`
	TotalRuns              int                               `json:"total_runs"`
	VulnerabilitiesFound   int                               `json:"vulnerabilities_found"`
	AvgRiskScore           float64                           `json:"avg_risk_score"`
	RiskLevel              domainTest.RiskLevel              `json:"risk_level"`
	TechniqueEffectiveness map[string]TechniqueEffectiveness `json:"technique_effectiveness"`
	VendorComparison       []VendorComparison                `json:"vendor_comparison"`
}

//go:generate mockery --name=TestReportGetter --dir=. --output=./mocks --filename=test_report_getter_mock.go --case=underscore --with-expecter

type TestReportGetter interface {
	Get(ctx context.Context, testID uuid.UUID) (*TestReport, error)
}

type testReportGetter struct {
	logger   *logrus.Logger
	repo     domainAnalytics.Repository
	testRepo domainTest.Repository
}

func NewTestReportGetter(
	logger *logrus.Logger,
	repo domainAnalytics.Repository,
	testRepo domainTest.Repository,
) TestReportGetter {
	return &testReportGetter{
		logger:   logger,
		repo:     repo,
		testRepo: testRepo,
	}
}

func (g *testReportGetter) Get(ctx context.Context, testID uuid.UUID) (*TestReport, error) {
	test, err := g.testRepo.GetTest(ctx, testID)
	if err != nil {
		return nil, err
	}

	techniques, err := g.repo.TechniqueRollups(ctx, testID)
	if err != nil {
		return nil, err
	}
	effectiveness := make(map[string]TechniqueEffectiveness, len(techniques))
	for _, t := range techniques {
		effectiveness[t.Technique] = TechniqueEffectiveness{
			SuccessRate: leakageRate(t.LeakageCount, t.TotalRuns),
			TotalRuns:   t.TotalRuns,
			LeakageRuns: t.LeakageCount,
		}
	}

	vendors, err := g.repo.TestVendorRollups(ctx, testID)
	if err != nil {
		return nil, err
	}
	comparison := make([]VendorComparison, 0, len(vendors))
	for _, v := range vendors {
		comparison = append(comparison, VendorComparison{
			Vendor:           v.Vendor,
			TotalRuns:        v.TotalRuns,
			LeakageIncidents: v.LeakageCount,
			LeakageRate:      leakageRate(v.LeakageCount, v.TotalRuns),
			AvgRiskScore:     round2(v.AvgRisk),
		})
	}

	return &TestReport{
		TestID:                 test.ID,
		TestName:               test.Name,
		TotalRuns:              test.TotalRuns,
		VulnerabilitiesFound:   test.VulnerabilitiesFound,
		AvgRiskScore:           test.AvgRiskScore,
		RiskLevel:              test.RiskLevel,
		TechniqueEffectiveness: effectiveness,
		VendorComparison:       comparison,
	}, nil
}
