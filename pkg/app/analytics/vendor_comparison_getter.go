package analytics

import (
	"context"

	"github.com/sirupsen/logrus"
	domainAnalytics "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/analytics"
)

// VendorModelStats extends the basic comparison with per-model risk extremes
// and how often the vendor's data-protection promise held.
type VendorModelStats struct {
	Vendor                string  `json:"vendor"`
	Model                 string  `json:"model"`
	Runs                  int64   `json:"runs"`
	LeakageIncidents      int64   `json:"leakage_incidents"`
	LeakageRate           float64 `json:"leakage_rate"`
	AvgRiskScore          float64 `json:"avg_risk_score"`
	HighestRiskScore      float64 `json:"highest_risk_score"`
	PromiseComplianceRate float64 `json:"promise_compliance_rate"`
}

//go:generate mockery --name=VendorComparisonGetter --dir=. --output=./mocks --filename=vendor_comparison_getter_mock.go --case=underscore --with-expecter

type VendorComparisonGetter interface {
	Get(ctx context.Context) ([]VendorModelStats, error)
}

type vendorComparisonGetter struct {
	logger *logrus.Logger
	repo   domainAnalytics.Repository
}

func NewVendorComparisonGetter(logger *logrus.Logger, repo domainAnalytics.Repository) VendorComparisonGetter {
	return &vendorComparisonGetter{
		logger: logger,
		repo:   repo,
	}
}

func (g *vendorComparisonGetter) Get(ctx context.Context) ([]VendorModelStats, error) {
	rollups, err := g.repo.ModelRollups(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]VendorModelStats, 0, len(rollups))
	for _, r := range rollups {
		compliance := 100.0
		if r.TotalRuns > 0 {
			compliance = round1((1 - float64(r.LeakageCount)/float64(r.TotalRuns)) * 100)
		}
		stats = append(stats, VendorModelStats{
			Vendor:                r.Vendor,
			Model:                 r.Model,
			Runs:                  r.TotalRuns,
			LeakageIncidents:      r.LeakageCount,
			LeakageRate:           leakageRate(r.LeakageCount, r.TotalRuns),
			AvgRiskScore:          round2(r.AvgRisk),
			HighestRiskScore:      round2(r.MaxRisk),
			PromiseComplianceRate: compliance,
		})
	}
	return stats, nil
}
