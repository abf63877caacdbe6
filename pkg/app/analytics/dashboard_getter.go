package analytics

import (
	"context"
	"math"

	"github.com/sirupsen/logrus"
	domainAnalytics "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/analytics"
)

// VendorComparison is the leakage record of one vendor (optionally one
// model) across evaluated runs.
type VendorComparison struct {
	Vendor           string  `json:"vendor"`
	Model            string  `json:"model,omitempty"`
	TotalRuns        int64   `json:"total_runs"`
	LeakageIncidents int64   `json:"leakage_incidents"`
	LeakageRate      float64 `json:"leakage_rate"`
	AvgRiskScore     float64 `json:"avg_risk_score,omitempty"`
}

type RiskLevelCount struct {
	Level string `json:"level"`
	Count int64  `json:"count"`
}

type Dashboard struct {
	Summary          domainAnalytics.DashboardTotals `json:"summary"`
	VendorComparison []VendorComparison              `json:"vendor_comparison"`
	RiskDistribution []RiskLevelCount                `json:"risk_distribution"`
}

//go:generate mockery --name=DashboardGetter --dir=. --output=./mocks --filename=dashboard_getter_mock.go --case=underscore --with-expecter

type DashboardGetter interface {
	Get(ctx context.Context) (*Dashboard, error)
}

type dashboardGetter struct {
	logger *logrus.Logger
	repo   domainAnalytics.Repository
}

func NewDashboardGetter(logger *logrus.Logger, repo domainAnalytics.Repository) DashboardGetter {
	return &dashboardGetter{
		logger: logger,
		repo:   repo,
	}
}

func (g *dashboardGetter) Get(ctx context.Context) (*Dashboard, error) {
	totals, err := g.repo.Totals(ctx)
	if err != nil {
		return nil, err
	}
	totals.AvgRiskScore = round2(totals.AvgRiskScore)

	rollups, err := g.repo.VendorRollups(ctx)
	if err != nil {
		return nil, err
	}
	comparison := make([]VendorComparison, 0, len(rollups))
	for _, r := range rollups {
		comparison = append(comparison, VendorComparison{
			Vendor:           r.Vendor,
			TotalRuns:        r.TotalRuns,
			LeakageIncidents: r.LeakageCount,
			LeakageRate:      leakageRate(r.LeakageCount, r.TotalRuns),
		})
	}

	buckets, err := g.repo.RiskDistribution(ctx)
	if err != nil {
		return nil, err
	}
	distribution := make([]RiskLevelCount, 0, len(buckets))
	for _, b := range buckets {
		distribution = append(distribution, RiskLevelCount{Level: b.Level, Count: b.Count})
	}

	return &Dashboard{
		Summary:          *totals,
		VendorComparison: comparison,
		RiskDistribution: distribution,
	}, nil
}

func leakageRate(leakage, total int64) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(leakage) / float64(total) * 100)
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
