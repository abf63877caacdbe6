package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	domainAnalytics "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/analytics"
)

func TestDashboardGetter_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("it should assemble the dashboard with rounded rates", func(t *testing.T) {
		repo := new(mockAnalyticsRepository)
		repo.On("Totals", ctx).Return(&domainAnalytics.DashboardTotals{
			TotalTests:           12,
			CompletedTests:       9,
			TotalVulnerabilities: 31,
			AvgRiskScore:         6.4567,
		}, nil)
		repo.On("VendorRollups", ctx).Return([]domainAnalytics.VendorRollup{
			{Vendor: "openai", TotalRuns: 30, LeakageCount: 10},
			{Vendor: "ollama", TotalRuns: 0, LeakageCount: 0},
		}, nil)
		repo.On("RiskDistribution", ctx).Return([]domainAnalytics.RiskBucket{
			{Level: "CRITICAL", Count: 4},
			{Level: "LOW", Count: 20},
		}, nil)

		dashboard, err := NewDashboardGetter(testLogger(), repo).Get(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(12), dashboard.Summary.TotalTests)
		assert.Equal(t, 6.46, dashboard.Summary.AvgRiskScore)
		assert.Len(t, dashboard.VendorComparison, 2)
		assert.Equal(t, 33.3, dashboard.VendorComparison[0].LeakageRate)
		// a vendor without evaluated runs reports a zero rate, not NaN
		assert.Equal(t, 0.0, dashboard.VendorComparison[1].LeakageRate)
		assert.Len(t, dashboard.RiskDistribution, 2)
		assert.Equal(t, int64(4), dashboard.RiskDistribution[0].Count)
	})

	t.Run("it should propagate a totals failure", func(t *testing.T) {
		repo := new(mockAnalyticsRepository)
		repo.On("Totals", ctx).Return(nil, assert.AnError)

		dashboard, err := NewDashboardGetter(testLogger(), repo).Get(ctx)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, dashboard)
	})
}

func TestLeakageRate(t *testing.T) {
	assert.Equal(t, 0.0, leakageRate(0, 0))
	assert.Equal(t, 50.0, leakageRate(1, 2))
	assert.Equal(t, 33.3, leakageRate(1, 3))
	assert.Equal(t, 66.7, leakageRate(2, 3))
	assert.Equal(t, 100.0, leakageRate(5, 5))
}
