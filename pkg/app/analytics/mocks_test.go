package analytics

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	domainAnalytics "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/analytics"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

type mockAnalyticsRepository struct {
	mock.Mock
}

func (m *mockAnalyticsRepository) Totals(ctx context.Context) (*domainAnalytics.DashboardTotals, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	totals, _ := args.Get(0).(*domainAnalytics.DashboardTotals)
	return totals, args.Error(1)
}

func (m *mockAnalyticsRepository) VendorRollups(ctx context.Context) ([]domainAnalytics.VendorRollup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	rollups, _ := args.Get(0).([]domainAnalytics.VendorRollup)
	return rollups, args.Error(1)
}

func (m *mockAnalyticsRepository) ModelRollups(ctx context.Context) ([]domainAnalytics.VendorRollup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	rollups, _ := args.Get(0).([]domainAnalytics.VendorRollup)
	return rollups, args.Error(1)
}

func (m *mockAnalyticsRepository) RiskDistribution(ctx context.Context) ([]domainAnalytics.RiskBucket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	buckets, _ := args.Get(0).([]domainAnalytics.RiskBucket)
	return buckets, args.Error(1)
}

func (m *mockAnalyticsRepository) TechniqueRollups(ctx context.Context, testID uuid.UUID) ([]domainAnalytics.TechniqueRollup, error) {
	args := m.Called(ctx, testID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	rollups, _ := args.Get(0).([]domainAnalytics.TechniqueRollup)
	return rollups, args.Error(1)
}

func (m *mockAnalyticsRepository) TestVendorRollups(ctx context.Context, testID uuid.UUID) ([]domainAnalytics.VendorRollup, error) {
	args := m.Called(ctx, testID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	rollups, _ := args.Get(0).([]domainAnalytics.VendorRollup)
	return rollups, args.Error(1)
}
