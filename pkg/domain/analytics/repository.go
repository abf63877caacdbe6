package analytics

import (
	"context"

	"github.com/google/uuid"
)

// DashboardTotals are the platform-wide headline numbers.
type DashboardTotals struct {
	TotalTests           int64   `json:"total_tests"`
	CompletedTests       int64   `json:"completed_tests"`
	TotalVulnerabilities int64   `json:"total_vulnerabilities"`
	AvgRiskScore         float64 `json:"avg_risk_score"`
}

// VendorRollup aggregates evaluated runs for one vendor, optionally per model.
type VendorRollup struct {
	Vendor       string
	Model        string
	TotalRuns    int64
	LeakageCount int64
	AvgRisk      float64
	MaxRisk      float64
}

// RiskBucket counts evaluations at one risk level.
type RiskBucket struct {
	Level string
	Count int64
}

// TechniqueRollup aggregates evaluated runs per obfuscation technique within
// a single test.
type TechniqueRollup struct {
	Technique    string
	TotalRuns    int64
	LeakageCount int64
}

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=analytics_repository_mock.go --case=underscore --with-expecter

type Repository interface {
	Totals(ctx context.Context) (*DashboardTotals, error)
	// VendorRollups groups evaluated runs by vendor across all tests.
	VendorRollups(ctx context.Context) ([]VendorRollup, error)
	// ModelRollups groups evaluated runs by (vendor, model) across all tests.
	ModelRollups(ctx context.Context) ([]VendorRollup, error)
	RiskDistribution(ctx context.Context) ([]RiskBucket, error)
	TechniqueRollups(ctx context.Context, testID uuid.UUID) ([]TechniqueRollup, error)
	TestVendorRollups(ctx context.Context, testID uuid.UUID) ([]VendorRollup, error)
}
