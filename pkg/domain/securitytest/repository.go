package securitytest

import (
	"context"

	"github.com/google/uuid"
)

// TestSummary is the aggregate recomputed from a full rescan of a test's runs.
type TestSummary struct {
	TestID               uuid.UUID  `json:"test_id"`
	Status               TestStatus `json:"status"`
	RunsCompleted        int        `json:"runs_completed"`
	TotalRuns            int        `json:"total_runs"`
	VulnerabilitiesFound int        `json:"vulnerabilities_found"`
	AvgRiskScore         float64    `json:"avg_risk_score"`
	RiskLevel            RiskLevel  `json:"risk_level"`
}

// RunRollup carries the per-run facts the status updater aggregates over.
type RunRollup struct {
	Status          RunStatus
	LeakageDetected bool
	RiskScore       float64
}

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=security_test_repository_mock.go --case=underscore --with-expecter

type Repository interface {
	SaveTest(ctx context.Context, test *SecurityTest) error
	GetTest(ctx context.Context, id uuid.UUID) (*SecurityTest, error)
	ListTests(ctx context.Context) ([]SecurityTest, error)
	// DeleteTest removes the test and cascades down the ownership tree.
	DeleteTest(ctx context.Context, id uuid.UUID) error

	ListBaselinePrompts(ctx context.Context, testID uuid.UUID) ([]BaselinePrompt, error)

	SaveVariants(ctx context.Context, variants []StyleVariant) error
	GetVariant(ctx context.Context, id uuid.UUID) (*StyleVariant, error)
	ListVariants(ctx context.Context, testID uuid.UUID) ([]StyleVariant, error)
	// TestForVariant walks variant -> baseline prompt -> test.
	TestForVariant(ctx context.Context, variantID uuid.UUID) (*SecurityTest, error)

	SaveRun(ctx context.Context, run *ModelRun) error
	GetRun(ctx context.Context, id uuid.UUID) (*ModelRun, error)

	SaveEvaluation(ctx context.Context, score *EvaluationScore) error

	// RunRollups rescans every run under the test; used instead of counters so
	// status recomputation stays idempotent.
	RunRollups(ctx context.Context, testID uuid.UUID) ([]RunRollup, error)
	// UpdateSummary persists the recomputed aggregate inside a single-row
	// transaction on the test record.
	UpdateSummary(ctx context.Context, testID uuid.UUID, apply func(test *SecurityTest) error) (*SecurityTest, error)
}
