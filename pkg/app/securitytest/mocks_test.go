package securitytest

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	domainScenario "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/scenario"
	domainTest "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/securitytest"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

// mockTestRepository is a mock for the security test repository
type mockTestRepository struct {
	mock.Mock
}

func (m *mockTestRepository) SaveTest(ctx context.Context, test *domainTest.SecurityTest) error {
	args := m.Called(ctx, test)
	return args.Error(0)
}

func (m *mockTestRepository) GetTest(ctx context.Context, id uuid.UUID) (*domainTest.SecurityTest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	test, ok := args.Get(0).(*domainTest.SecurityTest)
	if !ok {
		return nil, args.Error(1)
	}
	return test, args.Error(1)
}

func (m *mockTestRepository) ListTests(ctx context.Context) ([]domainTest.SecurityTest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	tests, _ := args.Get(0).([]domainTest.SecurityTest)
	return tests, args.Error(1)
}

func (m *mockTestRepository) DeleteTest(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockTestRepository) ListBaselinePrompts(ctx context.Context, testID uuid.UUID) ([]domainTest.BaselinePrompt, error) {
	args := m.Called(ctx, testID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	prompts, _ := args.Get(0).([]domainTest.BaselinePrompt)
	return prompts, args.Error(1)
}

func (m *mockTestRepository) SaveVariants(ctx context.Context, variants []domainTest.StyleVariant) error {
	args := m.Called(ctx, variants)
	return args.Error(0)
}

func (m *mockTestRepository) GetVariant(ctx context.Context, id uuid.UUID) (*domainTest.StyleVariant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	v, _ := args.Get(0).(*domainTest.StyleVariant)
	return v, args.Error(1)
}

func (m *mockTestRepository) ListVariants(ctx context.Context, testID uuid.UUID) ([]domainTest.StyleVariant, error) {
	args := m.Called(ctx, testID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	variants, _ := args.Get(0).([]domainTest.StyleVariant)
	return variants, args.Error(1)
}

func (m *mockTestRepository) TestForVariant(ctx context.Context, variantID uuid.UUID) (*domainTest.SecurityTest, error) {
	args := m.Called(ctx, variantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	test, _ := args.Get(0).(*domainTest.SecurityTest)
	return test, args.Error(1)
}

func (m *mockTestRepository) SaveRun(ctx context.Context, run *domainTest.ModelRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *mockTestRepository) GetRun(ctx context.Context, id uuid.UUID) (*domainTest.ModelRun, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	run, _ := args.Get(0).(*domainTest.ModelRun)
	return run, args.Error(1)
}

func (m *mockTestRepository) SaveEvaluation(ctx context.Context, score *domainTest.EvaluationScore) error {
	args := m.Called(ctx, score)
	return args.Error(0)
}

func (m *mockTestRepository) RunRollups(ctx context.Context, testID uuid.UUID) ([]domainTest.RunRollup, error) {
	args := m.Called(ctx, testID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	rollups, _ := args.Get(0).([]domainTest.RunRollup)
	return rollups, args.Error(1)
}

// UpdateSummary applies the callback to the stored test so the tests can
// observe the mutation the same way the real repository persists it.
func (m *mockTestRepository) UpdateSummary(
	ctx context.Context,
	testID uuid.UUID,
	apply func(test *domainTest.SecurityTest) error,
) (*domainTest.SecurityTest, error) {
	args := m.Called(ctx, testID, apply)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	test, _ := args.Get(0).(*domainTest.SecurityTest)
	if err := apply(test); err != nil {
		return nil, err
	}
	return test, args.Error(1)
}

// mockScenarioRepository is a mock for the attack scenario repository
type mockScenarioRepository struct {
	mock.Mock
}

func (m *mockScenarioRepository) Save(ctx context.Context, scenario *domainScenario.AttackScenario) error {
	args := m.Called(ctx, scenario)
	return args.Error(0)
}

func (m *mockScenarioRepository) GetByScenarioID(ctx context.Context, scenarioID string) (*domainScenario.AttackScenario, error) {
	args := m.Called(ctx, scenarioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	s, _ := args.Get(0).(*domainScenario.AttackScenario)
	return s, args.Error(1)
}

func (m *mockScenarioRepository) List(ctx context.Context) ([]domainScenario.AttackScenario, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	scenarios, _ := args.Get(0).([]domainScenario.AttackScenario)
	return scenarios, args.Error(1)
}

// mockRunEnqueuer is a mock for the scheduler's queue dependency
type mockRunEnqueuer struct {
	mock.Mock
}

func (m *mockRunEnqueuer) EnqueueRun(ctx context.Context, testID, variantID uuid.UUID, model domainTest.ModelConfig) error {
	args := m.Called(ctx, testID, variantID, model)
	return args.Error(0)
}

// mockRunEvaluator is a mock for the run evaluator
type mockRunEvaluator struct {
	mock.Mock
}

func (m *mockRunEvaluator) Evaluate(ctx context.Context, runID uuid.UUID) (*domainTest.EvaluationScore, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	score, _ := args.Get(0).(*domainTest.EvaluationScore)
	return score, args.Error(1)
}
