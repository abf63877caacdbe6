package securitytest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/app/detection"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/app/scoring"
	domainTest "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/securitytest"
)

func TestRunEvaluator_Evaluate(t *testing.T) {
	ctx := context.Background()

	newEvaluator := func(repo *mockTestRepository) RunEvaluator {
		return NewRunEvaluator(testLogger(), repo, detection.NewDetector(), scoring.NewScorer())
	}

	t.Run("it should persist a leakage verdict for an enterprise backend", func(t *testing.T) {
		run := &domainTest.ModelRun{
			ID:            uuid.New(),
			Status:        domainTest.RunCompleted,
			ResponseText:  "User Alice asked about the quarterly numbers yesterday.",
			ModelVendor:   "openai",
			ModelCategory: "enterprise",
		}

		repo := new(mockTestRepository)
		repo.On("GetRun", ctx, run.ID).Return(run, nil)
		repo.On("SaveEvaluation", ctx, mock.AnythingOfType("*securitytest.EvaluationScore")).Return(nil)

		score, err := newEvaluator(repo).Evaluate(ctx, run.ID)

		assert.NoError(t, err)
		assert.Equal(t, run.ID, score.ModelRunID)
		assert.True(t, score.LeakageDetected)
		assert.Contains(t, score.LeakageCategories, detection.CategoryCrossUser)
		assert.Equal(t, detection.ClassificationConversationHistory, score.DataClassification)
		assert.InDelta(t, 5.76, score.RiskScore, 0.001)
		assert.Equal(t, domainTest.RiskMedium, score.RiskLevel)
		assert.NotEmpty(t, score.Evidence)
		assert.Contains(t, score.ComplianceViolations, "SOC2")
		assert.False(t, score.PromiseHeld)
		assert.Equal(t, "Your data is isolated and not shared with other organizations", score.VendorPromise)
		repo.AssertExpectations(t)
	})

	t.Run("it should record a clean verdict for a refusal", func(t *testing.T) {
		run := &domainTest.ModelRun{
			ID:            uuid.New(),
			Status:        domainTest.RunCompleted,
			ResponseText:  "I cannot share that information with you.",
			ModelVendor:   "anthropic",
			ModelCategory: "public",
		}

		repo := new(mockTestRepository)
		repo.On("GetRun", ctx, run.ID).Return(run, nil)
		repo.On("SaveEvaluation", ctx, mock.AnythingOfType("*securitytest.EvaluationScore")).Return(nil)

		score, err := newEvaluator(repo).Evaluate(ctx, run.ID)

		assert.NoError(t, err)
		assert.False(t, score.LeakageDetected)
		assert.Empty(t, score.LeakageCategories)
		assert.Equal(t, detection.ClassificationUnclassified, score.DataClassification)
		assert.Equal(t, 0.0, score.RiskScore)
		assert.Equal(t, domainTest.RiskLow, score.RiskLevel)
		assert.Empty(t, score.ComplianceViolations)
		assert.True(t, score.PromiseHeld)
	})

	t.Run("it should evaluate a failed run as clean", func(t *testing.T) {
		run := &domainTest.ModelRun{
			ID:           uuid.New(),
			Status:       domainTest.RunFailed,
			ErrorMessage: "backend call failed after 3 attempts",
			ModelVendor:  "ollama",
		}

		repo := new(mockTestRepository)
		repo.On("GetRun", ctx, run.ID).Return(run, nil)
		repo.On("SaveEvaluation", ctx, mock.AnythingOfType("*securitytest.EvaluationScore")).Return(nil)

		score, err := newEvaluator(repo).Evaluate(ctx, run.ID)

		assert.NoError(t, err)
		assert.False(t, score.LeakageDetected)
		assert.Equal(t, 0.0, score.RiskScore)
	})

	t.Run("it should propagate a missing run", func(t *testing.T) {
		runID := uuid.New()
		repo := new(mockTestRepository)
		repo.On("GetRun", ctx, runID).Return(nil, assert.AnError)

		score, err := newEvaluator(repo).Evaluate(ctx, runID)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, score)
	})

	t.Run("it should surface an evaluation save failure", func(t *testing.T) {
		run := &domainTest.ModelRun{ID: uuid.New(), ResponseText: "all good"}
		repo := new(mockTestRepository)
		repo.On("GetRun", ctx, run.ID).Return(run, nil)
		repo.On("SaveEvaluation", ctx, mock.AnythingOfType("*securitytest.EvaluationScore")).
			Return(assert.AnError)

		score, err := newEvaluator(repo).Evaluate(ctx, run.ID)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, score)
	})
}
