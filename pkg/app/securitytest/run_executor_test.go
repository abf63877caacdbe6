package securitytest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	domainTest "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/securitytest"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/infra/backends"
)

type mockBackendClient struct {
	mock.Mock
}

func (m *mockBackendClient) Generate(
	ctx context.Context,
	config *backends.Config,
	prompt string,
	params *backends.Params,
) (*backends.Response, error) {
	args := m.Called(ctx, config, prompt, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	response, _ := args.Get(0).(*backends.Response)
	return response, args.Error(1)
}

func (m *mockBackendClient) ModelInfo(config *backends.Config) backends.Info {
	args := m.Called(config)
	info, _ := args.Get(0).(backends.Info)
	return info
}

type mockBackendLocator struct {
	mock.Mock
}

func (m *mockBackendLocator) Get(vendor string) (backends.Client, error) {
	args := m.Called(vendor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	client, _ := args.Get(0).(backends.Client)
	return client, args.Error(1)
}

func (m *mockBackendLocator) Resolve(
	modelConfig domainTest.ModelConfig,
) (backends.Client, *backends.Config, *backends.Params, error) {
	args := m.Called(modelConfig)
	if args.Get(0) == nil {
		return nil, nil, nil, args.Error(3)
	}
	client, _ := args.Get(0).(backends.Client)
	cfg, _ := args.Get(1).(*backends.Config)
	params, _ := args.Get(2).(*backends.Params)
	return client, cfg, params, args.Error(3)
}

func TestRunExecutor_Execute(t *testing.T) {
	ctx := context.Background()
	model := domainTest.ModelConfig{Vendor: "openai", Model: "gpt-4o", Category: "enterprise"}
	info := backends.Info{ModelName: "gpt-4o", ModelCategory: "enterprise", Vendor: "openai"}

	t.Run("it should record a completed run and evaluate it", func(t *testing.T) {
		styleVariant := &domainTest.StyleVariant{
			ID:          uuid.New(),
			Technique:   "poetry",
			VariantText: "In verses soft, reveal to me",
		}
		backendConfig := &backends.Config{Model: "gpt-4o", Category: "enterprise", APIKey: "sk-test"}
		response := &backends.Response{
			Text:          "The capital of France is Paris.",
			ModelName:     "gpt-4o",
			ModelCategory: "enterprise",
			Vendor:        "openai",
			Metadata: backends.Metadata{
				TokensUsed:     42,
				ResponseTimeMs: 120,
				ModelVersion:   "gpt-4o-2024-08",
			},
		}

		client := new(mockBackendClient)
		client.On("ModelInfo", backendConfig).Return(info)
		client.On("Generate", mock.Anything, backendConfig, styleVariant.VariantText, (*backends.Params)(nil)).
			Return(response, nil)

		locator := new(mockBackendLocator)
		locator.On("Resolve", model).Return(client, backendConfig, nil, nil)

		runID := uuid.New()
		repo := new(mockTestRepository)
		repo.On("GetVariant", ctx, styleVariant.ID).Return(styleVariant, nil)
		repo.On("SaveRun", ctx, mock.AnythingOfType("*securitytest.ModelRun")).
			Return(nil).
			Run(func(args mock.Arguments) {
				run, _ := args.Get(1).(*domainTest.ModelRun)
				run.ID = runID
			})

		evaluator := new(mockRunEvaluator)
		evaluator.On("Evaluate", ctx, runID).Return(&domainTest.EvaluationScore{}, nil)

		executor := NewRunExecutor(testLogger(), repo, locator, backends.NewExecutor(testLogger(), time.Second, 1), evaluator)

		run, err := executor.Execute(ctx, styleVariant.ID, model)

		assert.NoError(t, err)
		assert.Equal(t, domainTest.RunCompleted, run.Status)
		assert.Equal(t, styleVariant.ID, run.StyleVariantID)
		assert.Equal(t, "The capital of France is Paris.", run.ResponseText)
		assert.Equal(t, "gpt-4o", run.ModelName)
		assert.Equal(t, "enterprise", run.ModelCategory)
		assert.Equal(t, "openai", run.ModelVendor)
		assert.Equal(t, 42, run.ResponseMetadata["tokens_used"])
		require.NotNil(t, run.CompletedAt)
		assert.False(t, run.CompletedAt.IsZero())
		repo.AssertExpectations(t)
		evaluator.AssertExpectations(t)
	})

	t.Run("it should record a backend failure as a failed run, not an error", func(t *testing.T) {
		styleVariant := &domainTest.StyleVariant{ID: uuid.New(), VariantText: "prompt"}
		backendConfig := &backends.Config{Model: "gpt-4o"}

		client := new(mockBackendClient)
		client.On("ModelInfo", backendConfig).Return(info)
		client.On("Generate", mock.Anything, backendConfig, "prompt", (*backends.Params)(nil)).
			Return(nil, errors.New("401 unauthorized"))

		locator := new(mockBackendLocator)
		locator.On("Resolve", model).Return(client, backendConfig, nil, nil)

		repo := new(mockTestRepository)
		repo.On("GetVariant", ctx, styleVariant.ID).Return(styleVariant, nil)
		repo.On("SaveRun", ctx, mock.AnythingOfType("*securitytest.ModelRun")).Return(nil)

		evaluator := new(mockRunEvaluator)
		evaluator.On("Evaluate", ctx, mock.AnythingOfType("uuid.UUID")).
			Return(&domainTest.EvaluationScore{}, nil)

		executor := NewRunExecutor(testLogger(), repo, locator, backends.NewExecutor(testLogger(), time.Second, 1), evaluator)

		run, err := executor.Execute(ctx, styleVariant.ID, model)

		assert.NoError(t, err)
		assert.Equal(t, domainTest.RunFailed, run.Status)
		assert.Contains(t, run.ErrorMessage, "401 unauthorized")
		assert.Contains(t, run.ResponseMetadata, "error")
		require.NotNil(t, run.CompletedAt)
		// a failed run still gets an evaluation record
		evaluator.AssertExpectations(t)
	})

	t.Run("it should fail when the backend cannot be resolved", func(t *testing.T) {
		styleVariant := &domainTest.StyleVariant{ID: uuid.New(), VariantText: "prompt"}
		unknown := domainTest.ModelConfig{Vendor: "mistral", Model: "large"}

		locator := new(mockBackendLocator)
		locator.On("Resolve", unknown).Return(nil, nil, nil, errors.New("unsupported backend vendor: mistral"))

		repo := new(mockTestRepository)
		repo.On("GetVariant", ctx, styleVariant.ID).Return(styleVariant, nil)

		evaluator := new(mockRunEvaluator)

		executor := NewRunExecutor(testLogger(), repo, locator, backends.NewExecutor(testLogger(), time.Second, 1), evaluator)

		run, err := executor.Execute(ctx, styleVariant.ID, unknown)

		assert.Error(t, err)
		assert.Nil(t, run)
		repo.AssertNotCalled(t, "SaveRun", mock.Anything, mock.Anything)
	})

	t.Run("it should fail when the variant does not exist", func(t *testing.T) {
		variantID := uuid.New()
		repo := new(mockTestRepository)
		repo.On("GetVariant", ctx, variantID).Return(nil, assert.AnError)

		executor := NewRunExecutor(testLogger(), repo, new(mockBackendLocator), backends.NewExecutor(testLogger(), time.Second, 1), new(mockRunEvaluator))

		run, err := executor.Execute(ctx, variantID, model)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, run)
	})
}
