package securitytest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain"
	domainTest "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/securitytest"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/infra/backends"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/infra/backends/factory"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/infra/metrics"
)

//go:generate mockery --name=RunExecutor --dir=. --output=./mocks --filename=run_executor_mock.go --case=underscore --with-expecter

type RunExecutor interface {
	Execute(ctx context.Context, variantID uuid.UUID, model domainTest.ModelConfig) (*domainTest.ModelRun, error)
}

type runExecutor struct {
	logger    *logrus.Logger
	repo      domainTest.Repository
	locator   factory.BackendLocator
	generator *backends.Executor
	evaluator RunEvaluator
}

func NewRunExecutor(
	logger *logrus.Logger,
	repo domainTest.Repository,
	locator factory.BackendLocator,
	generator *backends.Executor,
	evaluator RunEvaluator,
) RunExecutor {
	return &runExecutor{
		logger:    logger,
		repo:      repo,
		locator:   locator,
		generator: generator,
		evaluator: evaluator,
	}
}

// Execute sends a single style variant to one target model, records the
// outcome as a model run and evaluates the response for leakage. A backend
// failure is recorded as a failed run, not returned as an error.
func (e *runExecutor) Execute(ctx context.Context, variantID uuid.UUID, model domainTest.ModelConfig) (*domainTest.ModelRun, error) {
	styleVariant, err := e.repo.GetVariant(ctx, variantID)
	if err != nil {
		return nil, err
	}

	client, cfg, params, err := e.locator.Resolve(model)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve backend: %w", err)
	}

	info := client.ModelInfo(cfg)
	run := domainTest.ModelRun{
		StyleVariantID: styleVariant.ID,
		ModelName:      info.ModelName,
		ModelCategory:  info.ModelCategory,
		ModelVendor:    info.Vendor,
	}

	response, genErr := e.generator.Generate(ctx, client, cfg, styleVariant.VariantText, params)
	if genErr != nil {
		run.Status = domainTest.RunFailed
		run.ErrorMessage = genErr.Error()
		run.ResponseMetadata = domain.MapJSON{"error": genErr.Error()}
		metrics.RunsFailed.WithLabelValues(info.Vendor).Inc()
	} else {
		run.Status = domainTest.RunCompleted
		run.ResponseText = response.Text
		run.ModelName = response.ModelName
		run.ModelCategory = response.ModelCategory
		run.ResponseMetadata = domain.MapJSON{
			"tokens_used":      response.Metadata.TokensUsed,
			"response_time_ms": response.Metadata.ResponseTimeMs,
			"model_version":    response.Metadata.ModelVersion,
			"simulated":        response.Metadata.Simulated,
		}
		metrics.RunsExecuted.WithLabelValues(info.Vendor).Inc()
	}
	now := time.Now()
	run.CompletedAt = &now

	if err := e.repo.SaveRun(ctx, &run); err != nil {
		return nil, fmt.Errorf("failed to save model run: %w", err)
	}

	if _, err := e.evaluator.Evaluate(ctx, run.ID); err != nil {
		e.logger.WithError(err).WithField("run_id", run.ID).Error("failed to evaluate model run")
		return nil, err
	}

	return &run, nil
}
