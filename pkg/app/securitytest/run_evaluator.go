package securitytest

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/app/detection"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/app/scoring"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain"
	domainTest "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/securitytest"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/infra/metrics"
)

//go:generate mockery --name=RunEvaluator --dir=. --output=./mocks --filename=run_evaluator_mock.go --case=underscore --with-expecter

type RunEvaluator interface {
	Evaluate(ctx context.Context, runID uuid.UUID) (*domainTest.EvaluationScore, error)
}

type runEvaluator struct {
	logger   *logrus.Logger
	repo     domainTest.Repository
	detector detection.Detector
	scorer   scoring.Scorer
}

func NewRunEvaluator(
	logger *logrus.Logger,
	repo domainTest.Repository,
	detector detection.Detector,
	scorer scoring.Scorer,
) RunEvaluator {
	return &runEvaluator{
		logger:   logger,
		repo:     repo,
		detector: detector,
		scorer:   scorer,
	}
}

// Evaluate scans the run's response for leakage, classifies the leaked data,
// scores the risk and persists the verdict.
func (e *runEvaluator) Evaluate(ctx context.Context, runID uuid.UUID) (*domainTest.EvaluationScore, error) {
	run, err := e.repo.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}

	result := e.detector.Detect(run.ResponseText)

	classification := detection.ClassificationUnclassified
	if len(result.Evidence) > 0 {
		classification = e.detector.ClassifyDataType(result.Evidence[0].Context)
	}

	confidence := 0.5
	if len(result.Confidence) > 0 {
		confidence = 0
		for _, c := range result.Confidence {
			if c > confidence {
				confidence = c
			}
		}
	}

	risk := e.scorer.CalculateRiskScore(result.Categories, classification, confidence, run.ModelCategory)
	violations := e.scorer.ComplianceViolations(result.Categories, nil)
	promise := e.scorer.EvaluateVendorPromise(run.ModelVendor, run.ModelCategory, result.LeakageDetected)

	confidenceScores := make(domain.MapJSON, len(result.Confidence))
	for category, c := range result.Confidence {
		confidenceScores[category] = c
	}

	violationsJSON := make(domain.MapJSON, len(violations))
	for framework, fv := range violations {
		violationsJSON[framework] = fv
	}

	evidence := make(domainTest.EvidenceJSON, 0, len(result.Evidence))
	for _, item := range result.Evidence {
		evidence = append(evidence, domainTest.EvidenceItem{
			Pattern:     item.Pattern,
			MatchedText: item.MatchedText,
			Context:     item.Context,
		})
	}

	score := domainTest.EvaluationScore{
		ModelRunID:           run.ID,
		LeakageDetected:      result.LeakageDetected,
		LeakageCategories:    domain.StringsJSON(result.Categories),
		ConfidenceScores:     confidenceScores,
		Evidence:             evidence,
		RiskScore:            risk.RiskScore,
		RiskLevel:            risk.RiskLevel,
		DataClassification:   classification,
		ComplianceViolations: violationsJSON,
		VendorPromise:        promise.Promise,
		PromiseHeld:          promise.PromiseHeld,
	}

	if err := e.repo.SaveEvaluation(ctx, &score); err != nil {
		return nil, fmt.Errorf("failed to save evaluation: %w", err)
	}

	if result.LeakageDetected {
		metrics.LeakageDetections.WithLabelValues(run.ModelVendor, string(risk.RiskLevel)).Inc()
		e.logger.WithFields(logrus.Fields{
			"run_id":     runID,
			"categories": result.Categories,
			"risk_score": risk.RiskScore,
			"risk_level": risk.RiskLevel,
		}).Warn("leakage detected in model response")
	}

	return &score, nil
}
