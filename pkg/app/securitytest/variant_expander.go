package securitytest

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/app/variant"
	domainTest "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/securitytest"
)

//go:generate mockery --name=VariantExpander --dir=. --output=./mocks --filename=variant_expander_mock.go --case=underscore --with-expecter

type VariantExpander interface {
	Expand(ctx context.Context, testID uuid.UUID, countPerTechnique int) (int, error)
}

type variantExpander struct {
	logger    *logrus.Logger
	repo      domainTest.Repository
	generator variant.Generator
}

func NewVariantExpander(
	logger *logrus.Logger,
	repo domainTest.Repository,
	generator variant.Generator,
) VariantExpander {
	return &variantExpander{
		logger:    logger,
		repo:      repo,
		generator: generator,
	}
}

// Expand generates style variants for every baseline prompt of the test and
// fixes the test's total variant and run counts. Returns the number of
// variants created.
func (e *variantExpander) Expand(ctx context.Context, testID uuid.UUID, countPerTechnique int) (int, error) {
	test, err := e.repo.GetTest(ctx, testID)
	if err != nil {
		return 0, err
	}

	scenarioID := ""
	if test.AttackScenario != nil {
		scenarioID = test.AttackScenario.ScenarioID
	}

	prompts, err := e.repo.ListBaselinePrompts(ctx, testID)
	if err != nil {
		return 0, fmt.Errorf("failed to list baseline prompts: %w", err)
	}

	variants := make([]domainTest.StyleVariant, 0, len(prompts)*len(test.Techniques)*countPerTechnique)
	for _, prompt := range prompts {
		generated := e.generator.Generate(prompt.PromptText, test.Techniques, countPerTechnique, scenarioID)
		for _, g := range generated {
			variants = append(variants, domainTest.StyleVariant{
				BaselinePromptID: prompt.ID,
				Technique:        g.Technique,
				VariantText:      g.VariantText,
			})
		}
	}

	if err := e.repo.SaveVariants(ctx, variants); err != nil {
		return 0, fmt.Errorf("failed to save style variants: %w", err)
	}

	totalVariants := len(variants)
	totalRuns := totalVariants * len(test.TargetModels)

	if _, err := e.repo.UpdateSummary(ctx, testID, func(t *domainTest.SecurityTest) error {
		t.TotalVariants = totalVariants
		t.TotalRuns = totalRuns
		return nil
	}); err != nil {
		return 0, fmt.Errorf("failed to update test totals: %w", err)
	}

	e.logger.WithFields(logrus.Fields{
		"test_id":        testID,
		"total_variants": totalVariants,
		"total_runs":     totalRuns,
	}).Info("style variants generated")

	return totalVariants, nil
}
