package securitytest

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	domainScenario "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/scenario"
	domainTest "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/securitytest"
)

type CreateTestInput struct {
	Name            string
	Description     string
	ScenarioID      string
	BaselinePrompts []string
	Techniques      []string
	TargetModels    []domainTest.ModelConfig

	VariantsPerTechnique int
}

//go:generate mockery --name=Creator --dir=. --output=./mocks --filename=test_creator_mock.go --case=underscore --with-expecter

type Creator interface {
	Create(ctx context.Context, input CreateTestInput) (*domainTest.SecurityTest, error)
}

type creator struct {
	logger       *logrus.Logger
	repo         domainTest.Repository
	scenarioRepo domainScenario.Repository
}

func NewCreator(
	logger *logrus.Logger,
	repo domainTest.Repository,
	scenarioRepo domainScenario.Repository,
) Creator {
	return &creator{
		logger:       logger,
		repo:         repo,
		scenarioRepo: scenarioRepo,
	}
}

func (c *creator) Create(ctx context.Context, input CreateTestInput) (*domainTest.SecurityTest, error) {
	attackScenario, err := c.scenarioRepo.GetByScenarioID(ctx, input.ScenarioID)
	if err != nil {
		return nil, err
	}

	prompts := make([]domainTest.BaselinePrompt, 0, len(input.BaselinePrompts))
	for _, text := range input.BaselinePrompts {
		prompts = append(prompts, domainTest.BaselinePrompt{PromptText: text})
	}

	test := domainTest.SecurityTest{
		Name:                 input.Name,
		Description:          input.Description,
		AttackScenarioID:     attackScenario.ID,
		Status:               domainTest.StatusQueued,
		Techniques:           input.Techniques,
		TargetModels:         input.TargetModels,
		VariantsPerTechnique: input.VariantsPerTechnique,
		BaselinePrompts:      prompts,
	}

	if err := c.repo.SaveTest(ctx, &test); err != nil {
		c.logger.WithError(err).Error("failed to create security test")
		return nil, fmt.Errorf("failed to create security test: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"test_id":  test.ID,
		"scenario": input.ScenarioID,
		"prompts":  len(prompts),
	}).Info("security test created")

	return &test, nil
}
