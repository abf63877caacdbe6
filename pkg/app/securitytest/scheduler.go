package securitytest

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain"
	domainTest "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/securitytest"
)

//go:generate mockery --name=RunEnqueuer --dir=. --output=./mocks --filename=run_enqueuer_mock.go --case=underscore --with-expecter

// RunEnqueuer hands a (variant, model) pair to the execution pipeline.
type RunEnqueuer interface {
	EnqueueRun(ctx context.Context, testID, variantID uuid.UUID, model domainTest.ModelConfig) error
}

//go:generate mockery --name=Scheduler --dir=. --output=./mocks --filename=scheduler_mock.go --case=underscore --with-expecter

type Scheduler interface {
	Schedule(ctx context.Context, testID uuid.UUID) (int, error)
}

type scheduler struct {
	logger   *logrus.Logger
	repo     domainTest.Repository
	enqueuer RunEnqueuer
}

func NewScheduler(
	logger *logrus.Logger,
	repo domainTest.Repository,
	enqueuer RunEnqueuer,
) Scheduler {
	return &scheduler{
		logger:   logger,
		repo:     repo,
		enqueuer: enqueuer,
	}
}

// Schedule fans the test out into run jobs, one per (variant, target model)
// pair. Runs are independent of each other so their order on the queue does
// not matter. Returns the number of jobs enqueued.
func (s *scheduler) Schedule(ctx context.Context, testID uuid.UUID) (int, error) {
	test, err := s.repo.GetTest(ctx, testID)
	if err != nil {
		return 0, err
	}
	if test.Status.Terminal() {
		return 0, domain.NewInvalidStateError("security_test", test.ID, string(test.Status), "execute")
	}

	variants, err := s.repo.ListVariants(ctx, testID)
	if err != nil {
		return 0, fmt.Errorf("failed to list style variants: %w", err)
	}

	enqueued := 0
	for _, v := range variants {
		for _, model := range test.TargetModels {
			if err := s.enqueuer.EnqueueRun(ctx, testID, v.ID, model); err != nil {
				return enqueued, fmt.Errorf("failed to enqueue run: %w", err)
			}
			enqueued++
		}
	}

	s.logger.WithFields(logrus.Fields{
		"test_id": testID,
		"jobs":    enqueued,
	}).Info("test runs scheduled")

	return enqueued, nil
}
