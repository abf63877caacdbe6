package securitytest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain"
	domainTest "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/securitytest"
)

//go:generate mockery --name=Canceller --dir=. --output=./mocks --filename=test_canceller_mock.go --case=underscore --with-expecter

type Canceller interface {
	Cancel(ctx context.Context, testID uuid.UUID) error
}

type canceller struct {
	logger *logrus.Logger
	repo   domainTest.Repository
}

func NewCanceller(logger *logrus.Logger, repo domainTest.Repository) Canceller {
	return &canceller{
		logger: logger,
		repo:   repo,
	}
}

// Cancel moves a queued or running test to FAILED. Cancellation is
// record-level only: in-flight runs still finish and persist their results,
// but the test stays FAILED.
func (c *canceller) Cancel(ctx context.Context, testID uuid.UUID) error {
	_, err := c.repo.UpdateSummary(ctx, testID, func(t *domainTest.SecurityTest) error {
		if t.Status.Terminal() {
			return domain.NewInvalidStateError("security_test", t.ID, string(t.Status), "cancel")
		}
		now := time.Now()
		t.Status = domainTest.StatusFailed
		t.CompletedAt = &now
		return nil
	})
	if err != nil {
		return err
	}

	c.logger.WithField("test_id", testID).Info("security test cancelled")
	return nil
}
