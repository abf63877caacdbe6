package securitytest

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	domainTest "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/securitytest"
)

//go:generate mockery --name=Deleter --dir=. --output=./mocks --filename=test_deleter_mock.go --case=underscore --with-expecter

type Deleter interface {
	Delete(ctx context.Context, testID uuid.UUID) error
}

type deleter struct {
	logger *logrus.Logger
	repo   domainTest.Repository
}

func NewDeleter(logger *logrus.Logger, repo domainTest.Repository) Deleter {
	return &deleter{
		logger: logger,
		repo:   repo,
	}
}

// Delete removes a test and everything under it: prompts, variants, runs and
// evaluations go with it through the cascade chain.
func (d *deleter) Delete(ctx context.Context, testID uuid.UUID) error {
	if err := d.repo.DeleteTest(ctx, testID); err != nil {
		return err
	}
	d.logger.WithField("test_id", testID).Info("security test deleted")
	return nil
}
