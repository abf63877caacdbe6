package securitytest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain"
	domainTest "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/securitytest"
)

func TestCanceller_Cancel(t *testing.T) {
	ctx := context.Background()
	applyMatcher := mock.AnythingOfType("func(*securitytest.SecurityTest) error")

	t.Run("it should move a running test to failed", func(t *testing.T) {
		test := &domainTest.SecurityTest{ID: uuid.New(), Status: domainTest.StatusRunning}
		repo := new(mockTestRepository)
		repo.On("UpdateSummary", ctx, test.ID, applyMatcher).Return(test, nil)

		canceller := NewCanceller(testLogger(), repo)

		err := canceller.Cancel(ctx, test.ID)

		assert.NoError(t, err)
		assert.Equal(t, domainTest.StatusFailed, test.Status)
		assert.NotNil(t, test.CompletedAt)
		repo.AssertExpectations(t)
	})

	t.Run("it should reject cancelling a completed test", func(t *testing.T) {
		test := &domainTest.SecurityTest{ID: uuid.New(), Status: domainTest.StatusCompleted}
		repo := new(mockTestRepository)
		repo.On("UpdateSummary", ctx, test.ID, applyMatcher).Return(test, nil)

		canceller := NewCanceller(testLogger(), repo)

		err := canceller.Cancel(ctx, test.ID)

		assert.Error(t, err)
		assert.True(t, domain.IsInvalidStateError(err))
		assert.Equal(t, domainTest.StatusCompleted, test.Status)
	})

	t.Run("it should reject cancelling twice", func(t *testing.T) {
		test := &domainTest.SecurityTest{ID: uuid.New(), Status: domainTest.StatusFailed}
		repo := new(mockTestRepository)
		repo.On("UpdateSummary", ctx, test.ID, applyMatcher).Return(test, nil)

		canceller := NewCanceller(testLogger(), repo)

		err := canceller.Cancel(ctx, test.ID)

		assert.True(t, domain.IsInvalidStateError(err))
	})
}
