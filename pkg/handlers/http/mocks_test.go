package http

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	appTest "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/app/securitytest"
	domainTest "github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/securitytest"
)

type mockCreator struct {
	mock.Mock
}

func (m *mockCreator) Create(ctx context.Context, input appTest.CreateTestInput) (*domainTest.SecurityTest, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	test, _ := args.Get(0).(*domainTest.SecurityTest)
	return test, args.Error(1)
}

type mockVariantExpander struct {
	mock.Mock
}

func (m *mockVariantExpander) Expand(ctx context.Context, testID uuid.UUID, countPerTechnique int) (int, error) {
	args := m.Called(ctx, testID, countPerTechnique)
	return args.Int(0), args.Error(1)
}

type mockStatusUpdater struct {
	mock.Mock
}

func (m *mockStatusUpdater) Update(ctx context.Context, testID uuid.UUID) (*domainTest.TestSummary, error) {
	args := m.Called(ctx, testID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	summary, _ := args.Get(0).(*domainTest.TestSummary)
	return summary, args.Error(1)
}

type mockCanceller struct {
	mock.Mock
}

func (m *mockCanceller) Cancel(ctx context.Context, testID uuid.UUID) error {
	args := m.Called(ctx, testID)
	return args.Error(0)
}
