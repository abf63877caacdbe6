package scenario

import (
	"context"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=scenario_repository_mock.go --case=underscore --with-expecter

type Repository interface {
	Save(ctx context.Context, scenario *AttackScenario) error
	GetByScenarioID(ctx context.Context, scenarioID string) (*AttackScenario, error)
	List(ctx context.Context) ([]AttackScenario, error)
}
