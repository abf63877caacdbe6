package repository

import (
	"context"
	"errors"

	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/scenario"
	"gorm.io/gorm"
)

type scenarioRepository struct {
	db *gorm.DB
}

func NewScenarioRepository(db *gorm.DB) scenario.Repository {
	return &scenarioRepository{
		db: db,
	}
}

func (r *scenarioRepository) Save(ctx context.Context, s *scenario.AttackScenario) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *scenarioRepository) GetByScenarioID(ctx context.Context, scenarioID string) (*scenario.AttackScenario, error) {
	var s scenario.AttackScenario
	err := r.db.WithContext(ctx).Where("scenario_id = ?", scenarioID).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundErrorByKey("attack scenario", scenarioID)
		}
		return nil, err
	}
	return &s, nil
}

func (r *scenarioRepository) List(ctx context.Context) ([]scenario.AttackScenario, error) {
	var scenarios []scenario.AttackScenario
	if err := r.db.WithContext(ctx).Order("scenario_id").Find(&scenarios).Error; err != nil {
		return nil, err
	}
	return scenarios, nil
}
