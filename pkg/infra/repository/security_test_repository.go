package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/securitytest"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type securityTestRepository struct {
	db *gorm.DB
}

func NewSecurityTestRepository(db *gorm.DB) securitytest.Repository {
	return &securityTestRepository{
		db: db,
	}
}

func (r *securityTestRepository) SaveTest(ctx context.Context, test *securitytest.SecurityTest) error {
	return r.db.WithContext(ctx).Create(test).Error
}

func (r *securityTestRepository) GetTest(ctx context.Context, id uuid.UUID) (*securitytest.SecurityTest, error) {
	var test securitytest.SecurityTest
	err := r.db.WithContext(ctx).
		Preload("AttackScenario").
		Preload("BaselinePrompts").
		First(&test, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("security test", id)
		}
		return nil, err
	}
	return &test, nil
}

func (r *securityTestRepository) ListTests(ctx context.Context) ([]securitytest.SecurityTest, error) {
	var tests []securitytest.SecurityTest
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&tests).Error; err != nil {
		return nil, err
	}
	return tests, nil
}

// DeleteTest relies on the ON DELETE CASCADE chain declared in the initial
// schema, so one delete on the root removes prompts, variants, runs and
// evaluations with it.
func (r *securityTestRepository) DeleteTest(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&securitytest.SecurityTest{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("security test", id)
	}
	return nil
}

func (r *securityTestRepository) ListBaselinePrompts(ctx context.Context, testID uuid.UUID) ([]securitytest.BaselinePrompt, error) {
	var prompts []securitytest.BaselinePrompt
	err := r.db.WithContext(ctx).
		Where("security_test_id = ?", testID).
		Order("created_at").
		Find(&prompts).Error
	if err != nil {
		return nil, err
	}
	return prompts, nil
}

func (r *securityTestRepository) SaveVariants(ctx context.Context, variants []securitytest.StyleVariant) error {
	if len(variants) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&variants).Error
}

func (r *securityTestRepository) GetVariant(ctx context.Context, id uuid.UUID) (*securitytest.StyleVariant, error) {
	var variant securitytest.StyleVariant
	err := r.db.WithContext(ctx).First(&variant, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("style variant", id)
		}
		return nil, err
	}
	return &variant, nil
}

func (r *securityTestRepository) ListVariants(ctx context.Context, testID uuid.UUID) ([]securitytest.StyleVariant, error) {
	var variants []securitytest.StyleVariant
	err := r.db.WithContext(ctx).
		Joins("JOIN baseline_prompts ON baseline_prompts.id = style_variants.baseline_prompt_id").
		Where("baseline_prompts.security_test_id = ?", testID).
		Order("style_variants.created_at").
		Find(&variants).Error
	if err != nil {
		return nil, err
	}
	return variants, nil
}

func (r *securityTestRepository) TestForVariant(ctx context.Context, variantID uuid.UUID) (*securitytest.SecurityTest, error) {
	var test securitytest.SecurityTest
	err := r.db.WithContext(ctx).
		Joins("JOIN baseline_prompts ON baseline_prompts.security_test_id = security_tests.id").
		Joins("JOIN style_variants ON style_variants.baseline_prompt_id = baseline_prompts.id").
		Where("style_variants.id = ?", variantID).
		First(&test).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("style variant", variantID)
		}
		return nil, err
	}
	return &test, nil
}

func (r *securityTestRepository) SaveRun(ctx context.Context, run *securitytest.ModelRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *securityTestRepository) GetRun(ctx context.Context, id uuid.UUID) (*securitytest.ModelRun, error) {
	var run securitytest.ModelRun
	err := r.db.WithContext(ctx).Preload("Evaluation").First(&run, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("model run", id)
		}
		return nil, err
	}
	return &run, nil
}

func (r *securityTestRepository) SaveEvaluation(ctx context.Context, score *securitytest.EvaluationScore) error {
	return r.db.WithContext(ctx).Create(score).Error
}

func (r *securityTestRepository) RunRollups(ctx context.Context, testID uuid.UUID) ([]securitytest.RunRollup, error) {
	type row struct {
		Status          string
		LeakageDetected bool
		RiskScore       float64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Table("model_runs").
		Select("model_runs.status, COALESCE(evaluation_scores.leakage_detected, FALSE) AS leakage_detected, COALESCE(evaluation_scores.risk_score, 0) AS risk_score").
		Joins("JOIN style_variants ON style_variants.id = model_runs.style_variant_id").
		Joins("JOIN baseline_prompts ON baseline_prompts.id = style_variants.baseline_prompt_id").
		Joins("LEFT JOIN evaluation_scores ON evaluation_scores.model_run_id = model_runs.id").
		Where("baseline_prompts.security_test_id = ?", testID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	rollups := make([]securitytest.RunRollup, 0, len(rows))
	for _, rw := range rows {
		rollups = append(rollups, securitytest.RunRollup{
			Status:          securitytest.RunStatus(rw.Status),
			LeakageDetected: rw.LeakageDetected,
			RiskScore:       rw.RiskScore,
		})
	}
	return rollups, nil
}

// UpdateSummary serializes the read-then-write of one test's summary row.
// Concurrent status recomputations for the same test queue up behind the row
// lock; tests are independent aggregation roots so no wider locking is needed.
func (r *securityTestRepository) UpdateSummary(
	ctx context.Context,
	testID uuid.UUID,
	apply func(test *securitytest.SecurityTest) error,
) (*securitytest.SecurityTest, error) {
	var updated *securitytest.SecurityTest
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var test securitytest.SecurityTest
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&test, "id = ?", testID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewNotFoundError("security test", testID)
			}
			return err
		}
		if err := apply(&test); err != nil {
			return err
		}
		if err := tx.Save(&test).Error; err != nil {
			return err
		}
		updated = &test
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
