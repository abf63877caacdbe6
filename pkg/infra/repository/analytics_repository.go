package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/analytics"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/securitytest"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) analytics.Repository {
	return &analyticsRepository{
		db: db,
	}
}

func (r *analyticsRepository) Totals(ctx context.Context) (*analytics.DashboardTotals, error) {
	var totals analytics.DashboardTotals

	if err := r.db.WithContext(ctx).Model(&securitytest.SecurityTest{}).
		Count(&totals.TotalTests).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&securitytest.SecurityTest{}).
		Where("status = ?", securitytest.StatusCompleted).
		Count(&totals.CompletedTests).Error; err != nil {
		return nil, err
	}

	type sums struct {
		Vulnerabilities int64
		AvgRisk         float64
	}
	var s sums
	err := r.db.WithContext(ctx).Model(&securitytest.SecurityTest{}).
		Select("COALESCE(SUM(vulnerabilities_found), 0) AS vulnerabilities, COALESCE(AVG(avg_risk_score), 0) AS avg_risk").
		Scan(&s).Error
	if err != nil {
		return nil, err
	}
	totals.TotalVulnerabilities = s.Vulnerabilities
	totals.AvgRiskScore = s.AvgRisk

	return &totals, nil
}

const vendorRollupSelect = "model_runs.model_vendor AS vendor, COUNT(model_runs.id) AS total_runs, " +
	"COALESCE(SUM(CASE WHEN evaluation_scores.leakage_detected THEN 1 ELSE 0 END), 0) AS leakage_count, " +
	"COALESCE(AVG(evaluation_scores.risk_score), 0) AS avg_risk, " +
	"COALESCE(MAX(evaluation_scores.risk_score), 0) AS max_risk"

func (r *analyticsRepository) VendorRollups(ctx context.Context) ([]analytics.VendorRollup, error) {
	var rollups []analytics.VendorRollup
	err := r.db.WithContext(ctx).
		Table("model_runs").
		Select(vendorRollupSelect).
		Joins("JOIN evaluation_scores ON evaluation_scores.model_run_id = model_runs.id").
		Group("model_runs.model_vendor").
		Scan(&rollups).Error
	if err != nil {
		return nil, err
	}
	return rollups, nil
}

func (r *analyticsRepository) ModelRollups(ctx context.Context) ([]analytics.VendorRollup, error) {
	var rollups []analytics.VendorRollup
	err := r.db.WithContext(ctx).
		Table("model_runs").
		Select(vendorRollupSelect + ", model_runs.model_name AS model").
		Joins("JOIN evaluation_scores ON evaluation_scores.model_run_id = model_runs.id").
		Group("model_runs.model_vendor, model_runs.model_name").
		Scan(&rollups).Error
	if err != nil {
		return nil, err
	}
	return rollups, nil
}

func (r *analyticsRepository) RiskDistribution(ctx context.Context) ([]analytics.RiskBucket, error) {
	var buckets []analytics.RiskBucket
	err := r.db.WithContext(ctx).
		Table("evaluation_scores").
		Select("risk_level AS level, COUNT(id) AS count").
		Group("risk_level").
		Scan(&buckets).Error
	if err != nil {
		return nil, err
	}
	return buckets, nil
}

func (r *analyticsRepository) TechniqueRollups(ctx context.Context, testID uuid.UUID) ([]analytics.TechniqueRollup, error) {
	var rollups []analytics.TechniqueRollup
	err := r.db.WithContext(ctx).
		Table("model_runs").
		Select("style_variants.technique, COUNT(model_runs.id) AS total_runs, "+
			"COALESCE(SUM(CASE WHEN evaluation_scores.leakage_detected THEN 1 ELSE 0 END), 0) AS leakage_count").
		Joins("JOIN evaluation_scores ON evaluation_scores.model_run_id = model_runs.id").
		Joins("JOIN style_variants ON style_variants.id = model_runs.style_variant_id").
		Joins("JOIN baseline_prompts ON baseline_prompts.id = style_variants.baseline_prompt_id").
		Where("baseline_prompts.security_test_id = ?", testID).
		Group("style_variants.technique").
		Scan(&rollups).Error
	if err != nil {
		return nil, err
	}
	return rollups, nil
}

func (r *analyticsRepository) TestVendorRollups(ctx context.Context, testID uuid.UUID) ([]analytics.VendorRollup, error) {
	var rollups []analytics.VendorRollup
	err := r.db.WithContext(ctx).
		Table("model_runs").
		Select(vendorRollupSelect).
		Joins("JOIN evaluation_scores ON evaluation_scores.model_run_id = model_runs.id").
		Joins("JOIN style_variants ON style_variants.id = model_runs.style_variant_id").
		Joins("JOIN baseline_prompts ON baseline_prompts.id = style_variants.baseline_prompt_id").
		Where("baseline_prompts.security_test_id = ?", testID).
		Group("model_runs.model_vendor").
		Scan(&rollups).Error
	if err != nil {
		return nil, err
	}
	return rollups, nil
}
