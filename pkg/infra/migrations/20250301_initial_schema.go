package migrations

import (
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/infra/database"
	"gorm.io/gorm"
)

// Initial schema. Ownership is a strict tree, so every child table carries
// ON DELETE CASCADE back to its parent: deleting a security test removes the
// entire subtree in one statement.
func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250301_initial_schema",
		Name: "Create attack_scenarios, security_tests, baseline_prompts, style_variants, model_runs, evaluation_scores",

		Up: func(db *gorm.DB) error {
			if err := db.Exec(`
				CREATE EXTENSION IF NOT EXISTS pgcrypto;
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS attack_scenarios (
					id                     UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					scenario_id            TEXT NOT NULL UNIQUE,
					name                   TEXT NOT NULL,
					description            TEXT NOT NULL DEFAULT '',
					target_model_category  TEXT NOT NULL DEFAULT 'enterprise',
					data_classification    TEXT NOT NULL DEFAULT 'confidential',
					compliance_frameworks  JSONB,
					severity_threshold     TEXT NOT NULL DEFAULT 'high',
					attack_techniques      JSONB,
					vendor_promise_tested  TEXT,
					created_at             TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS security_tests (
					id                     UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					name                   TEXT NOT NULL,
					description            TEXT,
					attack_scenario_id     UUID NOT NULL REFERENCES attack_scenarios(id),
					status                 TEXT NOT NULL DEFAULT 'queued',
					techniques             JSONB,
					target_models          JSONB,
					variants_per_technique INT NOT NULL DEFAULT 2,
					total_variants         INT NOT NULL DEFAULT 0,
					total_runs             INT NOT NULL DEFAULT 0,
					runs_completed         INT NOT NULL DEFAULT 0,
					vulnerabilities_found  INT NOT NULL DEFAULT 0,
					avg_risk_score         DOUBLE PRECISION NOT NULL DEFAULT 0,
					risk_level             TEXT,
					created_at             TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					started_at             TIMESTAMPTZ,
					completed_at           TIMESTAMPTZ
				);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS baseline_prompts (
					id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					security_test_id UUID NOT NULL REFERENCES security_tests(id) ON DELETE CASCADE,
					prompt_text      TEXT NOT NULL,
					created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_baseline_prompts_test ON baseline_prompts(security_test_id);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS style_variants (
					id                 UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					baseline_prompt_id UUID NOT NULL REFERENCES baseline_prompts(id) ON DELETE CASCADE,
					technique          TEXT NOT NULL,
					variant_text       TEXT NOT NULL,
					created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_style_variants_prompt ON style_variants(baseline_prompt_id);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS model_runs (
					id                UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					style_variant_id  UUID NOT NULL REFERENCES style_variants(id) ON DELETE CASCADE,
					model_name        TEXT NOT NULL,
					model_category    TEXT NOT NULL,
					model_vendor      TEXT NOT NULL,
					response_text     TEXT,
					response_metadata JSONB,
					status            TEXT NOT NULL DEFAULT 'completed',
					error_message     TEXT,
					created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					completed_at      TIMESTAMPTZ
				);
				CREATE INDEX IF NOT EXISTS idx_model_runs_variant ON model_runs(style_variant_id);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS evaluation_scores (
					id                    UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					model_run_id          UUID NOT NULL UNIQUE REFERENCES model_runs(id) ON DELETE CASCADE,
					leakage_detected      BOOLEAN NOT NULL DEFAULT FALSE,
					leakage_categories    JSONB,
					confidence_scores     JSONB,
					evidence              JSONB,
					risk_score            DOUBLE PRECISION NOT NULL DEFAULT 0,
					risk_level            TEXT NOT NULL DEFAULT 'LOW',
					data_classification   TEXT,
					compliance_violations JSONB,
					vendor_promise        TEXT,
					promise_held          BOOLEAN NOT NULL DEFAULT TRUE,
					created_at            TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`).Error; err != nil {
				return err
			}

			return nil
		},

		Down: func(db *gorm.DB) error {
			return db.Exec(`
				DROP TABLE IF EXISTS evaluation_scores;
				DROP TABLE IF EXISTS model_runs;
				DROP TABLE IF EXISTS style_variants;
				DROP TABLE IF EXISTS baseline_prompts;
				DROP TABLE IF EXISTS security_tests;
				DROP TABLE IF EXISTS attack_scenarios;
			`).Error
		},
	})
}
