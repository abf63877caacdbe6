package securitytest

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/scenario"
	"gorm.io/gorm"
)

type TestStatus string

const (
	StatusQueued    TestStatus = "queued"
	StatusRunning   TestStatus = "running"
	StatusCompleted TestStatus = "completed"
	StatusFailed    TestStatus = "failed"
)

// Terminal reports whether the status admits no further transitions.
func (s TestStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

type RunStatus string

const (
	RunCompleted RunStatus = "completed"
	RunFailed    RunStatus = "failed"
)

// ModelConfig identifies one target model backend for a test.
type ModelConfig struct {
	Vendor   string                 `json:"vendor"`
	Model    string                 `json:"model"`
	Category string                 `json:"category,omitempty"`
	Options  map[string]interface{} `json:"options,omitempty"`
}

type ModelConfigsJSON []ModelConfig

func (m ModelConfigsJSON) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *ModelConfigsJSON) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("expected []byte, got %T", value)
	}
	return json.Unmarshal(bytes, m)
}

// SecurityTest is the aggregation root of one adversarial test run. It owns
// its baseline prompts, which own variants, which own model runs.
type SecurityTest struct {
	ID               uuid.UUID               `json:"id" gorm:"type:uuid;primaryKey"`
	Name             string                  `json:"test_name"`
	Description      string                  `json:"description"`
	AttackScenarioID uuid.UUID               `json:"attack_scenario_id" gorm:"type:uuid"`
	AttackScenario   *scenario.AttackScenario `json:"attack_scenario,omitempty" gorm:"foreignKey:AttackScenarioID"`
	Status           TestStatus              `json:"status"`

	Techniques           domain.StringsJSON `json:"techniques" gorm:"type:jsonb"`
	TargetModels         ModelConfigsJSON   `json:"target_models" gorm:"type:jsonb"`
	VariantsPerTechnique int                `json:"variants_per_technique"`

	TotalVariants        int       `json:"total_variants"`
	TotalRuns            int       `json:"total_runs"`
	RunsCompleted        int       `json:"runs_completed"`
	VulnerabilitiesFound int       `json:"vulnerabilities_found"`
	AvgRiskScore         float64   `json:"avg_risk_score"`
	RiskLevel            RiskLevel `json:"risk_level"`

	BaselinePrompts []BaselinePrompt `json:"baseline_prompts,omitempty" gorm:"foreignKey:SecurityTestID"`

	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

func (t *SecurityTest) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	if t.Status == "" {
		t.Status = StatusQueued
	}
	return t.Validate()
}

func (t *SecurityTest) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("test name is required")
	}
	if t.AttackScenarioID == uuid.Nil {
		return fmt.Errorf("attack scenario is required")
	}
	if len(t.TargetModels) == 0 {
		return fmt.Errorf("at least one target model is required")
	}
	return nil
}

func (t *SecurityTest) TableName() string {
	return "public.security_tests"
}

// BaselinePrompt is one seed adversarial prompt belonging to exactly one test.
type BaselinePrompt struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	SecurityTestID uuid.UUID      `json:"security_test_id" gorm:"type:uuid;index"`
	PromptText     string         `json:"prompt_text"`
	Variants       []StyleVariant `json:"variants,omitempty" gorm:"foreignKey:BaselinePromptID"`
	CreatedAt      time.Time      `json:"created_at"`
}

func (p *BaselinePrompt) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	if p.PromptText == "" {
		return fmt.Errorf("prompt text is required")
	}
	return nil
}

func (p *BaselinePrompt) TableName() string {
	return "public.baseline_prompts"
}

// StyleVariant is one technique-specific rewrite of a baseline prompt.
type StyleVariant struct {
	ID               uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	BaselinePromptID uuid.UUID  `json:"baseline_prompt_id" gorm:"type:uuid;index"`
	Technique        string     `json:"technique"`
	VariantText      string     `json:"variant_text"`
	ModelRuns        []ModelRun `json:"model_runs,omitempty" gorm:"foreignKey:StyleVariantID"`
	CreatedAt        time.Time  `json:"created_at"`
}

func (v *StyleVariant) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now()
	}
	if v.Technique == "" {
		return fmt.Errorf("technique is required")
	}
	return nil
}

func (v *StyleVariant) TableName() string {
	return "public.style_variants"
}

// ModelRun is one invocation of one backend with one variant.
type ModelRun struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	StyleVariantID uuid.UUID      `json:"style_variant_id" gorm:"type:uuid;index"`
	ModelName      string         `json:"model_name"`
	ModelCategory  string         `json:"model_category"`
	ModelVendor    string         `json:"model_vendor"`

	ResponseText     string         `json:"response_text"`
	ResponseMetadata domain.MapJSON `json:"response_metadata" gorm:"type:jsonb"`

	Status       RunStatus        `json:"status"`
	ErrorMessage string           `json:"error_message"`
	Evaluation   *EvaluationScore `json:"evaluation,omitempty" gorm:"foreignKey:ModelRunID"`

	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

func (r *ModelRun) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	if r.Status == "" {
		r.Status = RunCompleted
	}
	return nil
}

func (r *ModelRun) TableName() string {
	return "public.model_runs"
}

// EvidenceItem is a bounded window of response text around one pattern match.
type EvidenceItem struct {
	Pattern     string `json:"pattern"`
	MatchedText string `json:"matched_text"`
	Context     string `json:"context"`
}

type EvidenceJSON []EvidenceItem

func (e EvidenceJSON) Value() (driver.Value, error) {
	if e == nil {
		return nil, nil
	}
	return json.Marshal(e)
}

func (e *EvidenceJSON) Scan(value interface{}) error {
	if value == nil {
		*e = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("expected []byte, got %T", value)
	}
	return json.Unmarshal(bytes, e)
}

// EvaluationScore is the verdict for one model run.
type EvaluationScore struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ModelRunID uuid.UUID `json:"model_run_id" gorm:"type:uuid;uniqueIndex"`

	LeakageDetected   bool               `json:"leakage_detected"`
	LeakageCategories domain.StringsJSON `json:"leakage_categories" gorm:"type:jsonb"`
	ConfidenceScores  domain.MapJSON     `json:"confidence_scores" gorm:"type:jsonb"`
	Evidence          EvidenceJSON       `json:"evidence" gorm:"type:jsonb"`

	RiskScore          float64   `json:"risk_score"`
	RiskLevel          RiskLevel `json:"risk_level"`
	DataClassification string    `json:"data_classification"`

	ComplianceViolations domain.MapJSON `json:"compliance_violations" gorm:"type:jsonb"`

	VendorPromise string `json:"vendor_promise"`
	PromiseHeld   bool   `json:"promise_held"`

	CreatedAt time.Time `json:"created_at"`
}

func (e *EvaluationScore) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	if e.RiskLevel == "" {
		e.RiskLevel = RiskLow
	}
	return nil
}

func (e *EvaluationScore) TableName() string {
	return "public.evaluation_scores"
}
