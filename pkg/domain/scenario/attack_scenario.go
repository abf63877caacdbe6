package scenario

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain"
	"gorm.io/gorm"
)

type ModelCategory string

const (
	ModelCategoryEnterprise ModelCategory = "enterprise"
	ModelCategoryPublic     ModelCategory = "public"
	ModelCategoryLocal      ModelCategory = "local"
)

type DataClassification string

const (
	ClassificationPublic       DataClassification = "public"
	ClassificationInternal     DataClassification = "internal"
	ClassificationConfidential DataClassification = "confidential"
	ClassificationRestricted   DataClassification = "restricted"
)

// AttackScenario is immutable reference data describing one class of
// adversarial probe. Created at seed time, read-only thereafter.
type AttackScenario struct {
	ID                   uuid.UUID          `json:"id" gorm:"type:uuid;primaryKey"`
	ScenarioID           string             `json:"scenario_id" gorm:"uniqueIndex"`
	Name                 string             `json:"scenario_name"`
	Description          string             `json:"description"`
	TargetModelCategory  ModelCategory      `json:"target_model_category"`
	DataClassification   DataClassification `json:"data_classification"`
	ComplianceFrameworks domain.StringsJSON `json:"compliance_frameworks" gorm:"type:jsonb"`
	SeverityThreshold    string             `json:"severity_threshold"`
	AttackTechniques     domain.StringsJSON `json:"attack_techniques" gorm:"type:jsonb"`
	VendorPromiseTested  string             `json:"vendor_promise_tested"`
	CreatedAt            time.Time          `json:"created_at"`
}

func (s *AttackScenario) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	return s.Validate()
}

func (s *AttackScenario) Validate() error {
	if s.ScenarioID == "" {
		return fmt.Errorf("scenario_id is required")
	}
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if s.TargetModelCategory == "" {
		s.TargetModelCategory = ModelCategoryEnterprise
	}
	if s.DataClassification == "" {
		s.DataClassification = ClassificationConfidential
	}
	return nil
}

func (s *AttackScenario) TableName() string {
	return "public.attack_scenarios"
}
