package request

import (
	"fmt"
)

type ModelConfigRequest struct {
	Vendor   string                 `json:"vendor"`
	Model    string                 `json:"model"`
	Category string                 `json:"category,omitempty"`
	Options  map[string]interface{} `json:"options,omitempty"`
}

func (r *ModelConfigRequest) Validate() error {
	if r.Vendor == "" {
		return fmt.Errorf("model vendor is required")
	}
	return nil
}

type CreateTestRequest struct {
	Name                 string               `json:"test_name"`
	Description          string               `json:"description,omitempty"`
	ScenarioID           string               `json:"scenario_id"`
	BaselinePrompts      []string             `json:"baseline_prompts"`
	Techniques           []string             `json:"techniques"`
	TargetModels         []ModelConfigRequest `json:"target_models"`
	VariantsPerTechnique int                  `json:"variants_per_technique,omitempty"`
}

func (r *CreateTestRequest) Validate(maxBaselinePrompts int) error {
	if r.Name == "" {
		return fmt.Errorf("test_name is required")
	}
	if r.ScenarioID == "" {
		return fmt.Errorf("scenario_id is required")
	}
	if len(r.BaselinePrompts) == 0 {
		return fmt.Errorf("at least one baseline prompt is required")
	}
	if maxBaselinePrompts > 0 && len(r.BaselinePrompts) > maxBaselinePrompts {
		return fmt.Errorf("at most %d baseline prompts are allowed", maxBaselinePrompts)
	}
	if len(r.Techniques) == 0 {
		return fmt.Errorf("at least one technique is required")
	}
	if len(r.TargetModels) == 0 {
		return fmt.Errorf("at least one target model is required")
	}
	for i := range r.TargetModels {
		if err := r.TargetModels[i].Validate(); err != nil {
			return fmt.Errorf("target_models[%d]: %w", i, err)
		}
	}
	return nil
}
