package request

import "fmt"

type PreviewVariantsRequest struct {
	Prompt            string   `json:"prompt"`
	Techniques        []string `json:"techniques"`
	ScenarioID        string   `json:"scenario_id,omitempty"`
	CountPerTechnique int      `json:"count_per_technique,omitempty"`
}

func (r *PreviewVariantsRequest) Validate() error {
	if r.Prompt == "" {
		return fmt.Errorf("prompt is required")
	}
	if len(r.Techniques) == 0 {
		return fmt.Errorf("at least one technique is required")
	}
	return nil
}
