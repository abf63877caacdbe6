package request

import "fmt"

type ExecuteVariantRequest struct {
	Model ModelConfigRequest `json:"model"`
}

func (r *ExecuteVariantRequest) Validate() error {
	if err := r.Model.Validate(); err != nil {
		return fmt.Errorf("model: %w", err)
	}
	return nil
}
