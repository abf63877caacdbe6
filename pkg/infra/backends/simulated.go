package backends

import (
	"fmt"
	"strings"
)

// SimulatedResponse stands in for a live backend when no credential or
// connection is available, keeping the pipeline testable offline. The text is
// clearly marked so detection never mistakes it for real leakage.
func SimulatedResponse(vendor, model, category, prompt string) *Response {
	preview := prompt
	if len(preview) > 50 {
		preview = preview[:50]
	}
	return &Response{
		Text:          fmt.Sprintf("[Simulated %s response for: %s...]", vendor, preview),
		ModelName:     model,
		ModelCategory: category,
		Vendor:        vendor,
		Metadata: Metadata{
			TokensUsed:   len(strings.Fields(prompt)),
			ModelVersion: model,
			Simulated:    true,
		},
	}
}
