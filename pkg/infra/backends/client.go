package backends

import (
	"context"
	"errors"
	"strings"
)

const (
	CategoryEnterprise = "enterprise"
	CategoryPublic     = "public"
	CategoryLocal      = "local"
)

// Config identifies one concrete model on one vendor backend.
type Config struct {
	APIKey   string                 `json:"api_key"`
	BaseURL  string                 `json:"base_url,omitempty"`
	Model    string                 `json:"model"`
	Category string                 `json:"category,omitempty"`
	Options  map[string]interface{} `json:"options,omitempty"`
}

type Params struct {
	Temperature float64 `json:"temperature,omitempty" mapstructure:"temperature"`
	MaxTokens   int     `json:"max_tokens,omitempty" mapstructure:"max_tokens"`
}

type Metadata struct {
	TokensUsed     int    `json:"tokens_used"`
	ResponseTimeMs int64  `json:"response_time_ms"`
	ModelVersion   string `json:"model_version"`
	Simulated      bool   `json:"simulated,omitempty"`
}

// Response is the normalized result of one backend invocation.
type Response struct {
	Text          string   `json:"response_text"`
	ModelName     string   `json:"model_name"`
	ModelCategory string   `json:"model_category"`
	Vendor        string   `json:"vendor"`
	Metadata      Metadata `json:"metadata"`
}

type Info struct {
	ModelName     string `json:"model_name"`
	ModelCategory string `json:"model_category"`
	Vendor        string `json:"vendor"`
}

//go:generate mockery --name=Client --dir=. --output=./mocks --filename=client_mock.go --case=underscore --with-expecter

type Client interface {
	Generate(ctx context.Context, config *Config, prompt string, params *Params) (*Response, error)
	ModelInfo(config *Config) Info
}

// transientError marks failures worth retrying (timeouts, transport drops).
// Anything else is treated as fatal and surfaces after the first attempt.
type transientError struct {
	err error
}

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

func Transient(err error) error {
	if err == nil {
		return nil
	}
	return &transientError{err: err}
}

func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var te *transientError
	if errors.As(err, &te) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// CategoryFor derives the model category the way the platform classifies
// vendors: an explicit category wins, `enterprise` in the model name marks an
// enterprise deployment, ollama is always local.
func CategoryFor(vendor, model, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if vendor == "ollama" {
		return CategoryLocal
	}
	if strings.Contains(model, "enterprise") {
		return CategoryEnterprise
	}
	return CategoryPublic
}
