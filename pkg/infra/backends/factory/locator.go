package factory

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/config"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/domain/securitytest"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/infra/backends"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/infra/backends/anthropic"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/infra/backends/google"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/infra/backends/ollama"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/infra/backends/openai"
	"github.com/valyala/fasthttp"
)

const (
	VendorOpenAI    = "openai"
	VendorAnthropic = "anthropic"
	VendorGoogle    = "google"
	VendorOllama    = "ollama"
)

//go:generate mockery --name=BackendLocator --dir=. --output=./mocks --filename=backend_locator_mock.go --case=underscore --with-expecter

type BackendLocator interface {
	Get(vendor string) (backends.Client, error)
	// Resolve maps a test's target-model entry onto a backend client and its
	// credentialed config plus any generation parameters.
	Resolve(modelConfig securitytest.ModelConfig) (backends.Client, *backends.Config, *backends.Params, error)
}

type backendLocator struct {
	cfg        *config.BackendsConfig
	httpClient *fasthttp.Client
}

func NewBackendLocator(cfg *config.BackendsConfig, httpClient *fasthttp.Client) BackendLocator {
	return &backendLocator{
		cfg:        cfg,
		httpClient: httpClient,
	}
}

func (f *backendLocator) Get(vendor string) (backends.Client, error) {
	switch vendor {
	case VendorOpenAI:
		return openai.NewOpenaiClient(), nil
	case VendorAnthropic:
		return anthropic.NewAnthropicClient(), nil
	case VendorGoogle:
		return google.NewGoogleClient(), nil
	case VendorOllama:
		return ollama.NewOllamaClient(f.httpClient), nil
	default:
		return nil, fmt.Errorf("unsupported backend vendor: %s", vendor)
	}
}

func (f *backendLocator) Resolve(
	modelConfig securitytest.ModelConfig,
) (backends.Client, *backends.Config, *backends.Params, error) {
	client, err := f.Get(modelConfig.Vendor)
	if err != nil {
		return nil, nil, nil, err
	}

	backendConfig := &backends.Config{
		Model:    modelConfig.Model,
		Category: modelConfig.Category,
		Options:  modelConfig.Options,
	}
	switch modelConfig.Vendor {
	case VendorOpenAI:
		backendConfig.APIKey = f.cfg.OpenAIAPIKey
	case VendorAnthropic:
		backendConfig.APIKey = f.cfg.AnthropicAPIKey
	case VendorGoogle:
		backendConfig.APIKey = f.cfg.GoogleAPIKey
	case VendorOllama:
		backendConfig.BaseURL = f.cfg.OllamaBaseURL
	}

	var params *backends.Params
	if len(modelConfig.Options) > 0 {
		var decoded backends.Params
		if err := mapstructure.Decode(modelConfig.Options, &decoded); err == nil {
			params = &decoded
		}
	}

	return client, backendConfig, params, nil
}
