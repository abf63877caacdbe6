package google

import (
	"context"
	"errors"
	"fmt"

	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/infra/backends"
	"google.golang.org/genai"
)

const (
	vendor       = "google"
	defaultModel = "gemini-1.5-pro"
)

type client struct{}

func NewGoogleClient() backends.Client {
	return &client{}
}

func (c *client) Generate(
	ctx context.Context,
	config *backends.Config,
	prompt string,
	params *backends.Params,
) (*backends.Response, error) {
	model := config.Model
	if model == "" {
		model = defaultModel
	}
	category := backends.CategoryFor(vendor, model, config.Category)

	if config.APIKey == "" {
		return backends.SimulatedResponse(vendor, model, category, prompt), nil
	}

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	var generateConfig *genai.GenerateContentConfig
	if params != nil {
		generateConfig = &genai.GenerateContentConfig{}
		if params.Temperature > 0 {
			temp := float32(params.Temperature)
			generateConfig.Temperature = &temp
		}
		if params.MaxTokens > 0 {
			generateConfig.MaxOutputTokens = int32(params.MaxTokens)
		}
	}

	result, err := genaiClient.Models.GenerateContent(
		ctx,
		model,
		genai.Text(prompt),
		generateConfig,
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, backends.Transient(err)
		}
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	responseText := result.Text()
	if responseText == "" {
		return nil, fmt.Errorf("no text content returned")
	}

	tokensUsed := 0
	if result.UsageMetadata != nil {
		tokensUsed = int(result.UsageMetadata.TotalTokenCount)
	}

	return &backends.Response{
		Text:          responseText,
		ModelName:     model,
		ModelCategory: category,
		Vendor:        vendor,
		Metadata: backends.Metadata{
			TokensUsed:   tokensUsed,
			ModelVersion: model,
		},
	}, nil
}

func (c *client) ModelInfo(config *backends.Config) backends.Info {
	model := config.Model
	if model == "" {
		model = defaultModel
	}
	return backends.Info{
		ModelName:     model,
		ModelCategory: backends.CategoryFor(vendor, model, config.Category),
		Vendor:        vendor,
	}
}
