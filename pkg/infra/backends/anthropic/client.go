package anthropic

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/infra/backends"
)

const (
	vendor           = "anthropic"
	defaultModel     = "claude-3-opus-20240229"
	defaultMaxTokens = 1024
)

type client struct {
	clientPool *sync.Map
}

func NewAnthropicClient() backends.Client {
	return &client{
		clientPool: &sync.Map{},
	}
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

	anthropicClient := c.getOrCreateClient(config.APIKey)

	maxTokens := defaultMaxTokens
	if params != nil && params.MaxTokens > 0 {
		maxTokens = params.MaxTokens
	}

	messageParams := anthropic.MessageNewParams{
		Model: anthropic.Model(model),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
		MaxTokens: int64(maxTokens),
	}
	if params != nil && params.Temperature > 0 {
		messageParams.Temperature = anthropic.Float(params.Temperature)
	}

	message, err := anthropicClient.Messages.New(ctx, messageParams)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, backends.Transient(err)
		}
		return nil, fmt.Errorf("anthropic request failed: %w", err)
	}

	if len(message.Content) == 0 {
		return nil, fmt.Errorf("no completions returned")
	}

	var responseText string
	for _, content := range message.Content {
		if content.Type == "text" {
			responseText = content.Text
			break
		}
	}
	if responseText == "" {
		return nil, fmt.Errorf("no text content returned")
	}

	return &backends.Response{
		Text:          responseText,
		ModelName:     model,
		ModelCategory: category,
		Vendor:        vendor,
		Metadata: backends.Metadata{
			TokensUsed:   int(message.Usage.InputTokens + message.Usage.OutputTokens),
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

func (c *client) getOrCreateClient(apiKey string) anthropic.Client {
	if clientVal, ok := c.clientPool.Load(apiKey); ok {
		existing, ok := clientVal.(anthropic.Client)
		if ok {
			return existing
		}
	}
	newClient := anthropic.NewClient(option.WithAPIKey(apiKey))
	c.clientPool.Store(apiKey, newClient)
	return newClient
}
