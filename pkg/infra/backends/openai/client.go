package openai

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/infra/backends"
)

const (
	vendor       = "openai"
	defaultModel = "gpt-4"
)

type client struct {
	clientPool *sync.Map
}

func NewOpenaiClient() backends.Client {
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

	openaiClient := c.getOrCreateClient(config.APIKey)

	chatParams := openai.ChatCompletionNewParams{
		Model: model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}
	if params != nil {
		if params.MaxTokens > 0 {
			chatParams.MaxTokens = openai.Int(int64(params.MaxTokens))
		}
		if params.Temperature > 0 {
			chatParams.Temperature = openai.Float(params.Temperature)
		}
	}

	resp, err := openaiClient.Chat.Completions.New(ctx, chatParams)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, backends.Transient(err)
		}
		return nil, fmt.Errorf("OpenAI request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no completions returned")
	}

	return &backends.Response{
		Text:          resp.Choices[0].Message.Content,
		ModelName:     resp.Model,
		ModelCategory: category,
		Vendor:        vendor,
		Metadata: backends.Metadata{
			TokensUsed:   int(resp.Usage.TotalTokens),
			ModelVersion: resp.Model,
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

func (c *client) getOrCreateClient(apiKey string) openai.Client {
	if clientVal, ok := c.clientPool.Load(apiKey); ok {
		existing, ok := clientVal.(openai.Client)
		if ok {
			return existing
		}
	}
	newClient := openai.NewClient(option.WithAPIKey(apiKey))
	c.clientPool.Store(apiKey, newClient)
	return newClient
}
