package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/soberfaysal-hue/enterprise-ai-security-platform/pkg/infra/backends"
	"github.com/valyala/fasthttp"
)

const (
	vendor         = "ollama"
	defaultModel   = "llama3"
	defaultBaseURL = "http://localhost:11434"
	requestTimeout = 30 * time.Second
)

type generateRequest struct {
	Model   string                 `json:"model"`
	Prompt  string                 `json:"prompt"`
	Stream  bool                   `json:"stream"`
	Options map[string]interface{} `json:"options,omitempty"`
}

type generateResponse struct {
	Response  string `json:"response"`
	EvalCount int    `json:"eval_count"`
}

type client struct {
	httpClient *fasthttp.Client
}

func NewOllamaClient(httpClient *fasthttp.Client) backends.Client {
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			ReadTimeout:  requestTimeout,
			WriteTimeout: requestTimeout,
		}
	}
	return &client{
		httpClient: httpClient,
	}
}

// Generate calls the local Ollama API. When the daemon is unreachable it
// degrades to a simulated response instead of failing, so the pipeline stays
// usable on machines without a local model.
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
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	options := map[string]interface{}{
		"temperature": 0.7,
		"num_predict": 1000,
	}
	if params != nil {
		if params.Temperature > 0 {
			options["temperature"] = params.Temperature
		}
		if params.MaxTokens > 0 {
			options["num_predict"] = params.MaxTokens
		}
	}

	body, err := json.Marshal(generateRequest{
		Model:   model,
		Prompt:  prompt,
		Stream:  false,
		Options: options,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ollama request: %w", err)
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(baseURL + "/api/generate")
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(body)

	timeout := requestTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}

	if err := c.httpClient.DoTimeout(req, resp, timeout); err != nil {
		return backends.SimulatedResponse(vendor, model, backends.CategoryLocal, prompt), nil
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return backends.SimulatedResponse(vendor, model, backends.CategoryLocal, prompt), nil
	}

	var data generateResponse
	if err := json.Unmarshal(resp.Body(), &data); err != nil {
		return nil, fmt.Errorf("invalid ollama response: %w", err)
	}

	return &backends.Response{
		Text:          data.Response,
		ModelName:     model,
		ModelCategory: backends.CategoryLocal,
		Vendor:        vendor,
		Metadata: backends.Metadata{
			TokensUsed:   data.EvalCount,
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
		ModelCategory: backends.CategoryLocal,
		Vendor:        vendor,
	}
}
