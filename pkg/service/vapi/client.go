package vapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/voicegw/voicegw/pkg/domain/model/agent"
	"github.com/voicegw/voicegw/pkg/domain/model/provider"
	"github.com/voicegw/voicegw/pkg/domain/types"
	"github.com/voicegw/voicegw/pkg/domain/types/apperr"
	"github.com/voicegw/voicegw/pkg/utils/safe"
)

const defaultBaseURL = "https://api.vapi.ai"

// Client is the Vapi.ai adapter. It maps the unified request shape to Vapi's
// assistant creation payload and normalizes the response.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	defaults   provider.Defaults
}

// Option is a functional option for Client
type Option func(*Client)

// WithBaseURL overrides the API base URL
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithDefaults overrides the LLM mapping defaults
func WithDefaults(defaults provider.Defaults) Option {
	return func(c *Client) {
		c.defaults = defaults
	}
}

// New creates a new Vapi adapter
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		defaults: provider.Defaults{
			LLMProvider: provider.DefaultLLMProvider,
			LLMModel:    provider.DefaultLLMModel,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Provider returns the provider identifier
func (c *Client) Provider() types.Provider {
	return types.ProviderVapi
}

// assistantPayload is Vapi's wire format for assistant creation. The first
// four fields are always emitted, null when absent.
type assistantPayload struct {
	Name         string        `json:"name"`
	Description  *string       `json:"description"`
	WebhookURL   *string       `json:"webhook_url"`
	VoiceID      *string       `json:"voice_id"`
	Model        *modelPayload `json:"model,omitempty"`
	FirstMessage *string       `json:"first_message,omitempty"`
}

type modelPayload struct {
	Provider     string  `json:"provider"`
	Model        string  `json:"model"`
	Temperature  float64 `json:"temperature"`
	SystemPrompt string  `json:"system_prompt"`
}

func (c *Client) buildPayload(req *agent.CreateAgentRequest) *assistantPayload {
	payload := &assistantPayload{
		Name:         req.Name,
		Description:  req.Description,
		WebhookURL:   req.WebhookURL,
		VoiceID:      req.VoiceID,
		FirstMessage: req.GreetingMessage(),
	}

	// The model object is emitted only when llm_config is present
	if req.LLMConfig != nil {
		model := &modelPayload{
			Provider:    c.defaults.LLMProvider,
			Model:       c.defaults.LLMModel,
			Temperature: c.defaults.TemperatureOrDefault(),
		}
		if req.LLMConfig.Provider != nil {
			model.Provider = *req.LLMConfig.Provider
		}
		if req.LLMConfig.Model != nil {
			model.Model = *req.LLMConfig.Model
		}
		if req.LLMConfig.Temperature != nil {
			model.Temperature = *req.LLMConfig.Temperature
		}
		if req.CustomInstructions != nil {
			model.SystemPrompt = *req.CustomInstructions
		}
		payload.Model = model
	}

	return payload
}

// CreateAgent creates an assistant via the Vapi.ai API
func (c *Client) CreateAgent(ctx context.Context, req *agent.CreateAgentRequest) (*agent.AgentResponse, error) {
	endpoint := c.baseURL + "/assistants"

	body, err := json.Marshal(c.buildPayload(req))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal Vapi.ai payload",
			goerr.T(apperr.ErrTagInternal))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Vapi.ai request",
			goerr.T(apperr.ErrTagInternal),
			goerr.TV(apperr.EndpointKey, endpoint))
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, goerr.Wrap(err, "error communicating with Vapi.ai",
			goerr.T(apperr.ErrTagProviderUnreachable),
			goerr.TV(apperr.ProviderKey, types.ProviderVapi),
			goerr.TV(apperr.EndpointKey, endpoint))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, goerr.New(fmt.Sprintf("Vapi.ai API error: %s", string(raw)),
			goerr.T(apperr.ErrTagProviderAPI),
			goerr.TV(apperr.ProviderKey, types.ProviderVapi),
			goerr.TV(apperr.StatusCodeKey, resp.StatusCode))
	}

	var rawResponse map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&rawResponse); err != nil {
		return nil, goerr.Wrap(err, "failed to decode Vapi.ai response",
			goerr.T(apperr.ErrTagInternal),
			goerr.TV(apperr.ProviderKey, types.ProviderVapi))
	}

	// Lenient by contract: a missing assistant_id yields an empty ID rather
	// than an error
	id, _ := rawResponse["assistant_id"].(string)
	if id == "" {
		ctxlog.From(ctx).Warn("Vapi.ai response has no assistant_id",
			"agent_name", req.Name)
	}

	return &agent.AgentResponse{
		ID:          id,
		Name:        req.Name,
		Provider:    types.ProviderVapi,
		RawResponse: rawResponse,
	}, nil
}
