package retell

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

const defaultBaseURL = "https://api.retellai.com"

// Client is the Retell adapter. It maps the unified request shape to Retell's
// agent creation payload and normalizes the response.
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

// New creates a new Retell adapter
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
	return types.ProviderRetell
}

// agentPayload is Retell's wire format for agent creation. Description
// defaults to an empty string; the trailing fields are emitted only when
// present in the unified request.
type agentPayload struct {
	Name                  string      `json:"name"`
	Description           string      `json:"description"`
	VoiceID               *string     `json:"voice_id"`
	WebhookURL            *string     `json:"webhook_url"`
	Language              string      `json:"language"`
	PhoneNumber           *string     `json:"phone_number,omitempty"`
	ForwardingPhoneNumber *string     `json:"forwarding_phone_number,omitempty"`
	LLM                   *llmPayload `json:"llm,omitempty"`
	Instructions          *string     `json:"instructions,omitempty"`
	AvatarURL             *string     `json:"avatar_url,omitempty"`
}

type llmPayload struct {
	Provider    string  `json:"provider"`
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
}

func (c *Client) buildPayload(req *agent.CreateAgentRequest) *agentPayload {
	payload := &agentPayload{
		Name:                  req.Name,
		VoiceID:               req.VoiceID,
		WebhookURL:            req.WebhookURL,
		Language:              req.LanguageOrDefault(),
		PhoneNumber:           req.PhoneNumber,
		ForwardingPhoneNumber: req.ForwardingPhoneNumber,
		Instructions:          req.CustomInstructions,
		AvatarURL:             req.AvatarURL,
	}
	if req.Description != nil {
		payload.Description = *req.Description
	}

	// The llm object is emitted when either llm_config or a top-level model
	// is present. The top-level model wins over llm_config.model.
	if req.LLMConfig != nil || req.Model != nil {
		llm := &llmPayload{
			Provider:    c.defaults.LLMProvider,
			Model:       c.defaults.LLMModel,
			Temperature: c.defaults.TemperatureOrDefault(),
		}
		if req.LLMConfig != nil {
			if req.LLMConfig.Provider != nil {
				llm.Provider = *req.LLMConfig.Provider
			}
			if req.LLMConfig.Model != nil {
				llm.Model = *req.LLMConfig.Model
			}
			if req.LLMConfig.Temperature != nil {
				llm.Temperature = *req.LLMConfig.Temperature
			}
		}
		if req.Model != nil {
			llm.Model = *req.Model
		}
		payload.LLM = llm
	}

	return payload
}

// CreateAgent creates an agent via the Retell API
func (c *Client) CreateAgent(ctx context.Context, req *agent.CreateAgentRequest) (*agent.AgentResponse, error) {
	endpoint := c.baseURL + "/agents"

	body, err := json.Marshal(c.buildPayload(req))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal Retell payload",
			goerr.T(apperr.ErrTagInternal))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Retell request",
			goerr.T(apperr.ErrTagInternal),
			goerr.TV(apperr.EndpointKey, endpoint))
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, goerr.Wrap(err, "error communicating with Retell",
			goerr.T(apperr.ErrTagProviderUnreachable),
			goerr.TV(apperr.ProviderKey, types.ProviderRetell),
			goerr.TV(apperr.EndpointKey, endpoint))
	}
	defer safe.Close(ctx, resp.Body)

	// Retell signals creation with either 200 or 201
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return nil, goerr.New(fmt.Sprintf("Retell API error: %s", string(raw)),
			goerr.T(apperr.ErrTagProviderAPI),
			goerr.TV(apperr.ProviderKey, types.ProviderRetell),
			goerr.TV(apperr.StatusCodeKey, resp.StatusCode))
	}

	var rawResponse map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&rawResponse); err != nil {
		return nil, goerr.Wrap(err, "failed to decode Retell response",
			goerr.T(apperr.ErrTagInternal),
			goerr.TV(apperr.ProviderKey, types.ProviderRetell))
	}

	// Lenient by contract: a missing id yields an empty ID rather than an
	// error
	id, _ := rawResponse["id"].(string)
	if id == "" {
		ctxlog.From(ctx).Warn("Retell response has no id",
			"agent_name", req.Name)
	}

	return &agent.AgentResponse{
		ID:          id,
		Name:        req.Name,
		Provider:    types.ProviderRetell,
		RawResponse: rawResponse,
	}, nil
}
