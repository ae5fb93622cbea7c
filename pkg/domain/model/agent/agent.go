package agent

import (
	"github.com/voicegw/voicegw/pkg/domain/types"
)

// DefaultLanguage is applied when a request omits the language field
const DefaultLanguage = "en-US"

// CreateAgentRequest is the unified request shape accepted by the gateway.
// Pointer fields distinguish absent values from zero values so adapters can
// decide which wire fields to emit.
type CreateAgentRequest struct {
	Name        string         `json:"name"`
	Description *string        `json:"description,omitempty"`
	Provider    types.Provider `json:"provider"`
	VoiceID     *string        `json:"voice_id,omitempty"`
	Language    *string        `json:"language,omitempty"`
	WebhookURL  *string        `json:"webhook_url,omitempty"`

	// Provider-specific configuration; fields not relevant to the chosen
	// provider are silently ignored
	OpenAIConfig       map[string]any `json:"openai_config,omitempty"`
	AnthropicConfig    map[string]any `json:"anthropic_config,omitempty"`
	LLMConfig          *LLMConfig     `json:"llm_config,omitempty"`
	CustomInstructions *string        `json:"custom_instructions,omitempty"`

	PhoneNumber           *string `json:"phone_number,omitempty"`
	InitialMessage        *string `json:"initial_message,omitempty"`
	ForwardingPhoneNumber *string `json:"forwarding_phone_number,omitempty"`
	FirstMessage          *string `json:"first_message,omitempty"`
	AvatarURL             *string `json:"avatar_url,omitempty"`
	Model                 *string `json:"model,omitempty"`
}

// LLMConfig is the generic LLM configuration of a unified request
type LLMConfig struct {
	Provider    *string  `json:"provider,omitempty"`
	Model       *string  `json:"model,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
}

// AgentResponse is the unified response shape returned by the gateway.
// RawResponse preserves the provider's full JSON body for forward
// compatibility.
type AgentResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Provider    types.Provider `json:"provider"`
	RawResponse map[string]any `json:"raw_response"`
}

// GreetingMessage returns the agent's opening line: first_message wins over
// initial_message, nil when both are absent
func (x *CreateAgentRequest) GreetingMessage() *string {
	if x.FirstMessage != nil {
		return x.FirstMessage
	}
	return x.InitialMessage
}

// LanguageOrDefault returns the requested language, falling back to
// DefaultLanguage when the field is omitted
func (x *CreateAgentRequest) LanguageOrDefault() string {
	if x.Language != nil {
		return *x.Language
	}
	return DefaultLanguage
}
