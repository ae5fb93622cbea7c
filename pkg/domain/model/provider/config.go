package provider

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/voicegw/voicegw/pkg/domain/types"
)

// Mapping defaults applied when a catalog omits them
const (
	DefaultLLMProvider = "openai"
	DefaultLLMModel    = "gpt-4"
	DefaultTemperature = 0.7
)

// Endpoint represents a provider endpoint entry in the catalog
type Endpoint struct {
	DisplayName string `yaml:"display_name" json:"display_name"`
	BaseURL     string `yaml:"base_url" json:"base_url"`
}

// Defaults represents the LLM mapping defaults used when a request omits
// the corresponding llm_config fields. Temperature is a pointer so a catalog
// can set an explicit 0 without it being treated as unset.
type Defaults struct {
	LLMProvider string   `yaml:"llm_provider" json:"llm_provider"`
	LLMModel    string   `yaml:"llm_model" json:"llm_model"`
	Temperature *float64 `yaml:"temperature" json:"temperature"`
}

// TemperatureOrDefault returns the configured temperature, falling back to
// DefaultTemperature when unset
func (d Defaults) TemperatureOrDefault() float64 {
	if d.Temperature == nil {
		return DefaultTemperature
	}
	return *d.Temperature
}

// Config represents the provider catalog: endpoint base URLs and mapping
// defaults, loadable from providers.yaml
type Config struct {
	Providers map[string]Endpoint `yaml:"providers"`
	Defaults  Defaults            `yaml:"defaults"`
}

// ApplyDefaults fills omitted defaults with the built-in values
func (c *Config) ApplyDefaults() {
	if c.Defaults.LLMProvider == "" {
		c.Defaults.LLMProvider = DefaultLLMProvider
	}
	if c.Defaults.LLMModel == "" {
		c.Defaults.LLMModel = DefaultLLMModel
	}
	if c.Defaults.Temperature == nil {
		temp := DefaultTemperature
		c.Defaults.Temperature = &temp
	}
}

// Validate checks that every catalog entry names a known provider with a
// usable base URL
func (c *Config) Validate() error {
	for id, ep := range c.Providers {
		if !types.Provider(id).IsValid() {
			return goerr.New("unknown provider in catalog", goerr.V("provider", id))
		}
		if ep.BaseURL == "" {
			return goerr.New("provider base URL is required", goerr.V("provider", id))
		}
	}
	return nil
}

// GetEndpoint returns the endpoint entry for a provider
func (c *Config) GetEndpoint(p types.Provider) (*Endpoint, bool) {
	ep, ok := c.Providers[p.String()]
	if !ok {
		return nil, false
	}
	return &ep, true
}
