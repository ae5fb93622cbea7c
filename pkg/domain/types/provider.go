package types

// Provider represents a voice agent platform
type Provider string

const (
	// ProviderVapi represents the Vapi.ai platform
	ProviderVapi Provider = "vapi"
	// ProviderRetell represents the Retell platform
	ProviderRetell Provider = "retell"
)

// String returns the string representation of the provider
func (p Provider) String() string {
	return string(p)
}

// IsValid checks if the provider is valid
func (p Provider) IsValid() bool {
	switch p {
	case ProviderVapi, ProviderRetell:
		return true
	default:
		return false
	}
}

// AllProviders returns every supported provider
func AllProviders() []Provider {
	return []Provider{ProviderVapi, ProviderRetell}
}
