package interfaces

import (
	"context"

	"github.com/voicegw/voicegw/pkg/domain/model/agent"
	"github.com/voicegw/voicegw/pkg/domain/types"
)

// ProviderAdapter translates the unified request shape into one provider's
// wire format, performs the outbound call, and maps the response back
type ProviderAdapter interface {
	Provider() types.Provider
	CreateAgent(ctx context.Context, req *agent.CreateAgentRequest) (*agent.AgentResponse, error)
}

// AdapterFactory resolves provider adapters and holds the read-only
// credential mapping built at startup
type AdapterFactory interface {
	// ValidateCredentials fails when any required provider API key is
	// missing; called before any outbound request
	ValidateCredentials() error
	Adapter(p types.Provider) (ProviderAdapter, error)
}
