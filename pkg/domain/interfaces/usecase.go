package interfaces

import (
	"context"

	"github.com/voicegw/voicegw/pkg/domain/model/agent"
)

// AgentUseCases defines the gateway's agent creation operations
type AgentUseCases interface {
	CreateAgent(ctx context.Context, req *agent.CreateAgentRequest) (*agent.AgentResponse, error)
}
