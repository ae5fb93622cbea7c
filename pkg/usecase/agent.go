package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/voicegw/voicegw/pkg/domain/model/agent"
	"github.com/voicegw/voicegw/pkg/domain/types/apperr"
)

// CreateAgent validates the unified request, resolves the provider adapter
// and performs exactly one outbound creation call. There is no retry; any
// failure surfaces directly to the caller.
func (uc *UseCases) CreateAgent(ctx context.Context, req *agent.CreateAgentRequest) (*agent.AgentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid create agent request",
			goerr.TV(apperr.AgentNameKey, req.Name))
	}

	// Credentials must be complete before any network call is attempted
	if err := uc.factory.ValidateCredentials(); err != nil {
		return nil, err
	}

	adapter, err := uc.factory.Adapter(req.Provider)
	if err != nil {
		return nil, err
	}

	resp, err := adapter.CreateAgent(ctx, req)
	if err != nil {
		return nil, err
	}

	ctxlog.From(ctx).Info("agent created",
		"provider", resp.Provider,
		"agent_id", resp.ID,
		"agent_name", resp.Name,
	)

	return resp, nil
}
