package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/voicegw/voicegw/pkg/domain/interfaces"
	"github.com/voicegw/voicegw/pkg/domain/model/agent"
	"github.com/voicegw/voicegw/pkg/domain/types"
	"github.com/voicegw/voicegw/pkg/domain/types/apperr"
)

// AgentController handles agent creation HTTP requests
type AgentController struct {
	agentUseCase interfaces.AgentUseCases
}

// NewAgentController creates a new agent controller
func NewAgentController(agentUseCase interfaces.AgentUseCases) *AgentController {
	return &AgentController{
		agentUseCase: agentUseCase,
	}
}

// RootResponse is the discovery payload served at /
type RootResponse struct {
	Message   string   `json:"message"`
	Providers []string `json:"providers"`
}

// HandleCreateAgent accepts a unified create request and forwards it to the
// selected provider
func (c *AgentController) HandleCreateAgent(w http.ResponseWriter, r *http.Request) {
	var req agent.CreateAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, r, goerr.Wrap(err, "failed to decode request body",
			goerr.T(apperr.ErrTagInvalidFormat)))
		return
	}

	resp, err := c.agentUseCase.CreateAgent(r.Context(), &req)
	if err != nil {
		handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		handleError(w, r, goerr.Wrap(err, "failed to encode response"))
		return
	}
}

// HandleRoot serves the welcome and discovery payload
func (c *AgentController) HandleRoot(w http.ResponseWriter, r *http.Request) {
	providers := make([]string, 0, len(types.AllProviders()))
	for _, p := range types.AllProviders() {
		providers = append(providers, p.String())
	}

	response := RootResponse{
		Message:   "Welcome to the Voice Agent Gateway",
		Providers: providers,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		handleError(w, r, goerr.Wrap(err, "failed to encode response"))
		return
	}
}
