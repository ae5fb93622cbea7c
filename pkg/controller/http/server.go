package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/voicegw/voicegw/pkg/domain/interfaces"
	"github.com/voicegw/voicegw/pkg/utils/safe"
)

// Server represents the HTTP server
type Server struct {
	router    *chi.Mux
	agentCtrl *AgentController
}

// Options is a functional option for Server
type Options func(*Server)

// WithAgentController sets the agent controller
func WithAgentController(ctrl *AgentController) Options {
	return func(s *Server) {
		s.agentCtrl = ctrl
	}
}

// WithAgentUseCases is a shortcut that builds the agent controller from
// use cases
func WithAgentUseCases(uc interfaces.AgentUseCases) Options {
	return func(s *Server) {
		s.agentCtrl = NewAgentController(uc)
	}
}

// New creates a new HTTP server
func New(opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Apply middleware
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)
	r.Use(panicRecoveryMiddleware)

	// Register routes
	if s.agentCtrl != nil {
		r.Post("/create-agent", s.agentCtrl.HandleCreateAgent)
		r.Get("/", s.agentCtrl.HandleRoot)
	}

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		safe.Write(r.Context(), w, []byte("OK"))
	})

	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
