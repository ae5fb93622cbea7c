package usecase

import (
	"github.com/voicegw/voicegw/pkg/domain/interfaces"
)

// UseCases holds the gateway use cases
type UseCases struct {
	factory interfaces.AdapterFactory
}

// Option is a functional option for UseCases
type Option func(*UseCases)

// WithAdapterFactory sets the provider adapter factory
func WithAdapterFactory(factory interfaces.AdapterFactory) Option {
	return func(uc *UseCases) {
		uc.factory = factory
	}
}

// New creates a new UseCases
func New(opts ...Option) *UseCases {
	uc := &UseCases{}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

var _ interfaces.AgentUseCases = (*UseCases)(nil)
