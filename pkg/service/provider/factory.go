package provider

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/voicegw/voicegw/pkg/domain/interfaces"
	providermodel "github.com/voicegw/voicegw/pkg/domain/model/provider"
	"github.com/voicegw/voicegw/pkg/domain/types"
	"github.com/voicegw/voicegw/pkg/domain/types/apperr"
	"github.com/voicegw/voicegw/pkg/service/retell"
	"github.com/voicegw/voicegw/pkg/service/vapi"
	"github.com/voicegw/voicegw/pkg/utils/logging"
)

// Credential holds authentication information for a voice agent provider
type Credential struct {
	APIKey string `masq:"secret"`
}

// Factory builds and resolves provider adapters. Credentials are sourced
// once at startup and read-only afterwards.
type Factory struct {
	config      *providermodel.Config
	credentials map[types.Provider]Credential
	adapters    map[types.Provider]interfaces.ProviderAdapter
}

// FactoryOption is a functional option for Factory
type FactoryOption func(*Factory)

// WithAdapter overrides the adapter for a provider, mainly for testing
func WithAdapter(adapter interfaces.ProviderAdapter) FactoryOption {
	return func(f *Factory) {
		f.adapters[adapter.Provider()] = adapter
	}
}

// NewFactory creates a new adapter factory from the provider catalog and
// credential map
func NewFactory(config *providermodel.Config, credentials map[types.Provider]Credential, opts ...FactoryOption) (*Factory, error) {
	config.ApplyDefaults()
	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid provider catalog",
			goerr.T(apperr.ErrTagConfiguration))
	}

	f := &Factory{
		config:      config,
		credentials: credentials,
		adapters:    make(map[types.Provider]interfaces.ProviderAdapter),
	}

	readyProviders := make([]string, 0, len(credentials))
	for _, p := range types.AllProviders() {
		cred, ok := credentials[p]
		if !ok || cred.APIKey == "" {
			continue
		}
		f.adapters[p] = f.buildAdapter(p, cred)
		readyProviders = append(readyProviders, p.String())
	}

	for _, opt := range opts {
		opt(f)
	}

	logging.Default().Info("provider adapter factory initialized",
		slog.Any("ready_providers", readyProviders),
	)

	return f, nil
}

func (f *Factory) buildAdapter(p types.Provider, cred Credential) interfaces.ProviderAdapter {
	switch p {
	case types.ProviderVapi:
		opts := []vapi.Option{vapi.WithDefaults(f.config.Defaults)}
		if ep, ok := f.config.GetEndpoint(p); ok {
			opts = append(opts, vapi.WithBaseURL(ep.BaseURL))
		}
		return vapi.New(cred.APIKey, opts...)

	case types.ProviderRetell:
		opts := []retell.Option{retell.WithDefaults(f.config.Defaults)}
		if ep, ok := f.config.GetEndpoint(p); ok {
			opts = append(opts, retell.WithBaseURL(ep.BaseURL))
		}
		return retell.New(cred.APIKey, opts...)

	default:
		return nil
	}
}

// ValidateCredentials checks that every supported provider has an API key.
// Both keys are required regardless of which provider a request targets.
func (f *Factory) ValidateCredentials() error {
	for _, p := range types.AllProviders() {
		cred, ok := f.credentials[p]
		if !ok || cred.APIKey == "" {
			return goerr.Wrap(apperr.ErrAPIKeysNotConfigured, "missing provider API key",
				goerr.TV(apperr.ProviderKey, p))
		}
	}
	return nil
}

// Adapter resolves the adapter for a provider
func (f *Factory) Adapter(p types.Provider) (interfaces.ProviderAdapter, error) {
	if !p.IsValid() {
		return nil, goerr.Wrap(apperr.ErrUnsupportedProvider, "no adapter for provider",
			goerr.TV(apperr.ProviderKey, p))
	}

	adapter, ok := f.adapters[p]
	if !ok {
		return nil, goerr.Wrap(apperr.ErrProviderNotConfigured, "no credentials for provider",
			goerr.TV(apperr.ProviderKey, p))
	}

	return adapter, nil
}
