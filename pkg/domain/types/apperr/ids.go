package apperr

import "github.com/m-mizutani/goerr/v2"

// Request validation errors
var (
	ErrNameRequired = goerr.New("agent name is required",
		goerr.T(ErrTagRequiredField)).ID("ERR_NAME_REQUIRED")

	ErrProviderRequired = goerr.New("provider is required",
		goerr.T(ErrTagRequiredField)).ID("ERR_PROVIDER_REQUIRED")

	ErrUnsupportedProvider = goerr.New("unsupported provider",
		goerr.T(ErrTagUnsupportedProvider)).ID("ERR_UNSUPPORTED_PROVIDER")
)

// Configuration errors
var (
	ErrAPIKeysNotConfigured = goerr.New("API keys not configured",
		goerr.T(ErrTagConfiguration)).ID("ERR_API_KEYS_NOT_CONFIGURED")

	ErrProviderNotConfigured = goerr.New("provider is not configured",
		goerr.T(ErrTagConfiguration)).ID("ERR_PROVIDER_NOT_CONFIGURED")
)
