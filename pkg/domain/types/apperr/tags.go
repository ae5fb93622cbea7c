package apperr

import "github.com/m-mizutani/goerr/v2"

// Validation errors (HTTP 400)
var (
	ErrTagValidation          = goerr.NewTag("validation")
	ErrTagRequiredField       = goerr.NewTag("required_field")
	ErrTagInvalidFormat       = goerr.NewTag("invalid_format")
	ErrTagUnsupportedProvider = goerr.NewTag("unsupported_provider")
)

// Configuration errors (HTTP 500)
var (
	ErrTagConfiguration = goerr.NewTag("configuration")
)

// Provider errors
var (
	// ErrTagProviderAPI marks a non-success response from a provider API.
	// The provider's own status code is carried in StatusCodeKey and
	// propagated verbatim to the caller.
	ErrTagProviderAPI = goerr.NewTag("provider_api")
	// ErrTagProviderUnreachable marks transport-level failures (HTTP 500)
	ErrTagProviderUnreachable = goerr.NewTag("provider_unreachable")
)

// System errors (HTTP 500)
var (
	ErrTagInternal = goerr.NewTag("internal")
)
