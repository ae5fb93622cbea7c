package apperr

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"
)

// HTTPStatusFromError returns the appropriate HTTP status code based on error tags
func HTTPStatusFromError(err error) int {
	switch {
	// 400 Bad Request
	case goerr.HasTag(err, ErrTagValidation),
		goerr.HasTag(err, ErrTagRequiredField),
		goerr.HasTag(err, ErrTagInvalidFormat),
		goerr.HasTag(err, ErrTagUnsupportedProvider):
		return http.StatusBadRequest

	// Provider API errors propagate the provider's own status code
	case goerr.HasTag(err, ErrTagProviderAPI):
		if code, ok := ProviderStatus(err); ok {
			return code
		}
		return http.StatusBadGateway

	// 500 Internal Server Error
	case goerr.HasTag(err, ErrTagConfiguration),
		goerr.HasTag(err, ErrTagProviderUnreachable),
		goerr.HasTag(err, ErrTagInternal):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// ProviderStatus extracts the provider's HTTP status code from the error chain
func ProviderStatus(err error) (int, bool) {
	code, ok := goerr.GetTypedValue(err, StatusCodeKey)
	if !ok || code == 0 {
		return 0, false
	}
	return code, true
}
