package http

import (
	"encoding/json"
	"net/http"

	"github.com/voicegw/voicegw/pkg/domain/types/apperr"
	"github.com/voicegw/voicegw/pkg/utils/errors"
)

// ErrorResponse is the error body shape returned by the gateway
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// handleError logs the error and writes the mapped HTTP error response.
// Provider API errors keep the provider's own status code and carry its
// raw body in the detail text.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	errors.Handle(r.Context(), err)

	statusCode := apperr.HTTPStatusFromError(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if encodeErr := json.NewEncoder(w).Encode(ErrorResponse{Detail: err.Error()}); encodeErr != nil {
		// Headers are already sent; nothing left to do but log
		errors.Handle(r.Context(), encodeErr)
	}
}
