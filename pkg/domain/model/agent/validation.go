package agent

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/voicegw/voicegw/pkg/domain/types/apperr"
)

// Validate checks the required fields of a unified create request
func (x *CreateAgentRequest) Validate() error {
	if strings.TrimSpace(x.Name) == "" {
		return apperr.ErrNameRequired
	}

	if x.Provider == "" {
		return apperr.ErrProviderRequired
	}

	if !x.Provider.IsValid() {
		return goerr.Wrap(apperr.ErrUnsupportedProvider, "unknown provider",
			goerr.TV(apperr.ProviderKey, x.Provider))
	}

	return nil
}
