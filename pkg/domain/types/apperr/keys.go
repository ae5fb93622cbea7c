package apperr

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/voicegw/voicegw/pkg/domain/types"
)

// Provider related keys
var (
	ProviderKey   = goerr.NewTypedKey[types.Provider]("provider")
	StatusCodeKey = goerr.NewTypedKey[int]("status_code")
	EndpointKey   = goerr.NewTypedKey[string]("endpoint")
)

// Request related keys
var (
	AgentNameKey = goerr.NewTypedKey[string]("agent_name")
	RequestIDKey = goerr.NewTypedKey[string]("request_id")
)
