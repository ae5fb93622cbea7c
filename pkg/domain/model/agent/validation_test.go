package agent_test

import (
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/voicegw/voicegw/pkg/domain/model/agent"
	"github.com/voicegw/voicegw/pkg/domain/types"
	"github.com/voicegw/voicegw/pkg/domain/types/apperr"
)

func strPtr(s string) *string {
	return &s
}

func TestValidate(t *testing.T) {
	req := &agent.CreateAgentRequest{
		Name:     "support",
		Provider: types.ProviderVapi,
	}
	gt.NoError(t, req.Validate())
}

func TestValidate_NameRequired(t *testing.T) {
	req := &agent.CreateAgentRequest{
		Provider: types.ProviderVapi,
	}
	err := req.Validate()
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, apperr.ErrTagRequiredField))

	req.Name = "   "
	gt.Error(t, req.Validate())
}

func TestValidate_ProviderRequired(t *testing.T) {
	req := &agent.CreateAgentRequest{
		Name: "support",
	}
	err := req.Validate()
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, apperr.ErrTagRequiredField))
}

func TestValidate_UnknownProvider(t *testing.T) {
	req := &agent.CreateAgentRequest{
		Name:     "support",
		Provider: types.Provider("banana"),
	}
	err := req.Validate()
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, apperr.ErrTagUnsupportedProvider))
}

func TestGreetingMessage(t *testing.T) {
	req := &agent.CreateAgentRequest{
		FirstMessage:   strPtr("hello"),
		InitialMessage: strPtr("hi"),
	}
	gt.Equal(t, *req.GreetingMessage(), "hello")

	req.FirstMessage = nil
	gt.Equal(t, *req.GreetingMessage(), "hi")

	req.InitialMessage = nil
	gt.Nil(t, req.GreetingMessage())
}

func TestLanguageOrDefault(t *testing.T) {
	req := &agent.CreateAgentRequest{}
	gt.Equal(t, req.LanguageOrDefault(), agent.DefaultLanguage)

	req.Language = strPtr("ja-JP")
	gt.Equal(t, req.LanguageOrDefault(), "ja-JP")
}
