package retell_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/voicegw/voicegw/pkg/domain/model/agent"
	"github.com/voicegw/voicegw/pkg/domain/types"
	"github.com/voicegw/voicegw/pkg/domain/types/apperr"
	"github.com/voicegw/voicegw/pkg/service/retell"
)

func strPtr(s string) *string {
	return &s
}

type capturedRequest struct {
	Method        string
	Path          string
	Authorization string
	Body          map[string]any
}

func newFakeRetell(t *testing.T, status int, body map[string]any) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.Method = r.Method
		captured.Path = r.URL.Path
		captured.Authorization = r.Header.Get("Authorization")
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&captured.Body))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		gt.NoError(t, json.NewEncoder(w).Encode(body))
	}))
	t.Cleanup(ts.Close)
	return ts, captured
}

func TestCreateAgent_Mapping(t *testing.T) {
	ts, captured := newFakeRetell(t, http.StatusCreated, map[string]any{"id": "agent_1"})
	client := retell.New("test-key", retell.WithBaseURL(ts.URL))

	req := &agent.CreateAgentRequest{
		Name:                  "support",
		Provider:              types.ProviderRetell,
		VoiceID:               strPtr("voice-1"),
		WebhookURL:            strPtr("https://example.com/hook"),
		Language:              strPtr("ja-JP"),
		PhoneNumber:           strPtr("+15550001111"),
		ForwardingPhoneNumber: strPtr("+15550002222"),
		CustomInstructions:    strPtr("Be polite."),
		AvatarURL:             strPtr("https://example.com/avatar.png"),
	}

	resp, err := client.CreateAgent(context.Background(), req)
	gt.NoError(t, err)
	gt.Equal(t, captured.Method, http.MethodPost)
	gt.Equal(t, captured.Path, "/agents")
	gt.Equal(t, captured.Authorization, "Bearer test-key")
	gt.Equal(t, captured.Body["name"], "support")
	gt.Equal(t, captured.Body["voice_id"], "voice-1")
	gt.Equal(t, captured.Body["webhook_url"], "https://example.com/hook")
	gt.Equal(t, captured.Body["language"], "ja-JP")
	gt.Equal(t, captured.Body["phone_number"], "+15550001111")
	gt.Equal(t, captured.Body["forwarding_phone_number"], "+15550002222")
	gt.Equal(t, captured.Body["instructions"], "Be polite.")
	gt.Equal(t, captured.Body["avatar_url"], "https://example.com/avatar.png")

	gt.Equal(t, resp.ID, "agent_1")
	gt.Equal(t, resp.Provider, types.ProviderRetell)
}

func TestCreateAgent_OptionalFieldsOmitted(t *testing.T) {
	ts, captured := newFakeRetell(t, http.StatusOK, map[string]any{"id": "agent_1"})
	client := retell.New("test-key", retell.WithBaseURL(ts.URL))

	req := &agent.CreateAgentRequest{
		Name:     "support",
		Provider: types.ProviderRetell,
	}

	_, err := client.CreateAgent(context.Background(), req)
	gt.NoError(t, err)

	for _, key := range []string{"phone_number", "forwarding_phone_number", "llm", "instructions", "avatar_url"} {
		_, ok := captured.Body[key]
		gt.False(t, ok)
	}

	// description defaults to empty string, language to en-US
	gt.Equal(t, captured.Body["description"], "")
	gt.Equal(t, captured.Body["language"], "en-US")
}

func TestCreateAgent_TopLevelModelScenario(t *testing.T) {
	ts, captured := newFakeRetell(t, http.StatusOK, map[string]any{"id": "agent_1"})
	client := retell.New("test-key", retell.WithBaseURL(ts.URL))

	req := &agent.CreateAgentRequest{
		Name:     "B",
		Provider: types.ProviderRetell,
		Model:    strPtr("claude-3"),
	}

	_, err := client.CreateAgent(context.Background(), req)
	gt.NoError(t, err)

	llm := gt.Cast[map[string]any](t, captured.Body["llm"])
	gt.Equal(t, llm["provider"], "openai")
	gt.Equal(t, llm["model"], "claude-3")
	gt.Equal(t, llm["temperature"], 0.7)
}

func TestCreateAgent_TopLevelModelWinsOverLLMConfig(t *testing.T) {
	ts, captured := newFakeRetell(t, http.StatusOK, map[string]any{"id": "agent_1"})
	client := retell.New("test-key", retell.WithBaseURL(ts.URL))

	req := &agent.CreateAgentRequest{
		Name:     "support",
		Provider: types.ProviderRetell,
		Model:    strPtr("claude-3"),
		LLMConfig: &agent.LLMConfig{
			Provider:    strPtr("anthropic"),
			Model:       strPtr("gpt-4"),
			Temperature: ptrFloat(0.2),
		},
	}

	_, err := client.CreateAgent(context.Background(), req)
	gt.NoError(t, err)

	llm := gt.Cast[map[string]any](t, captured.Body["llm"])
	gt.Equal(t, llm["provider"], "anthropic")
	gt.Equal(t, llm["model"], "claude-3")
	gt.Equal(t, llm["temperature"], 0.2)
}

func ptrFloat(f float64) *float64 {
	return &f
}

func TestCreateAgent_SuccessStatuses(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusCreated} {
		ts, _ := newFakeRetell(t, status, map[string]any{"id": "agent_1"})
		client := retell.New("test-key", retell.WithBaseURL(ts.URL))

		resp, err := client.CreateAgent(context.Background(), &agent.CreateAgentRequest{
			Name:     "support",
			Provider: types.ProviderRetell,
		})
		gt.NoError(t, err)
		gt.Equal(t, resp.ID, "agent_1")
	}
}

func TestCreateAgent_ErrorStatus(t *testing.T) {
	ts, _ := newFakeRetell(t, http.StatusUnprocessableEntity, map[string]any{"error": "bad voice_id"})
	client := retell.New("test-key", retell.WithBaseURL(ts.URL))

	_, err := client.CreateAgent(context.Background(), &agent.CreateAgentRequest{
		Name:     "support",
		Provider: types.ProviderRetell,
	})
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, apperr.ErrTagProviderAPI))
	gt.S(t, err.Error()).Contains("Retell API error")
	gt.S(t, err.Error()).Contains("bad voice_id")

	code, ok := apperr.ProviderStatus(err)
	gt.True(t, ok)
	gt.Equal(t, code, http.StatusUnprocessableEntity)
}

func TestCreateAgent_Unreachable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // Connection refused

	client := retell.New("test-key", retell.WithBaseURL(ts.URL))

	_, err := client.CreateAgent(context.Background(), &agent.CreateAgentRequest{
		Name:     "support",
		Provider: types.ProviderRetell,
	})
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, apperr.ErrTagProviderUnreachable))
}

func TestCreateAgent_MissingID(t *testing.T) {
	ts, _ := newFakeRetell(t, http.StatusOK, map[string]any{"status": "created"})
	client := retell.New("test-key", retell.WithBaseURL(ts.URL))

	resp, err := client.CreateAgent(context.Background(), &agent.CreateAgentRequest{
		Name:     "support",
		Provider: types.ProviderRetell,
	})
	gt.NoError(t, err)
	gt.Equal(t, resp.ID, "")
	gt.Equal(t, resp.Name, "support")
}
