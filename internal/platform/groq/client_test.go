package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uismith/uismith-api/internal/config"
	"github.com/uismith/uismith-api/internal/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(config.LLMConfig{Provider: "groq", GroqAPIKey: "test-key"}, nil)
	require.NoError(t, err)
	client.baseURL = server.URL

	return client, server
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New(config.LLMConfig{Provider: "groq"}, nil)
	assert.ErrorIs(t, err, llm.ErrInvalidConfig)
}

func TestNewDefaultsModel(t *testing.T) {
	client, err := New(config.LLMConfig{Provider: "groq", GroqAPIKey: "k"}, nil)
	require.NoError(t, err)
	assert.Equal(t, defaultModel, client.model)

	client, err = New(config.LLMConfig{Provider: "groq", GroqAPIKey: "k", ModelName: "llama-3.3-70b-versatile"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "llama-3.3-70b-versatile", client.model)
}

func TestCompleteSuccess(t *testing.T) {
	var gotReq chatRequest
	var gotAuth string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices": [{"message": {"content": "<div>Hi</div>"}}]
		}`))
	})

	text, err := client.Complete(context.Background(), "make a div")
	require.NoError(t, err)
	assert.Equal(t, "<div>Hi</div>", text)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, defaultModel, gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, llm.SystemMessage, gotReq.Messages[0].Content)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	assert.Equal(t, "make a div", gotReq.Messages[1].Content)
	assert.InDelta(t, 0.6, gotReq.Temperature, 0.001)
}

func TestCompleteNonSuccessStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, llm.ErrUpstream)
}

func TestCompleteMalformedEnvelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})

	_, err := client.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, llm.ErrUpstream)
}

func TestCompleteEmptyChoices(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	})

	_, err := client.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, llm.ErrUpstream)
}

func TestCompleteNetworkFailure(t *testing.T) {
	client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	_, err := client.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, llm.ErrUpstream)
}
