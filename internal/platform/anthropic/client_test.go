package anthropic

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

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(config.LLMConfig{Provider: "anthropic", AnthropicAPIKey: "test-key"}, nil)
	require.NoError(t, err)
	client.baseURL = server.URL

	return client
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New(config.LLMConfig{Provider: "anthropic"}, nil)
	assert.ErrorIs(t, err, llm.ErrInvalidConfig)
}

func TestNewDefaults(t *testing.T) {
	client, err := New(config.LLMConfig{Provider: "anthropic", AnthropicAPIKey: "k"}, nil)
	require.NoError(t, err)
	assert.Equal(t, defaultModel, client.model)
	assert.Equal(t, defaultMaxTokens, client.maxTokens)

	client, err = New(config.LLMConfig{
		Provider:        "anthropic",
		AnthropicAPIKey: "k",
		ModelName:       "claude-3-7-sonnet-20250219",
		MaxOutputTokens: 1024,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "claude-3-7-sonnet-20250219", client.model)
	assert.Equal(t, 1024, client.maxTokens)
}

func TestCompleteSuccess(t *testing.T) {
	var gotReq messagesRequest
	var gotKey, gotVersion string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"content": [{"type": "text", "text": "<div>Hi</div>"}]
		}`))
	})

	text, err := client.Complete(context.Background(), "make a div")
	require.NoError(t, err)
	assert.Equal(t, "<div>Hi</div>", text)

	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, apiVersion, gotVersion)
	assert.Equal(t, llm.SystemMessage, gotReq.System)
	assert.Equal(t, defaultMaxTokens, gotReq.MaxTokens)
	require.Len(t, gotReq.Messages, 1)
	assert.Equal(t, "user", gotReq.Messages[0].Role)
	assert.Equal(t, "make a div", gotReq.Messages[0].Content)
}

func TestCompleteNonSuccessStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"type":"authentication_error","message":"invalid key"}}`))
	})

	_, err := client.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, llm.ErrUpstream)
}

func TestCompleteMalformedEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>gateway error</html>"))
	})

	_, err := client.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, llm.ErrUpstream)
}

func TestCompleteEmptyContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"content": []}`))
	})

	_, err := client.Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, llm.ErrUpstream)
}
