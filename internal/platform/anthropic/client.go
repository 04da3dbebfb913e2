// Package anthropic implements the llm.Provider interface against
// Anthropic's messages API.
package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/uismith/uismith-api/internal/config"
	"github.com/uismith/uismith-api/internal/llm"
	"github.com/uismith/uismith-api/internal/platform/logger"
)

const (
	defaultBaseURL = "https://api.anthropic.com/v1"
	defaultModel   = "claude-3-5-haiku-20241022"

	// apiVersion is the required anthropic-version header value.
	apiVersion = "2023-06-01"

	// defaultMaxTokens applies when no output cap is configured; the
	// messages API requires an explicit limit.
	defaultMaxTokens = 4096

	requestTimeout = 60 * time.Second
)

// Client is the Anthropic implementation of llm.Provider.
type Client struct {
	apiKey     string
	model      string
	maxTokens  int
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Ensure Client implements llm.Provider
var _ llm.Provider = (*Client)(nil)

// message is one turn in the messages request envelope.
type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// messagesRequest is the request envelope for the messages endpoint.
// Unlike OpenAI-style APIs, the system instruction is a top-level field
// and max_tokens is mandatory.
type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []message `json:"messages"`
}

// messagesResponse is the subset of the response envelope we unwrap.
type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// New creates an Anthropic client from the LLM configuration.
// Returns llm.ErrInvalidConfig if the API key is missing.
func New(cfg config.LLMConfig, log *slog.Logger) (*Client, error) {
	if cfg.AnthropicAPIKey == "" {
		return nil, fmt.Errorf("%w: anthropic API key cannot be empty", llm.ErrInvalidConfig)
	}

	model := cfg.ModelName
	if model == "" {
		model = defaultModel
	}

	maxTokens := cfg.MaxOutputTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	if log == nil {
		log = slog.Default()
	}

	return &Client{
		apiKey:     cfg.AnthropicAPIKey,
		model:      model,
		maxTokens:  maxTokens,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     log.With(slog.String("component", "anthropic_client")),
	}, nil
}

// Complete implements llm.Provider.Complete.
// It sends a single messages request and unwraps the first text block
// from the response content.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	body, err := json.Marshal(messagesRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System:    llm.SystemMessage,
		Messages: []message{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to encode request: %v", llm.ErrUpstream, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to build request: %v", llm.ErrUpstream, err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	log.Debug("sending completion request",
		slog.String("model", c.model),
		slog.Int("prompt_length", len(prompt)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", llm.ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response body: %v", llm.ErrUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Error("completion request returned non-success status",
			slog.Int("status_code", resp.StatusCode))
		return "", fmt.Errorf("%w: unexpected status %d", llm.ErrUpstream, resp.StatusCode)
	}

	var parsed messagesResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("%w: malformed response envelope: %v", llm.ErrUpstream, err)
	}

	if parsed.Error != nil {
		return "", fmt.Errorf("%w: %s", llm.ErrUpstream, parsed.Error.Message)
	}

	if len(parsed.Content) == 0 {
		return "", fmt.Errorf("%w: response contained no content blocks", llm.ErrUpstream)
	}

	return parsed.Content[0].Text, nil
}
