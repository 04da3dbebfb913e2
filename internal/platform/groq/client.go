// Package groq implements the llm.Provider interface against Groq's
// OpenAI-compatible chat-completions API.
package groq

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
	defaultBaseURL = "https://api.groq.com/openai/v1"
	defaultModel   = "llama-3.1-8b-instant"

	// temperature matches the generation settings the service was tuned
	// with; it is not configurable per request.
	temperature = 0.6

	requestTimeout = 60 * time.Second
)

// Client is the Groq implementation of llm.Provider.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Ensure Client implements llm.Provider
var _ llm.Provider = (*Client)(nil)

// chatMessage is one turn in the chat-completions request envelope.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the request envelope for the chat-completions endpoint.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

// chatResponse is the subset of the response envelope we unwrap.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// New creates a Groq client from the LLM configuration.
// Returns llm.ErrInvalidConfig if the API key is missing.
func New(cfg config.LLMConfig, log *slog.Logger) (*Client, error) {
	if cfg.GroqAPIKey == "" {
		return nil, fmt.Errorf("%w: groq API key cannot be empty", llm.ErrInvalidConfig)
	}

	model := cfg.ModelName
	if model == "" {
		model = defaultModel
	}

	if log == nil {
		log = slog.Default()
	}

	return &Client{
		apiKey:     cfg.GroqAPIKey,
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     log.With(slog.String("component", "groq_client")),
	}, nil
}

// Complete implements llm.Provider.Complete.
// It sends a single chat-completions request and unwraps
// choices[0].message.content from the response.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: llm.SystemMessage},
			{Role: "user", Content: prompt},
		},
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to encode request: %v", llm.ErrUpstream, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to build request: %v", llm.ErrUpstream, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
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

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("%w: malformed response envelope: %v", llm.ErrUpstream, err)
	}

	if parsed.Error != nil {
		return "", fmt.Errorf("%w: %s", llm.ErrUpstream, parsed.Error.Message)
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: response contained no choices", llm.ErrUpstream)
	}

	return parsed.Choices[0].Message.Content, nil
}
