// Package gemini implements the llm.Provider interface using Google's
// Gemini API via the google.golang.org/genai client.
package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/uismith/uismith-api/internal/config"
	"github.com/uismith/uismith-api/internal/llm"
	"github.com/uismith/uismith-api/internal/platform/logger"
	"google.golang.org/genai"
)

const (
	defaultModel = "gemini-2.0-flash"

	// temperature matches the generation settings used by the other
	// provider variants.
	temperature = float32(0.6)
)

// Generator is the Gemini implementation of llm.Provider.
type Generator struct {
	client *genai.Client
	model  string
	config *genai.GenerateContentConfig
	logger *slog.Logger
}

// Ensure Generator implements llm.Provider
var _ llm.Provider = (*Generator)(nil)

// New creates a Gemini provider from the LLM configuration.
// Returns llm.ErrInvalidConfig if the API key is missing or the client
// cannot be constructed.
func New(ctx context.Context, cfg config.LLMConfig, log *slog.Logger) (*Generator, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", llm.ErrInvalidConfig)
	}

	model := cfg.ModelName
	if model == "" {
		model = defaultModel
	}

	if log == nil {
		log = slog.Default()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create gemini client: %v", llm.ErrInvalidConfig, err)
	}

	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(temperature),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: llm.SystemMessage}},
		},
	}
	if cfg.MaxOutputTokens > 0 {
		genConfig.MaxOutputTokens = int32(cfg.MaxOutputTokens)
	}

	return &Generator{
		client: client,
		model:  model,
		config: genConfig,
		logger: log.With(slog.String("component", "gemini_generator")),
	}, nil
}

// Complete implements llm.Provider.Complete.
// It sends a single GenerateContent call and returns the concatenated
// text parts of the first candidate.
func (g *Generator) Complete(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContextOrDefault(ctx, g.logger)

	log.Debug("sending completion request",
		slog.String("model", g.model),
		slog.Int("prompt_length", len(prompt)))

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), g.config)
	if err != nil {
		return "", fmt.Errorf("%w: %v", llm.ErrUpstream, err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: response contained no candidates", llm.ErrUpstream)
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", llm.ErrUpstream)
	}
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", llm.ErrUpstream)
	}

	return resp.Text(), nil
}
