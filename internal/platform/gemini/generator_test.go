package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uismith/uismith-api/internal/config"
	"github.com/uismith/uismith-api/internal/llm"
)

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New(context.Background(), config.LLMConfig{Provider: "gemini"}, nil)
	assert.ErrorIs(t, err, llm.ErrInvalidConfig)
}

func TestNewDefaultsModel(t *testing.T) {
	gen, err := New(context.Background(), config.LLMConfig{
		Provider:     "gemini",
		GeminiAPIKey: "test-key",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, defaultModel, gen.model)

	gen, err = New(context.Background(), config.LLMConfig{
		Provider:     "gemini",
		GeminiAPIKey: "test-key",
		ModelName:    "gemini-2.5-pro",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-pro", gen.model)
}

func TestNewAppliesMaxOutputTokens(t *testing.T) {
	gen, err := New(context.Background(), config.LLMConfig{
		Provider:        "gemini",
		GeminiAPIKey:    "test-key",
		MaxOutputTokens: 2048,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, int32(2048), gen.config.MaxOutputTokens)
}
