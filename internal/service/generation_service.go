package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/uismith/uismith-api/internal/domain"
	"github.com/uismith/uismith-api/internal/extract"
	"github.com/uismith/uismith-api/internal/llm"
	"github.com/uismith/uismith-api/internal/platform/logger"
	"github.com/uismith/uismith-api/internal/store"
)

// GenerationService orchestrates the prompt-to-component pipeline.
type GenerationService interface {
	// GenerateComponent sends the prompt to the completion provider,
	// extracts the component code from the response, persists the chat
	// and the component, and returns the component.
	//
	// Returns ErrEmptyPrompt for empty or whitespace-only prompts (no
	// side effects). Any other failure wraps ErrGenerationFailed. The
	// pipeline performs no rollback: when the component write fails
	// after the chat write succeeded, the chat row remains as accepted
	// orphan data.
	GenerateComponent(ctx context.Context, userID uuid.UUID, prompt string) (*domain.Component, error)
}

// generationService is the default GenerationService implementation.
type generationService struct {
	provider       llm.Provider
	chatStore      store.ChatStore
	componentStore store.ComponentStore
	logger         *slog.Logger
}

// NewGenerationService creates a GenerationService with the given
// dependencies. All dependencies are required.
func NewGenerationService(
	provider llm.Provider,
	chatStore store.ChatStore,
	componentStore store.ComponentStore,
	log *slog.Logger,
) (GenerationService, error) {
	if provider == nil {
		return nil, errors.New("provider cannot be nil")
	}
	if chatStore == nil {
		return nil, errors.New("chat store cannot be nil")
	}
	if componentStore == nil {
		return nil, errors.New("component store cannot be nil")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &generationService{
		provider:       provider,
		chatStore:      chatStore,
		componentStore: componentStore,
		logger:         log.With(slog.String("component", "generation_service")),
	}, nil
}

// GenerateComponent implements GenerationService.GenerateComponent.
func (s *generationService) GenerateComponent(
	ctx context.Context,
	userID uuid.UUID,
	prompt string,
) (*domain.Component, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if strings.TrimSpace(prompt) == "" {
		return nil, ErrEmptyPrompt
	}

	response, err := s.provider.Complete(ctx, llm.BuildPrompt(prompt))
	if err != nil {
		log.Error("completion request failed",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	jsx, css := extract.Extract(response)

	chat, err := domain.NewChat(userID, prompt, response)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	if err := s.chatStore.Create(ctx, chat); err != nil {
		log.Error("failed to persist chat",
			slog.String("error", err.Error()),
			slog.String("chat_id", chat.ID.String()))
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	component, err := domain.NewComponent(userID, chat.ID, prompt, jsx, css)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	if err := s.componentStore.Create(ctx, component); err != nil {
		// No rollback; the chat row stays behind as an orphan.
		log.Error("failed to persist component",
			slog.String("error", err.Error()),
			slog.String("component_id", component.ID.String()),
			slog.String("chat_id", chat.ID.String()))
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	log.Info("component generated",
		slog.String("component_id", component.ID.String()),
		slog.String("chat_id", chat.ID.String()),
		slog.String("user_id", userID.String()),
		slog.Int("jsx_length", len(jsx)),
		slog.Int("css_length", len(css)))

	return component, nil
}
