package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/uismith/uismith-api/internal/domain"
)

// ChatStore defines the interface for chat data persistence.
type ChatStore interface {
	// Create saves a new chat to the store.
	// It handles domain validation internally and returns validation
	// errors from the domain Chat if data is invalid.
	Create(ctx context.Context, chat *domain.Chat) error

	// GetByID retrieves a chat by its unique ID.
	// Returns ErrChatNotFound if the chat does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Chat, error)
}
