package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/uismith/uismith-api/internal/domain"
)

// ComponentStore defines the interface for component data persistence.
type ComponentStore interface {
	// Create saves a new component to the store.
	// It handles domain validation internally and returns validation
	// errors from the domain Component if data is invalid.
	// Returns ErrInvalidEntity if the referenced chat does not exist.
	Create(ctx context.Context, component *domain.Component) error

	// GetByID retrieves a component by its unique ID.
	// Returns ErrComponentNotFound if the component does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Component, error)
}
