package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/uismith/uismith-api/internal/domain"
	"github.com/uismith/uismith-api/internal/platform/logger"
	"github.com/uismith/uismith-api/internal/store"
)

// PostgresComponentStore implements the store.ComponentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresComponentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresComponentStore creates a new PostgreSQL implementation of the ComponentStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresComponentStore(db store.DBTX, logger *slog.Logger) *PostgresComponentStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresComponentStore{
		db:     db,
		logger: logger.With(slog.String("component", "component_store")),
	}
}

// Ensure PostgresComponentStore implements store.ComponentStore interface
var _ store.ComponentStore = (*PostgresComponentStore)(nil)

// Create implements store.ComponentStore.Create
// It saves a new component to the database, handling domain validation.
// Returns store.ErrInvalidEntity if the referenced chat or user does not
// exist (foreign key violation).
func (s *PostgresComponentStore) Create(ctx context.Context, component *domain.Component) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := component.Validate(); err != nil {
		log.Warn("component validation failed during create",
			slog.String("error", err.Error()),
			slog.String("component_id", component.ID.String()))
		return err
	}

	query := `
		INSERT INTO components (id, user_id, chat_id, prompt, jsx, css, name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		component.ID,
		component.UserID,
		component.ChatID,
		component.Prompt,
		component.JSX,
		component.CSS,
		component.Name,
		component.CreatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during component creation",
				slog.String("error", err.Error()),
				slog.String("component_id", component.ID.String()),
				slog.String("chat_id", component.ChatID.String()))
			return fmt.Errorf("%w: referenced chat %s not found",
				store.ErrInvalidEntity, component.ChatID)
		}

		log.Error("failed to create component",
			slog.String("error", err.Error()),
			slog.String("component_id", component.ID.String()),
			slog.String("user_id", component.UserID.String()))
		return MapError(err)
	}

	log.Debug("component created successfully",
		slog.String("component_id", component.ID.String()),
		slog.String("chat_id", component.ChatID.String()))
	return nil
}

// GetByID implements store.ComponentStore.GetByID
// It retrieves a component by its unique ID.
// Returns store.ErrComponentNotFound if the component does not exist.
func (s *PostgresComponentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Component, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, chat_id, prompt, jsx, css, name, created_at
		FROM components
		WHERE id = $1
	`

	var component domain.Component
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&component.ID,
		&component.UserID,
		&component.ChatID,
		&component.Prompt,
		&component.JSX,
		&component.CSS,
		&component.Name,
		&component.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("component not found", slog.String("component_id", id.String()))
			return nil, store.ErrComponentNotFound
		}
		log.Error("failed to get component by ID",
			slog.String("error", err.Error()),
			slog.String("component_id", id.String()))
		return nil, MapError(err)
	}

	return &component, nil
}
