package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/uismith/uismith-api/internal/domain"
	"github.com/uismith/uismith-api/internal/platform/logger"
	"github.com/uismith/uismith-api/internal/store"
)

// PostgresChatStore implements the store.ChatStore interface
// using a PostgreSQL database as the storage backend.
type PostgresChatStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresChatStore creates a new PostgreSQL implementation of the ChatStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresChatStore(db store.DBTX, logger *slog.Logger) *PostgresChatStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresChatStore{
		db:     db,
		logger: logger.With(slog.String("component", "chat_store")),
	}
}

// Ensure PostgresChatStore implements store.ChatStore interface
var _ store.ChatStore = (*PostgresChatStore)(nil)

// Create implements store.ChatStore.Create
// It saves a new chat to the database, handling domain validation.
// Returns validation errors from the domain Chat if data is invalid.
func (s *PostgresChatStore) Create(ctx context.Context, chat *domain.Chat) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := chat.Validate(); err != nil {
		log.Warn("chat validation failed during create",
			slog.String("error", err.Error()),
			slog.String("chat_id", chat.ID.String()))
		return err
	}

	query := `
		INSERT INTO chats (id, user_id, prompt, response, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		chat.ID,
		chat.UserID,
		chat.Prompt,
		chat.Response,
		chat.CreatedAt,
	)

	if err != nil {
		log.Error("failed to create chat",
			slog.String("error", err.Error()),
			slog.String("chat_id", chat.ID.String()),
			slog.String("user_id", chat.UserID.String()))
		return MapError(err)
	}

	log.Debug("chat created successfully",
		slog.String("chat_id", chat.ID.String()),
		slog.String("user_id", chat.UserID.String()))
	return nil
}

// GetByID implements store.ChatStore.GetByID
// It retrieves a chat by its unique ID.
// Returns store.ErrChatNotFound if the chat does not exist.
func (s *PostgresChatStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Chat, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, prompt, response, created_at
		FROM chats
		WHERE id = $1
	`

	var chat domain.Chat
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&chat.ID,
		&chat.UserID,
		&chat.Prompt,
		&chat.Response,
		&chat.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("chat not found", slog.String("chat_id", id.String()))
			return nil, store.ErrChatNotFound
		}
		log.Error("failed to get chat by ID",
			slog.String("error", err.Error()),
			slog.String("chat_id", id.String()))
		return nil, MapError(err)
	}

	return &chat, nil
}
