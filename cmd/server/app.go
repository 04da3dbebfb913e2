package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/uismith/uismith-api/internal/config"
	"github.com/uismith/uismith-api/internal/llm"
	"github.com/uismith/uismith-api/internal/platform/anthropic"
	"github.com/uismith/uismith-api/internal/platform/gemini"
	"github.com/uismith/uismith-api/internal/platform/groq"
	"github.com/uismith/uismith-api/internal/platform/postgres"
	"github.com/uismith/uismith-api/internal/service"
	"github.com/uismith/uismith-api/internal/service/auth"
	"github.com/uismith/uismith-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	chatStore      store.ChatStore
	componentStore store.ComponentStore

	jwtService        auth.JWTService
	provider          llm.Provider
	generationService service.GenerationService
	exportService     service.ExportService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.chatStore = postgres.NewPostgresChatStore(db, logger)
	app.componentStore = postgres.NewPostgresComponentStore(db, logger)

	app.provider, err = setupProvider(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize completion provider: %w", err)
	}
	logger.Info("Completion provider initialized", "provider", cfg.LLM.Provider)

	app.generationService, err = service.NewGenerationService(
		app.provider,
		app.chatStore,
		app.componentStore,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation service: %w", err)
	}

	app.exportService, err = service.NewExportService(
		app.componentStore,
		cfg.Export.Dir,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create export service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// setupProvider selects and constructs the configured completion provider.
func setupProvider(ctx context.Context, cfg *config.Config, logger *slog.Logger) (llm.Provider, error) {
	log := logger.With("component", "llm_provider")

	switch cfg.LLM.Provider {
	case "groq":
		return groq.New(cfg.LLM, log)
	case "gemini":
		return gemini.New(ctx, cfg.LLM, log)
	case "anthropic":
		return anthropic.New(cfg.LLM, log)
	default:
		return nil, fmt.Errorf("unknown completion provider: %q", cfg.LLM.Provider)
	}
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
