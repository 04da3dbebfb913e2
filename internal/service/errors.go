package service

import "errors"

// Common sentinel errors for the service layer
var (
	// ErrEmptyPrompt indicates the caller supplied an empty or
	// whitespace-only prompt. Detected before any side effect occurs.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrGenerationFailed wraps any provider or persistence failure
	// inside the generation pipeline.
	ErrGenerationFailed = errors.New("failed to generate component")

	// ErrExportFailed wraps any filesystem or archive-construction
	// failure inside the export pipeline.
	ErrExportFailed = errors.New("failed to build component archive")
)
