package llm

import "errors"

// Common errors returned by completion providers
var (
	// ErrUpstream is returned when the external completion service fails:
	// network errors, non-success status codes, or a response envelope
	// that cannot be unwrapped.
	ErrUpstream = errors.New("completion provider request failed")

	// ErrInvalidConfig is returned when a provider is constructed with
	// invalid configuration (missing API key, empty model name).
	ErrInvalidConfig = errors.New("invalid provider configuration")
)
