// Package llm defines the boundary between the application core and
// external text-completion services.
package llm

import "context"

// Provider defines the interface for completion backends. This interface
// serves as a boundary between the application core and external LLM
// services; the orchestrator holds exactly one Provider, chosen by
// configuration at startup, and never branches on the concrete variant.
type Provider interface {
	// Complete sends the prompt to the backing completion service and
	// returns the raw response text. It returns an error wrapping
	// ErrUpstream on network failure, a non-success status, or a
	// malformed response envelope. A single failed call is surfaced
	// directly; providers do not retry.
	Complete(ctx context.Context, prompt string) (string, error)
}
