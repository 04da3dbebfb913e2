package api

import (
	"errors"
	"net/http"

	"github.com/uismith/uismith-api/internal/service"
	"github.com/uismith/uismith-api/internal/service/auth"
	"github.com/uismith/uismith-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrChatNotFound),
		errors.Is(err, store.ErrComponentNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, service.ErrEmptyPrompt),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Pipeline failures, including wrapped upstream errors
	case errors.Is(err, service.ErrGenerationFailed),
		errors.Is(err, service.ErrExportFailed):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, store.ErrComponentNotFound):
		return "Component not found"

	case errors.Is(err, store.ErrChatNotFound):
		return "Chat not found"

	case errors.Is(err, service.ErrEmptyPrompt):
		return "Prompt is required"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, service.ErrExportFailed):
		return "Failed to create ZIP"

	case errors.Is(err, service.ErrGenerationFailed):
		return "Failed to generate component"

	default:
		return "An unexpected error occurred"
	}
}
