package api

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/uismith/uismith-api/internal/api/shared"
	"github.com/uismith/uismith-api/internal/domain"
	"github.com/uismith/uismith-api/internal/service"
)

// GenerateRequest represents the request body for component generation
type GenerateRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// ComponentResponse represents the response data for a generated component
type ComponentResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ChatID    string    `json:"chatId"`
	Prompt    string    `json:"prompt"`
	JSX       string    `json:"jsx"`
	CSS       string    `json:"css"`
	CreatedAt time.Time `json:"createdAt"`
}

// GenerateHandler handles component generation HTTP requests
type GenerateHandler struct {
	generationService service.GenerationService
	validator         *validator.Validate
}

// NewGenerateHandler creates a new GenerateHandler
func NewGenerateHandler(generationService service.GenerationService) *GenerateHandler {
	return &GenerateHandler{
		generationService: generationService,
		validator:         validator.New(),
	}
}

// Generate handles POST /api/generate requests
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	// User ID is set by the auth middleware
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req GenerateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Prompt is required")
		return
	}

	component, err := h.generationService.GenerateComponent(r.Context(), userID, req.Prompt)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, componentToResponse(component))
}

// componentToResponse converts a domain.Component to a ComponentResponse
func componentToResponse(component *domain.Component) ComponentResponse {
	return ComponentResponse{
		ID:        component.ID.String(),
		UserID:    component.UserID.String(),
		ChatID:    component.ChatID.String(),
		Prompt:    component.Prompt,
		JSX:       component.JSX,
		CSS:       component.CSS,
		CreatedAt: component.CreatedAt,
	}
}
