package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultComponentName is used for export file names when a component has
// no human-readable name.
const DefaultComponentName = "Component"

// Common validation errors for Component
var (
	ErrEmptyComponentID     = errors.New("component ID cannot be empty")
	ErrEmptyComponentUserID = errors.New("component user ID cannot be empty")
	ErrEmptyComponentChatID = errors.New("component chat ID cannot be empty")
	ErrEmptyComponentPrompt = errors.New("component prompt cannot be empty")
)

// Component is the structured artifact extracted from a model response:
// a JSX markup fragment and an optional CSS fragment. ChatID references
// the Chat whose response produced it; the reference is informational
// only and does not tie the component's lifetime to the chat's. JSX and
// CSS may legitimately be empty strings when extraction found no match.
type Component struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ChatID    uuid.UUID `json:"chat_id"`
	Prompt    string    `json:"prompt"`
	JSX       string    `json:"jsx"`
	CSS       string    `json:"css"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewComponent creates a new Component for the given user, referencing the
// chat that produced it. The prompt is copied onto the component so it can
// be displayed without loading the chat. Returns an error if validation
// fails.
func NewComponent(userID, chatID uuid.UUID, prompt, jsx, css string) (*Component, error) {
	component := &Component{
		ID:        uuid.New(),
		UserID:    userID,
		ChatID:    chatID,
		Prompt:    prompt,
		JSX:       jsx,
		CSS:       css,
		CreatedAt: time.Now().UTC(),
	}

	if err := component.Validate(); err != nil {
		return nil, err
	}

	return component, nil
}

// Validate checks if the Component has valid data.
// Returns an error if any field fails validation.
func (c *Component) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyComponentID
	}

	if c.UserID == uuid.Nil {
		return ErrEmptyComponentUserID
	}

	if c.ChatID == uuid.Nil {
		return ErrEmptyComponentChatID
	}

	if strings.TrimSpace(c.Prompt) == "" {
		return ErrEmptyComponentPrompt
	}

	return nil
}

// ExportName returns the base file name used when materializing the
// component's files for download.
func (c *Component) ExportName() string {
	if strings.TrimSpace(c.Name) == "" {
		return DefaultComponentName
	}
	return c.Name
}
