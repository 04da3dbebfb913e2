package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Chat
var (
	ErrEmptyChatID     = errors.New("chat ID cannot be empty")
	ErrEmptyChatUserID = errors.New("chat user ID cannot be empty")
	ErrEmptyChatPrompt = errors.New("chat prompt cannot be empty")
)

// Chat records a single prompt/response exchange with a completion
// provider. It stores the raw model output exactly as received, before any
// extraction. Chats are immutable once created; a chat may exist without a
// corresponding Component when component creation failed after the chat
// was written.
type Chat struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Prompt    string    `json:"prompt"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

// NewChat creates a new Chat with the given user ID, prompt, and raw model
// response. It generates a new UUID for the chat ID and sets the creation
// timestamp. Returns an error if validation fails.
func NewChat(userID uuid.UUID, prompt, response string) (*Chat, error) {
	chat := &Chat{
		ID:        uuid.New(),
		UserID:    userID,
		Prompt:    prompt,
		Response:  response,
		CreatedAt: time.Now().UTC(),
	}

	if err := chat.Validate(); err != nil {
		return nil, err
	}

	return chat, nil
}

// Validate checks if the Chat has valid data.
// Returns an error if any field fails validation.
func (c *Chat) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyChatID
	}

	if c.UserID == uuid.Nil {
		return ErrEmptyChatUserID
	}

	if strings.TrimSpace(c.Prompt) == "" {
		return ErrEmptyChatPrompt
	}

	return nil
}
