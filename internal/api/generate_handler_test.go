package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uismith/uismith-api/internal/api/shared"
	"github.com/uismith/uismith-api/internal/domain"
	"github.com/uismith/uismith-api/internal/service"
)

// mockGenerationService returns a canned component or error.
type mockGenerationService struct {
	component *domain.Component
	err       error
	gotUserID uuid.UUID
	gotPrompt string
	calls     int
}

func (m *mockGenerationService) GenerateComponent(
	ctx context.Context,
	userID uuid.UUID,
	prompt string,
) (*domain.Component, error) {
	m.calls++
	m.gotUserID = userID
	m.gotPrompt = prompt
	if m.err != nil {
		return nil, m.err
	}
	return m.component, nil
}

func newGenerateRequest(t *testing.T, userID uuid.UUID, body string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != uuid.Nil {
		ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
		req = req.WithContext(ctx)
	}
	return req
}

func TestGenerateSuccess(t *testing.T) {
	userID := uuid.New()
	component, err := domain.NewComponent(userID, uuid.New(), "a red button",
		`<button>Click</button>`, ".btn{color:red}")
	require.NoError(t, err)

	svc := &mockGenerationService{component: component}
	handler := NewGenerateHandler(svc)

	rec := httptest.NewRecorder()
	handler.Generate(rec, newGenerateRequest(t, userID, `{"prompt":"a red button"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, svc.gotUserID)
	assert.Equal(t, "a red button", svc.gotPrompt)

	var resp ComponentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, component.ID.String(), resp.ID)
	assert.Equal(t, userID.String(), resp.UserID)
	assert.Equal(t, component.ChatID.String(), resp.ChatID)
	assert.Equal(t, "a red button", resp.Prompt)
	assert.Equal(t, `<button>Click</button>`, resp.JSX)
	assert.Equal(t, ".btn{color:red}", resp.CSS)
	assert.False(t, resp.CreatedAt.IsZero())
}

func TestGenerateResponseFieldNames(t *testing.T) {
	userID := uuid.New()
	component, err := domain.NewComponent(userID, uuid.New(), "p", "<i/>", "")
	require.NoError(t, err)

	handler := NewGenerateHandler(&mockGenerationService{component: component})

	rec := httptest.NewRecorder()
	handler.Generate(rec, newGenerateRequest(t, userID, `{"prompt":"p"}`))
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	for _, key := range []string{"id", "userId", "chatId", "prompt", "jsx", "css", "createdAt"} {
		assert.Contains(t, raw, key)
	}
}

func TestGenerateMissingUserID(t *testing.T) {
	svc := &mockGenerationService{}
	handler := NewGenerateHandler(svc)

	rec := httptest.NewRecorder()
	handler.Generate(rec, newGenerateRequest(t, uuid.Nil, `{"prompt":"a red button"}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, svc.calls)
}

func TestGenerateInvalidBody(t *testing.T) {
	svc := &mockGenerationService{}
	handler := NewGenerateHandler(svc)

	rec := httptest.NewRecorder()
	handler.Generate(rec, newGenerateRequest(t, uuid.New(), `{not json`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request format")
	assert.Zero(t, svc.calls)
}

func TestGenerateMissingPrompt(t *testing.T) {
	svc := &mockGenerationService{}
	handler := NewGenerateHandler(svc)

	for _, body := range []string{`{}`, `{"prompt":""}`} {
		rec := httptest.NewRecorder()
		handler.Generate(rec, newGenerateRequest(t, uuid.New(), body))

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
		assert.Contains(t, rec.Body.String(), "Prompt is required")
	}
	assert.Zero(t, svc.calls)
}

func TestGenerateWhitespacePrompt(t *testing.T) {
	// Passes the required check but the service rejects it.
	svc := &mockGenerationService{err: service.ErrEmptyPrompt}
	handler := NewGenerateHandler(svc)

	rec := httptest.NewRecorder()
	handler.Generate(rec, newGenerateRequest(t, uuid.New(), `{"prompt":"   "}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Prompt is required")
}

func TestGeneratePipelineFailure(t *testing.T) {
	svc := &mockGenerationService{err: service.ErrGenerationFailed}
	handler := NewGenerateHandler(svc)

	rec := httptest.NewRecorder()
	handler.Generate(rec, newGenerateRequest(t, uuid.New(), `{"prompt":"a red button"}`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to generate component")
}
