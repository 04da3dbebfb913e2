package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uismith/uismith-api/internal/api/shared"
	"github.com/uismith/uismith-api/internal/service/auth"
)

// mockJWTService returns canned results for token validation.
type mockJWTService struct {
	claims *auth.Claims
	err    error
}

func (m *mockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	return "token", nil
}

func (m *mockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.claims, nil
}

func runAuthenticated(t *testing.T, svc auth.JWTService, authHeader string) (*httptest.ResponseRecorder, uuid.UUID, bool) {
	t.Helper()

	var gotUserID uuid.UUID
	var called bool

	handler := NewAuthMiddleware(svc).Authenticate(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			gotUserID, _ = GetUserID(r)
			w.WriteHeader(http.StatusOK)
		}))

	req := httptest.NewRequest(http.MethodPost, "/api/generate", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec, gotUserID, called
}

func TestAuthenticateValidToken(t *testing.T) {
	userID := uuid.New()
	svc := &mockJWTService{claims: &auth.Claims{UserID: userID}}

	rec, gotUserID, called := runAuthenticated(t, svc, "Bearer some-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, called, "next handler must run")
	assert.Equal(t, userID, gotUserID, "user ID must be available downstream")
}

func TestAuthenticateMissingHeader(t *testing.T) {
	svc := &mockJWTService{claims: &auth.Claims{UserID: uuid.New()}}

	rec, _, called := runAuthenticated(t, svc, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	assert.Contains(t, rec.Body.String(), "Authorization header required")
}

func TestAuthenticateBadFormat(t *testing.T) {
	svc := &mockJWTService{claims: &auth.Claims{UserID: uuid.New()}}

	for _, header := range []string{"some-token", "Basic abc", "Bearer a b"} {
		rec, _, called := runAuthenticated(t, svc, header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		assert.False(t, called)
	}
}

func TestAuthenticateTokenErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"expired", auth.ErrExpiredToken, http.StatusUnauthorized, "Token expired"},
		{"invalid", auth.ErrInvalidToken, http.StatusUnauthorized, "Invalid token"},
		{"not yet valid", auth.ErrTokenNotYetValid, http.StatusUnauthorized, "Invalid token"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Authentication error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _, called := runAuthenticated(t, &mockJWTService{err: tt.err}, "Bearer some-token")
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, called)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestTraceMiddlewareSetsTraceID(t *testing.T) {
	var traceID string

	handler := TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = shared.GetTraceID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, traceID, shared.TraceIDLength*2, "trace ID must be a 32-char hex string")
}
