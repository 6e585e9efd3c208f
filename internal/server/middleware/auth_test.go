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
)

// fakeValidator accepts exactly one token string.
type fakeValidator struct {
	token  string
	userID uuid.UUID
}

type fakeClaims struct{ id uuid.UUID }

func (c fakeClaims) GetUserID() uuid.UUID { return c.id }

func (v *fakeValidator) ValidateToken(tokenString string) (UserIDGetter, error) {
	if tokenString != v.token {
		return nil, errors.New("invalid token")
	}
	return fakeClaims{id: v.userID}, nil
}

func echoUserID(t *testing.T) (http.Handler, *uuid.UUID, *bool) {
	t.Helper()
	var got uuid.UUID
	var called bool
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if id, err := GetUserID(r); err == nil {
			got = id
		}
		w.WriteHeader(http.StatusOK)
	})
	return h, &got, &called
}

func TestRequireAuth_ValidToken(t *testing.T) {
	userID := uuid.New()
	v := &fakeValidator{token: "good-token", userID: userID}
	next, got, _ := echoUserID(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	RequireAuth(v)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, *got)
}

func TestRequireAuth_Rejections(t *testing.T) {
	v := &fakeValidator{token: "good-token", userID: uuid.New()}

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"no bearer prefix", "good-token"},
		{"wrong scheme", "Basic good-token"},
		{"invalid token", "Bearer bad-token"},
		{"empty token", "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, _, called := echoUserID(t)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			RequireAuth(v)(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, *called, "handler must not run without auth")
		})
	}
}

func TestRequireAuth_CaseInsensitiveScheme(t *testing.T) {
	v := &fakeValidator{token: "good-token", userID: uuid.New()}
	next, _, called := echoUserID(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer good-token")
	rec := httptest.NewRecorder()
	RequireAuth(v)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
}

func TestOptionalAuth_WithToken(t *testing.T) {
	userID := uuid.New()
	v := &fakeValidator{token: "good-token", userID: userID}
	next, got, _ := echoUserID(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	OptionalAuth(v)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, *got)
}

func TestOptionalAuth_Anonymous(t *testing.T) {
	v := &fakeValidator{token: "good-token", userID: uuid.New()}

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"invalid token", "Bearer bad-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, got, called := echoUserID(t)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			OptionalAuth(v)(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.True(t, *called, "anonymous requests pass through")
			assert.Equal(t, uuid.Nil, *got)
		})
	}
}

func TestGetUserID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := GetUserID(req)
	assert.Error(t, err)
}

func TestGetUserID_FromContext(t *testing.T) {
	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), UserIDKey(), userID))

	got, err := GetUserID(req)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}
