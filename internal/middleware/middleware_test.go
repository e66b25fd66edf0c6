package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/findosh/advisor/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokens map[string]uuid.UUID

func (f fakeTokens) Validate(token string) (uuid.UUID, error) {
	id, ok := f[token]
	if !ok {
		return uuid.Nil, errors.New("invalid token")
	}
	return id, nil
}

type fakeSessions map[uuid.UUID]*models.Session

func (f fakeSessions) Session(id uuid.UUID) (*models.Session, error) {
	s, ok := f[id]
	if !ok {
		return nil, models.ErrSessionNotFound
	}
	return s, nil
}

func newAuth() (*Auth, *models.Session) {
	session := &models.Session{ID: uuid.New()}
	return NewAuth(
		fakeTokens{"good": session.ID, "orphan": uuid.New()},
		fakeSessions{session.ID: session},
	), session
}

func echoSession(t *testing.T, want *models.Session) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Same(t, want, GetSession(r))
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestRequireSession_BearerToken(t *testing.T) {
	auth, session := newAuth()
	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()

	auth.RequireSession(echoSession(t, session)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequireSession_Cookie(t *testing.T) {
	auth, session := newAuth()
	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "good"})
	rec := httptest.NewRecorder()

	auth.RequireSession(echoSession(t, session)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequireSession_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*http.Request)
	}{
		{"no token", func(*http.Request) {}},
		{"unknown token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer bad") }},
		{"session gone", func(r *http.Request) { r.Header.Set("Authorization", "Bearer orphan") }},
		{"not bearer", func(r *http.Request) { r.Header.Set("Authorization", "Basic good") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth, _ := newAuth()
			req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()

			called := false
			auth.RequireSession(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				called = true
			})).ServeHTTP(rec, req)

			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"session required"}`, rec.Body.String())
		})
	}
}

func TestRecover(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	h := Recover(log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), "boom")
}

func TestLogger_RecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	h := Logger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/analysis", nil))

	out := buf.String()
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"path":"/api/analysis"`)
	assert.Contains(t, out, `"method":"POST"`)
}

func TestChain_Order(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mark("first"), mark("second"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestSecurityHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeaders(http.NotFoundHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}
