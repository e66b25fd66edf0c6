// Package middleware provides HTTP middleware functions
package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/findosh/advisor/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const (
	SessionContextKey contextKey = "session"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Logger logs all HTTP requests
func Logger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rec.status).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}

// SecurityHeaders adds security headers to all responses
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Content-Security-Policy", "default-src 'none'")
		next.ServeHTTP(w, r)
	})
}

// Recover handles panics gracefully
func Recover(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.Error().Interface("panic", err).Str("path", r.URL.Path).Msg("panic recovered")
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// TokenValidator resolves a session token to the session ID it names
type TokenValidator interface {
	Validate(token string) (uuid.UUID, error)
}

// SessionLookup finds a live session by ID
type SessionLookup interface {
	Session(id uuid.UUID) (*models.Session, error)
}

// Auth middleware for session-bound routes
type Auth struct {
	tokens   TokenValidator
	sessions SessionLookup
}

// NewAuth creates a new auth middleware
func NewAuth(tokens TokenValidator, sessions SessionLookup) *Auth {
	return &Auth{tokens: tokens, sessions: sessions}
}

// RequireSession ensures the request carries a token for a live session
func (m *Auth) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := m.sessionFromRequest(r)
		if session == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"session required"}`))
			return
		}

		ctx := context.WithValue(r.Context(), SessionContextKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Auth) sessionFromRequest(r *http.Request) *models.Session {
	for _, token := range tokensFromRequest(r) {
		id, err := m.tokens.Validate(token)
		if err != nil {
			continue
		}
		session, err := m.sessions.Session(id)
		if err == nil {
			return session
		}
	}
	return nil
}

func tokensFromRequest(r *http.Request) []string {
	var tokens []string
	if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		tokens = append(tokens, strings.TrimPrefix(authHeader, "Bearer "))
	}
	if cookie, err := r.Cookie("session"); err == nil && cookie.Value != "" {
		tokens = append(tokens, cookie.Value)
	}
	return tokens
}

// GetSession retrieves the session from the request context
func GetSession(r *http.Request) *models.Session {
	session, ok := r.Context().Value(SessionContextKey).(*models.Session)
	if !ok {
		return nil
	}
	return session
}

// Chain applies middleware in order
func Chain(h http.Handler, middleware ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middleware) - 1; i >= 0; i-- {
		h = middleware[i](h)
	}
	return h
}
