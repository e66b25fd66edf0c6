// Package handlers provides HTTP request handlers
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/findosh/advisor/internal/config"
	"github.com/findosh/advisor/internal/middleware"
	"github.com/findosh/advisor/internal/models"
	"github.com/findosh/advisor/internal/services/advisor"
	"github.com/findosh/advisor/internal/services/tokens"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PortfolioLister reads saved portfolios
type PortfolioLister interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Portfolio, error)
}

// Handler contains all HTTP handlers and dependencies
type Handler struct {
	cfg        *config.Config
	advisor    *advisor.Service
	tokens     *tokens.Issuer
	portfolios PortfolioLister
	log        zerolog.Logger
}

// New creates a new handler with all dependencies. portfolios may be nil
// when persistence is disabled.
func New(
	cfg *config.Config,
	advisorService *advisor.Service,
	issuer *tokens.Issuer,
	portfolios PortfolioLister,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		cfg:        cfg,
		advisor:    advisorService,
		tokens:     issuer,
		portfolios: portfolios,
		log:        log.With().Str("component", "http").Logger(),
	}
}

// Routes registers every endpoint on a new mux
func (h *Handler) Routes() http.Handler {
	auth := middleware.NewAuth(h.tokens, h.advisor)
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("GET /api/assets", h.Assets)
	mux.HandleFunc("GET /api/allocation-policy", h.AllocationPolicy)
	mux.HandleFunc("GET /api/questionnaire", h.Questionnaire)
	mux.HandleFunc("POST /api/profile", h.CreateProfile)

	// Session routes
	mux.Handle("GET /api/session", auth.RequireSession(http.HandlerFunc(h.CurrentSession)))
	mux.Handle("DELETE /api/session", auth.RequireSession(http.HandlerFunc(h.EndSession)))
	mux.Handle("POST /api/analysis", auth.RequireSession(http.HandlerFunc(h.Analyze)))
	mux.Handle("GET /api/portfolios", auth.RequireSession(http.HandlerFunc(h.Portfolios)))

	return mux
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error().Err(err).Msg("failed to encode response")
	}
}

// jsonError writes a JSON error response
func (h *Handler) jsonError(w http.ResponseWriter, message string, status int) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

// errorStatus maps domain errors onto HTTP status codes
func errorStatus(err error) int {
	switch {
	case models.IsInvalidInput(err):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrSessionNotFound),
		errors.Is(err, models.ErrSessionExpired),
		errors.Is(err, tokens.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
