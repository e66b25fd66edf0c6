package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/findosh/advisor/internal/middleware"
	"github.com/findosh/advisor/internal/models"
	"github.com/findosh/advisor/internal/services/advisor"
	"github.com/google/uuid"
)

// Analyze projects the session's allocation for an investment amount
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r)

	var input advisor.AnalysisInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.jsonError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if input.HorizonYears == 0 {
		input.HorizonYears = h.cfg.DefaultHorizonYears
	}

	report, err := h.advisor.Analyze(r.Context(), session, input)
	if err != nil {
		if report != nil && errors.Is(err, models.ErrComputation) {
			h.log.Warn().Err(err).Str("session_id", session.ID.String()).Msg("partial analysis")
			h.writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
				"error":  err.Error(),
				"report": report,
			})
			return
		}
		status := errorStatus(err)
		if status == http.StatusInternalServerError {
			h.log.Error().Err(err).Str("session_id", session.ID.String()).Msg("analysis failed")
		}
		h.jsonError(w, err.Error(), status)
		return
	}

	h.writeJSON(w, http.StatusOK, report)
}

// Portfolios lists the saved portfolios of the session's profile
func (h *Handler) Portfolios(w http.ResponseWriter, r *http.Request) {
	if h.portfolios == nil {
		h.jsonError(w, "Persistence not available", http.StatusServiceUnavailable)
		return
	}

	session := middleware.GetSession(r)
	userID := session.Profile.ID
	if raw := r.URL.Query().Get("user"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.jsonError(w, "Invalid user ID", http.StatusBadRequest)
			return
		}
		if id != userID {
			h.jsonError(w, "Forbidden", http.StatusForbidden)
			return
		}
	}

	portfolios, err := h.portfolios.GetByUserID(r.Context(), userID)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list portfolios")
		h.jsonError(w, "Failed to list portfolios", http.StatusInternalServerError)
		return
	}
	if portfolios == nil {
		portfolios = []*models.Portfolio{}
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"portfolios": portfolios,
	})
}
