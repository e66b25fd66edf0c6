package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/findosh/advisor/internal/middleware"
	"github.com/findosh/advisor/internal/services/advisor"
)

// CreateProfile scores the questionnaire, opens a session and returns its token
func (h *Handler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var input advisor.ProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.jsonError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	session, err := h.advisor.StartSession(input)
	if err != nil {
		h.jsonError(w, err.Error(), errorStatus(err))
		return
	}

	token, err := h.tokens.Issue(session)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to issue token")
		h.advisor.EndSession(session.ID)
		h.jsonError(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})

	h.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"token":      token,
		"expires_at": session.ExpiresAt,
		"session":    session,
	})
}

// CurrentSession returns the caller's session
func (h *Handler) CurrentSession(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, middleware.GetSession(r))
}

// EndSession discards the caller's session and clears the cookie
func (h *Handler) EndSession(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r)
	h.advisor.EndSession(session.ID)

	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})
	w.WriteHeader(http.StatusNoContent)
}
