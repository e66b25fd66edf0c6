package handlers

import (
	"net/http"

	"github.com/findosh/advisor/internal/services/allocation"
)

// Assets returns the asset catalog
func (h *Handler) Assets(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"assets": h.advisor.Catalog(),
	})
}

// AllocationPolicy returns the target split per asset type and risk category
func (h *Handler) AllocationPolicy(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"policy": allocation.Policy(),
	})
}

// Questionnaire returns the risk questions; option scores stay server side
func (h *Handler) Questionnaire(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.advisor.Questionnaire())
}
