package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/pribylovaa/risk-sense/internal/errors"
)

func (h *Handlers) Projects(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.Projects(r.Context(), chi.URLParam(r, "countryCode"), r.URL.Query().Get("query"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) NIBRecommendations(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.NIB(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
