package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/pribylovaa/risk-sense/internal/errors"
)

func (h *Handlers) GDPGrowth(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.GDPGrowth(r.Context(), chi.URLParam(r, "countryCode"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) Unemployment(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.Unemployment(r.Context(), chi.URLParam(r, "countryCode"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) Comparison(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.Comparison(r.Context(), chi.URLParam(r, "countryCode"), r.URL.Query().Get("indicator"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) RiskRating(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.RiskRating(r.Context(), chi.URLParam(r, "countryCode"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
