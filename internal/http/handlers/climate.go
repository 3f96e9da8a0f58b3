package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/pribylovaa/risk-sense/internal/errors"
)

func (h *Handlers) Renewable(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.Renewable(r.Context(), chi.URLParam(r, "countryCode"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) P3(w http.ResponseWriter, r *http.Request) {
	var req P3Request
	if err := decodeStrict(w, r, &req); err != nil {
		apierrors.BadRequest(w, r, err.Error())
		return
	}

	resp, err := h.Service.P3(r.Context(), chi.URLParam(r, "countryCode"), req.Query)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
