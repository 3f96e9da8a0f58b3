package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/risk-sense/internal/errors"
)

// ClearCache удаляет записи с префиксом ?prefix= (пустой — все).
func (h *Handlers) ClearCache(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.ClearCache(r.Context(), r.URL.Query().Get("prefix"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) CacheStats(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.CacheStats(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
