package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/risk-sense/internal/errors"
)

func (h *Handlers) Countries(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.Countries(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := decodeStrict(w, r, &req); err != nil {
		apierrors.BadRequest(w, r, err.Error())
		return
	}

	resp, err := h.Service.Analyze(r.Context(), req.CountryCode, req.Query)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// FollowUp отвечает JSON-строкой с HTML-ответом модели.
func (h *Handlers) FollowUp(w http.ResponseWriter, r *http.Request) {
	var req FollowUpRequest
	if err := decodeStrict(w, r, &req); err != nil {
		apierrors.BadRequest(w, r, err.Error())
		return
	}

	answer, err := h.Service.FollowUp(r.Context(), req.CountryCode, req.Question)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, answer)
}
