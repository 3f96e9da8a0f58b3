package errors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/risk-sense/internal/providers"
	"github.com/pribylovaa/risk-sense/internal/service"
)

func TestToHTTP_BaseMapping(t *testing.T) {
	t.Parallel()

	upstream := fmt.Errorf("service.analyze: %w: %w", service.ErrUpstream,
		&providers.ProviderError{Provider: "worldbank", HTTPStatus: 502, Message: "bad gateway"})

	tcs := []struct {
		name        string
		in          error
		wantStatus  int
		wantCode    string
		wantDetails string
	}{
		{"validation", &service.ValidationError{Field: "query", Message: "is required"}, http.StatusBadRequest, "invalid_argument", "query: is required"},
		{"invalid_argument", fmt.Errorf("op: %w", service.ErrInvalidArgument), http.StatusBadRequest, "invalid_argument", ""},
		{"not_configured", fmt.Errorf("op: %w", providers.NotConfigured("newsapi", "NEWS_API_KEY")), http.StatusInternalServerError, "not_configured", "NEWS_API_KEY is not set"},
		{"not_configured_bare", providers.ErrNotConfigured, http.StatusInternalServerError, "not_configured", ""},
		{"upstream", upstream, http.StatusInternalServerError, "upstream_error", "worldbank: status 502: bad gateway"},
		{"upstream_plain", fmt.Errorf("op: %w: %w", service.ErrUpstream, errors.New("dial tcp")), http.StatusInternalServerError, "upstream_error", ""},
		{"canceled", fmt.Errorf("op: %w", context.Canceled), StatusClientClosedRequest, "canceled", ""},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout, "deadline_exceeded", ""},
		{"internal", errors.New("boom"), http.StatusInternalServerError, "internal", ""},
	}

	for _, tc := range tcs {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			gotStatus, resp := ToHTTP(tc.in)
			require.Equal(t, tc.wantStatus, gotStatus)
			require.Equal(t, tc.wantCode, resp.Error.Code)
			require.NotEmpty(t, resp.Error.Message)
			require.Equal(t, tc.wantDetails, resp.Error.Details)
		})
	}
}

func TestToHTTP_NilError_Returns500Internal(t *testing.T) {
	t.Parallel()

	gotStatus, resp := ToHTTP(nil)
	require.Equal(t, http.StatusInternalServerError, gotStatus)
	require.Equal(t, "internal", resp.Error.Code)
	require.Equal(t, "internal error", resp.Error.Message)
}

func TestWriteError_AddsRequestID(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/api/analyze", nil)
	r.Header.Set("X-Request-Id", "rid-1")
	w := httptest.NewRecorder()

	WriteError(w, r, &service.ValidationError{Field: "countryCode", Message: "is required"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, APIError{
		Code:      "invalid_argument",
		Message:   "invalid argument",
		Details:   "countryCode: is required",
		RequestID: "rid-1",
	}, body.Error)
}
