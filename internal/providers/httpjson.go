package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/pribylovaa/risk-sense/internal/metrics"
	"github.com/pribylovaa/risk-sense/pkg/log"
)

// maxErrorBody — сколько байт тела ошибки попадает в ProviderError.Message.
const maxErrorBody = 512

// NewHTTPClient возвращает клиент с фиксированным таймаутом.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	return &http.Client{Timeout: timeout}
}

// DoJSON выполняет запрос и декодирует JSON-ответ в out.
// Любой не-2xx статус, сетевая ошибка или битый JSON превращаются в *ProviderError.
func DoJSON(ctx context.Context, client *http.Client, provider string, req *http.Request, out any) error {
	const op = "providers.DoJSON"

	lg := log.From(ctx)
	start := time.Now()
	defer func() {
		metrics.ProviderDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())
	}()

	resp, err := client.Do(req.WithContext(ctx))
	if err != nil {
		metrics.ProviderRequests.WithLabelValues(provider, "network_error").Inc()
		lg.Warn("provider_http_error",
			slog.String("op", op),
			slog.String("provider", provider),
			slog.String("url", req.URL.Redacted()),
			slog.String("err", err.Error()),
		)
		return &ProviderError{Provider: provider, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ProviderRequests.WithLabelValues(provider, "http_error").Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		_, _ = io.Copy(io.Discard, resp.Body)

		lg.Warn("provider_bad_status",
			slog.String("op", op),
			slog.String("provider", provider),
			slog.String("url", req.URL.Redacted()),
			slog.Int("status", resp.StatusCode),
		)
		return &ProviderError{
			Provider:   provider,
			HTTPStatus: resp.StatusCode,
			Message:    string(bytes.TrimSpace(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.ProviderRequests.WithLabelValues(provider, "decode_error").Inc()
		return &ProviderError{Provider: provider, Message: fmt.Sprintf("decode: %v", err)}
	}

	metrics.ProviderRequests.WithLabelValues(provider, "ok").Inc()
	return nil
}

// GetJSON — GET-вариант DoJSON с дополнительными заголовками.
func GetJSON(ctx context.Context, client *http.Client, provider, url string, headers map[string]string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &ProviderError{Provider: provider, Message: fmt.Sprintf("new request: %v", err)}
	}

	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return DoJSON(ctx, client, provider, req, out)
}

// IsProviderError сообщает, является ли err ошибкой провайдера.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}
