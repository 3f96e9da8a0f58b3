// errors стандартизирует ответы об ошибках HTTP-слоя risk-sense.
// На вход он принимает ошибку сервисного слоя, а на выход даёт:
//   - корректный HTTP-статус;
//   - короткий стабильный code и безопасное message;
//   - details, когда клиенту полезно знать причину (поле валидации,
//     незаданный ключ, ответ провайдера).
//
// Источник истинности по маппингу: сентинелы internal/service и internal/providers.
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pribylovaa/risk-sense/internal/providers"
	"github.com/pribylovaa/risk-sense/internal/service"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// Details — уточнение причины, если оно не раскрывает внутренностей.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует ошибку сервиса в HTTP-статус и ответ для фронта.
//
// Поведение:
//   - err == nil - программная ошибка вызова: 500/internal;
//   - ValidationError / ErrInvalidArgument -> 400, details = поле и причина;
//   - ErrNotConfigured -> 500/not_configured, details = имя незаданного ключа;
//   - ErrUpstream -> 500/upstream_error, details = ответ провайдера;
//   - context.Canceled -> 499, context.DeadlineExceeded -> 504;
//   - прочее -> 500/internal без деталей.
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return internal()
	}

	var ve *service.ValidationError
	var ce *providers.ConfigError
	var pe *providers.ProviderError

	switch {
	case errors.As(err, &ve):
		return response(http.StatusBadRequest, "invalid_argument", "invalid argument", ve.Error())
	case errors.Is(err, service.ErrInvalidArgument):
		return response(http.StatusBadRequest, "invalid_argument", "invalid argument", "")
	case errors.As(err, &ce):
		return response(http.StatusInternalServerError, "not_configured", ce.Provider+" is not configured", ce.Setting+" is not set")
	case errors.Is(err, providers.ErrNotConfigured):
		return response(http.StatusInternalServerError, "not_configured", "provider is not configured", "")
	case errors.Is(err, context.Canceled):
		return response(StatusClientClosedRequest, "canceled", "canceled", "")
	case errors.Is(err, context.DeadlineExceeded):
		return response(http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded", "")
	case errors.As(err, &pe):
		return response(http.StatusInternalServerError, "upstream_error", "failed to fetch data from "+pe.Provider, pe.Error())
	case errors.Is(err, service.ErrUpstream):
		return response(http.StatusInternalServerError, "upstream_error", "failed to fetch upstream data", "")
	default:
		return internal()
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	// Прокидываем request_id для фронта, чтобы он мог репортить баги с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// BadRequest — ответ 400 для ошибок разбора запроса до вызова сервиса.
func BadRequest(w http.ResponseWriter, r *http.Request, details string) {
	WriteError(w, r, &service.ValidationError{Field: "body", Message: details})
}

func response(status int, code, msg, details string) (int, ErrorResponse) {
	return status, ErrorResponse{Error: APIError{Code: code, Message: msg, Details: details}}
}

func internal() (int, ErrorResponse) {
	return response(http.StatusInternalServerError, "internal", "internal error", "")
}
