// service — пайплайн агрегации: валидация входа, проверка кэша,
// параллельный сбор данных у провайдеров, сборка ответа и запись в кэш.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/pribylovaa/risk-sense/internal/cache"
	"github.com/pribylovaa/risk-sense/internal/providers"
	"github.com/pribylovaa/risk-sense/internal/reference"
	"github.com/pribylovaa/risk-sense/pkg/log"
)

var (
	// ErrInvalidArgument — некорректные входные аргументы.
	// Транспорт: 400 invalid_argument.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUpstream — обязательный вызов провайдера завершился ошибкой.
	// Транспорт: 500 upstream_error.
	ErrUpstream = errors.New("upstream failure")

	errNoData = errors.New("no data")
)

// ValidationError уточняет, какое поле не прошло проверку.
// errors.Is(err, ErrInvalidArgument) == true.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidArgument }

// Ключи и сроки жизни записей кэша.
const (
	opCountries = "countries"
	opAnalyze   = "analyze"
	opFollowUp  = "follow-up"
	opRenewable = "cdp"
	opP3        = "p3"
	opProjects  = "projects"
	opNIB       = "nib_recommendations"

	ttlCountries = 24 * time.Hour
	ttlAnalyze   = 30 * time.Minute
	ttlRenewable = 6 * time.Hour
	ttlProjects  = time.Hour
	ttlNIB       = 24 * time.Hour
)

const (
	maxTextLen = 500

	// DefaultProjectsQuery — запрос новостей для пересчёта рисков проектов.
	DefaultProjectsQuery = "investment"
)

// Deps — зависимости сервиса.
type Deps struct {
	Cache     cache.Store
	Economy   Economy
	News      News
	Climate   Climate
	Composer  Composer
	Reference *reference.Dataset
	// Now по умолчанию time.Now.
	Now func() time.Time
}

// Service — описывает бизнес-логику risk-sense.
type Service struct {
	cache    cache.Store
	economy  Economy
	news     News
	climate  Climate
	composer Composer
	ref      *reference.Dataset
	now      func() time.Time
}

// New создает новый экземпляр Service.
func New(d Deps) *Service {
	now := d.Now
	if now == nil {
		now = time.Now
	}

	return &Service{
		cache:    d.Cache,
		economy:  d.Economy,
		news:     d.News,
		climate:  d.Climate,
		composer: d.Composer,
		ref:      d.Reference,
		now:      now,
	}
}

// cached возвращает запись кэша или вычисляет её через fetch.
// fetch сообщает, можно ли сохранять результат (заглушки не сохраняются).
// Ошибки кэша не прерывают запрос: чтение считается промахом, запись пропускается.
func cached[T any](ctx context.Context, s *Service, op, key string, ttl time.Duration,
	fetch func(ctx context.Context) (T, bool, error),
) (T, error) {
	lg := log.From(ctx)

	v, ok, err := cache.GetJSON[T](ctx, s.cache, op, key, ttl)
	if err != nil {
		lg.Warn("cache_read_failed", slog.String("key", key), slog.String("err", err.Error()))
	}
	if ok {
		lg.Info("cache_hit", slog.String("key", key))
		return v, nil
	}

	lg.Info("cache_miss", slog.String("key", key))

	v, store, err := fetch(ctx)
	if err != nil {
		return v, err
	}

	if !store {
		lg.Warn("cache_skip_fallback", slog.String("key", key))
		return v, nil
	}

	if err := cache.SetJSON(ctx, s.cache, key, v); err != nil {
		lg.Warn("cache_write_failed", slog.String("key", key), slog.String("err", err.Error()))
	}

	return v, nil
}

// upstream оборачивает ошибку провайдера. Отсутствие настройки и отмена
// контекста сохраняют свою природу, остальное помечается ErrUpstream.
func upstream(op string, err error) error {
	if errors.Is(err, providers.ErrNotConfigured) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return fmt.Errorf("%s: %w: %w", op, ErrUpstream, err)
}

// countryCode нормализует ISO-код страны (2–3 латинские буквы).
func countryCode(raw string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if code == "" {
		return "", &ValidationError{Field: "countryCode", Message: "is required"}
	}

	if len(code) < 2 || len(code) > 3 {
		return "", &ValidationError{Field: "countryCode", Message: "must be 2 or 3 letters"}
	}

	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", &ValidationError{Field: "countryCode", Message: "must contain latin letters only"}
		}
	}

	return code, nil
}

// requiredText проверяет обязательную строку запроса.
func requiredText(field, raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", &ValidationError{Field: field, Message: "is required"}
	}

	if len([]rune(v)) > maxTextLen {
		return "", &ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d characters", maxTextLen)}
	}

	for _, r := range v {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return "", &ValidationError{Field: field, Message: "contains control characters"}
		}
	}

	return v, nil
}

func (s *Service) requireNews(op string) error {
	if !s.news.Configured() {
		return fmt.Errorf("%s: %w", op, providers.NotConfigured("newsapi", "NEWS_API_KEY"))
	}

	return nil
}

func (s *Service) requireComposer(op string) error {
	if !s.composer.Configured() {
		return fmt.Errorf("%s: %w", op, providers.NotConfigured("openrouter", "OPENROUTER_API_KEY"))
	}

	return nil
}
