// cache — хранилище результатов пайплайна с ленивой проверкой TTL.
//
// Запись хранит значение и момент сохранения; TTL передаётся при чтении,
// поэтому разные операции могут читать один и тот же стор со своими сроками.
// Фоновой очистки нет: просроченная запись удаляется при первом чтении.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/pribylovaa/risk-sense/internal/metrics"
)

// DefaultTTL — срок жизни для операций без явного TTL.
const DefaultTTL = time.Hour

// ErrUnknownDriver — в конфиге указан неподдерживаемый бэкенд.
var ErrUnknownDriver = errors.New("unknown cache driver")

// Stats — снимок содержимого кэша.
type Stats struct {
	Size int      `json:"size"`
	Keys []string `json:"keys"`
}

// Store — контракт кэша пайплайна.
type Store interface {
	// Get возвращает значение, если оно есть и now-storedAt <= ttl.
	// Просроченная запись удаляется сразу.
	Get(ctx context.Context, key string, ttl time.Duration) ([]byte, bool, error)
	// Set сохраняет значение с текущим временем.
	Set(ctx context.Context, key string, value []byte) error
	// Clear удаляет ключи с префиксом; пустой префикс очищает всё.
	Clear(ctx context.Context, prefix string) error
	// Stats возвращает количество и список ключей.
	Stats(ctx context.Context) (Stats, error)
	// Close освобождает ресурсы бэкенда.
	Close() error
}

// Clock — источник времени; подменяется в тестах.
type Clock func() time.Time

// Key собирает ключ вида "op:part1:part2"; части нормализуются
// (trim + lower), поэтому " Energy " и "energy" попадают в одну запись.
func Key(op string, parts ...string) string {
	var b strings.Builder
	b.WriteString(op)

	for _, p := range parts {
		b.WriteByte(':')
		b.WriteString(strings.ToLower(strings.TrimSpace(p)))
	}

	return b.String()
}

// GetJSON читает и декодирует значение. Битая запись считается промахом.
func GetJSON[T any](ctx context.Context, s Store, op, key string, ttl time.Duration) (T, bool, error) {
	var out T

	raw, ok, err := s.Get(ctx, key, ttl)
	if err != nil {
		metrics.CacheLookups.WithLabelValues(op, "error").Inc()
		return out, false, err
	}

	if !ok {
		metrics.CacheLookups.WithLabelValues(op, "miss").Inc()
		return out, false, nil
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		metrics.CacheLookups.WithLabelValues(op, "corrupt").Inc()
		return out, false, nil
	}

	metrics.CacheLookups.WithLabelValues(op, "hit").Inc()
	return out, true, nil
}

// SetJSON кодирует значение и сохраняет его.
func SetJSON[T any](ctx context.Context, s Store, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Set(ctx, key, raw)
}

// New создаёт стор по имени драйвера ("memory" | "redis").
func New(driver, redisURL, prefix string) (Store, error) {
	switch driver {
	case "", "memory":
		return NewMemory(time.Now), nil
	case "redis":
		return NewRedis(redisURL, prefix, time.Now)
	default:
		return nil, ErrUnknownDriver
	}
}
