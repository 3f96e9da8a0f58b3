package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pribylovaa/risk-sense/internal/cache"
	"github.com/pribylovaa/risk-sense/pkg/log"
)

// ClearCache удаляет записи с префиксом (пустой — все) и возвращает
// состояние кэша после очистки.
func (s *Service) ClearCache(ctx context.Context, prefix string) (cache.Stats, error) {
	const op = "service.ClearCache"

	prefix = strings.TrimSpace(prefix)
	if err := s.cache.Clear(ctx, prefix); err != nil {
		return cache.Stats{}, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("cache_cleared", slog.String("prefix", prefix))

	return s.CacheStats(ctx)
}

// CacheStats — количество и список ключей кэша.
func (s *Service) CacheStats(ctx context.Context) (cache.Stats, error) {
	const op = "service.CacheStats"

	st, err := s.cache.Stats(ctx)
	if err != nil {
		return cache.Stats{}, fmt.Errorf("%s: %w", op, err)
	}

	if st.Keys == nil {
		st.Keys = []string{}
	}

	return st, nil
}
