package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/pribylovaa/risk-sense/internal/cache"
	"github.com/pribylovaa/risk-sense/internal/composer"
	"github.com/pribylovaa/risk-sense/internal/models"
	"github.com/pribylovaa/risk-sense/internal/providers"
	"github.com/pribylovaa/risk-sense/pkg/log"
)

// Renewable — сводка климатических целей страны. Ошибка CDP не кэшируется.
func (s *Service) Renewable(ctx context.Context, rawCode string) (models.RenewableSummary, error) {
	const op = "service.Renewable"

	code, err := countryCode(rawCode)
	if err != nil {
		return models.RenewableSummary{}, err
	}

	ctx, _ = log.With(ctx, slog.String("country_code", code))

	return cached(ctx, s, op, cache.Key(opRenewable, code), ttlRenewable,
		func(ctx context.Context) (models.RenewableSummary, bool, error) {
			summary, err := s.climate.Summary(ctx, code)
			if err != nil {
				log.From(ctx).Error("renewable_fetch_failed", slog.String("op", op), slog.String("err", err.Error()))
				return models.RenewableSummary{}, false, upstream(op, err)
			}

			return summary, true, nil
		})
}

// P3 — рекомендации Predict / Prevent / Protect.
//
// Требует ключи текстовой модели и новостей. Профиль и новости обязательны,
// климатические данные опциональны: при сбое промпт строится без них.
func (s *Service) P3(ctx context.Context, rawCode, rawQuery string) (models.P3Recommendation, error) {
	const op = "service.P3"

	code, err := countryCode(rawCode)
	if err != nil {
		return models.P3Recommendation{}, err
	}

	query, err := requiredText("query", rawQuery)
	if err != nil {
		return models.P3Recommendation{}, err
	}

	ctx, _ = log.With(ctx, slog.String("country_code", code), slog.String("query", query))

	if err := s.requireComposer(op); err != nil {
		return models.P3Recommendation{}, err
	}
	if err := s.requireNews(op); err != nil {
		return models.P3Recommendation{}, err
	}

	return cached(ctx, s, op, cache.Key(opP3, code, query), cache.DefaultTTL,
		func(ctx context.Context) (models.P3Recommendation, bool, error) {
			return s.p3(ctx, code, query)
		})
}

func (s *Service) p3(ctx context.Context, code, query string) (models.P3Recommendation, bool, error) {
	const op = "service.p3"

	lg := log.From(ctx)

	var (
		profile models.CountryProfile
		news    []models.NewsItem
		climate providers.Result[models.RenewableSummary]
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		profile, err = s.economy.Profile(ctx, code, true)
		return err
	})
	g.Go(func() error {
		var err error
		news, err = s.articles(ctx, code, query)
		return err
	})
	g.Go(func() error {
		climate = providers.Capture(s.climate.Summary(ctx, code))
		return nil
	})

	if err := g.Wait(); err != nil {
		lg.Error("p3_fetch_failed", slog.String("op", op), slog.String("err", err.Error()))
		return models.P3Recommendation{}, false, upstream(op, err)
	}

	in := composer.P3Input{Profile: profile, News: news, Query: query}
	if climate.OK() {
		in.Climate = &climate.Value
	} else {
		lg.Warn("p3_climate_unavailable", slog.String("err", climate.Err.Error()))
	}

	rec := s.composer.P3(ctx, in)

	lg.Info("p3_completed", slog.Bool("fallback", rec.Fallback))

	return rec, !rec.Fallback, nil
}
