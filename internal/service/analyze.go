package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/pribylovaa/risk-sense/internal/cache"
	"github.com/pribylovaa/risk-sense/internal/composer"
	"github.com/pribylovaa/risk-sense/internal/models"
	"github.com/pribylovaa/risk-sense/internal/sentiment"
	"github.com/pribylovaa/risk-sense/pkg/log"
)

// Countries — список стран для выбора на дашборде.
func (s *Service) Countries(ctx context.Context) ([]models.CountryOption, error) {
	const op = "service.Countries"

	return cached(ctx, s, op, cache.Key(opCountries), ttlCountries,
		func(ctx context.Context) ([]models.CountryOption, bool, error) {
			list, err := s.economy.Countries(ctx)
			if err != nil {
				log.From(ctx).Error("countries_fetch_failed", slog.String("op", op), slog.String("err", err.Error()))
				return nil, false, upstream(op, err)
			}

			return list, true, nil
		})
}

// Analyze собирает все вкладки дашборда для пары (страна, запрос).
//
// Профиль страны, экономический профиль и новости запрашиваются
// параллельно; ошибка любого из них прерывает запрос. Затем параллельно
// считаются тональность новостей и AI-анализ. Результат с заглушкой
// вместо анализа отдаётся, но не кэшируется.
func (s *Service) Analyze(ctx context.Context, rawCode, rawQuery string) (models.Analysis, error) {
	const op = "service.Analyze"

	code, err := countryCode(rawCode)
	if err != nil {
		return models.Analysis{}, err
	}

	query, err := requiredText("query", rawQuery)
	if err != nil {
		return models.Analysis{}, err
	}

	ctx, _ = log.With(ctx, slog.String("country_code", code), slog.String("query", query))

	if err := s.requireNews(op); err != nil {
		return models.Analysis{}, err
	}

	return cached(ctx, s, op, cache.Key(opAnalyze, code, query), ttlAnalyze,
		func(ctx context.Context) (models.Analysis, bool, error) {
			return s.analyze(ctx, code, query)
		})
}

func (s *Service) analyze(ctx context.Context, code, query string) (models.Analysis, bool, error) {
	const op = "service.analyze"

	lg := log.From(ctx)

	var (
		country  models.CountryProfile
		economic models.CountryProfile
		news     []models.NewsItem
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		country, err = s.economy.Profile(ctx, code, false)
		return err
	})
	g.Go(func() error {
		var err error
		economic, err = s.economy.Profile(ctx, code, true)
		return err
	})
	g.Go(func() error {
		var err error
		news, err = s.articles(ctx, code, query)
		return err
	})

	if err := g.Wait(); err != nil {
		lg.Error("analyze_fetch_failed", slog.String("op", op), slog.String("err", err.Error()))
		return models.Analysis{}, false, upstream(op, err)
	}

	if news == nil {
		news = []models.NewsItem{}
	}

	var (
		breakdown models.SentimentBreakdown
		insight   models.AIInsight
	)

	var g2 errgroup.Group
	g2.Go(func() error {
		breakdown = sentiment.Estimate(news)
		return nil
	})
	g2.Go(func() error {
		insight = s.composer.Insight(ctx, composer.InsightInput{Profile: economic, News: news, Query: query})
		return nil
	})
	_ = g2.Wait()

	result := models.Analysis{
		CountryCode: code,
		CountryName: country.Name,
		Query:       query,
		Overview: models.Overview{
			Population:     country.Population,
			PopulationYear: country.PopulationYear,
			GDP:            country.GDP,
			GDPPerCapita:   country.GDPPerCapita,
			Government:     country.Government,
			Summary:        nonNil(country.Summary),
		},
		EconomicData: models.EconomicData{
			Indicators: nonNilIndicators(economic.Indicators),
			Analysis:   nonNil(economic.Analysis),
		},
		NewsData: models.NewsData{
			Items:     news,
			Sentiment: breakdown,
		},
		AIInsights: models.InsightContent{
			Content:           insight.Content,
			FollowUpQuestions: insight.FollowUpQuestions,
		},
	}

	lg.Info("analyze_completed",
		slog.Int("news", len(news)),
		slog.Bool("insight_fallback", insight.Fallback),
	)

	return result, !insight.Fallback, nil
}

// articles ищет новости по названию страны, которое берётся из метаданных
// провайдера экономических данных.
func (s *Service) articles(ctx context.Context, code, query string) ([]models.NewsItem, error) {
	meta, err := s.economy.Country(ctx, code)
	if err != nil {
		return nil, err
	}

	return s.news.Articles(ctx, meta.Name, query)
}

// FollowUp отвечает на уточняющий вопрос о стране.
func (s *Service) FollowUp(ctx context.Context, rawCode, rawQuestion string) (string, error) {
	const op = "service.FollowUp"

	code, err := countryCode(rawCode)
	if err != nil {
		return "", err
	}

	question, err := requiredText("question", rawQuestion)
	if err != nil {
		return "", err
	}

	ctx, _ = log.With(ctx, slog.String("country_code", code), slog.String("query", question))

	return cached(ctx, s, op, cache.Key(opFollowUp, code, question), cache.DefaultTTL,
		func(ctx context.Context) (string, bool, error) {
			profile, err := s.economy.Profile(ctx, code, true)
			if err != nil {
				log.From(ctx).Error("follow_up_fetch_failed", slog.String("op", op), slog.String("err", err.Error()))
				return "", false, upstream(op, err)
			}

			answer, fallback := s.composer.FollowUp(ctx, composer.FollowUpInput{Profile: profile, Question: question})
			return answer, !fallback, nil
		})
}

func nonNil(xs []string) []string {
	if xs == nil {
		return []string{}
	}

	return xs
}

func nonNilIndicators(xs []models.EconomicIndicator) []models.EconomicIndicator {
	if xs == nil {
		return []models.EconomicIndicator{}
	}

	return xs
}
