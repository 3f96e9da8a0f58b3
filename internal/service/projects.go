package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pribylovaa/risk-sense/internal/cache"
	"github.com/pribylovaa/risk-sense/internal/composer"
	"github.com/pribylovaa/risk-sense/internal/models"
	"github.com/pribylovaa/risk-sense/internal/providers"
	"github.com/pribylovaa/risk-sense/internal/providers/worldbank"
	"github.com/pribylovaa/risk-sense/internal/risk"
	"github.com/pribylovaa/risk-sense/internal/sentiment"
	"github.com/pribylovaa/risk-sense/pkg/log"
)

// Projects — портфель проектов страны с пересчитанными рисками.
//
// Все сигналы опциональны: недоступный рост ВВП, инфляция или новости
// заменяются нейтральными значениями, поэтому запрос не падает из-за провайдеров.
func (s *Service) Projects(ctx context.Context, rawCode, rawQuery string) ([]models.Project, error) {
	const op = "service.Projects"

	code, err := countryCode(rawCode)
	if err != nil {
		return nil, err
	}

	query := DefaultProjectsQuery
	if strings.TrimSpace(rawQuery) != "" {
		if query, err = requiredText("query", rawQuery); err != nil {
			return nil, err
		}
	}

	ctx, _ = log.With(ctx, slog.String("country_code", code), slog.String("query", query))

	return cached(ctx, s, op, cache.Key(opProjects, code, query), ttlProjects,
		func(ctx context.Context) ([]models.Project, bool, error) {
			signals := s.signals(ctx, code, query)
			projects := risk.RescoreAll(s.ref.ProjectsFor(code), signals)

			log.From(ctx).Info("projects_rescored",
				slog.Int("projects", len(projects)),
				slog.Float64("gdp_growth", signals.GDPGrowth),
				slog.Float64("inflation", signals.Inflation),
				slog.Float64("news_impact", signals.NewsImpact),
			)

			return projects, true, nil
		})
}

// signals собирает макросигналы параллельно и подставляет значения
// по умолчанию для недоступных.
func (s *Service) signals(ctx context.Context, code, query string) risk.Signals {
	lg := log.From(ctx)

	var gdp, inflation, impact providers.Result[float64]

	var g errgroup.Group
	g.Go(func() error {
		gdp = s.latest(ctx, code, worldbank.IndicatorGDPGrowth)
		return nil
	})
	g.Go(func() error {
		inflation = s.latest(ctx, code, worldbank.IndicatorInflation)
		return nil
	})
	g.Go(func() error {
		impact = s.newsImpact(ctx, code, query)
		return nil
	})
	_ = g.Wait()

	for name, r := range map[string]providers.Result[float64]{"gdp_growth": gdp, "inflation": inflation, "news_impact": impact} {
		if !r.OK() {
			lg.Warn("projects_signal_default", slog.String("signal", name), slog.String("err", r.Err.Error()))
		}
	}

	def := risk.DefaultSignals()

	return risk.Signals{
		GDPGrowth:  gdp.Or(def.GDPGrowth),
		Inflation:  inflation.Or(def.Inflation),
		NewsImpact: impact.Or(def.NewsImpact),
	}
}

func (s *Service) latest(ctx context.Context, code, indicator string) providers.Result[float64] {
	v, err := s.economy.Latest(ctx, code, indicator)
	if err != nil {
		return providers.Result[float64]{Err: err}
	}

	if v == nil {
		return providers.Result[float64]{Err: errNoData}
	}

	return providers.Capture(*v, nil)
}

// newsImpact — тональность новостей в диапазоне [-1, 1]; без статей 0.
func (s *Service) newsImpact(ctx context.Context, code, query string) providers.Result[float64] {
	if !s.news.Configured() {
		return providers.Result[float64]{Err: providers.NotConfigured("newsapi", "NEWS_API_KEY")}
	}

	items, err := s.articles(ctx, code, query)
	if err != nil {
		return providers.Result[float64]{Err: err}
	}

	if len(items) == 0 {
		return providers.Capture(risk.DefaultNewsImpact, nil)
	}

	return providers.Capture(sentiment.ImpactScore(sentiment.Estimate(items)), nil)
}

// NIB — статичная справка NIB и три AI-рекомендации по секторам.
// Набор с заглушкой хотя бы в одном секторе не кэшируется.
func (s *Service) NIB(ctx context.Context) (models.NIBRecommendationSet, error) {
	const op = "service.NIB"

	if err := s.requireComposer(op); err != nil {
		return models.NIBRecommendationSet{}, err
	}

	return cached(ctx, s, op, cache.Key(opNIB), ttlNIB,
		func(ctx context.Context) (models.NIBRecommendationSet, bool, error) {
			var recs models.NIBAIRecommendations

			var g errgroup.Group
			g.Go(func() error {
				recs.Sustainable = s.composer.Recommendation(ctx, composer.SectorSustainable)
				return nil
			})
			g.Go(func() error {
				recs.Infrastructure = s.composer.Recommendation(ctx, composer.SectorInfrastructure)
				return nil
			})
			g.Go(func() error {
				recs.Innovation = s.composer.Recommendation(ctx, composer.SectorInnovation)
				return nil
			})
			_ = g.Wait()

			set := models.NIBRecommendationSet{
				Basic:             s.ref.NIB(),
				AIRecommendations: recs,
				AnalysisDate:      s.now().UTC().Format(time.RFC3339),
			}

			complete := !recs.Sustainable.Fallback && !recs.Infrastructure.Fallback && !recs.Innovation.Fallback
			log.From(ctx).Info("nib_recommendations_generated", slog.Bool("complete", complete))

			return set, complete, nil
		})
}
