package service

// Тесты сервисного слоя risk-sense.
//
// Проверяем:
//  - валидацию входов и маппинг ошибок провайдеров (ErrUpstream / ErrNotConfigured);
//  - политику кэша: попадание без вызовов провайдеров, нормализацию ключа,
//    истечение TTL по фейковым часам, отказ кэшировать заглушки и ошибки;
//  - опциональные сигналы (климат в P3, макросигналы в Projects) с дефолтами.
//
// Моки провайдеров лежат в /mocks:
//   mockgen -source=./internal/service/deps.go -destination=./mocks/service.go -package=mocks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/risk-sense/internal/cache"
	"github.com/pribylovaa/risk-sense/internal/composer"
	"github.com/pribylovaa/risk-sense/internal/models"
	"github.com/pribylovaa/risk-sense/internal/providers"
	"github.com/pribylovaa/risk-sense/internal/providers/worldbank"
	"github.com/pribylovaa/risk-sense/internal/reference"
	"github.com/pribylovaa/risk-sense/internal/risk"
	"github.com/pribylovaa/risk-sense/mocks"
)

type fixture struct {
	svc      *Service
	economy  *mocks.MockEconomy
	news     *mocks.MockNews
	climate  *mocks.MockClimate
	composer *mocks.MockComposer
	store    *cache.Memory
	clock    time.Time
	t        *testing.T
}

// advance сдвигает фейковые часы кэша и сервиса.
func (f *fixture) advance(d time.Duration) { f.clock = f.clock.Add(d) }

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	ds, err := reference.Load()
	require.NoError(t, err)

	f := &fixture{
		economy:  mocks.NewMockEconomy(ctrl),
		news:     mocks.NewMockNews(ctrl),
		climate:  mocks.NewMockClimate(ctrl),
		composer: mocks.NewMockComposer(ctrl),
		clock:    time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		t:        t,
	}

	now := func() time.Time { return f.clock }
	f.store = cache.NewMemory(now)
	f.svc = New(Deps{
		Cache:     f.store,
		Economy:   f.economy,
		News:      f.news,
		Climate:   f.climate,
		Composer:  f.composer,
		Reference: ds,
		Now:       now,
	})

	return f
}

func ptr(v float64) *float64 { return &v }

func chileBasic() models.CountryProfile {
	return models.CountryProfile{
		Name:           "Chile",
		Code:           "CHL",
		Population:     "19.6 million",
		PopulationYear: "2023",
		GDP:            "$335.53 billion",
		GDPPerCapita:   "$17,093",
		Government:     "Presidential Republic",
		Summary:        []string{"Chile is located in Latin America & Caribbean."},
	}
}

func chileDetailed() models.CountryProfile {
	p := chileBasic()
	p.GDPGrowth = ptr(0.2)
	p.Indicators = []models.EconomicIndicator{{Indicator: "GDP", Value: "$335.53 billion", Year: "2023"}}
	p.Analysis = []string{"Growth slowed."}
	return p
}

func chileNews() []models.NewsItem {
	return []models.NewsItem{
		{Title: "Copper exports show strong growth", Source: "Reuters", Tags: []string{"Trade"}},
		{Title: "Mining sector faces water crisis", Source: "FT", Tags: []string{"Economy"}},
	}
}

// expectAnalyzeFetch ожидает ровно один полный сбор данных для Analyze.
func (f *fixture) expectAnalyzeFetch(insight models.AIInsight) {
	f.economy.EXPECT().Profile(gomock.Any(), "CHL", false).Return(chileBasic(), nil).Times(1)
	f.economy.EXPECT().Profile(gomock.Any(), "CHL", true).Return(chileDetailed(), nil).Times(1)
	f.economy.EXPECT().Country(gomock.Any(), "CHL").Return(models.Country{Code: "CHL", Name: "Chile"}, nil).Times(1)
	f.news.EXPECT().Articles(gomock.Any(), "Chile", "Copper Mining").Return(chileNews(), nil).Times(1)
	f.composer.EXPECT().Insight(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in composer.InsightInput) models.AIInsight {
			if in.Profile.GDPGrowth == nil || len(in.News) != 2 || in.Query != "Copper Mining" {
				f.t.Errorf("unexpected insight input: %+v", in)
			}
			return insight
		}).Times(1)
}

func TestAnalyze_SecondRequestServedFromCache(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.news.EXPECT().Configured().Return(true).Times(2)
	f.expectAnalyzeFetch(models.AIInsight{
		Content:           "<h2>Chile</h2>",
		FollowUpQuestions: []models.FollowUpQuestion{{Question: "Q?"}},
	})

	first, err := f.svc.Analyze(context.Background(), " chl ", "Copper Mining")
	require.NoError(t, err)
	require.Equal(t, "CHL", first.CountryCode)
	require.Equal(t, "Chile", first.CountryName)
	require.Equal(t, "19.6 million", first.Overview.Population)
	require.Equal(t, []string{"Growth slowed."}, first.EconomicData.Analysis)
	require.Len(t, first.NewsData.Items, 2)
	require.InDelta(t, 50.0, first.NewsData.Sentiment.Positive, 1e-9)
	require.InDelta(t, 50.0, first.NewsData.Sentiment.Negative, 1e-9)
	require.Equal(t, "<h2>Chile</h2>", first.AIInsights.Content)

	// Ключ нормализуется: регистр и пробелы в запросе не важны.
	second, err := f.svc.Analyze(context.Background(), "CHL", "  copper mining ")
	require.NoError(t, err)
	require.Equal(t, first, second)

	st, err := f.store.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"analyze:chl:copper mining"}, st.Keys)
}

func TestAnalyze_CacheExpires(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.news.EXPECT().Configured().Return(true).AnyTimes()
	f.expectAnalyzeFetch(models.AIInsight{Content: "first"})

	_, err := f.svc.Analyze(context.Background(), "CHL", "Copper Mining")
	require.NoError(t, err)

	// Ровно на границе TTL запись ещё видна.
	f.advance(30 * time.Minute)
	got, err := f.svc.Analyze(context.Background(), "CHL", "Copper Mining")
	require.NoError(t, err)
	require.Equal(t, "first", got.AIInsights.Content)

	f.advance(time.Nanosecond)
	f.expectAnalyzeFetch(models.AIInsight{Content: "second"})

	got, err = f.svc.Analyze(context.Background(), "CHL", "Copper Mining")
	require.NoError(t, err)
	require.Equal(t, "second", got.AIInsights.Content)
}

func TestAnalyze_FallbackInsightIsNotCached(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.news.EXPECT().Configured().Return(true).AnyTimes()
	f.expectAnalyzeFetch(models.AIInsight{Content: "placeholder", Fallback: true})

	got, err := f.svc.Analyze(context.Background(), "CHL", "Copper Mining")
	require.NoError(t, err)
	require.Equal(t, "placeholder", got.AIInsights.Content)

	st, err := f.store.Stats(context.Background())
	require.NoError(t, err)
	require.Zero(t, st.Size)

	f.expectAnalyzeFetch(models.AIInsight{Content: "real"})
	got, err = f.svc.Analyze(context.Background(), "CHL", "Copper Mining")
	require.NoError(t, err)
	require.Equal(t, "real", got.AIInsights.Content)
}

func TestAnalyze_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		code  string
		query string
		field string
	}{
		{"empty_code", "", "energy", "countryCode"},
		{"short_code", "C", "energy", "countryCode"},
		{"digits_in_code", "C1L", "energy", "countryCode"},
		{"long_code", "CHLE", "energy", "countryCode"},
		{"blank_query", "CHL", "   ", "query"},
		{"control_chars", "CHL", "energy\x00", "query"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			_, err := f.svc.Analyze(context.Background(), tt.code, tt.query)
			require.ErrorIs(t, err, ErrInvalidArgument)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestAnalyze_NewsNotConfigured(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.news.EXPECT().Configured().Return(false)

	_, err := f.svc.Analyze(context.Background(), "CHL", "energy")
	require.ErrorIs(t, err, providers.ErrNotConfigured)
	require.NotErrorIs(t, err, ErrUpstream)
}

func TestAnalyze_UpstreamFailureIsNotCached(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	perr := &providers.ProviderError{Provider: worldbank.Provider, HTTPStatus: 503, Message: "unavailable"}

	f.news.EXPECT().Configured().Return(true)
	f.economy.EXPECT().Profile(gomock.Any(), "CHL", false).Return(models.CountryProfile{}, perr)
	f.economy.EXPECT().Profile(gomock.Any(), "CHL", true).Return(chileDetailed(), nil).AnyTimes()
	f.economy.EXPECT().Country(gomock.Any(), "CHL").Return(models.Country{Name: "Chile"}, nil).AnyTimes()
	f.news.EXPECT().Articles(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	_, err := f.svc.Analyze(context.Background(), "CHL", "energy")
	require.ErrorIs(t, err, ErrUpstream)

	var got *providers.ProviderError
	require.ErrorAs(t, err, &got)
	require.Equal(t, 503, got.HTTPStatus)

	st, err := f.store.Stats(context.Background())
	require.NoError(t, err)
	require.Zero(t, st.Size)
}

func TestFollowUp(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.economy.EXPECT().Profile(gomock.Any(), "CHL", true).Return(chileDetailed(), nil).Times(1)
	f.composer.EXPECT().FollowUp(gomock.Any(), composer.FollowUpInput{Profile: chileDetailed(), Question: "What about lithium?"}).
		Return("<p>Lithium.</p>", false).Times(1)

	answer, err := f.svc.FollowUp(context.Background(), "chl", "What about lithium?")
	require.NoError(t, err)
	require.Equal(t, "<p>Lithium.</p>", answer)

	answer, err = f.svc.FollowUp(context.Background(), "CHL", "what about LITHIUM?")
	require.NoError(t, err)
	require.Equal(t, "<p>Lithium.</p>", answer)

	// Кэш по умолчанию живёт час.
	f.advance(time.Hour + time.Second)
	f.economy.EXPECT().Profile(gomock.Any(), "CHL", true).Return(chileDetailed(), nil)
	f.composer.EXPECT().FollowUp(gomock.Any(), gomock.Any()).Return("fallback", true)

	answer, err = f.svc.FollowUp(context.Background(), "CHL", "What about lithium?")
	require.NoError(t, err)
	require.Equal(t, "fallback", answer)

	_, err = f.svc.FollowUp(context.Background(), "CHL", "")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCountries_Cached(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	list := []models.CountryOption{{Code: "CHL", Name: "Chile"}, {Code: "NOR", Name: "Norway"}}
	f.economy.EXPECT().Countries(gomock.Any()).Return(list, nil).Times(1)

	for i := 0; i < 2; i++ {
		got, err := f.svc.Countries(context.Background())
		require.NoError(t, err)
		require.Equal(t, list, got)
	}
}

func TestCharts(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	points := []models.ChartPoint{{Name: "2022", Value: ptr(2.1)}, {Name: "2023", Value: nil}}

	f.economy.EXPECT().GDPGrowth(gomock.Any(), "NOR").Return(points, nil)
	got, err := f.svc.GDPGrowth(context.Background(), "nor")
	require.NoError(t, err)
	require.Equal(t, points, got)

	f.economy.EXPECT().Unemployment(gomock.Any(), "NOR").Return(nil, nil)
	got, err = f.svc.Unemployment(context.Background(), "NOR")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)

	f.economy.EXPECT().Unemployment(gomock.Any(), "NOR").Return(nil, errors.New("dial tcp: refused"))
	_, err = f.svc.Unemployment(context.Background(), "NOR")
	require.ErrorIs(t, err, ErrUpstream)
}

func TestComparison_DefaultIndicator(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	rows := []models.ComparisonPoint{{Name: "Germany", Value: 4.5, Average: 3.9}}

	f.economy.EXPECT().Comparison(gomock.Any(), "DEU", "gdp").Return(rows)
	got, err := f.svc.Comparison(context.Background(), "deu", "")
	require.NoError(t, err)
	require.Equal(t, rows, got)

	f.economy.EXPECT().Comparison(gomock.Any(), "DEU", "inflation").Return(rows)
	_, err = f.svc.Comparison(context.Background(), "DEU", " Inflation ")
	require.NoError(t, err)
}

func TestRenewable(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	f.climate.EXPECT().Summary(gomock.Any(), "BRA").Return(models.RenewableSummary{}, &providers.ProviderError{Provider: "cdp", HTTPStatus: 500}).Times(2)
	for i := 0; i < 2; i++ {
		_, err := f.svc.Renewable(context.Background(), "BRA")
		require.ErrorIs(t, err, ErrUpstream)
	}

	noData := models.RenewableSummary{HasData: false, Message: "No CDP data available for this country"}
	f.climate.EXPECT().Summary(gomock.Any(), "NOR").Return(noData, nil).Times(1)
	for i := 0; i < 2; i++ {
		got, err := f.svc.Renewable(context.Background(), "NOR")
		require.NoError(t, err)
		require.False(t, got.HasData)
		require.Equal(t, noData.Message, got.Message)
	}
}

func TestP3(t *testing.T) {
	t.Parallel()

	t.Run("requires text generation key", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.composer.EXPECT().Configured().Return(false)

		_, err := f.svc.P3(context.Background(), "CHL", "energy")
		require.ErrorIs(t, err, providers.ErrNotConfigured)

		var cfgErr *providers.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		require.Equal(t, "OPENROUTER_API_KEY", cfgErr.Setting)
	})

	t.Run("climate failure is optional", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		rec := models.P3Recommendation{Predict: "p", Prevent: "v", Protect: "t"}

		f.composer.EXPECT().Configured().Return(true).Times(2)
		f.news.EXPECT().Configured().Return(true).Times(2)
		f.economy.EXPECT().Profile(gomock.Any(), "CHL", true).Return(chileDetailed(), nil).Times(1)
		f.economy.EXPECT().Country(gomock.Any(), "CHL").Return(models.Country{Name: "Chile"}, nil).Times(1)
		f.news.EXPECT().Articles(gomock.Any(), "Chile", "energy").Return(chileNews(), nil).Times(1)
		f.climate.EXPECT().Summary(gomock.Any(), "CHL").Return(models.RenewableSummary{}, errors.New("timeout")).Times(1)
		f.composer.EXPECT().P3(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in composer.P3Input) models.P3Recommendation {
				if in.Climate != nil {
					t.Errorf("climate must be absent")
				}
				return rec
			}).Times(1)

		got, err := f.svc.P3(context.Background(), "CHL", "energy")
		require.NoError(t, err)
		require.Equal(t, rec, got)

		got, err = f.svc.P3(context.Background(), "chl", "Energy")
		require.NoError(t, err)
		require.Equal(t, rec, got)
	})

	t.Run("climate data passed through", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		climate := models.RenewableSummary{HasData: true, CountryName: "Chile", TotalTargets: 4}

		f.composer.EXPECT().Configured().Return(true)
		f.news.EXPECT().Configured().Return(true)
		f.economy.EXPECT().Profile(gomock.Any(), "CHL", true).Return(chileDetailed(), nil)
		f.economy.EXPECT().Country(gomock.Any(), "CHL").Return(models.Country{Name: "Chile"}, nil)
		f.news.EXPECT().Articles(gomock.Any(), "Chile", "energy").Return(nil, nil)
		f.climate.EXPECT().Summary(gomock.Any(), "CHL").Return(climate, nil)
		f.composer.EXPECT().P3(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in composer.P3Input) models.P3Recommendation {
				if in.Climate == nil || in.Climate.TotalTargets != 4 {
					t.Errorf("climate must be passed")
				}
				return models.P3Recommendation{Predict: "x", Prevent: "y", Protect: "z", Fallback: true}
			})

		_, err := f.svc.P3(context.Background(), "CHL", "energy")
		require.NoError(t, err)

		st, err := f.store.Stats(context.Background())
		require.NoError(t, err)
		require.Zero(t, st.Size, "fallback must not be cached")
	})
}

func negativeNews() []models.NewsItem {
	return []models.NewsItem{{Title: "Energy crisis deepens", Description: "Deficit and decline"}}
}

func TestProjects_RescoredFromSignals(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.economy.EXPECT().Latest(gomock.Any(), "AUS", worldbank.IndicatorGDPGrowth).Return(ptr(-0.1), nil).Times(1)
	f.economy.EXPECT().Latest(gomock.Any(), "AUS", worldbank.IndicatorInflation).Return(ptr(8), nil).Times(1)
	f.news.EXPECT().Configured().Return(true).Times(1)
	f.economy.EXPECT().Country(gomock.Any(), "AUS").Return(models.Country{Name: "Australia"}, nil).Times(1)
	f.news.EXPECT().Articles(gomock.Any(), "Australia", "investment").Return(negativeNews(), nil).Times(1)

	got, err := f.svc.Projects(context.Background(), "aus", "")
	require.NoError(t, err)
	require.Len(t, got, 4)

	energy := got[0]
	require.Equal(t, "aus-001", energy.ID)
	require.Equal(t, models.RiskCritical, energy.CurrentRisk)
	require.Equal(t, models.RiskLow, *energy.PreviousRisk)
	require.Contains(t, energy.ImpactAnalysis, "CRITICAL ALERT")

	// Повтор с явным запросом по умолчанию берётся из кэша.
	again, err := f.svc.Projects(context.Background(), "AUS", " Investment ")
	require.NoError(t, err)
	require.Equal(t, got, again)
}

func TestProjects_DefaultsWhenSignalsUnavailable(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.economy.EXPECT().Latest(gomock.Any(), "NOR", worldbank.IndicatorGDPGrowth).Return(nil, errors.New("timeout"))
	f.economy.EXPECT().Latest(gomock.Any(), "NOR", worldbank.IndicatorInflation).Return(nil, nil)
	f.news.EXPECT().Configured().Return(false)

	got, err := f.svc.Projects(context.Background(), "NOR", "energy")
	require.NoError(t, err)
	require.Len(t, got, 2)

	for _, p := range got {
		require.Equal(t, models.RiskMedium, p.CurrentRisk, p.ID)
	}
	require.Equal(t, "nor-default-001", got[0].ID)
	require.Equal(t, "Renewable Energy Development (NOR)", got[0].Name)

	ds, err := reference.Load()
	require.NoError(t, err)
	require.Equal(t, risk.RescoreAll(ds.ProjectsFor("NOR"), risk.DefaultSignals()), got)
}

func TestNIB(t *testing.T) {
	t.Parallel()

	recommend := func(fallbackSector string) func(context.Context, composer.Sector) models.AIRecommendation {
		return func(_ context.Context, s composer.Sector) models.AIRecommendation {
			return models.AIRecommendation{Title: s.Title, Fallback: s.Name == fallbackSector}
		}
	}

	f := newFixture(t)
	f.composer.EXPECT().Configured().Return(true).Times(3)

	f.composer.EXPECT().Recommendation(gomock.Any(), gomock.Any()).DoAndReturn(recommend(composer.SectorInnovation.Name)).Times(3)
	got, err := f.svc.NIB(context.Background())
	require.NoError(t, err)
	require.Equal(t, "2025-03-01T12:00:00Z", got.AnalysisDate)
	require.Equal(t, "Sustainable Finance", got.AIRecommendations.Sustainable.Title)
	require.Equal(t, "Infrastructure Development", got.AIRecommendations.Infrastructure.Title)
	require.Equal(t, "Innovation & Technology", got.AIRecommendations.Innovation.Title)
	require.Equal(t, "Our Year in Brief", got.Basic.YearInBrief.Title)

	// Набор с заглушкой не кэшируется: второй запрос снова идёт к модели.
	f.composer.EXPECT().Recommendation(gomock.Any(), gomock.Any()).DoAndReturn(recommend("")).Times(3)
	_, err = f.svc.NIB(context.Background())
	require.NoError(t, err)

	f.advance(23 * time.Hour)
	cachedSet, err := f.svc.NIB(context.Background())
	require.NoError(t, err)
	require.Equal(t, "2025-03-01T12:00:00Z", cachedSet.AnalysisDate)
}

func TestNIB_NotConfigured(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.composer.EXPECT().Configured().Return(false)

	_, err := f.svc.NIB(context.Background())
	require.ErrorIs(t, err, providers.ErrNotConfigured)
}

func TestRiskRating(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	got, err := f.svc.RiskRating(context.Background(), "jpn")
	require.NoError(t, err)
	require.Equal(t, "JPN", got.CountryCode)
	require.NotNil(t, got.DisasterRisk)
	require.Equal(t, "Very High", got.DisasterRiskLevel)

	got, err = f.svc.RiskRating(context.Background(), "USA")
	require.NoError(t, err)
	require.NotNil(t, got.CreditRating)
	require.Equal(t, "AA+", got.CreditRating.Rating)

	got, err = f.svc.RiskRating(context.Background(), "ZZZ")
	require.NoError(t, err)
	require.Nil(t, got.CreditRating)
	require.Nil(t, got.DisasterRisk)
	require.Equal(t, "Unknown", got.DisasterRiskLevel)
}

func TestClearCache(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.Set(ctx, "analyze:chl:energy", []byte(`{}`)))
	require.NoError(t, f.store.Set(ctx, "cdp:chl", []byte(`{}`)))

	st, err := f.svc.ClearCache(ctx, "analyze")
	require.NoError(t, err)
	require.Equal(t, cache.Stats{Size: 1, Keys: []string{"cdp:chl"}}, st)

	st, err = f.svc.ClearCache(ctx, "")
	require.NoError(t, err)
	require.Equal(t, cache.Stats{Size: 0, Keys: []string{}}, st)
}
