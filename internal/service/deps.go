package service

import (
	"context"

	"github.com/pribylovaa/risk-sense/internal/composer"
	"github.com/pribylovaa/risk-sense/internal/models"
)

// Economy — провайдер экономических данных (World Bank).
type Economy interface {
	Countries(ctx context.Context) ([]models.CountryOption, error)
	Country(ctx context.Context, code string) (models.Country, error)
	Profile(ctx context.Context, code string, withIndicators bool) (models.CountryProfile, error)
	GDPGrowth(ctx context.Context, code string) ([]models.ChartPoint, error)
	Unemployment(ctx context.Context, code string) ([]models.ChartPoint, error)
	// Comparison не возвращает ошибок: сбои заменяются строками-заглушками.
	Comparison(ctx context.Context, code, indicator string) []models.ComparisonPoint
	Latest(ctx context.Context, code, indicator string) (*float64, error)
}

// News — провайдер новостей.
type News interface {
	Articles(ctx context.Context, countryName, query string) ([]models.NewsItem, error)
	Configured() bool
}

// Climate — провайдер климатических целей (CDP).
type Climate interface {
	Summary(ctx context.Context, code string) (models.RenewableSummary, error)
}

// Composer — AI-рекомендации. Методы не возвращают ошибок: при сбоях
// провайдера приходит заглушка с флагом Fallback.
type Composer interface {
	Configured() bool
	Insight(ctx context.Context, in composer.InsightInput) models.AIInsight
	FollowUp(ctx context.Context, in composer.FollowUpInput) (string, bool)
	P3(ctx context.Context, in composer.P3Input) models.P3Recommendation
	Recommendation(ctx context.Context, s composer.Sector) models.AIRecommendation
}
