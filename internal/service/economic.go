package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pribylovaa/risk-sense/internal/models"
	"github.com/pribylovaa/risk-sense/internal/reference"
	"github.com/pribylovaa/risk-sense/pkg/log"
)

// DefaultComparisonIndicator — индикатор сравнения, если он не указан.
const DefaultComparisonIndicator = "gdp"

// GDPGrowth — ряд роста ВВП для графика.
func (s *Service) GDPGrowth(ctx context.Context, rawCode string) ([]models.ChartPoint, error) {
	return s.chart(ctx, "service.GDPGrowth", rawCode, s.economy.GDPGrowth)
}

// Unemployment — ряд безработицы для графика.
func (s *Service) Unemployment(ctx context.Context, rawCode string) ([]models.ChartPoint, error) {
	return s.chart(ctx, "service.Unemployment", rawCode, s.economy.Unemployment)
}

func (s *Service) chart(ctx context.Context, op, rawCode string,
	fetch func(ctx context.Context, code string) ([]models.ChartPoint, error),
) ([]models.ChartPoint, error) {
	code, err := countryCode(rawCode)
	if err != nil {
		return nil, err
	}

	points, err := fetch(ctx, code)
	if err != nil {
		log.From(ctx).Error("chart_fetch_failed",
			slog.String("op", op),
			slog.String("country_code", code),
			slog.String("err", err.Error()),
		)
		return nil, upstream(op, err)
	}

	if points == nil {
		points = []models.ChartPoint{}
	}

	return points, nil
}

// Comparison сравнивает страну с регионом по индикатору
// (gdp | gdppercapita | unemployment | inflation). Сбои провайдера
// превращаются в строки-заглушки, поэтому ошибка бывает только валидационной.
func (s *Service) Comparison(ctx context.Context, rawCode, indicator string) ([]models.ComparisonPoint, error) {
	code, err := countryCode(rawCode)
	if err != nil {
		return nil, err
	}

	indicator = strings.ToLower(strings.TrimSpace(indicator))
	if indicator == "" {
		indicator = DefaultComparisonIndicator
	}

	return s.economy.Comparison(ctx, code, indicator), nil
}

// RiskRating — суверенный рейтинг и индекс природных рисков из справочников.
func (s *Service) RiskRating(_ context.Context, rawCode string) (models.RiskRating, error) {
	code, err := countryCode(rawCode)
	if err != nil {
		return models.RiskRating{}, err
	}

	out := models.RiskRating{CountryCode: code, DisasterRiskLevel: reference.DisasterRiskLevel(nil)}

	if r, ok := s.ref.CreditRating(code); ok {
		out.CreditRating = &r
	}

	if d, ok := s.ref.DisasterRisk(code); ok {
		out.DisasterRisk = &d
		out.DisasterRiskLevel = reference.DisasterRiskLevel(d.WRIRank)
	}

	return out, nil
}
