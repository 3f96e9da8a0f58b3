package worldbank

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pribylovaa/risk-sense/internal/models"
	"github.com/pribylovaa/risk-sense/pkg/log"
)

// maxPeers — сколько соседей по региону попадает в сравнение.
const maxPeers = 4

// ComparisonIndicator переводит имя индикатора из запроса в код World Bank.
// Неизвестные имена означают ВВП.
func ComparisonIndicator(name string) string {
	switch strings.ToLower(name) {
	case "gdppercapita":
		return IndicatorGDPPerCapita
	case "unemployment":
		return IndicatorUnemployment
	case "inflation":
		return IndicatorInflation
	default:
		return IndicatorGDP
	}
}

// Comparison сравнивает страну со средним по региону и с соседями
// той же группы дохода.
//
// Метод не возвращает ошибок: при сбое на любом шаге отдаётся
// частичный результат или заглушка, соответствующая шагу. Значение берётся
// из самого свежего непустого наблюдения; ряд без данных считается сбоем шага,
// соседи без данных в ответ не попадают.
func (c *Client) Comparison(ctx context.Context, code, indicator string) []models.ComparisonPoint {
	const op = "worldbank.Comparison"

	lg := log.From(ctx).With(slog.String("op", op), slog.String("country", code))
	ind := ComparisonIndicator(indicator)

	meta, err := c.Country(ctx, code)
	if err != nil {
		lg.Warn("comparison_country_failed", slog.String("err", err.Error()))

		if errors.Is(err, ErrUnknownCountry) {
			return []models.ComparisonPoint{{Name: "Error fetching data"}}
		}

		return []models.ComparisonPoint{{Name: "Country", Value: 100, Average: 90}}
	}

	value, err := latestValue(c.Series(ctx, code, ind, historyDepth))
	if err != nil {
		lg.Warn("comparison_indicator_failed", slog.String("err", err.Error()))
		return []models.ComparisonPoint{{Name: meta.Name, Value: 100, Average: 90}}
	}

	average, err := latestValue(c.RegionSeries(ctx, meta.RegionID, ind, historyDepth))
	if err != nil {
		lg.Warn("comparison_region_failed", slog.String("err", err.Error()))
		return []models.ComparisonPoint{{Name: meta.Name, Value: value, Average: value * 0.9}}
	}

	target := models.ComparisonPoint{Name: meta.Name, Value: value, Average: average}

	regionCountries, err := c.RegionCountries(ctx, meta.RegionID)
	if err != nil {
		lg.Warn("comparison_region_countries_failed", slog.String("err", err.Error()))
		return []models.ComparisonPoint{target}
	}

	peers := make([]models.Country, 0, maxPeers)
	for _, rc := range regionCountries {
		if len(peers) == maxPeers {
			break
		}

		if strings.EqualFold(rc.Code, meta.Code) || rc.IncomeLevelID != meta.IncomeLevelID {
			continue
		}

		peers = append(peers, rc)
	}

	rows := make([]*models.ComparisonPoint, len(peers))

	var g errgroup.Group
	for i, peer := range peers {
		i, peer := i, peer
		g.Go(func() error {
			v, err := latestValue(c.Series(ctx, peer.Code, ind, historyDepth))
			if err != nil {
				lg.Warn("comparison_peer_skipped",
					slog.String("peer", peer.Code),
					slog.String("err", err.Error()),
				)
				return nil
			}

			rows[i] = &models.ComparisonPoint{Name: peer.Name, Value: v, Average: average}
			return nil
		})
	}
	_ = g.Wait()

	out := []models.ComparisonPoint{target}
	for _, r := range rows {
		if r != nil {
			out = append(out, *r)
		}
	}

	return out
}

// errNoObservations — в последних периодах ряда нет ни одного значения.
var errNoObservations = errors.New("no non-null observations")

// latestValue возвращает самое свежее непустое значение ряда.
func latestValue(obs []Observation, err error) (float64, error) {
	if err != nil {
		return 0, err
	}

	o := firstNonNull(obs)
	if o == nil {
		return 0, errNoObservations
	}

	return *o.Value, nil
}
