package worldbank

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/pribylovaa/risk-sense/internal/models"
)

// highIncomeID — код группы стран с высоким доходом.
const highIncomeID = "HIC"

// profileSeries — сырые ряды, из которых собирается профиль.
type profileSeries struct {
	population   []Observation
	gdp          []Observation
	gdpPerCapita []Observation
	growth       []Observation
	unemployment []Observation
	inflation    []Observation
	trade        []Observation
}

// Profile собирает профиль страны. При withIndicators дополнительно
// запрашиваются рост ВВП, безработица, инфляция и торговый баланс,
// а summary/analysis строятся по ним.
//
// Ошибка получения метаданных страны или любого ряда возвращается как есть.
func (c *Client) Profile(ctx context.Context, code string, withIndicators bool) (models.CountryProfile, error) {
	var (
		meta models.Country
		s    profileSeries
	)

	var g errgroup.Group
	g.Go(func() (err error) {
		meta, err = c.Country(ctx, code)
		return err
	})

	load := func(dst *[]Observation, indicator string) {
		g.Go(func() (err error) {
			*dst, err = c.Series(ctx, code, indicator, historyDepth)
			return err
		})
	}

	load(&s.population, IndicatorPopulation)
	load(&s.gdp, IndicatorGDP)
	load(&s.gdpPerCapita, IndicatorGDPPerCapita)
	if withIndicators {
		load(&s.growth, IndicatorGDPGrowth)
		load(&s.unemployment, IndicatorUnemployment)
		load(&s.inflation, IndicatorInflation)
		load(&s.trade, IndicatorTrade)
	}

	if err := g.Wait(); err != nil {
		return models.CountryProfile{}, err
	}

	return buildProfile(meta, s, withIndicators), nil
}

func buildProfile(meta models.Country, s profileSeries, withIndicators bool) models.CountryProfile {
	pop := firstNonNull(s.population)
	gdp := firstNonNull(s.gdp)
	pc := firstNonNull(s.gdpPerCapita)

	p := models.CountryProfile{
		Name:           meta.Name,
		Code:           meta.Code,
		Region:         meta.Region,
		IncomeLevel:    meta.IncomeLevel,
		Capital:        meta.Capital,
		Longitude:      meta.Longitude,
		Latitude:       meta.Latitude,
		Population:     FormatPopulation(valueOf(pop)),
		PopulationYear: dateOf(pop),
		GDP:            FormatGDP(valueOf(gdp)),
		GDPPerCapita:   FormatPerCapita(valueOf(pc)),
		Government:     NotAvailable,
		Indicators:     []models.EconomicIndicator{},
	}

	if !withIndicators {
		p.Summary = basicSummary(p)
		p.Analysis = basicAnalysis(p)
		return p
	}

	growthCur, growthPrev := latestPair(s.growth)
	unempCur, unempPrev := latestPair(s.unemployment)
	inflCur, inflPrev := latestPair(s.inflation)
	tradeCur, tradePrev := latestPair(s.trade)

	gdpChange := growthChange(growthCur, growthPrev)

	if gdp != nil {
		p.Indicators = append(p.Indicators, models.EconomicIndicator{
			Indicator:  "GDP (nominal)",
			Value:      p.GDP,
			Year:       gdp.Date,
			Change:     gdpChange,
			GlobalRank: NotAvailable,
		})
	}

	if pc != nil {
		p.Indicators = append(p.Indicators, models.EconomicIndicator{
			Indicator:  "GDP per capita",
			Value:      p.GDPPerCapita,
			Year:       pc.Date,
			Change:     gdpChange,
			GlobalRank: NotAvailable,
		})
	}

	if unempCur != nil {
		p.Indicators = append(p.Indicators, models.EconomicIndicator{
			Indicator:  "Unemployment Rate",
			Value:      formatPercent(*unempCur.Value),
			Year:       unempCur.Date,
			Change:     deltaChange(unempCur, unempPrev, false),
			GlobalRank: NotAvailable,
		})
	}

	if inflCur != nil {
		p.Indicators = append(p.Indicators, models.EconomicIndicator{
			Indicator:  "Inflation Rate",
			Value:      formatPercent(*inflCur.Value),
			Year:       inflCur.Date,
			Change:     deltaChange(inflCur, inflPrev, true),
			GlobalRank: NotAvailable,
		})
	}

	if tradeCur != nil {
		p.Indicators = append(p.Indicators, models.EconomicIndicator{
			Indicator:  "Trade Balance",
			Value:      fmt.Sprintf("%.1f%% of GDP", *tradeCur.Value),
			Year:       tradeCur.Date,
			Change:     deltaChange(tradeCur, tradePrev, true),
			GlobalRank: NotAvailable,
		})
	}

	sig := signals{
		growth:       valueOf(growthCur),
		unemployment: valueOf(unempCur),
		inflation:    valueOf(inflCur),
		highIncome:   meta.IncomeLevelID == highIncomeID,
	}

	p.GDPGrowth = sig.growth
	p.Summary = detailedSummary(p, sig)
	p.Analysis = detailedAnalysis(p, sig)

	return p
}

// growthChange — изменение для строк ВВП: значение роста и его направление.
func growthChange(cur, prev *Observation) models.Change {
	ch := models.Change{Value: NotAvailable, Direction: models.DirectionNone}
	if cur == nil {
		return ch
	}

	ch.Value = formatPercent(*cur.Value)
	if prev != nil {
		ch.Direction = directionOf(*cur.Value > *prev.Value)
	}

	return ch
}

// deltaChange — разница cur-prev. upWhenIncrease=false означает,
// что рост показателя считается ухудшением (безработица).
func deltaChange(cur, prev *Observation, upWhenIncrease bool) models.Change {
	if cur == nil || prev == nil {
		return models.Change{Value: NotAvailable, Direction: models.DirectionNone}
	}

	up := *cur.Value > *prev.Value
	if !upWhenIncrease {
		up = *cur.Value < *prev.Value
	}

	return models.Change{
		Value:     formatPercent(*cur.Value - *prev.Value),
		Direction: directionOf(up),
	}
}

func directionOf(up bool) models.Direction {
	if up {
		return models.DirectionUp
	}

	return models.DirectionDown
}

func valueOf(o *Observation) *float64 {
	if o == nil {
		return nil
	}

	return o.Value
}

func dateOf(o *Observation) string {
	if o == nil {
		return NotAvailable
	}

	return o.Date
}
