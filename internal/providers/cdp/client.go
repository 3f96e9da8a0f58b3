// cdp — адаптер открытых данных CDP (Socrata): городские цели
// по возобновляемой энергетике.
package cdp

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pribylovaa/risk-sense/internal/models"
	"github.com/pribylovaa/risk-sense/internal/providers"
)

const (
	// Provider — имя провайдера в ошибках и метриках.
	Provider = "cdp"
	// DefaultBaseURL — датасет "2023 Cities Renewable Energy Targets".
	DefaultBaseURL = "https://data.cdp.net/resource/kuuu-937k.json"

	queryLimit    = 10
	noDataMessage = "No renewable energy targets found for this country in the CDP database."
)

// CountryNames переводит ISO-код в название страны, принятое в CDP.
type CountryNames interface {
	CDPCountryName(code string) (string, bool)
}

// Client — HTTP-клиент CDP.
type Client struct {
	http    *http.Client
	baseURL string
	names   CountryNames
}

// New создаёт клиент. Пустой baseURL означает DefaultBaseURL.
func New(client *http.Client, baseURL string, names CountryNames) *Client {
	if client == nil {
		client = providers.NewHTTPClient(0)
	}

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{http: client, baseURL: baseURL, names: names}
}

// RenewableTargets возвращает цели страны, у которых сектор содержит "renewable".
func (c *Client) RenewableTargets(ctx context.Context, countryName string) ([]models.RenewableTarget, error) {
	q := url.Values{
		"$where": {fmt.Sprintf("country=%q", countryName)},
		"$limit": {strconv.Itoa(queryLimit)},
	}

	var rows []models.RenewableTarget
	if err := providers.GetJSON(ctx, c.http, Provider, c.baseURL+"?"+q.Encode(), nil, &rows); err != nil {
		return nil, err
	}

	out := rows[:0]
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.TargetSector), "renewable") {
			out = append(out, r)
		}
	}

	return out, nil
}

// Summary агрегирует цели страны. Для кода без сопоставления
// внешний вызов не выполняется.
func (c *Client) Summary(ctx context.Context, code string) (models.RenewableSummary, error) {
	name, ok := c.names.CDPCountryName(strings.ToUpper(strings.TrimSpace(code)))
	if !ok {
		return noData(), nil
	}

	targets, err := c.RenewableTargets(ctx, name)
	if err != nil {
		return models.RenewableSummary{}, err
	}

	if len(targets) == 0 {
		return noData(), nil
	}

	return summarize(targets), nil
}

func noData() models.RenewableSummary {
	return models.RenewableSummary{HasData: false, Message: noDataMessage}
}

func summarize(targets []models.RenewableTarget) models.RenewableSummary {
	var (
		years       []int
		percentages []float64
		cities      = make([]string, 0, len(targets))
		types       = make([]string, 0, len(targets))
		seenCity    = make(map[string]struct{})
		seenType    = make(map[string]struct{})
	)

	for _, t := range targets {
		if y, err := strconv.Atoi(strings.TrimSpace(t.TargetYear)); err == nil && y > 0 {
			years = append(years, y)
		}

		if p, err := strconv.ParseFloat(strings.TrimSpace(t.PercentageOfTotalEnergy), 64); err == nil && !math.IsNaN(p) {
			percentages = append(percentages, p)
		}

		if t.City != "" {
			if _, dup := seenCity[t.City]; !dup {
				seenCity[t.City] = struct{}{}
				cities = append(cities, t.City)
			}
		}

		if t.TargetType != "" {
			if _, dup := seenType[t.TargetType]; !dup {
				seenType[t.TargetType] = struct{}{}
				types = append(types, t.TargetType)
			}
		}
	}

	return models.RenewableSummary{
		HasData:                    true,
		CountryName:                targets[0].Country,
		CitiesWithTargets:          len(cities),
		CityList:                   cities,
		TotalTargets:               len(targets),
		AverageTargetYear:          roundedMean(years),
		AverageRenewablePercentage: roundedMean(percentages),
		TargetTypes:                types,
	}
}

func roundedMean[T int | float64](xs []T) *int {
	if len(xs) == 0 {
		return nil
	}

	var sum float64
	for _, x := range xs {
		sum += float64(x)
	}

	v := int(math.Round(sum / float64(len(xs))))
	return &v
}
