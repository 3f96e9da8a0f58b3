// worldbank — адаптер World Bank Indicators API v2.
//
// Ответ API имеет вид [meta, items]; при ошибке параметров вместо items
// приходит только объект с message. Оба случая трактуются как "нет данных".
package worldbank

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/pribylovaa/risk-sense/internal/models"
	"github.com/pribylovaa/risk-sense/internal/providers"
)

// Provider — имя провайдера в ошибках и метриках.
const Provider = "worldbank"

// DefaultBaseURL — публичный endpoint API.
const DefaultBaseURL = "https://api.worldbank.org/v2"

// Коды индикаторов.
const (
	IndicatorPopulation   = "SP.POP.TOTL"
	IndicatorGDP          = "NY.GDP.MKTP.CD"
	IndicatorGDPPerCapita = "NY.GDP.PCAP.CD"
	IndicatorGDPGrowth    = "NY.GDP.MKTP.KD.ZG"
	IndicatorUnemployment = "SL.UEM.TOTL.ZS"
	IndicatorInflation    = "FP.CPI.TOTL.ZG"
	IndicatorTrade        = "NE.RSB.GNFS.ZS"
)

// aggregateRegionID — регион агрегатов ("World", "Euro area" и т.п.).
const aggregateRegionID = "NA"

// historyDepth — сколько периодов запрашиваем, чтобы найти непустое значение.
const historyDepth = 5

// ErrUnknownCountry — API не знает такого кода страны.
var ErrUnknownCountry = errors.New("unknown country code")

// Client — HTTP-клиент World Bank.
type Client struct {
	http    *http.Client
	baseURL string
}

// New создаёт клиент. Пустой baseURL означает DefaultBaseURL.
func New(client *http.Client, baseURL string) *Client {
	if client == nil {
		client = providers.NewHTTPClient(0)
	}

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{http: client, baseURL: strings.TrimRight(baseURL, "/")}
}

type idValue struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

type country struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Region      idValue `json:"region"`
	IncomeLevel idValue `json:"incomeLevel"`
	CapitalCity string  `json:"capitalCity"`
	Longitude   string  `json:"longitude"`
	Latitude    string  `json:"latitude"`
}

func (c country) toModel() models.Country {
	return models.Country{
		Code:          c.ID,
		Name:          c.Name,
		RegionID:      c.Region.ID,
		Region:        c.Region.Value,
		IncomeLevelID: c.IncomeLevel.ID,
		IncomeLevel:   c.IncomeLevel.Value,
		Capital:       c.CapitalCity,
		Longitude:     c.Longitude,
		Latitude:      c.Latitude,
	}
}

// Observation — значение индикатора за период; Value == nil для пустых периодов.
type Observation struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// fetch запрашивает path и декодирует вторую часть ответа в out.
// Возвращает false, если API не вернул данных.
func (c *Client) fetch(ctx context.Context, path string, q url.Values, out any) (bool, error) {
	if q == nil {
		q = url.Values{}
	}
	q.Set("format", "json")

	var raw []json.RawMessage
	if err := providers.GetJSON(ctx, c.http, Provider, c.baseURL+path+"?"+q.Encode(), nil, &raw); err != nil {
		return false, err
	}

	if len(raw) < 2 || string(raw[1]) == "null" {
		return false, nil
	}

	if err := json.Unmarshal(raw[1], out); err != nil {
		return false, &providers.ProviderError{Provider: Provider, Message: fmt.Sprintf("decode items: %v", err)}
	}

	return true, nil
}

// Countries возвращает список стран без региональных агрегатов.
func (c *Client) Countries(ctx context.Context) ([]models.CountryOption, error) {
	var items []country
	if _, err := c.fetch(ctx, "/country", url.Values{"per_page": {"300"}}, &items); err != nil {
		return nil, err
	}

	out := make([]models.CountryOption, 0, len(items))
	for _, it := range items {
		if it.Region.ID == aggregateRegionID {
			continue
		}
		out = append(out, models.CountryOption{Code: it.ID, Name: it.Name})
	}

	return out, nil
}

// Country возвращает метаданные страны.
func (c *Client) Country(ctx context.Context, code string) (models.Country, error) {
	var items []country
	ok, err := c.fetch(ctx, "/country/"+url.PathEscape(code), nil, &items)
	if err != nil {
		return models.Country{}, err
	}

	if !ok || len(items) == 0 {
		return models.Country{}, fmt.Errorf("%w %q: %w", ErrUnknownCountry, code, &providers.ProviderError{
			Provider: Provider,
			Message:  "empty country response",
		})
	}

	return items[0].toModel(), nil
}

// Series возвращает последние perPage наблюдений индикатора (от новых к старым).
func (c *Client) Series(ctx context.Context, code, indicator string, perPage int) ([]Observation, error) {
	return c.series(ctx, "/country/"+url.PathEscape(code), indicator, perPage)
}

// RegionSeries — то же для региона.
func (c *Client) RegionSeries(ctx context.Context, regionID, indicator string, perPage int) ([]Observation, error) {
	return c.series(ctx, "/region/"+url.PathEscape(regionID), indicator, perPage)
}

func (c *Client) series(ctx context.Context, prefix, indicator string, perPage int) ([]Observation, error) {
	var obs []Observation
	q := url.Values{"per_page": {strconv.Itoa(perPage)}}
	if _, err := c.fetch(ctx, prefix+"/indicator/"+url.PathEscape(indicator), q, &obs); err != nil {
		return nil, err
	}

	return obs, nil
}

// RegionCountries возвращает страны региона.
func (c *Client) RegionCountries(ctx context.Context, regionID string) ([]models.Country, error) {
	var items []country
	q := url.Values{"per_page": {"100"}}
	if _, err := c.fetch(ctx, "/region/"+url.PathEscape(regionID)+"/country", q, &items); err != nil {
		return nil, err
	}

	out := make([]models.Country, 0, len(items))
	for _, it := range items {
		out = append(out, it.toModel())
	}

	return out, nil
}

// Latest возвращает самое свежее непустое значение индикатора или nil.
func (c *Client) Latest(ctx context.Context, code, indicator string) (*float64, error) {
	obs, err := c.Series(ctx, code, indicator, historyDepth)
	if err != nil {
		return nil, err
	}

	if o := firstNonNull(obs); o != nil {
		return o.Value, nil
	}

	return nil, nil
}

// GDPGrowth — рост ВВП за последние периоды в хронологическом порядке.
func (c *Client) GDPGrowth(ctx context.Context, code string) ([]models.ChartPoint, error) {
	return c.chart(ctx, code, IndicatorGDPGrowth)
}

// Unemployment — безработица за последние периоды в хронологическом порядке.
func (c *Client) Unemployment(ctx context.Context, code string) ([]models.ChartPoint, error) {
	return c.chart(ctx, code, IndicatorUnemployment)
}

func (c *Client) chart(ctx context.Context, code, indicator string) ([]models.ChartPoint, error) {
	obs, err := c.Series(ctx, code, indicator, historyDepth)
	if err != nil {
		return nil, err
	}

	out := make([]models.ChartPoint, 0, len(obs))
	for _, o := range obs {
		out = append(out, models.ChartPoint{Name: o.Date, Value: o.Value})
	}
	slices.Reverse(out)

	return out, nil
}

// firstNonNull возвращает первое наблюдение с непустым значением.
func firstNonNull(obs []Observation) *Observation {
	for i := range obs {
		if obs[i].Value != nil {
			return &obs[i]
		}
	}

	return nil
}

// latestPair возвращает два самых свежих непустых наблюдения.
func latestPair(obs []Observation) (cur, prev *Observation) {
	for i := range obs {
		if obs[i].Value == nil {
			continue
		}

		if cur == nil {
			cur = &obs[i]
			continue
		}

		prev = &obs[i]
		return cur, prev
	}

	return cur, nil
}
