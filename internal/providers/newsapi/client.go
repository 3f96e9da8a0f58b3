// newsapi — адаптер News API (/v2/everything): поиск статей и их нормализация.
package newsapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pribylovaa/risk-sense/internal/models"
	"github.com/pribylovaa/risk-sense/internal/providers"
	"github.com/pribylovaa/risk-sense/pkg/redact"
)

const (
	// Provider — имя провайдера в ошибках и метриках.
	Provider = "newsapi"
	// DefaultBaseURL — публичный endpoint API.
	DefaultBaseURL = "https://newsapi.org/v2"

	defaultPageSize    = 10
	noDescription      = "No description available"
	apiKeySettingName  = "NEWS_API_KEY"
	absoluteDateLayout = "Jan 2, 2006"
)

// Config — параметры клиента.
type Config struct {
	APIKey   string
	BaseURL  string
	PageSize int
}

// Client — HTTP-клиент News API.
type Client struct {
	http *http.Client
	cfg  Config
	now  func() time.Time
}

// New создаёт клиент; пустые поля Config заменяются значениями по умолчанию.
func New(client *http.Client, cfg Config) *Client {
	if client == nil {
		client = providers.NewHTTPClient(0)
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}

	return &Client{http: client, cfg: cfg, now: time.Now}
}

// WithClock подменяет источник времени (для относительных дат в тестах).
func (c *Client) WithClock(now func() time.Time) *Client {
	c.now = now
	return c
}

// Configured сообщает, задан ли API-ключ.
func (c *Client) Configured() bool { return c.cfg.APIKey != "" }

type article struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	URLToImage  string    `json:"urlToImage"`
	PublishedAt time.Time `json:"publishedAt"`
}

type everythingResponse struct {
	Status   string    `json:"status"`
	Articles []article `json:"articles"`
}

// Articles ищет статьи по "<страна> <запрос>". Пустой результат — не ошибка.
func (c *Client) Articles(ctx context.Context, countryName, query string) ([]models.NewsItem, error) {
	if !c.Configured() {
		return nil, providers.NotConfigured(Provider, apiKeySettingName)
	}

	q := url.Values{
		"q":        {strings.TrimSpace(countryName + " " + query)},
		"sortBy":   {"relevancy"},
		"language": {"en"},
		"pageSize": {strconv.Itoa(c.cfg.PageSize)},
	}

	var resp everythingResponse
	headers := map[string]string{"X-Api-Key": c.cfg.APIKey}
	if err := providers.GetJSON(ctx, c.http, Provider, c.cfg.BaseURL+"/everything?"+q.Encode(), headers, &resp); err != nil {
		return nil, scrub(err, c.cfg.APIKey)
	}

	now := c.now()
	out := make([]models.NewsItem, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		desc := a.Description
		if desc == "" {
			desc = noDescription
		}

		out = append(out, models.NewsItem{
			Title:       a.Title,
			Source:      a.Source.Name,
			Date:        RelativeDate(a.PublishedAt, now),
			Description: desc,
			URL:         a.URL,
			ImageURL:    a.URLToImage,
			Tags:        Tags(a.Title, a.Description, query),
		})
	}

	return out, nil
}

// RelativeDate: Today, Yesterday, N days ago, N weeks ago, иначе "Jan 2, 2006".
func RelativeDate(published, now time.Time) string {
	days := int(now.Sub(published).Hours() / 24)

	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return strconv.Itoa(days) + " days ago"
	case days < 30:
		return strconv.Itoa(days/7) + " weeks ago"
	default:
		return published.Format(absoluteDateLayout)
	}
}

// scrub убирает ключ из текста ошибки провайдера: некоторые API эхом
// возвращают присланный ключ в теле ответа.
func scrub(err error, key string) error {
	var pe *providers.ProviderError
	if errors.As(err, &pe) {
		pe.Message = redact.Scrub(pe.Message, key)
	}

	return err
}
