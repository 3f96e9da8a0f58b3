// openrouter — адаптер chat completions OpenRouter. Возвращает сырой текст
// ответа модели; разбор структуры выполняет composer.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/time/rate"

	"github.com/pribylovaa/risk-sense/internal/providers"
	"github.com/pribylovaa/risk-sense/pkg/redact"
)

const (
	// Provider — имя провайдера в ошибках и метриках.
	Provider = "openrouter"

	DefaultBaseURL = "https://openrouter.ai/api/v1"
	DefaultModel   = "mistralai/mistral-small-3.1-24b-instruct"
	DefaultReferer = "https://risk-sense.local"
	DefaultTitle   = "Risk Sense AI"

	defaultRequestsPerMinute = 20
	apiKeySettingName        = "OPENROUTER_API_KEY"
)

// Config — параметры клиента.
type Config struct {
	APIKey            string
	BaseURL           string
	Model             string
	Referer           string
	Title             string
	RequestsPerMinute int
	Burst             int
}

// Request — один вызов модели.
type Request struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float64
	// JSONMode включает response_format json_object.
	JSONMode bool
}

// Client — HTTP-клиент OpenRouter с ограничением частоты запросов.
type Client struct {
	http    *http.Client
	cfg     Config
	limiter *rate.Limiter
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

	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Referer == "" {
		cfg.Referer = DefaultReferer
	}
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = defaultRequestsPerMinute
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}

	return &Client{
		http:    client,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60), cfg.Burst),
	}
}

// Configured сообщает, задан ли API-ключ.
func (c *Client) Configured() bool { return c.cfg.APIKey != "" }

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []message       `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// Complete выполняет ровно одну попытку вызова модели.
func (c *Client) Complete(ctx context.Context, r Request) (string, error) {
	if !c.Configured() {
		return "", providers.NotConfigured(Provider, apiKeySettingName)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("openrouter.Complete: %w", err)
	}

	body := chatRequest{
		Model:       c.cfg.Model,
		Temperature: r.Temperature,
		MaxTokens:   r.MaxTokens,
	}
	if r.System != "" {
		body.Messages = append(body.Messages, message{Role: "system", Content: r.System})
	}
	body.Messages = append(body.Messages, message{Role: "user", Content: r.User})
	if r.JSONMode {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("openrouter.Complete: marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(raw))
	if err != nil {
		return "", &providers.ProviderError{Provider: Provider, Message: fmt.Sprintf("new request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("HTTP-Referer", c.cfg.Referer)
	req.Header.Set("X-Title", c.cfg.Title)

	var resp chatResponse
	if err := providers.DoJSON(ctx, c.http, Provider, req, &resp); err != nil {
		return "", scrub(err, c.cfg.APIKey)
	}

	if len(resp.Choices) == 0 {
		return "", &providers.ProviderError{Provider: Provider, Message: "empty choices"}
	}

	return resp.Choices[0].Message.Content, nil
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
