// config предоставляет структуру конфигурации risk-sense
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load (--config);
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
//
// ENV поверх файла применяется всегда: ключи провайдеров удобно держать
// только в окружении.
type Config struct {
	Env       string          `yaml:"env" env:"ENV" env-default:"local"`
	HTTP      HTTPConfig      `yaml:"http"`
	Timeouts  TimeoutConfig   `yaml:"timeouts"`
	Cache     CacheConfig     `yaml:"cache"`
	Providers ProvidersConfig `yaml:"providers"`
}

// HTTPConfig — публичный REST-сервер.
type HTTPConfig struct {
	Host     string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port     string `yaml:"port" env:"HTTP_PORT" env-default:"5000"`
	BasePath string `yaml:"base_path" env:"HTTP_BASE_PATH" env-default:"/api"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string { return net.JoinHostPort(h.Host, h.Port) }

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	// Service — дедлайн одного HTTP-запроса (вместе с вызовами модели).
	Service  time.Duration `yaml:"service" env:"SERVICE" env-default:"90s"`
	Shutdown time.Duration `yaml:"shutdown" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// CacheConfig — бэкенд кэша пайплайна.
type CacheConfig struct {
	Driver   string `yaml:"driver" env:"CACHE_DRIVER" env-default:"memory"`
	RedisURL string `yaml:"redis_url" env:"REDIS_URL"`
	Prefix   string `yaml:"prefix" env:"CACHE_PREFIX" env-default:"risksense:"`
}

// ProvidersConfig — внешние источники данных.
type ProvidersConfig struct {
	// HTTPTimeout — таймаут одного HTTP-вызова провайдера.
	HTTPTimeout time.Duration    `yaml:"http_timeout" env:"PROVIDER_HTTP_TIMEOUT" env-default:"20s"`
	OpenRouter  OpenRouterConfig `yaml:"openrouter"`
	News        NewsConfig       `yaml:"news"`
	WorldBank   WorldBankConfig  `yaml:"worldbank"`
	CDP         CDPConfig        `yaml:"cdp"`
}

// OpenRouterConfig — провайдер текстовой модели.
type OpenRouterConfig struct {
	APIKey            string `yaml:"api_key" env:"OPENROUTER_API_KEY"`
	BaseURL           string `yaml:"base_url" env:"OPENROUTER_BASE_URL"`
	Model             string `yaml:"model" env:"OPENROUTER_MODEL" env-default:"mistralai/mistral-small-3.1-24b-instruct"`
	MaxTokens         int    `yaml:"max_tokens" env:"OPENROUTER_MAX_TOKENS" env-default:"2048"`
	P3MaxTokens       int    `yaml:"p3_max_tokens" env:"OPENROUTER_P3_MAX_TOKENS" env-default:"3000"`
	// Temperature хранится строкой: пустое значение означает дефолт модели, явный "0" сохраняется.
	Temperature       string `yaml:"temperature" env:"OPENROUTER_TEMPERATURE"`
	RequestsPerMinute int    `yaml:"requests_per_minute" env:"OPENROUTER_RPM" env-default:"20"`
	// Burst — сколько вызовов можно сделать разом (NIB запрашивает три сектора параллельно).
	Burst int `yaml:"burst" env:"OPENROUTER_BURST" env-default:"3"`
}

// TemperatureValue возвращает температуру генерации; nil, если она не задана.
func (c OpenRouterConfig) TemperatureValue() (*float64, error) {
	raw := strings.TrimSpace(c.Temperature)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("providers.openrouter.temperature: %w", err)
	}

	return &v, nil
}

// NewsConfig — провайдер новостей.
type NewsConfig struct {
	APIKey   string `yaml:"api_key" env:"NEWS_API_KEY"`
	BaseURL  string `yaml:"base_url" env:"NEWS_API_BASE_URL"`
	PageSize int    `yaml:"page_size" env:"NEWS_PAGE_SIZE" env-default:"10"`
}

// WorldBankConfig — провайдер экономических данных.
type WorldBankConfig struct {
	BaseURL string `yaml:"base_url" env:"WORLDBANK_BASE_URL"`
}

// CDPConfig — провайдер климатических целей.
type CDPConfig struct {
	BaseURL string `yaml:"base_url" env:"CDP_BASE_URL"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}
		// ReadConfig читает YAML и накладывает ENV.
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		return tryRead(path)
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		return tryRead("local.yaml")
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	switch c.Env {
	case "local", "dev", "prod":
	default:
		return fmt.Errorf("env must be one of local|dev|prod, got %q", c.Env)
	}
	switch c.Cache.Driver {
	case "memory":
	case "redis":
		if c.Cache.RedisURL == "" {
			return fmt.Errorf("cache.redis_url is required for redis driver")
		}
	default:
		return fmt.Errorf("cache.driver must be memory or redis, got %q", c.Cache.Driver)
	}
	if c.Timeouts.Service <= 0 {
		return fmt.Errorf("timeouts.service must be > 0")
	}
	if c.Providers.HTTPTimeout <= 0 {
		return fmt.Errorf("providers.http_timeout must be > 0")
	}
	if c.Providers.OpenRouter.MaxTokens <= 0 || c.Providers.OpenRouter.P3MaxTokens <= 0 {
		return fmt.Errorf("providers.openrouter max tokens must be > 0")
	}
	temperature, err := c.Providers.OpenRouter.TemperatureValue()
	if err != nil {
		return err
	}
	if temperature != nil && (*temperature < 0 || *temperature > 2) {
		return fmt.Errorf("providers.openrouter.temperature must be within [0, 2]")
	}
	if c.Providers.OpenRouter.RequestsPerMinute <= 0 {
		return fmt.Errorf("providers.openrouter.requests_per_minute must be > 0")
	}
	if c.Providers.News.PageSize <= 0 || c.Providers.News.PageSize > 100 {
		return fmt.Errorf("providers.news.page_size must be within [1, 100]")
	}
	return nil
}
