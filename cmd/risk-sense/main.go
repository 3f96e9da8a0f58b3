package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/risk-sense/internal/cache"
	"github.com/pribylovaa/risk-sense/internal/composer"
	"github.com/pribylovaa/risk-sense/internal/config"
	rshttp "github.com/pribylovaa/risk-sense/internal/http"
	"github.com/pribylovaa/risk-sense/internal/providers"
	"github.com/pribylovaa/risk-sense/internal/providers/cdp"
	"github.com/pribylovaa/risk-sense/internal/providers/newsapi"
	"github.com/pribylovaa/risk-sense/internal/providers/openrouter"
	"github.com/pribylovaa/risk-sense/internal/providers/worldbank"
	"github.com/pribylovaa/risk-sense/internal/reference"
	"github.com/pribylovaa/risk-sense/internal/service"
	"github.com/pribylovaa/risk-sense/pkg/redact"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting risk-sense", "env", cfg.Env)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	store, err := cache.New(cfg.Cache.Driver, cfg.Cache.RedisURL, cfg.Cache.Prefix)
	if err != nil {
		log.Error("cache_init_failed", slog.String("driver", cfg.Cache.Driver), slog.String("err", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if cerr := store.Close(); cerr != nil {
			log.Warn("cache_close_failed", slog.String("err", cerr.Error()))
		}
	}()

	log.Info("cache_initialized", slog.String("driver", cfg.Cache.Driver))

	svc := newService(cfg, store, log)

	apiHandler := rshttp.NewRouter(svc, rshttp.Options{
		Logger:   log,
		Timeout:  cfg.Timeouts.Service,
		BasePath: cfg.HTTP.BasePath,
	})

	var ready int32 // 0 — not ready; 1 — ready

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if atomic.LoadInt32(&ready) == 1 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}

		http.Error(w, "not ready", http.StatusServiceUnavailable)
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.Handle("/", apiHandler)

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", httpAddr)
	if err != nil {
		log.Error("http_listen_failed", slog.String("addr", httpAddr), slog.String("err", err.Error()))
		os.Exit(1)
	}

	log.Info("http_listen_start", slog.String("addr", httpAddr))

	serveErrCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	atomic.StoreInt32(&ready, 1)
	log.Info("service_ready")

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	atomic.StoreInt32(&ready, 0)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeouts.Shutdown)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_incomplete", slog.String("err", err.Error()))
	} else {
		log.Info("http_stopped")
	}

	log.Info("service_stopped")
}

// newService собирает провайдеров и пайплайн. Отсутствие ключей не мешает
// старту: соответствующие эндпойнты отвечают not_configured.
func newService(cfg *config.Config, store cache.Store, log *slog.Logger) *service.Service {
	ref := reference.MustLoad()
	client := providers.NewHTTPClient(cfg.Providers.HTTPTimeout)

	wb := worldbank.New(client, cfg.Providers.WorldBank.BaseURL)
	news := newsapi.New(client, newsapi.Config{
		APIKey:   cfg.Providers.News.APIKey,
		BaseURL:  cfg.Providers.News.BaseURL,
		PageSize: cfg.Providers.News.PageSize,
	})
	climate := cdp.New(client, cfg.Providers.CDP.BaseURL, ref)
	llm := openrouter.New(client, openrouter.Config{
		APIKey:            cfg.Providers.OpenRouter.APIKey,
		BaseURL:           cfg.Providers.OpenRouter.BaseURL,
		Model:             cfg.Providers.OpenRouter.Model,
		RequestsPerMinute: cfg.Providers.OpenRouter.RequestsPerMinute,
		Burst:             cfg.Providers.OpenRouter.Burst,
	})

	// Формат температуры уже проверен в config.validate.
	temperature, _ := cfg.Providers.OpenRouter.TemperatureValue()

	logProvider(log, newsapi.Provider, "NEWS_API_KEY", cfg.Providers.News.APIKey)
	logProvider(log, openrouter.Provider, "OPENROUTER_API_KEY", cfg.Providers.OpenRouter.APIKey)

	return service.New(service.Deps{
		Cache:   store,
		Economy: wb,
		News:    news,
		Climate: climate,
		Composer: composer.New(llm, composer.Options{
			MaxTokens:   cfg.Providers.OpenRouter.MaxTokens,
			P3MaxTokens: cfg.Providers.OpenRouter.P3MaxTokens,
			Temperature: temperature,
		}),
		Reference: ref,
	})
}

func logProvider(log *slog.Logger, provider, setting, key string) {
	if key == "" {
		log.Warn("provider_not_configured", slog.String("provider", provider), slog.String("setting", setting))
		return
	}

	log.Info("provider_configured", slog.String("provider", provider), slog.String("key", redact.Secret(key)))
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
