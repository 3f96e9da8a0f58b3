package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/pribylovaa/risk-sense/internal/errors"
	"github.com/pribylovaa/risk-sense/internal/http/handlers"
	"github.com/pribylovaa/risk-sense/internal/http/middleware"
	"github.com/pribylovaa/risk-sense/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(),            // счётчики по шаблону маршрута
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	root.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, r, http.StatusNotFound, "not_found", "route not found")
	})
	root.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, r, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	// Зависимости хендлеров.
	h := handlers.New(svc)

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	r.Get("/countries", h.Countries)
	r.Post("/analyze", h.Analyze)
	r.Post("/ai/follow-up", h.FollowUp)

	// economic
	r.Get("/economic/gdp-growth/{countryCode}", h.GDPGrowth)
	r.Get("/economic/unemployment/{countryCode}", h.Unemployment)
	r.Get("/economic/comparison/{countryCode}", h.Comparison)
	r.Get("/risk-rating/{countryCode}", h.RiskRating)

	// climate
	r.Get("/cdp/renewable/{countryCode}", h.Renewable)
	r.Post("/p3/{countryCode}", h.P3)

	// projects / NIB
	r.Get("/projects/{countryCode}", h.Projects)
	r.Get("/nib/recommendations", h.NIBRecommendations)

	// cache
	r.Get("/cache/stats", h.CacheStats)
	r.Delete("/cache", h.ClearCache)
}

func writeStatus(w http.ResponseWriter, r *http.Request, status int, code, msg string) {
	resp := apierrors.ErrorResponse{Error: apierrors.APIError{
		Code:      code,
		Message:   msg,
		RequestID: r.Header.Get(middleware.HeaderRequestID),
	}}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
