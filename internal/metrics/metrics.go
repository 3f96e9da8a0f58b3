// metrics — Prometheus-метрики сервиса. Регистрируются в default registry
// и отдаются через /metrics (promhttp).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "risksense_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "risksense_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Кэш пайплайна: result = hit | miss | corrupt | error.
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "risksense_cache_lookups_total",
			Help: "Pipeline cache lookups by operation and result",
		},
		[]string{"op", "result"},
	)

	// Внешние провайдеры: outcome = ok | http_error | network_error | decode_error.
	ProviderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "risksense_provider_requests_total",
			Help: "Upstream provider calls by outcome",
		},
		[]string{"provider", "outcome"},
	)

	ProviderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "risksense_provider_request_duration_seconds",
			Help:    "Upstream provider call duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"provider"},
	)

	// Разбор ответов модели: kind = parsed | degraded | failed | fallback.
	AIParseOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "risksense_ai_parse_outcomes_total",
			Help: "Text-generation response parsing outcomes",
		},
		[]string{"task", "kind"},
	)
)
