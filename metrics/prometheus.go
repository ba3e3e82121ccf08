package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	marketplaceRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketplace_requests_total",
			Help: "Total number of outbound marketplace API requests.",
		},
		[]string{"marketplace", "endpoint", "status"},
	)
	marketplaceRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "marketplace_request_duration_seconds",
			Help:    "Histogram of outbound marketplace API request durations.",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"marketplace", "endpoint", "status"},
	)
	itemsPushedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "items_pushed_total",
			Help: "Total number of items pushed in accepted update batches.",
		},
		[]string{"marketplace", "kind"},
	)
	opsRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served by the ops endpoint.",
		},
		[]string{"method", "endpoint", "status"},
	)
)

func init() {
	prometheus.MustRegister(marketplaceRequestsTotal)
	prometheus.MustRegister(marketplaceRequestDuration)
	prometheus.MustRegister(itemsPushedTotal)
	prometheus.MustRegister(opsRequestsTotal)
}

// RecordMarketplaceRequest записывает метрики исходящего запроса к маркетплейсу.
func RecordMarketplaceRequest(marketplace, endpoint string, statusCode int, duration time.Duration) {
	status := classifyStatus(statusCode)
	marketplaceRequestsTotal.WithLabelValues(marketplace, endpoint, status).Inc()
	marketplaceRequestDuration.WithLabelValues(marketplace, endpoint, status).Observe(duration.Seconds())
}

// RecordItemsPushed записывает количество принятых маркетплейсом позиций.
func RecordItemsPushed(marketplace, kind string, count int) {
	itemsPushedTotal.WithLabelValues(marketplace, kind).Add(float64(count))
}

// RecordOpsRequest записывает метрики для входящего HTTP-запроса.
func RecordOpsRequest(method, endpoint string, statusCode int) {
	opsRequestsTotal.WithLabelValues(method, endpoint, classifyStatus(statusCode)).Inc()
}

// classifyStatus классифицирует HTTP-статус код в строку.
func classifyStatus(statusCode int) string {
	if statusCode >= 200 && statusCode < 300 {
		return "2xx"
	} else if statusCode >= 300 && statusCode < 400 {
		return "3xx"
	} else if statusCode >= 400 && statusCode < 500 {
		return "4xx"
	} else if statusCode >= 500 && statusCode < 600 {
		return "5xx"
	}
	return "unknown"
}

// MetricsHandler возвращает HTTP-обработчик для экспорта метрик Prometheus.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
