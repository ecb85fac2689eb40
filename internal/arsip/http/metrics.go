package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arsipkita/arsip/pkg/httpx"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arsip_http_requests_total",
			Help: "HTTP requests processed, labelled by route pattern, method and status code.",
		},
		[]string{"pattern", "method", "status"},
	)
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "arsip_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds, labelled by route pattern and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"pattern", "method"},
	)
)

// MetricsHandler exposes the Prometheus scrape endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// Metrics records a counter and latency sample per request. The route pattern
// is passed in at registration time so path parameters don't blow up label
// cardinality.
func Metrics(pattern string) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			mw := &metricsWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(mw, r)

			httpRequestsTotal.WithLabelValues(pattern, r.Method, strconv.Itoa(mw.status)).Inc()
			httpRequestDuration.WithLabelValues(pattern, r.Method).Observe(time.Since(start).Seconds())
		})
	}
}

type metricsWriter struct {
	http.ResponseWriter
	status int
}

func (w *metricsWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
