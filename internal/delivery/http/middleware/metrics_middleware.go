package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// requestDuration tracks how long each HTTP request takes,
	// broken down by method, route path, and status code.
	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pizzeria",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// requestTotal counts all HTTP requests.
	requestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pizzeria",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// requestInFlight tracks how many requests are currently being served.
	requestInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "pizzeria",
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Number of HTTP requests currently being served.",
	})

	// responseSize tracks the response body size in bytes.
	responseSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pizzeria",
			Subsystem: "http",
			Name:      "response_size_bytes",
			Help:      "Response body sizes in bytes.",
			Buckets:   []float64{100, 1_000, 10_000, 100_000, 1_000_000},
		},
		[]string{"method", "path"},
	)
)

// metricsRegistry is the Prometheus registry scraped via /metrics.
var metricsRegistry = prometheus.NewRegistry()

func init() {
	// Go runtime metrics (GC, goroutines, memory)
	metricsRegistry.MustRegister(collectors.NewGoCollector())
	// OS process metrics (CPU, open FDs)
	metricsRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	metricsRegistry.MustRegister(
		requestDuration,
		requestTotal,
		requestInFlight,
		responseSize,
	)
}

// MetricsMiddleware records Prometheus metrics for every request.
type MetricsMiddleware struct{}

// NewMetricsMiddleware is the constructor for MetricsMiddleware.
func NewMetricsMiddleware() *MetricsMiddleware {
	return &MetricsMiddleware{}
}

// Collect is the echo middleware that observes duration, count, in-flight
// and response size. The route pattern keeps label cardinality bounded.
func (m *MetricsMiddleware) Collect(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		requestInFlight.Inc()
		defer requestInFlight.Dec()

		err := next(c)

		// c.Path() is the registered route pattern, not the raw URL.
		path := c.Path()
		method := c.Request().Method
		status := strconv.Itoa(c.Response().Status)

		requestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
		requestTotal.WithLabelValues(method, path, status).Inc()
		responseSize.WithLabelValues(method, path).Observe(float64(c.Response().Size))

		return err
	}
}

// Handler exposes the Prometheus metrics page. Mount it on GET /metrics.
func (m *MetricsMiddleware) Handler() echo.HandlerFunc {
	h := promhttp.HandlerFor(metricsRegistry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})

	return echo.WrapHandler(h)
}
