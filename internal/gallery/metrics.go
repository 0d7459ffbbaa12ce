package gallery

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the gallery's Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "donut").
	Namespace string

	// Subsystem is the metrics subsystem (default: "gallery").
	Subsystem string

	// Buckets are the histogram buckets for render duration.
	Buckets []float64
}

// MetricsOption configures the gallery's Prometheus metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithBuckets sets the render histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "donut",
		Subsystem: "gallery",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
	}
}

type metrics struct {
	rendersTotal   *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	requestsTotal  *prometheus.CounterVec
	themeReloads   *prometheus.CounterVec
	reloadClients  prometheus.GaugeFunc
}

func newMetrics(reg prometheus.Registerer, clients func() int, opts ...MetricsOption) *metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(reg)

	return &metrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "renders_total",
			Help:      "Total number of component renders",
		}, []string{"component", "status"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "render_duration_seconds",
			Help:      "Component render duration in seconds",
			Buckets:   config.Buckets,
		}, []string{"component"}),

		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "requests_total",
			Help:      "Total HTTP requests by route pattern and status code",
		}, []string{"route", "code"}),

		themeReloads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "theme_reloads_total",
			Help:      "Total theme reloads by result",
		}, []string{"status"}),

		reloadClients: factory.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "reload_clients",
			Help:      "Browsers connected to the reload websocket",
		}, func() float64 { return float64(clients()) }),
	}
}

func (m *metrics) observeRender(component string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.rendersTotal.WithLabelValues(component, status).Inc()
	m.renderDuration.WithLabelValues(component).Observe(time.Since(start).Seconds())
}

// instrument counts requests by route pattern, which keeps label
// cardinality bounded.
func (m *metrics) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	})
}
