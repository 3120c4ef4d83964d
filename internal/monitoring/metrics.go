package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Métriques Prometheus du service
var (
	FusionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "creatures_fusions_total",
			Help: "Total number of fusions performed",
		},
	)

	GlitchesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "creatures_glitches_total",
			Help: "Total number of glitch mutations triggered",
		},
	)

	BattlesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "creatures_battles_created_total",
			Help: "Total number of battles created",
		},
	)

	BattlesCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "creatures_battles_completed_total",
			Help: "Total number of battles completed",
		},
	)

	ActionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "creatures_action_duration_seconds",
			Help:    "Duration of battle action resolution",
			Buckets: prometheus.DefBuckets,
		},
	)

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

// Metrics structure pour gérer les métriques
type Metrics struct {
	registry *prometheus.Registry
}

// NewMetrics crée une nouvelle instance de metrics
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	registry.MustRegister(FusionsTotal)
	registry.MustRegister(GlitchesTotal)
	registry.MustRegister(BattlesCreated)
	registry.MustRegister(BattlesCompleted)
	registry.MustRegister(ActionDuration)
	registry.MustRegister(HTTPRequestsTotal)
	registry.MustRegister(HTTPRequestDuration)

	logrus.Info("Prometheus metrics initialized")

	return &Metrics{
		registry: registry,
	}
}

// Handler retourne le handler Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware Prometheus pour instrumenter les requêtes HTTP
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := c.Writer.Status()

		HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(statusCode),
		).Inc()

		HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}
