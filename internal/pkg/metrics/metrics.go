package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/bookingflow/internal/pkg/circuitbreaker"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bookingflow"

// Metrics groups every collector the service exports
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
	BackendDuration    *prometheus.HistogramVec
	BackendBreakerOpen *prometheus.GaugeVec
	Actions            *prometheus.CounterVec
	Polls              *prometheus.CounterVec
	ActiveWatches      prometheus.Gauge
	DepositChecks      *prometheus.CounterVec
	CheckInSessions    prometheus.Gauge
	CheckInTransitions *prometheus.CounterVec
	Extensions         *prometheus.CounterVec
	SOSAlerts          *prometheus.CounterVec
	EventsPublished    *prometheus.CounterVec
}

// New registers the collectors on a fresh registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests served",
		}, []string{"method", "path", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		BackendDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_request_duration_seconds",
			Help:      "Marketplace backend call duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "status"}),
		BackendBreakerOpen: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "backend_breaker_open",
			Help:      "1 while the breaker of a backend host is open",
		}, []string{"host"}),
		Actions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_actions_total",
			Help:      "Booking transition actions by outcome",
		}, []string{"action", "outcome"}),
		Polls: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_polls_total",
			Help:      "Booking refresh polls by result",
		}, []string{"result"}),
		ActiveWatches: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "booking_active_watches",
			Help:      "Booking views currently polling",
		}),
		DepositChecks: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deposit_checks_total",
			Help:      "Deposit wait results",
		}, []string{"state"}),
		CheckInSessions: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "checkin_active_sessions",
			Help:      "Running check-in timers",
		}),
		CheckInTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkin_transitions_total",
			Help:      "Check-in session status changes",
		}, []string{"status"}),
		Extensions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_extensions_total",
			Help:      "Extension requests by result",
		}, []string{"result"}),
		SOSAlerts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sos_alerts_total",
			Help:      "SOS alerts by outcome",
		}, []string{"outcome"}),
		EventsPublished: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Domain events by subject and result",
		}, []string{"subject", "result"}),
	}
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// ObserveBackend records one marketplace backend call
func (m *Metrics) ObserveBackend(method string, status int, d time.Duration) {
	m.BackendDuration.WithLabelValues(method, strconv.Itoa(status)).Observe(d.Seconds())
}

// ObserveBreaker tracks breaker state per backend host
func (m *Metrics) ObserveBreaker(host string, state circuitbreaker.State) {
	open := 0.0
	if state == circuitbreaker.StateOpen {
		open = 1
	}
	m.BackendBreakerOpen.WithLabelValues(host).Set(open)
}

// EchoMiddleware records request counts and latency per route template
func (m *Metrics) EchoMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Path()
			if path == "/metrics" {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			m.HTTPRequests.WithLabelValues(c.Request().Method, path, strconv.Itoa(status)).Inc()
			m.HTTPDuration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
