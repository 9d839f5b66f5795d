package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/bookingflow/internal/pkg/circuitbreaker"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountersAreIndependentPerInstance(t *testing.T) {
	a := New()
	b := New()

	a.Actions.WithLabelValues("cancel", "success").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.Actions.WithLabelValues("cancel", "success")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Actions.WithLabelValues("cancel", "success")))
}

func TestMetrics_ObserveBreaker(t *testing.T) {
	m := New()

	m.ObserveBreaker("api.example.com", circuitbreaker.StateOpen)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BackendBreakerOpen.WithLabelValues("api.example.com")))

	m.ObserveBreaker("api.example.com", circuitbreaker.StateHalfOpen)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.BackendBreakerOpen.WithLabelValues("api.example.com")))
}

func TestMetrics_EchoMiddlewareAndHandler(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.EchoMiddleware())
	e.GET("/bookings/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/metrics", m.Handler())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings/7", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/bookings/:id", "204")))

	m.ObserveBackend("GET", 200, 20*time.Millisecond)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "bookingflow_http_requests_total"))
	assert.True(t, strings.Contains(body, "bookingflow_backend_request_duration_seconds"))
}
