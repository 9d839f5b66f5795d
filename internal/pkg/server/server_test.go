package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/bookingflow/internal/pkg/logger"
	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGracefulServer_RunUntilCancelled(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Listener = ln
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	components := NewShutdownManager(logger.NewNopLogger())
	closed := make(chan struct{})
	components.Register("events", func(context.Context) error {
		close(closed)
		return nil
	})

	srv := NewGracefulServer(e, logger.NewNopLogger(), models.ServerConfig{ShutdownTimeout: time.Second}, components)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	url := "http://" + ln.Addr().String() + "/ping"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
	select {
	case <-closed:
	default:
		t.Fatal("components were not shut down")
	}
}

func TestShutdownManager_ReverseOrderAndErrors(t *testing.T) {
	sm := NewShutdownManager(logger.NewNopLogger())
	var order []string

	sm.Register("redis", func(context.Context) error {
		order = append(order, "redis")
		return nil
	})
	sm.Register("nats", func(context.Context) error {
		order = append(order, "nats")
		return errors.New("drain timeout")
	})
	sm.Register("nil", nil)
	sm.Register("panics", func(context.Context) error {
		order = append(order, "panics")
		panic("boom")
	})

	err := sm.Shutdown(context.Background())

	assert.Equal(t, []string{"panics", "nats", "redis"}, order)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "drain timeout")
	assert.Contains(t, err.Error(), "panic in panics cleanup")

	assert.NoError(t, sm.Shutdown(context.Background()))
}
