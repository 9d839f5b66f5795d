package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/piresc/bookingflow/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUpstream = errors.New("upstream down")

func newTestBreaker(threshold uint32) (*CircuitBreaker, *time.Time) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	cfg := DefaultConfig("backend")
	cfg.FailureThreshold = threshold
	cfg.Timeout = 10 * time.Second
	cb := New(cfg, logger.NewNopLogger())
	cb.now = func() time.Time { return now }
	cb.expiry = now.Add(cfg.Interval)
	return cb, &now
}

func fail(context.Context) error    { return errUpstream }
func succeed(context.Context) error { return nil }

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb, _ := newTestBreaker(3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, cb.Execute(ctx, fail), errUpstream)
	}

	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(ctx, func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitBreakerOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_HalfOpenRecovers(t *testing.T) {
	cb, now := newTestBreaker(1)
	ctx := context.Background()

	require.Error(t, cb.Execute(ctx, fail))
	require.Equal(t, StateOpen, cb.State())

	*now = now.Add(11 * time.Second)

	require.NoError(t, cb.Execute(ctx, succeed))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb, now := newTestBreaker(1)
	ctx := context.Background()

	require.Error(t, cb.Execute(ctx, fail))
	*now = now.Add(11 * time.Second)

	require.Error(t, cb.Execute(ctx, fail))
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_CancellationDoesNotCount(t *testing.T) {
	cb, _ := newTestBreaker(1)

	err := cb.Execute(context.Background(), func(context.Context) error { return context.Canceled })

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateClosed, cb.State())
	assert.Zero(t, cb.Counts().TotalFailures)
}

func TestCircuitBreaker_IsFailureFilter(t *testing.T) {
	cb, _ := newTestBreaker(1)
	cb.config.IsFailure = func(err error) bool { return err != nil && !errors.Is(err, errUpstream) }

	require.Error(t, cb.Execute(context.Background(), fail))

	assert.Equal(t, StateClosed, cb.State())
}

func TestManager_OneBreakerPerName(t *testing.T) {
	cfg := DefaultConfig("")
	cfg.FailureThreshold = 1
	var changes []string
	cfg.OnStateChange = func(name string, from, to State) {
		changes = append(changes, name+":"+to.String())
	}
	m := NewManager(cfg, logger.NewNopLogger())

	require.Error(t, m.Execute(context.Background(), "a.example.com", fail))
	require.NoError(t, m.Execute(context.Background(), "b.example.com", succeed))

	stats := m.GetStats()
	assert.Equal(t, "OPEN", stats["a.example.com"].State)
	assert.Equal(t, "CLOSED", stats["b.example.com"].State)
	assert.Same(t, m.Get("a.example.com"), m.Get("a.example.com"))
	assert.Equal(t, []string{"a.example.com:OPEN"}, changes)
}
