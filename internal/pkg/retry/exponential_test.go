package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/piresc/bookingflow/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(maxRetries int) Config {
	return Config{
		MaxRetries: maxRetries,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
		Multiplier: 2,
	}
}

func TestRetrier_Execute(t *testing.T) {
	errTransient := errors.New("transient")

	tests := []struct {
		name          string
		config        Config
		failures      int
		fnErr         error
		expectedCalls int
		expectError   bool
	}{
		{name: "succeeds first time", config: fastConfig(3), failures: 0, expectedCalls: 1},
		{name: "succeeds after two failures", config: fastConfig(3), failures: 2, fnErr: errTransient, expectedCalls: 3},
		{name: "gives up after max retries", config: fastConfig(2), failures: 10, fnErr: errTransient, expectedCalls: 3, expectError: true},
		{name: "permanent error stops immediately", config: fastConfig(3), failures: 10, fnErr: Permanent(errTransient), expectedCalls: 1, expectError: true},
		{
			name: "retryable filter stops",
			config: func() Config {
				c := fastConfig(3)
				c.Retryable = func(error) bool { return false }
				return c
			}(),
			failures: 10, fnErr: errTransient, expectedCalls: 1, expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.config, logger.NewNopLogger())
			calls := 0

			err := r.Execute(context.Background(), func(context.Context) error {
				calls++
				if calls <= tt.failures {
					return tt.fnErr
				}
				return nil
			})

			assert.Equal(t, tt.expectedCalls, calls)
			if tt.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, errTransient)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRetrier_StopsOnCancelledContext(t *testing.T) {
	r := New(Config{MaxRetries: 5, BaseDelay: time.Hour, Multiplier: 1}, logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0

	err := r.Execute(ctx, func(context.Context) error {
		calls++
		cancel()
		return errors.New("fail")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestRetrier_DelayIsCapped(t *testing.T) {
	r := New(Config{BaseDelay: time.Second, MaxDelay: 3 * time.Second, Multiplier: 2}, logger.NewNopLogger())

	assert.Equal(t, time.Second, r.delay(0))
	assert.Equal(t, 2*time.Second, r.delay(1))
	assert.Equal(t, 3*time.Second, r.delay(5))
}
