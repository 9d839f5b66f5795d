package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg := InitConfig("")

	assert.Equal(t, "bookingflow", cfg.App.Name)
	assert.Equal(t, 30*time.Second, cfg.Booking.PollInterval)
	assert.False(t, cfg.Booking.StopOnTerminal)
	assert.Equal(t, 5*time.Second, cfg.Booking.DepositPollInterval)
	assert.Equal(t, "/bookings/my", cfg.Booking.CompletionRedirect)
	assert.Equal(t, time.Second, cfg.Safety.CheckInTick)
	assert.Equal(t, 5*time.Second, cfg.Safety.CheckInLocateTimeout)
	assert.Equal(t, 10*time.Second, cfg.Safety.SOSLocateTimeout)
	assert.Equal(t, 30*time.Second, cfg.Safety.SOSSentWindow)
	assert.Equal(t, "100000", cfg.Safety.FallbackHourlyRate.String())
	assert.Equal(t, "nats", cfg.Events.Driver)
}

func TestInitConfig_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("POLL_INTERVAL", "45s")
	t.Setenv("POLL_STOP_ON_TERMINAL", "true")
	t.Setenv("BACKEND_URL", "https://api.example.com/")
	t.Setenv("EVENTS_DRIVER", "NSQ")
	t.Setenv("EXTENSION_FALLBACK_HOURLY_RATE", "75000.50")

	cfg := InitConfig("")

	assert.Equal(t, 45*time.Second, cfg.Booking.PollInterval)
	assert.True(t, cfg.Booking.StopOnTerminal)
	assert.Equal(t, "https://api.example.com", cfg.Backend.BaseURL)
	assert.Equal(t, "nsq", cfg.Events.Driver)
	assert.Equal(t, "75000.5", cfg.Safety.FallbackHourlyRate.String())
}

func TestInitConfig_LocalEnvFile(t *testing.T) {
	t.Setenv("APP_ENV", "local")
	// godotenv does not override variables that are already set, so make
	// sure the key is absent and restore it afterwards.
	t.Setenv("SOS_SENT_WINDOW", "")
	require.NoError(t, os.Unsetenv("SOS_SENT_WINDOW"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SOS_SENT_WINDOW=12s\n"), 0o600))

	cfg := InitConfig(path)
	t.Cleanup(func() { os.Unsetenv("SOS_SENT_WINDOW") })

	assert.Equal(t, 12*time.Second, cfg.Safety.SOSSentWindow)
}

func TestInitConfig_InvalidDecimalFallsBackToZero(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("EXTENSION_FALLBACK_HOURLY_RATE", "not-a-number")

	cfg := InitConfig("")

	assert.True(t, cfg.Safety.FallbackHourlyRate.IsZero())
}
