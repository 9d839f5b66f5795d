package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from the environment. When APP_ENV is
// "local" (the default) the file at configPath is loaded first.
func InitConfig(configPath string) *models.Config {
	v := newViper()
	if v.GetString("APP_ENV") == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfig(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "bookingflow")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", false)
	v.SetDefault("APP_VERSION", "dev")

	v.SetDefault("SERVER_PORT", 9990)
	v.SetDefault("SERVER_READ_TIMEOUT", 15*time.Second)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15*time.Second)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second)

	v.SetDefault("BACKEND_URL", "http://localhost:8080/api")
	v.SetDefault("BACKEND_TIMEOUT", 10*time.Second)
	v.SetDefault("BACKEND_BREAKER_FAILURES", 5)
	v.SetDefault("BACKEND_BREAKER_TIMEOUT", 30*time.Second)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("EVENTS_DRIVER", "nats")
	v.SetDefault("EVENTS_MAX_RETRIES", 3)
	v.SetDefault("NATS_URL", "nats://localhost:4222")
	v.SetDefault("NSQ_ADDRESS", "localhost:4150")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")

	v.SetDefault("RATE_LIMIT", 60)
	v.SetDefault("RATE_LIMIT_PERIOD", time.Minute)

	v.SetDefault("POLL_INTERVAL", 30*time.Second)
	v.SetDefault("POLL_STOP_ON_TERMINAL", false)
	v.SetDefault("DEPOSIT_POLL_INTERVAL", 5*time.Second)
	v.SetDefault("DEPOSIT_WAIT_MAX", 25*time.Second)
	v.SetDefault("BOOKING_SNAPSHOT_TTL", 10*time.Minute)
	v.SetDefault("COMPLETION_REDIRECT", "/bookings/my")

	v.SetDefault("CHECKIN_TICK", time.Second)
	v.SetDefault("CHECKIN_LOCATE_TIMEOUT", 5*time.Second)
	v.SetDefault("SOS_LOCATE_TIMEOUT", 10*time.Second)
	v.SetDefault("SOS_SENT_WINDOW", 30*time.Second)
	v.SetDefault("TRACKING_INTERVAL", 15*time.Second)
	v.SetDefault("EXTENSION_FALLBACK_HOURLY_RATE", "100000")

	v.SetDefault("LOCATION_MAX_AGE", 2*time.Minute)
	v.SetDefault("LOCATION_HIGH_ACCURACY_MAX_AGE", 30*time.Second)
	v.SetDefault("LOCATION_HIGH_ACCURACY_METERS", 100.0)
	v.SetDefault("LOCATION_TTL", 30*time.Minute)
	v.SetDefault("LOCATION_POLL_INTERVAL", 500*time.Millisecond)
}

func loadConfig(v *viper.Viper) *models.Config {
	cfg := &models.Config{}

	cfg.App.Name = v.GetString("APP_NAME")
	cfg.App.Environment = v.GetString("APP_ENV")
	cfg.App.Debug = v.GetBool("APP_DEBUG")
	cfg.App.Version = v.GetString("APP_VERSION")

	cfg.Server.Host = v.GetString("SERVER_HOST")
	cfg.Server.Port = v.GetInt("SERVER_PORT")
	cfg.Server.ReadTimeout = v.GetDuration("SERVER_READ_TIMEOUT")
	cfg.Server.WriteTimeout = v.GetDuration("SERVER_WRITE_TIMEOUT")
	cfg.Server.ShutdownTimeout = v.GetDuration("SERVER_SHUTDOWN_TIMEOUT")

	cfg.Backend.BaseURL = strings.TrimRight(v.GetString("BACKEND_URL"), "/")
	cfg.Backend.Timeout = v.GetDuration("BACKEND_TIMEOUT")
	cfg.Backend.BreakerFailures = v.GetUint32("BACKEND_BREAKER_FAILURES")
	cfg.Backend.BreakerTimeout = v.GetDuration("BACKEND_BREAKER_TIMEOUT")

	cfg.Redis.Host = v.GetString("REDIS_HOST")
	cfg.Redis.Port = v.GetInt("REDIS_PORT")
	cfg.Redis.Password = v.GetString("REDIS_PASSWORD")
	cfg.Redis.DB = v.GetInt("REDIS_DB")
	cfg.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	cfg.Events.Driver = strings.ToLower(v.GetString("EVENTS_DRIVER"))
	cfg.Events.MaxRetries = v.GetInt("EVENTS_MAX_RETRIES")
	cfg.NATS.URL = v.GetString("NATS_URL")
	cfg.NSQ.Address = v.GetString("NSQ_ADDRESS")

	cfg.JWT.Secret = v.GetString("JWT_SECRET")
	cfg.JWT.Issuer = v.GetString("JWT_ISSUER")

	cfg.Logger.Level = v.GetString("LOG_LEVEL")
	cfg.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	cfg.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	cfg.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	cfg.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	cfg.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	cfg.RateLimit.Limit = v.GetInt("RATE_LIMIT")
	cfg.RateLimit.Period = v.GetDuration("RATE_LIMIT_PERIOD")

	cfg.Booking.PollInterval = v.GetDuration("POLL_INTERVAL")
	cfg.Booking.StopOnTerminal = v.GetBool("POLL_STOP_ON_TERMINAL")
	cfg.Booking.DepositPollInterval = v.GetDuration("DEPOSIT_POLL_INTERVAL")
	cfg.Booking.DepositWaitMax = v.GetDuration("DEPOSIT_WAIT_MAX")
	cfg.Booking.SnapshotTTL = v.GetDuration("BOOKING_SNAPSHOT_TTL")
	cfg.Booking.CompletionRedirect = v.GetString("COMPLETION_REDIRECT")

	cfg.Safety.CheckInTick = v.GetDuration("CHECKIN_TICK")
	cfg.Safety.CheckInLocateTimeout = v.GetDuration("CHECKIN_LOCATE_TIMEOUT")
	cfg.Safety.SOSLocateTimeout = v.GetDuration("SOS_LOCATE_TIMEOUT")
	cfg.Safety.SOSSentWindow = v.GetDuration("SOS_SENT_WINDOW")
	cfg.Safety.TrackingInterval = v.GetDuration("TRACKING_INTERVAL")
	cfg.Safety.FallbackHourlyRate = getDecimal(v, "EXTENSION_FALLBACK_HOURLY_RATE")
	cfg.Safety.ExtensionSuccessURL = v.GetString("EXTENSION_SUCCESS_URL")
	cfg.Safety.ExtensionCancelURL = v.GetString("EXTENSION_CANCEL_URL")

	cfg.Location.MaxAge = v.GetDuration("LOCATION_MAX_AGE")
	cfg.Location.HighAccuracyMaxAge = v.GetDuration("LOCATION_HIGH_ACCURACY_MAX_AGE")
	cfg.Location.HighAccuracyMeters = v.GetFloat64("LOCATION_HIGH_ACCURACY_METERS")
	cfg.Location.TTL = v.GetDuration("LOCATION_TTL")
	cfg.Location.PollInterval = v.GetDuration("LOCATION_POLL_INTERVAL")

	return cfg
}

func getDecimal(v *viper.Viper, key string) decimal.Decimal {
	d, err := decimal.NewFromString(v.GetString(key))
	if err != nil {
		log.Printf("Warning: Invalid decimal value for %s, using zero", key)
		return decimal.Zero
	}
	return d
}
