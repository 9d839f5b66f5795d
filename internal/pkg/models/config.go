package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Backend   BackendConfig
	Redis     RedisConfig
	Events    EventsConfig
	NATS      NATSConfig
	NSQ       NSQConfig
	JWT       JWTConfig
	Logger    LoggerConfig
	NewRelic  NewRelicConfig
	RateLimit RateLimitConfig
	Booking   BookingConfig
	Safety    SafetyConfig
	Location  LocationConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// BackendConfig points at the marketplace REST API
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
	// Circuit breaker opens after this many consecutive failures
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// EventsConfig selects the event publisher: "nats", "nsq" or "none"
type EventsConfig struct {
	Driver     string
	MaxRetries int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// NSQConfig contains the nsqd address
type NSQConfig struct {
	Address string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret string
	Issuer string
}

// LoggerConfig controls the zap logger
type LoggerConfig struct {
	Level    string
	FilePath string
}

// NewRelicConfig holds agent settings
type NewRelicConfig struct {
	Enabled     bool
	AppName     string
	LicenseKey  string
	ForwardLogs bool
}

// RateLimitConfig caps requests per user within a window
type RateLimitConfig struct {
	Limit  int
	Period time.Duration
}

// BookingConfig drives the booking view and deposit flows
type BookingConfig struct {
	PollInterval        time.Duration
	StopOnTerminal      bool
	DepositPollInterval time.Duration
	DepositWaitMax      time.Duration
	SnapshotTTL         time.Duration
	CompletionRedirect  string
}

// SafetyConfig drives check-in, extension and SOS flows
type SafetyConfig struct {
	CheckInTick          time.Duration
	CheckInLocateTimeout time.Duration
	SOSLocateTimeout     time.Duration
	SOSSentWindow        time.Duration
	TrackingInterval     time.Duration
	FallbackHourlyRate   decimal.Decimal
	ExtensionSuccessURL  string
	ExtensionCancelURL   string
}

// LocationConfig bounds how fresh a reported fix must be
type LocationConfig struct {
	MaxAge             time.Duration
	HighAccuracyMaxAge time.Duration
	HighAccuracyMeters float64
	TTL                time.Duration
	PollInterval       time.Duration
}
