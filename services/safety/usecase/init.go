package usecase

import (
	"sync"
	"time"

	"github.com/piresc/bookingflow/internal/pkg/metrics"
	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/piresc/bookingflow/services/location"
	"github.com/piresc/bookingflow/services/safety"
	"github.com/piresc/bookingflow/services/safety/checkin"
	"github.com/shopspring/decimal"
)

const (
	DefaultCheckInTick          = time.Second
	DefaultCheckInLocateTimeout = 5 * time.Second
	DefaultSOSLocateTimeout     = 10 * time.Second
	DefaultSOSSentWindow        = 30 * time.Second
)

// DefaultFallbackHourlyRate prices the local extension packages
var DefaultFallbackHourlyRate = decimal.NewFromInt(100000)

// Notifier pushes an event to every open connection of a user
type Notifier interface {
	NotifyUser(userID string, event string, data interface{})
}

type sessionKey struct {
	userID    string
	bookingID int64
}

// SafetyUC implements the safety use case interface
type SafetyUC struct {
	cfg        models.SafetyConfig
	safetyRepo safety.SafetyRepo
	safetyGW   safety.SafetyGW
	locationUC location.LocationUC
	notifier   Notifier
	metrics    *metrics.Metrics
	now        func() time.Time

	mu       sync.Mutex
	sessions map[sessionKey]*checkin.Timer
	reserved map[sessionKey]struct{}
}

// NewSafetyUC creates a new safety use case
func NewSafetyUC(
	cfg models.SafetyConfig,
	safetyRepo safety.SafetyRepo,
	safetyGW safety.SafetyGW,
	locationUC location.LocationUC,
	notifier Notifier,
	m *metrics.Metrics,
) *SafetyUC {
	if cfg.CheckInTick <= 0 {
		cfg.CheckInTick = DefaultCheckInTick
	}
	if cfg.CheckInLocateTimeout <= 0 {
		cfg.CheckInLocateTimeout = DefaultCheckInLocateTimeout
	}
	if cfg.SOSLocateTimeout <= 0 {
		cfg.SOSLocateTimeout = DefaultSOSLocateTimeout
	}
	if cfg.SOSSentWindow <= 0 {
		cfg.SOSSentWindow = DefaultSOSSentWindow
	}
	if !cfg.FallbackHourlyRate.IsPositive() {
		cfg.FallbackHourlyRate = DefaultFallbackHourlyRate
	}
	if m == nil {
		m = metrics.New()
	}

	return &SafetyUC{
		cfg:        cfg,
		safetyRepo: safetyRepo,
		safetyGW:   safetyGW,
		locationUC: locationUC,
		notifier:   notifier,
		metrics:    m,
		now:        time.Now,
		sessions:   make(map[sessionKey]*checkin.Timer),
		reserved:   make(map[sessionKey]struct{}),
	}
}

// Close stops every running timer without completing the sessions
func (uc *SafetyUC) Close() {
	uc.mu.Lock()
	timers := make([]*checkin.Timer, 0, len(uc.sessions))
	for key, timer := range uc.sessions {
		timers = append(timers, timer)
		delete(uc.sessions, key)
	}
	uc.mu.Unlock()

	for _, timer := range timers {
		timer.Close()
	}
	uc.metrics.CheckInSessions.Sub(float64(len(timers)))
}
