package usecase

import (
	"sync"
	"time"

	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/piresc/bookingflow/services/location"
)

const (
	DefaultMaxAge             = 2 * time.Minute
	DefaultHighAccuracyMaxAge = 30 * time.Second
	DefaultHighAccuracyMeters = 100.0
	DefaultPollInterval       = 500 * time.Millisecond
	DefaultTrackingInterval   = 15 * time.Second
)

// LocationUC implements the location.LocationUC interface
type LocationUC struct {
	cfg              models.LocationConfig
	trackingInterval time.Duration
	repo             location.LocationRepo
	gw               location.LocationGW
	now              func() time.Time

	workersMutex sync.Mutex
	workers      map[trackerKey]*tracker
}

// NewLocationUC creates a new location use case
func NewLocationUC(
	cfg models.LocationConfig,
	trackingInterval time.Duration,
	repo location.LocationRepo,
	gw location.LocationGW,
) *LocationUC {
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = DefaultMaxAge
	}
	if cfg.HighAccuracyMaxAge <= 0 {
		cfg.HighAccuracyMaxAge = DefaultHighAccuracyMaxAge
	}
	if cfg.HighAccuracyMeters <= 0 {
		cfg.HighAccuracyMeters = DefaultHighAccuracyMeters
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if trackingInterval <= 0 {
		trackingInterval = DefaultTrackingInterval
	}

	return &LocationUC{
		cfg:              cfg,
		trackingInterval: trackingInterval,
		repo:             repo,
		gw:               gw,
		now:              time.Now,
		workers:          make(map[trackerKey]*tracker),
	}
}
