package usecase

import (
	"sync"
	"time"

	"github.com/piresc/bookingflow/internal/pkg/metrics"
	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/piresc/bookingflow/services/bookings"
)

const (
	DefaultPollInterval        = 30 * time.Second
	DefaultDepositPollInterval = 5 * time.Second
	DefaultDepositWaitMax      = 25 * time.Second
	DefaultCompletionRedirect  = "/bookings/my"
)

// BookingUC implements the booking use case interface
type BookingUC struct {
	cfg         models.BookingConfig
	bookingRepo bookings.BookingRepo
	bookingGW   bookings.BookingGW
	metrics     *metrics.Metrics
	now         func() time.Time

	mu      sync.Mutex
	watches map[int64]map[*watch]struct{}
}

// NewBookingUC creates a new booking use case
func NewBookingUC(
	cfg models.BookingConfig,
	bookingRepo bookings.BookingRepo,
	bookingGW bookings.BookingGW,
	m *metrics.Metrics,
) *BookingUC {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.DepositPollInterval <= 0 {
		cfg.DepositPollInterval = DefaultDepositPollInterval
	}
	if cfg.DepositWaitMax <= 0 {
		cfg.DepositWaitMax = DefaultDepositWaitMax
	}
	if cfg.CompletionRedirect == "" {
		cfg.CompletionRedirect = DefaultCompletionRedirect
	}
	if m == nil {
		m = metrics.New()
	}

	return &BookingUC{
		cfg:         cfg,
		bookingRepo: bookingRepo,
		bookingGW:   bookingGW,
		metrics:     m,
		now:         time.Now,
		watches:     make(map[int64]map[*watch]struct{}),
	}
}
