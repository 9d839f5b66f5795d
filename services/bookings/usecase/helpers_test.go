package usecase

import (
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/bookingflow/internal/pkg/metrics"
	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/piresc/bookingflow/internal/pkg/requestcontext"
	"github.com/piresc/bookingflow/services/bookings/mocks"
)

const (
	testBookingID  int64 = 42
	testClientID   int64 = 20
	testProviderID int64 = 10
)

type fixture struct {
	uc      *BookingUC
	gw      *mocks.MockBookingGW
	repo    *mocks.MockBookingRepo
	metrics *metrics.Metrics
}

func newFixture(t *testing.T, cfg models.BookingConfig) *fixture {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockBookingGW(ctrl)
	repo := mocks.NewMockBookingRepo(ctrl)
	m := metrics.New()
	return &fixture{
		uc:      NewBookingUC(cfg, repo, gw, m),
		gw:      gw,
		repo:    repo,
		metrics: m,
	}
}

// ignoreSnapshots accepts any snapshot traffic with an empty cache
func (f *fixture) ignoreSnapshots() {
	f.repo.EXPECT().GetSnapshot(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.repo.EXPECT().SaveSnapshot(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func providerRC() *requestcontext.RequestContext {
	return &requestcontext.RequestContext{RequestID: "req-p", UserID: "10", Credential: "tok-p"}
}

func clientRC() *requestcontext.RequestContext {
	return &requestcontext.RequestContext{RequestID: "req-c", UserID: "20", Credential: "tok-c"}
}

func booking(status models.BookingStatus, depositPaid bool) *models.Booking {
	return &models.Booking{
		BookingID:     testBookingID,
		ClientID:      testClientID,
		ProviderID:    testProviderID,
		Status:        status,
		DepositPaid:   depositPaid,
		PaymentStatus: models.PaymentStatusPending,
	}
}

// backend is a concurrency-safe stand-in for the booking on the server
type backend struct {
	mu      sync.Mutex
	booking models.Booking
	calls   int
}

func newBackend(b *models.Booking) *backend {
	return &backend{booking: *b}
}

func (s *backend) get() *models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	cp := s.booking
	return &cp
}

func (s *backend) set(fn func(b *models.Booking)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.booking)
}

func (s *backend) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func fastConfig() models.BookingConfig {
	return models.BookingConfig{
		PollInterval:        10 * time.Millisecond,
		DepositPollInterval: 5 * time.Millisecond,
		DepositWaitMax:      time.Second,
	}
}
