package usecase

import (
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/bookingflow/internal/pkg/metrics"
	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/piresc/bookingflow/internal/pkg/requestcontext"
	locmocks "github.com/piresc/bookingflow/services/location/mocks"
	"github.com/piresc/bookingflow/services/safety/mocks"
	"github.com/shopspring/decimal"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type notification struct {
	userID string
	event  string
	data   interface{}
}

type fakeNotifier struct {
	sent chan notification
}

func (n *fakeNotifier) NotifyUser(userID string, event string, data interface{}) {
	n.sent <- notification{userID: userID, event: event, data: data}
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

type fixture struct {
	uc       *SafetyUC
	gw       *mocks.MockSafetyGW
	repo     *mocks.MockSafetyRepo
	location *locmocks.MockLocationUC
	notifier *fakeNotifier
	clock    *testClock
	metrics  *metrics.Metrics
}

func newFixture(t *testing.T, tick time.Duration) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		gw:       mocks.NewMockSafetyGW(ctrl),
		repo:     mocks.NewMockSafetyRepo(ctrl),
		location: locmocks.NewMockLocationUC(ctrl),
		notifier: &fakeNotifier{sent: make(chan notification, 4)},
		clock:    &testClock{now: t0},
		metrics:  metrics.New(),
	}
	cfg := models.SafetyConfig{
		CheckInTick:         tick,
		FallbackHourlyRate:  decimal.NewFromInt(100000),
		ExtensionSuccessURL: "https://app.example.com/extension/success",
		ExtensionCancelURL:  "https://app.example.com/extension/cancel",
	}
	f.uc = NewSafetyUC(cfg, f.repo, f.gw, f.location, f.notifier, f.metrics)
	f.uc.now = f.clock.Now
	t.Cleanup(f.uc.Close)
	return f
}

func providerRC() *requestcontext.RequestContext {
	return &requestcontext.RequestContext{RequestID: "req-1", UserID: "10", Role: models.RoleProvider, Credential: "tok"}
}

func floatPtr(v float64) *float64 { return &v }

func int64Ptr(v int64) *int64 { return &v }
