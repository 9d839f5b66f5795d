package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/bookingflow/internal/pkg/constants"
	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/piresc/bookingflow/internal/utils"
	"github.com/piresc/bookingflow/services/location"
	"github.com/piresc/bookingflow/services/safety"
	"github.com/piresc/bookingflow/services/safety/checkin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectEvent(f *fixture, subject, status string) *gomock.Call {
	return f.gw.EXPECT().
		PublishCheckInEvent(gomock.Any(), subject, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, e models.CheckInEvent) error {
			if e.Status != status {
				return errors.New("unexpected status " + e.Status)
			}
			return nil
		})
}

func TestCheckIn_ThenCheckOut(t *testing.T) {
	f := newFixture(t, time.Hour)
	ctx := context.Background()

	f.gw.EXPECT().CheckIn(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ interface{}, req models.CheckInRequest) error {
			assert.Equal(t, int64(42), req.BookingID)
			require.NotNil(t, req.Latitude)
			assert.Equal(t, -6.2, *req.Latitude)
			return nil
		})
	f.location.EXPECT().StartTracking("10", int64(42)).Return(nil)
	expectEvent(f, constants.SubjectCheckInStarted, "active")

	snap, err := f.uc.CheckIn(ctx, providerRC(), 42, models.StartCheckInRequest{
		ExpectedDurationMinutes: 60,
		Latitude:                floatPtr(-6.2),
		Longitude:               floatPtr(106.8),
	})

	require.NoError(t, err)
	assert.Equal(t, "active", snap.Status)
	assert.True(t, snap.HasLocation)
	assert.Equal(t, t0, snap.StartTime)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.CheckInSessions))

	f.clock.Set(t0.Add(45 * time.Minute))
	current, err := f.uc.Session(ctx, providerRC(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(2700), current.ElapsedSeconds)
	assert.True(t, current.CanExtend)

	f.gw.EXPECT().CheckOut(gomock.Any(), gomock.Any(), models.CheckOutRequest{BookingID: 42}).Return(nil)
	f.location.EXPECT().StopTracking("10", int64(42)).Return(nil)
	expectEvent(f, constants.SubjectCheckInCompleted, "completed")

	done, err := f.uc.CheckOut(ctx, providerRC(), 42)

	require.NoError(t, err)
	assert.Equal(t, "completed", done.Status)
	assert.Equal(t, int64(2700), done.ElapsedSeconds)
	assert.Equal(t, 0.0, testutil.ToFloat64(f.metrics.CheckInSessions))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.CheckInTransitions.WithLabelValues("completed")))

	_, err = f.uc.Session(ctx, providerRC(), 42)
	assert.ErrorIs(t, err, safety.ErrSessionNotFound)
}

func TestCheckIn_LocationIsBestEffort(t *testing.T) {
	tests := []struct {
		name       string
		fix        *models.Location
		locateErr  error
		wantCoords bool
	}{
		{name: "fix acquired", fix: &models.Location{Latitude: 1.5, Longitude: 2.5}, wantCoords: true},
		{name: "no fix in time", locateErr: location.ErrLocationUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, time.Hour)

			f.location.EXPECT().Locate(gomock.Any(), "10", location.AccuracyBestEffort).
				DoAndReturn(func(ctx context.Context, _ string, _ location.Accuracy) (*models.Location, error) {
					deadline, ok := ctx.Deadline()
					require.True(t, ok)
					assert.WithinDuration(t, time.Now().Add(DefaultCheckInLocateTimeout), deadline, time.Second)
					return tt.fix, tt.locateErr
				})
			f.gw.EXPECT().CheckIn(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ interface{}, req models.CheckInRequest) error {
					assert.Equal(t, tt.wantCoords, req.Latitude != nil)
					assert.Equal(t, tt.wantCoords, req.Longitude != nil)
					return nil
				})
			f.location.EXPECT().StartTracking("10", int64(42)).Return(nil)
			expectEvent(f, constants.SubjectCheckInStarted, "active")

			snap, err := f.uc.CheckIn(context.Background(), providerRC(), 42, models.StartCheckInRequest{ExpectedDurationMinutes: 60})

			require.NoError(t, err)
			assert.Equal(t, tt.wantCoords, snap.HasLocation)
		})
	}
}

func TestCheckIn_BackendFailureStartsNothing(t *testing.T) {
	f := newFixture(t, time.Hour)

	f.gw.EXPECT().CheckIn(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("backend returned 400"))

	_, err := f.uc.CheckIn(context.Background(), providerRC(), 42, models.StartCheckInRequest{
		ExpectedDurationMinutes: 60,
		Latitude:                floatPtr(1),
		Longitude:               floatPtr(2),
	})

	assert.Error(t, err)
	_, err = f.uc.Session(context.Background(), providerRC(), 42)
	assert.ErrorIs(t, err, safety.ErrSessionNotFound)
	assert.Equal(t, 0.0, testutil.ToFloat64(f.metrics.CheckInSessions))
}

func TestCheckIn_Rejections(t *testing.T) {
	f := newFixture(t, time.Hour)
	ctx := context.Background()

	_, err := f.uc.CheckIn(ctx, providerRC(), 42, models.StartCheckInRequest{})
	_, isValidation := utils.AsValidationError(err)
	assert.True(t, isValidation)

	rc := providerRC()
	rc.UserID = ""
	_, err = f.uc.CheckIn(ctx, rc, 42, models.StartCheckInRequest{ExpectedDurationMinutes: 60})
	assert.ErrorIs(t, err, safety.ErrUnauthorized)

	f.gw.EXPECT().CheckIn(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.location.EXPECT().StartTracking("10", int64(42)).Return(location.ErrAlreadyTracking)
	expectEvent(f, constants.SubjectCheckInStarted, "active")

	req := models.StartCheckInRequest{ExpectedDurationMinutes: 60, Latitude: floatPtr(1), Longitude: floatPtr(2)}
	_, err = f.uc.CheckIn(ctx, providerRC(), 42, req)
	require.NoError(t, err)

	_, err = f.uc.CheckIn(ctx, providerRC(), 42, req)
	assert.ErrorIs(t, err, safety.ErrSessionExists)
}

func TestCheckIn_OverdueIsAnnounced(t *testing.T) {
	f := newFixture(t, time.Millisecond)

	f.gw.EXPECT().CheckIn(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.location.EXPECT().StartTracking("10", int64(42)).Return(nil)
	expectEvent(f, constants.SubjectCheckInStarted, "active")

	overdue := make(chan models.CheckInEvent, 1)
	f.gw.EXPECT().PublishCheckInEvent(gomock.Any(), constants.SubjectCheckInOverdue, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, e models.CheckInEvent) error {
			overdue <- e
			return nil
		})

	_, err := f.uc.CheckIn(context.Background(), providerRC(), 42, models.StartCheckInRequest{
		ExpectedDurationMinutes: 60,
		Latitude:                floatPtr(1),
		Longitude:               floatPtr(2),
	})
	require.NoError(t, err)

	f.clock.Set(t0.Add(3599 * time.Second))
	time.Sleep(10 * time.Millisecond)
	assert.Len(t, overdue, 0)

	f.clock.Set(t0.Add(3600 * time.Second))

	select {
	case e := <-overdue:
		assert.Equal(t, "overdue", e.Status)
		assert.Equal(t, int64(3600), e.Elapsed)
		assert.Equal(t, 60, e.Expected)
	case <-time.After(time.Second):
		t.Fatal("overdue event not published")
	}

	select {
	case n := <-f.notifier.sent:
		assert.Equal(t, "10", n.userID)
		assert.Equal(t, constants.EventCheckInOverdue, n.event)
		snap, ok := n.data.(models.CheckInSnapshot)
		require.True(t, ok)
		assert.Equal(t, "overdue", snap.Status)
	case <-time.After(time.Second):
		t.Fatal("user was not notified")
	}
}

func TestCheckOut_StopsOnlyItsOwnTracking(t *testing.T) {
	f := newFixture(t, time.Hour)
	ctx := context.Background()
	req := models.StartCheckInRequest{ExpectedDurationMinutes: 60, Latitude: floatPtr(1), Longitude: floatPtr(2)}

	f.gw.EXPECT().CheckIn(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.location.EXPECT().StartTracking("10", int64(42)).Return(nil)
	f.location.EXPECT().StartTracking("10", int64(43)).Return(nil)
	expectEvent(f, constants.SubjectCheckInStarted, "active").Times(2)

	_, err := f.uc.CheckIn(ctx, providerRC(), 42, req)
	require.NoError(t, err)
	_, err = f.uc.CheckIn(ctx, providerRC(), 43, req)
	require.NoError(t, err)

	f.gw.EXPECT().CheckOut(gomock.Any(), gomock.Any(), models.CheckOutRequest{BookingID: 43}).Return(nil)
	f.location.EXPECT().StopTracking("10", int64(43)).Return(nil)
	expectEvent(f, constants.SubjectCheckInCompleted, "completed")

	_, err = f.uc.CheckOut(ctx, providerRC(), 43)
	require.NoError(t, err)

	snap, err := f.uc.Session(ctx, providerRC(), 42)
	require.NoError(t, err)
	assert.Equal(t, "active", snap.Status)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.CheckInSessions))
}

func TestCheckIn_ConcurrentDuplicateNeverReachesBackend(t *testing.T) {
	f := newFixture(t, time.Hour)
	ctx := context.Background()
	req := models.StartCheckInRequest{ExpectedDurationMinutes: 60, Latitude: floatPtr(1), Longitude: floatPtr(2)}

	entered := make(chan struct{})
	release := make(chan struct{})
	f.gw.EXPECT().CheckIn(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, interface{}, models.CheckInRequest) error {
			close(entered)
			<-release
			return nil
		}).Times(1)
	f.location.EXPECT().StartTracking("10", int64(42)).Return(nil)
	expectEvent(f, constants.SubjectCheckInStarted, "active")

	first := make(chan error, 1)
	go func() {
		_, err := f.uc.CheckIn(ctx, providerRC(), 42, req)
		first <- err
	}()
	<-entered

	_, err := f.uc.CheckIn(ctx, providerRC(), 42, req)
	assert.ErrorIs(t, err, safety.ErrSessionExists)

	close(release)
	require.NoError(t, <-first)

	_, err = f.uc.Session(ctx, providerRC(), 42)
	assert.NoError(t, err)
}

func TestCheckIn_BackendFailureReleasesBooking(t *testing.T) {
	f := newFixture(t, time.Hour)
	ctx := context.Background()
	req := models.StartCheckInRequest{ExpectedDurationMinutes: 60, Latitude: floatPtr(1), Longitude: floatPtr(2)}

	gomock.InOrder(
		f.gw.EXPECT().CheckIn(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("backend returned 502")),
		f.gw.EXPECT().CheckIn(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
	)
	f.location.EXPECT().StartTracking("10", int64(42)).Return(nil)
	expectEvent(f, constants.SubjectCheckInStarted, "active")

	_, err := f.uc.CheckIn(ctx, providerRC(), 42, req)
	require.Error(t, err)

	_, err = f.uc.CheckIn(ctx, providerRC(), 42, req)
	assert.NoError(t, err)
}

func TestCheckOut_FailureKeepsSession(t *testing.T) {
	f := newFixture(t, time.Hour)
	ctx := context.Background()

	f.gw.EXPECT().CheckIn(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.location.EXPECT().StartTracking("10", int64(42)).Return(nil)
	expectEvent(f, constants.SubjectCheckInStarted, "active")
	_, err := f.uc.CheckIn(ctx, providerRC(), 42, models.StartCheckInRequest{ExpectedDurationMinutes: 60, Latitude: floatPtr(1), Longitude: floatPtr(2)})
	require.NoError(t, err)

	f.gw.EXPECT().CheckOut(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("backend returned 502"))

	_, err = f.uc.CheckOut(ctx, providerRC(), 42)
	assert.Error(t, err)

	snap, err := f.uc.Session(ctx, providerRC(), 42)
	require.NoError(t, err)
	assert.Equal(t, "active", snap.Status)
}

func TestCheckOut_WithoutSession(t *testing.T) {
	f := newFixture(t, time.Hour)

	_, err := f.uc.CheckOut(context.Background(), providerRC(), 42)

	assert.ErrorIs(t, err, safety.ErrSessionNotFound)
}

func TestExtendSession_RevertsOverdue(t *testing.T) {
	f := newFixture(t, time.Hour)
	ctx := context.Background()

	f.gw.EXPECT().CheckIn(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.location.EXPECT().StartTracking("10", int64(42)).Return(nil)
	expectEvent(f, constants.SubjectCheckInStarted, "active")
	_, err := f.uc.CheckIn(ctx, providerRC(), 42, models.StartCheckInRequest{ExpectedDurationMinutes: 60, Latitude: floatPtr(1), Longitude: floatPtr(2)})
	require.NoError(t, err)

	f.clock.Set(t0.Add(65 * time.Minute))
	expectEvent(f, constants.SubjectCheckInOverdue, "overdue")
	snap, err := f.uc.Session(ctx, providerRC(), 42)
	require.NoError(t, err)
	require.Equal(t, "overdue", snap.Status)
	<-f.notifier.sent

	extended, err := f.uc.ExtendSession(ctx, providerRC(), 42, 30)

	require.NoError(t, err)
	assert.Equal(t, 90, extended.ExpectedDurationMinutes)
	assert.Equal(t, "active", extended.Status)

	_, err = f.uc.ExtendSession(ctx, providerRC(), 42, 0)
	assert.ErrorIs(t, err, checkin.ErrInvalidDuration)

	_, err = f.uc.ExtendSession(ctx, providerRC(), 7, 30)
	assert.ErrorIs(t, err, safety.ErrSessionNotFound)
}
