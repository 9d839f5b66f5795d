package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	httpclient "github.com/piresc/bookingflow/internal/pkg/http"
	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/piresc/bookingflow/services/location"
	"github.com/piresc/bookingflow/services/safety"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerSOS_RequiresConfirmation(t *testing.T) {
	f := newFixture(t, time.Hour)

	_, err := f.uc.TriggerSOS(context.Background(), providerRC(), models.SOSRequest{})

	assert.ErrorIs(t, err, safety.ErrConfirmationRequired)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.SOSAlerts.WithLabelValues("unconfirmed")))
}

func TestTriggerSOS_NoLocationNeverCallsEndpoint(t *testing.T) {
	f := newFixture(t, time.Hour)

	f.location.EXPECT().Locate(gomock.Any(), "10", location.AccuracyHigh).
		DoAndReturn(func(ctx context.Context, _ string, _ location.Accuracy) (*models.Location, error) {
			deadline, ok := ctx.Deadline()
			require.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(DefaultSOSLocateTimeout), deadline, time.Second)
			return nil, location.ErrLocationUnavailable
		})
	f.gw.EXPECT().SendSOS(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := f.uc.TriggerSOS(context.Background(), providerRC(), models.SOSRequest{Confirmed: true})

	assert.ErrorIs(t, err, location.ErrLocationUnavailable)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.SOSAlerts.WithLabelValues("no_location")))
}

func TestTriggerSOS_SendsLocatedAlert(t *testing.T) {
	f := newFixture(t, time.Hour)
	ctx := context.Background()

	f.location.EXPECT().Locate(gomock.Any(), "10", location.AccuracyHigh).
		Return(&models.Location{Latitude: -6.2, Longitude: 106.8, Accuracy: 15}, nil)
	f.gw.EXPECT().SendSOS(gomock.Any(), gomock.Any(), models.SOSAlert{
		Latitude:     -6.2,
		Longitude:    106.8,
		LocationText: "-6.200000, 106.800000",
		BookingID:    int64Ptr(42),
	}).Return(nil)
	f.repo.EXPECT().SaveSOSSent(gomock.Any(), "10", gomock.Any(), DefaultSOSSentWindow).
		DoAndReturn(func(_ context.Context, _ string, s models.SOSStatus, _ time.Duration) error {
			assert.Equal(t, models.SOSStateSent, s.State)
			return nil
		})
	f.gw.EXPECT().PublishSOSSent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.SOSSentEvent) error {
			assert.Equal(t, "10", e.UserID)
			assert.NotEmpty(t, e.EventID)
			return nil
		})

	status, err := f.uc.TriggerSOS(ctx, providerRC(), models.SOSRequest{Confirmed: true, BookingID: int64Ptr(42)})

	require.NoError(t, err)
	assert.Equal(t, models.SOSStateSent, status.State)
	assert.Equal(t, t0, *status.SentAt)
	assert.Equal(t, t0.Add(30*time.Second), *status.ResetsAt)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.SOSAlerts.WithLabelValues("sent")))
}

func TestTriggerSOS_UsesCoordinatesFromRequest(t *testing.T) {
	f := newFixture(t, time.Hour)

	f.gw.EXPECT().SendSOS(gomock.Any(), gomock.Any(), models.SOSAlert{
		Latitude:     1.5,
		Longitude:    2.5,
		LocationText: "Lobby of Hotel Indonesia",
	}).Return(nil)
	f.repo.EXPECT().SaveSOSSent(gomock.Any(), "10", gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	f.gw.EXPECT().PublishSOSSent(gomock.Any(), gomock.Any()).Return(errors.New("bus down"))

	status, err := f.uc.TriggerSOS(context.Background(), providerRC(), models.SOSRequest{
		Confirmed:    true,
		Latitude:     floatPtr(1.5),
		Longitude:    floatPtr(2.5),
		LocationText: "Lobby of Hotel Indonesia",
	})

	require.NoError(t, err)
	assert.Equal(t, models.SOSStateSent, status.State)
}

func TestTriggerSOS_BackendFailureAllowsRetry(t *testing.T) {
	f := newFixture(t, time.Hour)
	req := models.SOSRequest{Confirmed: true, Latitude: floatPtr(1), Longitude: floatPtr(2)}

	f.gw.EXPECT().SendSOS(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&httpclient.APIError{StatusCode: 503, Message: "Alert service unavailable"})

	_, err := f.uc.TriggerSOS(context.Background(), providerRC(), req)

	assert.ErrorIs(t, err, safety.ErrSOSFailed)
	assert.Equal(t, "Alert service unavailable", safety.FailureMessage(err, safety.SOSFailedMessage))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.SOSAlerts.WithLabelValues("failed")))

	f.gw.EXPECT().SendSOS(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().SaveSOSSent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishSOSSent(gomock.Any(), gomock.Any()).Return(nil)

	status, err := f.uc.TriggerSOS(context.Background(), providerRC(), req)
	require.NoError(t, err)
	assert.Equal(t, models.SOSStateSent, status.State)
}

func TestSOSStatus(t *testing.T) {
	f := newFixture(t, time.Hour)
	sentAt := t0

	f.repo.EXPECT().GetSOSStatus(gomock.Any(), "10").Return(nil, nil)
	idle, err := f.uc.SOSStatus(context.Background(), providerRC())
	require.NoError(t, err)
	assert.Equal(t, models.SOSStateIdle, idle.State)

	f.repo.EXPECT().GetSOSStatus(gomock.Any(), "10").Return(&models.SOSStatus{State: models.SOSStateSent, SentAt: &sentAt}, nil)
	sent, err := f.uc.SOSStatus(context.Background(), providerRC())
	require.NoError(t, err)
	assert.Equal(t, models.SOSStateSent, sent.State)

	f.repo.EXPECT().GetSOSStatus(gomock.Any(), "10").Return(nil, errors.New("redis down"))
	_, err = f.uc.SOSStatus(context.Background(), providerRC())
	assert.Error(t, err)
}
