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
	"github.com/piresc/bookingflow/services/safety"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListExtensionPackages_FromBackend(t *testing.T) {
	f := newFixture(t, time.Hour)
	packages := []models.ExtensionPackage{{Minutes: 45, Price: decimal.NewFromInt(70000), Label: "45 min"}}
	f.gw.EXPECT().GetExtensionPackages(gomock.Any(), gomock.Any(), int64(42)).Return(packages, nil)

	got, err := f.uc.ListExtensionPackages(context.Background(), providerRC(), 42)

	require.NoError(t, err)
	assert.False(t, got.Fallback)
	assert.Equal(t, packages, got.Packages)
}

func TestListExtensionPackages_Fallback(t *testing.T) {
	tests := []struct {
		name     string
		packages []models.ExtensionPackage
		err      error
	}{
		{name: "backend error", err: errors.New("backend returned 500")},
		{name: "empty list", packages: []models.ExtensionPackage{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, time.Hour)
			f.gw.EXPECT().GetExtensionPackages(gomock.Any(), gomock.Any(), int64(42)).Return(tt.packages, tt.err)

			got, err := f.uc.ListExtensionPackages(context.Background(), providerRC(), 42)

			require.NoError(t, err)
			assert.True(t, got.Fallback)
			require.Len(t, got.Packages, 3)

			want := []struct {
				minutes int
				price   int64
				label   string
			}{
				{30, 50000, "30 minutes"},
				{60, 100000, "60 minutes"},
				{120, 200000, "120 minutes"},
			}
			for i, w := range want {
				assert.Equal(t, w.minutes, got.Packages[i].Minutes)
				assert.True(t, decimal.NewFromInt(w.price).Equal(got.Packages[i].Price), "price of %d minutes is %s", w.minutes, got.Packages[i].Price)
				assert.Equal(t, w.label, got.Packages[i].Label)
			}
			assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Extensions.WithLabelValues("fallback_packages")))
		})
	}
}

func TestRequestExtension_Redirect(t *testing.T) {
	f := newFixture(t, time.Hour)

	f.gw.EXPECT().RequestExtension(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ interface{}, req models.ExtensionRequest) (*models.ExtensionResponse, error) {
			assert.Equal(t, int64(42), req.BookingID)
			assert.Equal(t, 60, req.AdditionalMinutes)
			assert.Equal(t, "https://app.example.com/extension/success", req.SuccessURL)
			assert.Equal(t, "https://app.example.com/extension/cancel", req.CancelURL)
			return &models.ExtensionResponse{CheckoutURL: "https://pay.example.com/c/9"}, nil
		})

	got, err := f.uc.RequestExtension(context.Background(), providerRC(), 42, models.ExtensionRequest{
		AdditionalMinutes: 60,
		Price:             decimal.NewFromInt(100000),
	})

	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/c/9", got.CheckoutURL)
	assert.Zero(t, got.GrantedMinutes)
	assert.Nil(t, got.Session)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Extensions.WithLabelValues("redirect")))
}

func TestRequestExtension_DirectSuccessExtendsSession(t *testing.T) {
	f := newFixture(t, time.Hour)
	ctx := context.Background()

	f.gw.EXPECT().CheckIn(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.location.EXPECT().StartTracking("10", int64(42)).Return(nil)
	expectEvent(f, constants.SubjectCheckInStarted, "active")
	_, err := f.uc.CheckIn(ctx, providerRC(), 42, models.StartCheckInRequest{ExpectedDurationMinutes: 60, Latitude: floatPtr(1), Longitude: floatPtr(2)})
	require.NoError(t, err)

	f.clock.Set(t0.Add(61 * time.Minute))

	f.gw.EXPECT().RequestExtension(gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.ExtensionResponse{Success: true}, nil)

	got, err := f.uc.RequestExtension(ctx, providerRC(), 42, models.ExtensionRequest{AdditionalMinutes: 30})

	require.NoError(t, err)
	assert.Equal(t, 30, got.GrantedMinutes)
	require.NotNil(t, got.Session)
	assert.Equal(t, 90, got.Session.ExpectedDurationMinutes)
	assert.Equal(t, "active", got.Session.Status)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Extensions.WithLabelValues("granted")))
}

func TestRequestExtension_DirectSuccessWithoutSession(t *testing.T) {
	f := newFixture(t, time.Hour)
	f.gw.EXPECT().RequestExtension(gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.ExtensionResponse{Success: true}, nil)

	got, err := f.uc.RequestExtension(context.Background(), providerRC(), 42, models.ExtensionRequest{AdditionalMinutes: 120})

	require.NoError(t, err)
	assert.Equal(t, 120, got.GrantedMinutes)
	assert.Nil(t, got.Session)
}

func TestRequestExtension_Failures(t *testing.T) {
	t.Run("backend error", func(t *testing.T) {
		f := newFixture(t, time.Hour)
		f.gw.EXPECT().RequestExtension(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("backend returned 402"))

		_, err := f.uc.RequestExtension(context.Background(), providerRC(), 42, models.ExtensionRequest{AdditionalMinutes: 30})

		assert.Error(t, err)
		assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Extensions.WithLabelValues("failed")))
	})

	t.Run("neither redirect nor success", func(t *testing.T) {
		f := newFixture(t, time.Hour)
		f.gw.EXPECT().RequestExtension(gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.ExtensionResponse{}, nil)

		_, err := f.uc.RequestExtension(context.Background(), providerRC(), 42, models.ExtensionRequest{AdditionalMinutes: 30})

		assert.ErrorIs(t, err, safety.ErrExtensionRejected)
	})

	t.Run("invalid minutes", func(t *testing.T) {
		f := newFixture(t, time.Hour)

		_, err := f.uc.RequestExtension(context.Background(), providerRC(), 42, models.ExtensionRequest{})

		details, ok := utils.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "additional_minutes", details[0].Field)
	})
}
