package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/bookingflow/internal/pkg/logger"
	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/piresc/bookingflow/internal/pkg/requestcontext"
	"github.com/piresc/bookingflow/internal/utils"
	"github.com/piresc/bookingflow/services/safety"
	"github.com/shopspring/decimal"
)

// FallbackMinutes are offered when the backend cannot list packages
var FallbackMinutes = []int{30, 60, 120}

// ListExtensionPackages never fails: any backend problem yields the local
// fallback packages
func (uc *SafetyUC) ListExtensionPackages(ctx context.Context, rc *requestcontext.RequestContext, bookingID int64) (*models.ExtensionPackages, error) {
	packages, err := uc.safetyGW.GetExtensionPackages(ctx, rc, bookingID)
	if err == nil && len(packages) > 0 {
		return &models.ExtensionPackages{Packages: packages}, nil
	}

	logger.Info("Using fallback extension packages",
		logger.BookingID(bookingID),
		logger.Err(err))
	uc.metrics.Extensions.WithLabelValues("fallback_packages").Inc()

	return &models.ExtensionPackages{
		Packages: uc.fallbackPackages(),
		Fallback: true,
	}, nil
}

func (uc *SafetyUC) fallbackPackages() []models.ExtensionPackage {
	sixty := decimal.NewFromInt(60)
	packages := make([]models.ExtensionPackage, 0, len(FallbackMinutes))
	for _, minutes := range FallbackMinutes {
		packages = append(packages, models.ExtensionPackage{
			Minutes: minutes,
			Price:   uc.cfg.FallbackHourlyRate.Mul(decimal.NewFromInt(int64(minutes))).Div(sixty).Round(0),
			Label:   fmt.Sprintf("%d minutes", minutes),
		})
	}
	return packages
}

// RequestExtension buys extra time. The result carries either a checkout
// URL the client must open, or the granted minutes when the backend
// settled it directly; in that case the running session is extended too.
func (uc *SafetyUC) RequestExtension(ctx context.Context, rc *requestcontext.RequestContext, bookingID int64, req models.ExtensionRequest) (*models.ExtensionResult, error) {
	if rc == nil || rc.UserID == "" {
		return nil, safety.ErrUnauthorized
	}

	req.BookingID = bookingID
	if req.SuccessURL == "" {
		req.SuccessURL = uc.cfg.ExtensionSuccessURL
	}
	if req.CancelURL == "" {
		req.CancelURL = uc.cfg.ExtensionCancelURL
	}
	if err := utils.Validate(&req); err != nil {
		return nil, err
	}

	resp, err := uc.safetyGW.RequestExtension(ctx, rc, req)
	if err != nil {
		uc.metrics.Extensions.WithLabelValues("failed").Inc()
		return nil, err
	}

	result := &models.ExtensionResult{BookingID: bookingID}
	switch {
	case resp.CheckoutURL != "":
		uc.metrics.Extensions.WithLabelValues("redirect").Inc()
		result.CheckoutURL = resp.CheckoutURL
		return result, nil

	case resp.Success:
		uc.metrics.Extensions.WithLabelValues("granted").Inc()
		result.GrantedMinutes = req.AdditionalMinutes

		if timer, ok := uc.timer(sessionKey{userID: rc.UserID, bookingID: bookingID}); ok {
			snapshot, err := timer.Extend(req.AdditionalMinutes)
			if err != nil {
				logger.Warn("Extension granted but session could not be extended",
					logger.BookingID(bookingID),
					logger.Err(err))
			} else {
				result.Session = &snapshot
			}
		}

		logger.Info("Session extension granted",
			logger.UserID(rc.UserID),
			logger.BookingID(bookingID),
			logger.Int("minutes", req.AdditionalMinutes))
		return result, nil
	}

	uc.metrics.Extensions.WithLabelValues("failed").Inc()
	return nil, safety.ErrExtensionRejected
}
