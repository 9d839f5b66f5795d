package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/bookingflow/internal/pkg/logger"
	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/piresc/bookingflow/internal/utils"
	"github.com/piresc/bookingflow/services/location"
)

// ReportLocation validates and stores a device fix
func (uc *LocationUC) ReportLocation(ctx context.Context, userID string, loc models.Location) (*models.Location, error) {
	if err := utils.Validate(&loc); err != nil {
		return nil, err
	}

	// device clocks drift; never keep a fix stamped in the future
	now := uc.now()
	if loc.Timestamp.IsZero() || loc.Timestamp.After(now) {
		loc.Timestamp = now
	}
	loc.Geohash = utils.EncodeLocation(loc, utils.GeohashPrecision)

	if err := uc.repo.StoreLocation(ctx, userID, loc); err != nil {
		return nil, err
	}

	logger.Debug("Location reported",
		logger.UserID(userID),
		logger.String("geohash", loc.Geohash))
	return &loc, nil
}

// LatestFix returns the stored fix without any freshness check
func (uc *LocationUC) LatestFix(ctx context.Context, userID string) (*models.Location, error) {
	return uc.repo.GetLastLocation(ctx, userID)
}

// Locate polls the fix store until a usable fix shows up. The caller bounds
// the wait with ctx.
func (uc *LocationUC) Locate(ctx context.Context, userID string, accuracy location.Accuracy) (*models.Location, error) {
	ticker := time.NewTicker(uc.cfg.PollInterval)
	defer ticker.Stop()

	for {
		fix, err := uc.repo.GetLastLocation(ctx, userID)
		if err != nil {
			logger.Debug("Failed to read location fix",
				logger.UserID(userID),
				logger.Err(err))
		} else if uc.usable(fix, accuracy) {
			return fix, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", location.ErrLocationUnavailable, ctx.Err())
		case <-ticker.C:
		}
	}
}

// usable accepts a fix of unknown accuracy even in high accuracy mode
func (uc *LocationUC) usable(fix *models.Location, accuracy location.Accuracy) bool {
	if fix == nil {
		return false
	}

	maxAge := uc.cfg.MaxAge
	if accuracy == location.AccuracyHigh {
		maxAge = uc.cfg.HighAccuracyMaxAge
		if fix.Accuracy > uc.cfg.HighAccuracyMeters {
			return false
		}
	}
	return uc.now().Sub(fix.Timestamp) <= maxAge
}
