package location

import (
	"context"

	"github.com/piresc/bookingflow/internal/pkg/models"
)

// Accuracy selects how strict a one-shot fix must be
type Accuracy int

const (
	// AccuracyBestEffort accepts any reasonably recent fix
	AccuracyBestEffort Accuracy = iota
	// AccuracyHigh requires a very recent fix with a small error radius
	AccuracyHigh
)

func (a Accuracy) String() string {
	if a == AccuracyHigh {
		return "high"
	}
	return "best_effort"
}

// LocationUC defines the interface for device location fixes
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/bookingflow/services/location LocationUC
type LocationUC interface {
	// ReportLocation stores the latest fix sent by a device
	ReportLocation(ctx context.Context, userID string, loc models.Location) (*models.Location, error)
	// LatestFix returns nil, nil when the user has no stored fix
	LatestFix(ctx context.Context, userID string) (*models.Location, error)
	// Locate waits until a fix good enough for accuracy is available or ctx ends
	Locate(ctx context.Context, userID string, accuracy Accuracy) (*models.Location, error)

	// Watch mode while a check-in session is running
	StartTracking(userID string, bookingID int64) error
	StopTracking(userID string, bookingID int64) error
	StopAll()
}
