package safety

import (
	"context"
	"time"

	"github.com/piresc/bookingflow/internal/pkg/models"
)

// SafetyRepo keeps the per-user SOS "sent" window
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/bookingflow/services/safety SafetyRepo
type SafetyRepo interface {
	SaveSOSSent(ctx context.Context, userID string, status models.SOSStatus, window time.Duration) error
	// GetSOSStatus returns nil, nil once the window has elapsed
	GetSOSStatus(ctx context.Context, userID string) (*models.SOSStatus, error)
}
