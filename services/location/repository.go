package location

import (
	"context"

	"github.com/piresc/bookingflow/internal/pkg/models"
)

// LocationRepo stores the latest fix per user
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/bookingflow/services/location LocationRepo
type LocationRepo interface {
	StoreLocation(ctx context.Context, userID string, loc models.Location) error
	// GetLastLocation returns nil, nil when no fix is stored
	GetLastLocation(ctx context.Context, userID string) (*models.Location, error)
}
