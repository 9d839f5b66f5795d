package location

import (
	"context"

	"github.com/piresc/bookingflow/internal/pkg/models"
)

// LocationGW defines the interface for location gateway operations
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/bookingflow/services/location LocationGW
type LocationGW interface {
	// PublishLocationUpdate announces a tracked fix on the event bus
	PublishLocationUpdate(ctx context.Context, update models.LocationUpdate) error
}
