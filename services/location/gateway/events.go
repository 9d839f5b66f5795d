package gateway

import (
	"context"

	"github.com/piresc/bookingflow/internal/pkg/constants"
	"github.com/piresc/bookingflow/internal/pkg/events"
	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/piresc/bookingflow/services/location"
)

// LocationGW publishes tracked fixes on the event bus
type LocationGW struct {
	publisher events.Publisher
}

// NewLocationGW creates a new location gateway
func NewLocationGW(publisher events.Publisher) location.LocationGW {
	return &LocationGW{publisher: publisher}
}

// PublishLocationUpdate publishes a fix taken while a check-in session runs
func (gw *LocationGW) PublishLocationUpdate(ctx context.Context, update models.LocationUpdate) error {
	return gw.publisher.Publish(ctx, constants.SubjectBookingLocation, update)
}
