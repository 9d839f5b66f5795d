package gateway

import (
	"context"

	"github.com/piresc/bookingflow/internal/pkg/constants"
	"github.com/piresc/bookingflow/internal/pkg/events"
	"github.com/piresc/bookingflow/internal/pkg/models"
)

// EventGateway publishes booking events on the bus
type EventGateway struct {
	publisher events.Publisher
}

// NewEventGateway creates a new event gateway
func NewEventGateway(publisher events.Publisher) *EventGateway {
	return &EventGateway{publisher: publisher}
}

// PublishActionPerformed announces an accepted transition
func (gw *EventGateway) PublishActionPerformed(ctx context.Context, event models.BookingActionEvent) error {
	return gw.publisher.Publish(ctx, constants.SubjectBookingAction, event)
}

// PublishStatusChanged announces a status change observed on the backend
func (gw *EventGateway) PublishStatusChanged(ctx context.Context, event models.BookingStatusChangedEvent) error {
	return gw.publisher.Publish(ctx, constants.SubjectBookingStatusChanged, event)
}
