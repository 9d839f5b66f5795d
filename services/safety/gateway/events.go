package gateway

import (
	"context"

	"github.com/piresc/bookingflow/internal/pkg/constants"
	"github.com/piresc/bookingflow/internal/pkg/events"
	"github.com/piresc/bookingflow/internal/pkg/models"
)

// EventGateway publishes safety events on the bus
type EventGateway struct {
	publisher events.Publisher
}

// NewEventGateway creates a new event gateway
func NewEventGateway(publisher events.Publisher) *EventGateway {
	return &EventGateway{publisher: publisher}
}

// PublishCheckInEvent publishes a session start, overdue or completion
func (gw *EventGateway) PublishCheckInEvent(ctx context.Context, subject string, event models.CheckInEvent) error {
	return gw.publisher.Publish(ctx, subject, event)
}

// PublishSOSSent announces an accepted emergency alert
func (gw *EventGateway) PublishSOSSent(ctx context.Context, event models.SOSSentEvent) error {
	return gw.publisher.Publish(ctx, constants.SubjectSOSSent, event)
}
