package bookings

import (
	"context"

	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/piresc/bookingflow/internal/pkg/requestcontext"
	"github.com/piresc/bookingflow/services/bookings/flow"
)

// BookingGW defines the interface for the marketplace backend and event bus
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/bookingflow/services/bookings BookingGW
type BookingGW interface {
	GetBooking(ctx context.Context, rc *requestcontext.RequestContext, bookingID int64) (*models.Booking, error)
	PostAction(ctx context.Context, rc *requestcontext.RequestContext, bookingID int64, t flow.Transition, body interface{}) error
	CreateDepositPayment(ctx context.Context, rc *requestcontext.RequestContext, bookingID int64) (*models.DepositPayment, error)
	PublishActionPerformed(ctx context.Context, event models.BookingActionEvent) error
	PublishStatusChanged(ctx context.Context, event models.BookingStatusChangedEvent) error
}
