package bookings

import (
	"context"

	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/piresc/bookingflow/internal/pkg/requestcontext"
	"github.com/piresc/bookingflow/services/bookings/flow"
)

// ActionResult is returned after a transition was accepted by the backend
type ActionResult struct {
	Action flow.Action `json:"action"`
	// View is the freshly fetched booking; nil when the refetch failed
	View       *flow.View `json:"view"`
	RedirectTo string     `json:"redirect_to,omitempty"`
}

// UpdateFunc receives every distinct view a watch observes
type UpdateFunc func(view *flow.View)

// Subscription is a running watch on one booking
type Subscription interface {
	// Stop cancels in-flight requests and waits for the poll loop to exit.
	// No update is delivered after Stop returns.
	Stop()
	Done() <-chan struct{}
}

// BookingUC defines the interface for booking business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/bookingflow/services/bookings BookingUC
type BookingUC interface {
	GetView(ctx context.Context, rc *requestcontext.RequestContext, bookingID int64) (*flow.View, error)
	PerformAction(ctx context.Context, rc *requestcontext.RequestContext, bookingID int64, req flow.ActionRequest) (*ActionResult, error)
	Watch(ctx context.Context, rc *requestcontext.RequestContext, bookingID int64, onUpdate UpdateFunc) (Subscription, error)
	Nudge(bookingID int64)
	StartDeposit(ctx context.Context, rc *requestcontext.RequestContext, bookingID int64) (*models.DepositPayment, error)
	AwaitDeposit(ctx context.Context, rc *requestcontext.RequestContext, bookingID int64) (*models.DepositStatus, error)
}
