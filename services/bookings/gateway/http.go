package gateway

import (
	"context"
	"fmt"
	"net/http"

	httpclient "github.com/piresc/bookingflow/internal/pkg/http"
	"github.com/piresc/bookingflow/internal/pkg/logger"
	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/piresc/bookingflow/internal/pkg/requestcontext"
	"github.com/piresc/bookingflow/services/bookings"
	"github.com/piresc/bookingflow/services/bookings/flow"
)

// HTTPGateway talks to the marketplace booking endpoints
type HTTPGateway struct {
	client *httpclient.Client
}

// NewHTTPGateway creates a new HTTP gateway
func NewHTTPGateway(client *httpclient.Client) *HTTPGateway {
	return &HTTPGateway{client: client}
}

// GetBooking fetches the full booking record
func (gw *HTTPGateway) GetBooking(ctx context.Context, rc *requestcontext.RequestContext, bookingID int64) (*models.Booking, error) {
	var booking models.Booking
	if err := gw.client.GetJSON(ctx, rc, fmt.Sprintf("/bookings/%d", bookingID), &booking); err != nil {
		return nil, fmt.Errorf("failed to get booking %d: %w", bookingID, classify(err))
	}
	if booking.BookingID == 0 {
		booking.BookingID = bookingID
	}
	return &booking, nil
}

// PostAction posts one transition. body may be nil.
func (gw *HTTPGateway) PostAction(ctx context.Context, rc *requestcontext.RequestContext, bookingID int64, t flow.Transition, body interface{}) error {
	if body == nil {
		body = struct{}{}
	}
	if err := gw.client.PostJSON(ctx, rc, t.Path(bookingID), body, nil); err != nil {
		logger.Warn("Booking action rejected",
			logger.BookingID(bookingID),
			logger.String("action", string(t.Action)),
			logger.String("request_id", rc.RequestID),
			logger.Err(err))
		return classify(err)
	}
	return nil
}

// CreateDepositPayment creates the QR payment for the booking deposit
func (gw *HTTPGateway) CreateDepositPayment(ctx context.Context, rc *requestcontext.RequestContext, bookingID int64) (*models.DepositPayment, error) {
	var payment models.DepositPayment
	endpoint := fmt.Sprintf("/bookings/%d/deposit-payment", bookingID)
	if err := gw.client.PostJSON(ctx, rc, endpoint, struct{}{}, &payment); err != nil {
		return nil, fmt.Errorf("failed to create deposit payment: %w", classify(err))
	}
	payment.BookingID = bookingID
	return &payment, nil
}

// classify tags backend answers the use cases branch on. The APIError
// stays reachable through errors.As.
func classify(err error) error {
	apiErr, ok := httpclient.AsAPIError(err)
	if !ok {
		return err
	}
	switch apiErr.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", bookings.ErrBookingNotFound, err)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", bookings.ErrUnauthorized, err)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %w", bookings.ErrNotParticipant, err)
	}
	return err
}
