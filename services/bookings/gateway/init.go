package gateway

import (
	"github.com/piresc/bookingflow/internal/pkg/events"
	httpclient "github.com/piresc/bookingflow/internal/pkg/http"
	"github.com/piresc/bookingflow/services/bookings"
)

// BookingGW combines the backend HTTP gateway and the event gateway
type BookingGW struct {
	*HTTPGateway
	*EventGateway
}

// NewBookingGW creates the booking gateway
func NewBookingGW(client *httpclient.Client, publisher events.Publisher) bookings.BookingGW {
	return &BookingGW{
		HTTPGateway:  NewHTTPGateway(client),
		EventGateway: NewEventGateway(publisher),
	}
}
