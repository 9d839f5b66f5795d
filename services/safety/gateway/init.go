package gateway

import (
	"github.com/piresc/bookingflow/internal/pkg/events"
	httpclient "github.com/piresc/bookingflow/internal/pkg/http"
	"github.com/piresc/bookingflow/services/safety"
)

// SafetyGW combines the backend HTTP gateway and the event gateway
type SafetyGW struct {
	*HTTPGateway
	*EventGateway
}

// NewSafetyGW creates the safety gateway
func NewSafetyGW(client *httpclient.Client, publisher events.Publisher) safety.SafetyGW {
	return &SafetyGW{
		HTTPGateway:  NewHTTPGateway(client),
		EventGateway: NewEventGateway(publisher),
	}
}
