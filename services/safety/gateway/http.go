package gateway

import (
	"context"
	"fmt"
	"net/http"

	httpclient "github.com/piresc/bookingflow/internal/pkg/http"
	"github.com/piresc/bookingflow/internal/pkg/logger"
	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/piresc/bookingflow/internal/pkg/requestcontext"
	"github.com/piresc/bookingflow/services/safety"
)

const (
	endpointCheckIn           = "/safety/check-in"
	endpointCheckOut          = "/safety/check-out"
	endpointSOS               = "/safety/sos"
	endpointExtend            = "/bookings/extend"
	endpointExtensionPackages = "/bookings/%d/extension-packages"
)

// HTTPGateway talks to the marketplace safety and extension endpoints
type HTTPGateway struct {
	client *httpclient.Client
}

// NewHTTPGateway creates a new HTTP gateway
func NewHTTPGateway(client *httpclient.Client) *HTTPGateway {
	return &HTTPGateway{client: client}
}

// CheckIn registers the start of an in-person session
func (gw *HTTPGateway) CheckIn(ctx context.Context, rc *requestcontext.RequestContext, req models.CheckInRequest) error {
	if err := gw.client.PostJSON(ctx, rc, endpointCheckIn, req, nil); err != nil {
		return fmt.Errorf("check-in failed: %w", classify(err))
	}
	return nil
}

// CheckOut registers the end of the session
func (gw *HTTPGateway) CheckOut(ctx context.Context, rc *requestcontext.RequestContext, req models.CheckOutRequest) error {
	if err := gw.client.PostJSON(ctx, rc, endpointCheckOut, req, nil); err != nil {
		return fmt.Errorf("check-out failed: %w", classify(err))
	}
	return nil
}

// GetExtensionPackages lists the purchasable extensions of a booking
func (gw *HTTPGateway) GetExtensionPackages(ctx context.Context, rc *requestcontext.RequestContext, bookingID int64) ([]models.ExtensionPackage, error) {
	var resp struct {
		Packages []models.ExtensionPackage `json:"packages"`
	}
	if err := gw.client.GetJSON(ctx, rc, fmt.Sprintf(endpointExtensionPackages, bookingID), &resp); err != nil {
		return nil, fmt.Errorf("failed to get extension packages: %w", classify(err))
	}
	return resp.Packages, nil
}

// RequestExtension asks the backend to sell extra time
func (gw *HTTPGateway) RequestExtension(ctx context.Context, rc *requestcontext.RequestContext, req models.ExtensionRequest) (*models.ExtensionResponse, error) {
	var resp models.ExtensionResponse
	if err := gw.client.PostJSON(ctx, rc, endpointExtend, req, &resp); err != nil {
		return nil, fmt.Errorf("extension request failed: %w", classify(err))
	}
	return &resp, nil
}

// SendSOS posts the emergency alert. It is never retried.
func (gw *HTTPGateway) SendSOS(ctx context.Context, rc *requestcontext.RequestContext, alert models.SOSAlert) error {
	if err := gw.client.PostJSON(ctx, rc, endpointSOS, alert, nil); err != nil {
		logger.Error("Emergency alert rejected",
			logger.UserID(rc.UserID),
			logger.String("request_id", rc.RequestID),
			logger.Err(err))
		return classify(err)
	}
	return nil
}

func classify(err error) error {
	if apiErr, ok := httpclient.AsAPIError(err); ok && apiErr.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %w", safety.ErrUnauthorized, err)
	}
	return err
}
