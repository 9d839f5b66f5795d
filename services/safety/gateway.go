package safety

import (
	"context"

	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/piresc/bookingflow/internal/pkg/requestcontext"
)

// SafetyGW defines the backend safety endpoints and the event bus
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/bookingflow/services/safety SafetyGW
type SafetyGW interface {
	CheckIn(ctx context.Context, rc *requestcontext.RequestContext, req models.CheckInRequest) error
	CheckOut(ctx context.Context, rc *requestcontext.RequestContext, req models.CheckOutRequest) error
	GetExtensionPackages(ctx context.Context, rc *requestcontext.RequestContext, bookingID int64) ([]models.ExtensionPackage, error)
	RequestExtension(ctx context.Context, rc *requestcontext.RequestContext, req models.ExtensionRequest) (*models.ExtensionResponse, error)
	SendSOS(ctx context.Context, rc *requestcontext.RequestContext, alert models.SOSAlert) error

	PublishCheckInEvent(ctx context.Context, subject string, event models.CheckInEvent) error
	PublishSOSSent(ctx context.Context, event models.SOSSentEvent) error
}
