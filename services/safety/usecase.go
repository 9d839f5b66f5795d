package safety

import (
	"context"

	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/piresc/bookingflow/internal/pkg/requestcontext"
)

// SafetyUC defines the check-in, extension and SOS flows
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/bookingflow/services/safety SafetyUC
type SafetyUC interface {
	// Check-in sessions
	CheckIn(ctx context.Context, rc *requestcontext.RequestContext, bookingID int64, req models.StartCheckInRequest) (*models.CheckInSnapshot, error)
	CheckOut(ctx context.Context, rc *requestcontext.RequestContext, bookingID int64) (*models.CheckInSnapshot, error)
	Session(ctx context.Context, rc *requestcontext.RequestContext, bookingID int64) (*models.CheckInSnapshot, error)
	ExtendSession(ctx context.Context, rc *requestcontext.RequestContext, bookingID int64, minutes int) (*models.CheckInSnapshot, error)

	// Paid extensions
	ListExtensionPackages(ctx context.Context, rc *requestcontext.RequestContext, bookingID int64) (*models.ExtensionPackages, error)
	RequestExtension(ctx context.Context, rc *requestcontext.RequestContext, bookingID int64, req models.ExtensionRequest) (*models.ExtensionResult, error)

	// SOS
	TriggerSOS(ctx context.Context, rc *requestcontext.RequestContext, req models.SOSRequest) (*models.SOSStatus, error)
	SOSStatus(ctx context.Context, rc *requestcontext.RequestContext) (*models.SOSStatus, error)

	Close()
}
