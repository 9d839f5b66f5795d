package safety

import (
	"errors"

	httpclient "github.com/piresc/bookingflow/internal/pkg/http"
)

// User facing messages
const (
	LocationUnavailableMessage = "Unable to get your location. Please enable location services and try again."
	SOSFailedMessage           = "Failed to send the emergency alert. Please try again."
	ExtensionFailedMessage     = "Failed to extend the session. Please try again."
	GenericMessage             = "Something went wrong. Please try again."
	ConfirmSOSPrompt           = "confirm_sos"
)

var (
	ErrUnauthorized         = errors.New("unauthorized")
	ErrSessionNotFound      = errors.New("no check-in session for this booking")
	ErrSessionExists        = errors.New("check-in session already running")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrSOSFailed            = errors.New("emergency alert failed")
	ErrExtensionRejected    = errors.New("extension was not granted")
)

// FailureMessage prefers the backend's error text over the generic one
func FailureMessage(err error, fallback string) string {
	if apiErr, ok := httpclient.AsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
