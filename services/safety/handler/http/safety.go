package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/bookingflow/internal/pkg/circuitbreaker"
	httpclient "github.com/piresc/bookingflow/internal/pkg/http"
	"github.com/piresc/bookingflow/internal/pkg/logger"
	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/piresc/bookingflow/internal/pkg/requestcontext"
	"github.com/piresc/bookingflow/internal/utils"
	"github.com/piresc/bookingflow/services/location"
	"github.com/piresc/bookingflow/services/safety"
	"github.com/piresc/bookingflow/services/safety/checkin"
)

// SafetyHandler handles check-in, extension and SOS requests
type SafetyHandler struct {
	safetyUC safety.SafetyUC
}

// NewSafetyHandler creates a new safety HTTP handler
func NewSafetyHandler(safetyUC safety.SafetyUC) *SafetyHandler {
	return &SafetyHandler{
		safetyUC: safetyUC,
	}
}

// CheckIn starts the caller's session for a booking
func (h *SafetyHandler) CheckIn(c echo.Context) error {
	bookingID, err := parseBookingID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req models.StartCheckInRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	snapshot, err := h.safetyUC.CheckIn(c.Request().Context(), requestcontext.FromEchoContext(c), bookingID, req)
	if err != nil {
		return respondError(c, err, safety.GenericMessage)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Checked in", snapshot)
}

// CheckOut ends the caller's session
func (h *SafetyHandler) CheckOut(c echo.Context) error {
	bookingID, err := parseBookingID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	snapshot, err := h.safetyUC.CheckOut(c.Request().Context(), requestcontext.FromEchoContext(c), bookingID)
	if err != nil {
		return respondError(c, err, safety.GenericMessage)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Checked out", snapshot)
}

// GetSession returns the running session
func (h *SafetyHandler) GetSession(c echo.Context) error {
	bookingID, err := parseBookingID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	snapshot, err := h.safetyUC.Session(c.Request().Context(), requestcontext.FromEchoContext(c), bookingID)
	if err != nil {
		return respondError(c, err, safety.GenericMessage)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", snapshot)
}

// ExtendSession applies granted minutes to the running session
func (h *SafetyHandler) ExtendSession(c echo.Context) error {
	bookingID, err := parseBookingID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req models.ExtendSessionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.Validate(&req); err != nil {
		return respondError(c, err, safety.GenericMessage)
	}

	snapshot, err := h.safetyUC.ExtendSession(c.Request().Context(), requestcontext.FromEchoContext(c), bookingID, req.Minutes)
	if err != nil {
		return respondError(c, err, safety.GenericMessage)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Session extended", snapshot)
}

// ListExtensionPackages returns the purchasable extensions
func (h *SafetyHandler) ListExtensionPackages(c echo.Context) error {
	bookingID, err := parseBookingID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	packages, err := h.safetyUC.ListExtensionPackages(c.Request().Context(), requestcontext.FromEchoContext(c), bookingID)
	if err != nil {
		return respondError(c, err, safety.GenericMessage)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", packages)
}

// RequestExtension buys extra time
func (h *SafetyHandler) RequestExtension(c echo.Context) error {
	bookingID, err := parseBookingID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req models.ExtensionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	result, err := h.safetyUC.RequestExtension(c.Request().Context(), requestcontext.FromEchoContext(c), bookingID, req)
	if err != nil {
		return respondError(c, err, safety.ExtensionFailedMessage)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", result)
}

// TriggerSOS sends the emergency alert
func (h *SafetyHandler) TriggerSOS(c echo.Context) error {
	var req models.SOSRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	status, err := h.safetyUC.TriggerSOS(c.Request().Context(), requestcontext.FromEchoContext(c), req)
	if err != nil {
		return respondError(c, err, safety.SOSFailedMessage)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Emergency alert sent", status)
}

// GetSOSStatus reports whether an alert was sent in the last window
func (h *SafetyHandler) GetSOSStatus(c echo.Context) error {
	status, err := h.safetyUC.SOSStatus(c.Request().Context(), requestcontext.FromEchoContext(c))
	if err != nil {
		return respondError(c, err, safety.GenericMessage)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", status)
}

func parseBookingID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid booking id")
	}
	return id, nil
}

// respondError maps use case errors onto the response envelope. fallback is
// shown when the backend failed without a message.
func respondError(c echo.Context, err error, fallback string) error {
	if details, ok := utils.AsValidationError(err); ok {
		return utils.ValidationErrorResponse(c, details)
	}

	switch {
	case errors.Is(err, safety.ErrConfirmationRequired):
		return utils.ConfirmationRequiredResponse(c, map[string]string{"action": "sos", "prompt": safety.ConfirmSOSPrompt})
	case errors.Is(err, safety.ErrUnauthorized):
		return utils.UnauthorizedResponse(c, "")
	case errors.Is(err, safety.ErrSessionNotFound):
		return utils.NotFoundResponse(c, "No check-in session for this booking")
	case errors.Is(err, safety.ErrSessionExists):
		return utils.ConflictResponse(c, "Already checked in for this booking")
	case errors.Is(err, checkin.ErrNotRunning):
		return utils.ConflictResponse(c, "The check-in session is not running")
	case errors.Is(err, checkin.ErrInvalidDuration):
		return utils.BadRequestResponse(c, "Minutes must be positive")
	case errors.Is(err, location.ErrLocationUnavailable):
		return utils.UnprocessableResponse(c, safety.LocationUnavailableMessage)
	case errors.Is(err, safety.ErrExtensionRejected):
		return utils.UnprocessableResponse(c, safety.ExtensionFailedMessage)
	case errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen):
		return utils.ServiceUnavailableResponse(c, "Safety service is temporarily unavailable")
	case errors.Is(err, context.DeadlineExceeded):
		return utils.ErrorResponseHandler(c, http.StatusGatewayTimeout, "Safety service did not answer in time")
	}

	if apiErr, ok := httpclient.AsAPIError(err); ok {
		message := safety.FailureMessage(err, fallback)
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			return utils.UnprocessableResponse(c, message)
		}
		return utils.BadGatewayResponse(c, message)
	}
	if errors.Is(err, safety.ErrSOSFailed) {
		return utils.BadGatewayResponse(c, safety.SOSFailedMessage)
	}

	logger.Error("Safety request failed",
		logger.String("path", c.Path()),
		logger.Err(err))
	return utils.InternalServerErrorResponse(c, "")
}
