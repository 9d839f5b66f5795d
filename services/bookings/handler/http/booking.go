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
	"github.com/piresc/bookingflow/internal/pkg/requestcontext"
	"github.com/piresc/bookingflow/internal/utils"
	"github.com/piresc/bookingflow/services/bookings"
	"github.com/piresc/bookingflow/services/bookings/flow"
)

// BookingHandler handles HTTP requests for booking views and actions
type BookingHandler struct {
	bookingUC bookings.BookingUC
}

// NewBookingHandler creates a new booking HTTP handler
func NewBookingHandler(bookingUC bookings.BookingUC) *BookingHandler {
	return &BookingHandler{
		bookingUC: bookingUC,
	}
}

// GetBooking returns the caller's view of a booking
func (h *BookingHandler) GetBooking(c echo.Context) error {
	bookingID, err := ParseBookingID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	view, err := h.bookingUC.GetView(c.Request().Context(), requestcontext.FromEchoContext(c), bookingID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", view)
}

// PerformAction runs one booking transition
func (h *BookingHandler) PerformAction(c echo.Context) error {
	bookingID, err := ParseBookingID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req flow.ActionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	req.Action = flow.Action(c.Param("action"))

	result, err := h.bookingUC.PerformAction(c.Request().Context(), requestcontext.FromEchoContext(c), bookingID, req)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Action performed", result)
}

// StartDeposit creates the deposit QR payment
func (h *BookingHandler) StartDeposit(c echo.Context) error {
	bookingID, err := ParseBookingID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	payment, err := h.bookingUC.StartDeposit(c.Request().Context(), requestcontext.FromEchoContext(c), bookingID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Deposit payment created", payment)
}

// AwaitDeposit long-polls the deposit state
func (h *BookingHandler) AwaitDeposit(c echo.Context) error {
	bookingID, err := ParseBookingID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	status, err := h.bookingUC.AwaitDeposit(c.Request().Context(), requestcontext.FromEchoContext(c), bookingID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", status)
}

// ParseBookingID reads the :id path parameter
func ParseBookingID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid booking id")
	}
	return id, nil
}

// respondError maps use case errors onto the response envelope
func respondError(c echo.Context, err error) error {
	if details, ok := utils.AsValidationError(err); ok {
		return utils.ValidationErrorResponse(c, details)
	}
	if ce, ok := bookings.AsConfirmationRequired(err); ok {
		return utils.ConfirmationRequiredResponse(c, ce)
	}

	switch {
	case errors.Is(err, bookings.ErrUnauthorized):
		return utils.UnauthorizedResponse(c, "")
	case errors.Is(err, bookings.ErrNotParticipant):
		return utils.ForbiddenResponse(c, "You are not a party of this booking")
	case errors.Is(err, bookings.ErrBookingNotFound):
		return utils.NotFoundResponse(c, "Booking not found")
	case errors.Is(err, flow.ErrUnknownAction):
		return utils.NotFoundResponse(c, "Unknown action")
	case errors.Is(err, flow.ErrInvalidInput):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, bookings.ErrActionNotAllowed):
		return utils.ConflictResponse(c, "This action is not available for the booking right now")
	case errors.Is(err, bookings.ErrDepositNotDue):
		return utils.ConflictResponse(c, "No deposit is due for this booking")
	}

	if ae, ok := bookings.AsActionError(err); ok {
		if apiErr, ok := httpclient.AsAPIError(err); ok && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			return utils.UnprocessableResponse(c, ae.Message)
		}
		return utils.BadGatewayResponse(c, ae.Message)
	}

	switch {
	case errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen):
		return utils.ServiceUnavailableResponse(c, "Booking service is temporarily unavailable")
	case errors.Is(err, context.DeadlineExceeded):
		return utils.ErrorResponseHandler(c, http.StatusGatewayTimeout, "Booking service did not answer in time")
	}
	if _, ok := httpclient.AsAPIError(err); ok {
		return utils.BadGatewayResponse(c, bookings.GenericActionMessage)
	}

	logger.Error("Booking request failed",
		logger.String("path", c.Path()),
		logger.Err(err))
	return utils.InternalServerErrorResponse(c, "")
}
