package websocket

import (
	"context"
	"encoding/json"
	"errors"

	gorilla "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/bookingflow/internal/pkg/constants"
	"github.com/piresc/bookingflow/internal/pkg/logger"
	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/piresc/bookingflow/internal/pkg/requestcontext"
	pkgws "github.com/piresc/bookingflow/internal/pkg/websocket"
	"github.com/piresc/bookingflow/internal/utils"
	"github.com/piresc/bookingflow/services/bookings"
	"github.com/piresc/bookingflow/services/bookings/flow"
	httpHandler "github.com/piresc/bookingflow/services/bookings/handler/http"
)

// BookingHandler streams booking views over a websocket. The connection
// owns one watch; closing it stops the polling.
type BookingHandler struct {
	bookingUC bookings.BookingUC
	manager   *pkgws.Manager
}

// NewBookingHandler creates a new booking websocket handler
func NewBookingHandler(bookingUC bookings.BookingUC, manager *pkgws.Manager) *BookingHandler {
	return &BookingHandler{
		bookingUC: bookingUC,
		manager:   manager,
	}
}

// WatchBooking upgrades the request and pushes booking_view frames
func (h *BookingHandler) WatchBooking(c echo.Context) error {
	bookingID, err := httpHandler.ParseBookingID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}
	rc := requestcontext.FromEchoContext(c)
	ctx := c.Request().Context()

	return h.manager.HandleConnection(c, func(client *pkgws.Client) error {
		return h.serve(ctx, rc, bookingID, client)
	})
}

func (h *BookingHandler) serve(ctx context.Context, rc *requestcontext.RequestContext, bookingID int64, client *pkgws.Client) error {
	sub, err := h.bookingUC.Watch(ctx, rc, bookingID, func(view *flow.View) {
		if err := client.Send(constants.EventBookingView, view); err != nil {
			logger.Debug("Failed to push booking view",
				logger.BookingID(bookingID),
				logger.String("client_id", client.ID),
				logger.Err(err))
		}
	})
	if err != nil {
		code, severity := classify(err)
		return h.manager.SendCategorizedError(client, err, code, severity)
	}
	defer sub.Stop()

	for {
		_, raw, err := client.Conn.ReadMessage()
		if err != nil {
			if gorilla.IsUnexpectedCloseError(err, gorilla.CloseGoingAway, gorilla.CloseNormalClosure) {
				logger.Debug("Booking websocket closed unexpectedly",
					logger.BookingID(bookingID),
					logger.Err(err))
			}
			return nil
		}

		var msg models.WSMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			_ = h.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Invalid message format")
			continue
		}

		switch msg.Event {
		case constants.EventPing:
			_ = client.Send(constants.EventPong, struct{}{})
		case constants.EventRefresh:
			h.bookingUC.Nudge(bookingID)
		default:
			_ = h.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Unknown event: "+msg.Event)
		}
	}
}

func classify(err error) (string, constants.ErrorSeverity) {
	switch {
	case errors.Is(err, bookings.ErrNotParticipant):
		return constants.ErrorNotParticipant, constants.ErrorSeveritySecurity
	case errors.Is(err, bookings.ErrUnauthorized):
		return constants.ErrorUnauthorized, constants.ErrorSeveritySecurity
	case errors.Is(err, bookings.ErrBookingNotFound):
		return constants.ErrorBookingRefresh, constants.ErrorSeverityClient
	}
	return constants.ErrorBookingRefresh, constants.ErrorSeverityServer
}
