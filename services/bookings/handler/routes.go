package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/bookingflow/internal/pkg/events"
	pkgws "github.com/piresc/bookingflow/internal/pkg/websocket"
	"github.com/piresc/bookingflow/services/bookings"
	eventsHandler "github.com/piresc/bookingflow/services/bookings/handler/events"
	httpHandler "github.com/piresc/bookingflow/services/bookings/handler/http"
	wsHandler "github.com/piresc/bookingflow/services/bookings/handler/websocket"
)

// Handler combines all handlers for the booking service
type Handler struct {
	bookingHTTP   *httpHandler.BookingHandler
	bookingWS     *wsHandler.BookingHandler
	bookingEvents *eventsHandler.BookingHandler
}

// NewHandler creates a new combined handler
func NewHandler(
	bookingUC bookings.BookingUC,
	wsManager *pkgws.Manager,
	subscriber events.Subscriber,
) *Handler {
	return &Handler{
		bookingHTTP:   httpHandler.NewBookingHandler(bookingUC),
		bookingWS:     wsHandler.NewBookingHandler(bookingUC, wsManager),
		bookingEvents: eventsHandler.NewBookingHandler(bookingUC, subscriber),
	}
}

// RegisterRoutes registers the booking routes on the authenticated groups
func (h *Handler) RegisterRoutes(api *echo.Group, ws *echo.Group) {
	bookingGroup := api.Group("/bookings")
	bookingGroup.GET("/:id", h.bookingHTTP.GetBooking)
	bookingGroup.POST("/:id/actions/:action", h.bookingHTTP.PerformAction)
	bookingGroup.POST("/:id/deposit", h.bookingHTTP.StartDeposit)
	bookingGroup.GET("/:id/deposit", h.bookingHTTP.AwaitDeposit)

	ws.GET("/bookings/:id", h.bookingWS.WatchBooking)
}

// InitEventConsumers subscribes to booking events of other instances
func (h *Handler) InitEventConsumers() error {
	return h.bookingEvents.InitConsumers()
}

// StopEventConsumers ends the booking event subscriptions
func (h *Handler) StopEventConsumers() {
	h.bookingEvents.Stop()
}
