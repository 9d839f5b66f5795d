package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/bookingflow/services/location"
	httpHandler "github.com/piresc/bookingflow/services/location/handler/http"
)

// Handler combines all handlers for the location service
type Handler struct {
	locationHTTP *httpHandler.LocationHandler
}

// NewHandler creates a new combined handler
func NewHandler(locationUC location.LocationUC) *Handler {
	return &Handler{
		locationHTTP: httpHandler.NewLocationHandler(locationUC),
	}
}

// RegisterRoutes registers the location routes on the authenticated group
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/locations", h.locationHTTP.ReportLocation)
}
