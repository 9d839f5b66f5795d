package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/bookingflow/services/safety"
	httpHandler "github.com/piresc/bookingflow/services/safety/handler/http"
)

// Handler combines all handlers for the safety service
type Handler struct {
	safetyHTTP *httpHandler.SafetyHandler
}

// NewHandler creates a new combined handler
func NewHandler(safetyUC safety.SafetyUC) *Handler {
	return &Handler{
		safetyHTTP: httpHandler.NewSafetyHandler(safetyUC),
	}
}

// RegisterRoutes registers the check-in and extension routes
func (h *Handler) RegisterRoutes(api *echo.Group) {
	bookingGroup := api.Group("/bookings")
	bookingGroup.POST("/:id/check-in", h.safetyHTTP.CheckIn)
	bookingGroup.GET("/:id/check-in", h.safetyHTTP.GetSession)
	bookingGroup.POST("/:id/check-in/extend", h.safetyHTTP.ExtendSession)
	bookingGroup.POST("/:id/check-out", h.safetyHTTP.CheckOut)
	bookingGroup.GET("/:id/extension-packages", h.safetyHTTP.ListExtensionPackages)
	bookingGroup.POST("/:id/extensions", h.safetyHTTP.RequestExtension)
}

// RegisterSOSRoutes registers the SOS routes. The group must not be rate limited.
func (h *Handler) RegisterSOSRoutes(sos *echo.Group) {
	sos.POST("/sos", h.safetyHTTP.TriggerSOS)
	sos.GET("/sos", h.safetyHTTP.GetSOSStatus)
}
