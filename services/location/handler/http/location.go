package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/bookingflow/internal/pkg/logger"
	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/piresc/bookingflow/internal/pkg/requestcontext"
	"github.com/piresc/bookingflow/internal/utils"
	"github.com/piresc/bookingflow/services/location"
)

// LocationHandler handles HTTP requests for device location fixes
type LocationHandler struct {
	locationUC location.LocationUC
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
	}
}

// ReportLocation stores the caller's latest fix
func (h *LocationHandler) ReportLocation(c echo.Context) error {
	rc := requestcontext.FromEchoContext(c)
	if rc.UserID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.Location
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	stored, err := h.locationUC.ReportLocation(c.Request().Context(), rc.UserID, req)
	if err != nil {
		if details, ok := utils.AsValidationError(err); ok {
			return utils.ValidationErrorResponse(c, details)
		}
		logger.Error("Failed to store location",
			logger.UserID(rc.UserID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to store location")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location stored", stored)
}
