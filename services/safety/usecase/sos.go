package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/bookingflow/internal/pkg/logger"
	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/piresc/bookingflow/internal/pkg/requestcontext"
	"github.com/piresc/bookingflow/internal/utils"
	"github.com/piresc/bookingflow/services/location"
	"github.com/piresc/bookingflow/services/safety"
)

// TriggerSOS sends one emergency alert per confirmed request. Without a
// location the alert endpoint is never called.
func (uc *SafetyUC) TriggerSOS(ctx context.Context, rc *requestcontext.RequestContext, req models.SOSRequest) (*models.SOSStatus, error) {
	if rc == nil || rc.UserID == "" {
		return nil, safety.ErrUnauthorized
	}
	if err := utils.Validate(&req); err != nil {
		return nil, err
	}
	if !req.Confirmed {
		uc.metrics.SOSAlerts.WithLabelValues("unconfirmed").Inc()
		return nil, safety.ErrConfirmationRequired
	}

	fix, err := uc.sosFix(ctx, rc.UserID, req)
	if err != nil {
		uc.metrics.SOSAlerts.WithLabelValues("no_location").Inc()
		logger.Warn("Emergency alert without location",
			logger.UserID(rc.UserID),
			logger.Err(err))
		return nil, err
	}

	alert := models.SOSAlert{
		Latitude:     fix.Latitude,
		Longitude:    fix.Longitude,
		LocationText: req.LocationText,
		BookingID:    req.BookingID,
	}
	if alert.LocationText == "" {
		alert.LocationText = utils.LocationText(*fix)
	}

	if err := uc.safetyGW.SendSOS(ctx, rc, alert); err != nil {
		uc.metrics.SOSAlerts.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("%w: %w", safety.ErrSOSFailed, err)
	}

	sentAt := uc.now()
	resetsAt := sentAt.Add(uc.cfg.SOSSentWindow)
	status := models.SOSStatus{
		State:     models.SOSStateSent,
		SentAt:    &sentAt,
		ResetsAt:  &resetsAt,
		BookingID: req.BookingID,
	}

	if err := uc.safetyRepo.SaveSOSSent(ctx, rc.UserID, status, uc.cfg.SOSSentWindow); err != nil {
		logger.Warn("Failed to store sos status", logger.UserID(rc.UserID), logger.Err(err))
	}

	event := models.SOSSentEvent{
		EventID: uuid.New().String(),
		UserID:  rc.UserID,
		Alert:   alert,
		SentAt:  sentAt,
	}
	if err := uc.safetyGW.PublishSOSSent(ctx, event); err != nil {
		logger.Warn("Failed to publish sos event", logger.UserID(rc.UserID), logger.Err(err))
	}

	uc.metrics.SOSAlerts.WithLabelValues("sent").Inc()
	logger.Warn("Emergency alert sent",
		logger.UserID(rc.UserID),
		logger.String("geohash", utils.EncodeLocation(*fix, utils.GeohashPrecision)),
		logger.Any("booking_id", req.BookingID))
	return &status, nil
}

// sosFix prefers coordinates sent with the request, then a high accuracy
// fix within the locate timeout
func (uc *SafetyUC) sosFix(ctx context.Context, userID string, req models.SOSRequest) (*models.Location, error) {
	if req.Latitude != nil && req.Longitude != nil {
		return &models.Location{Latitude: *req.Latitude, Longitude: *req.Longitude, Timestamp: uc.now()}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.SOSLocateTimeout)
	defer cancel()
	return uc.locationUC.Locate(ctx, userID, location.AccuracyHigh)
}

// SOSStatus reports "sent" while the window is open, "idle" otherwise
func (uc *SafetyUC) SOSStatus(ctx context.Context, rc *requestcontext.RequestContext) (*models.SOSStatus, error) {
	if rc == nil || rc.UserID == "" {
		return nil, safety.ErrUnauthorized
	}

	status, err := uc.safetyRepo.GetSOSStatus(ctx, rc.UserID)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return &models.SOSStatus{State: models.SOSStateIdle}, nil
	}
	return status, nil
}
