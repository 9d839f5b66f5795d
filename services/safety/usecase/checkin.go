package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/bookingflow/internal/pkg/constants"
	"github.com/piresc/bookingflow/internal/pkg/logger"
	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/piresc/bookingflow/internal/pkg/requestcontext"
	"github.com/piresc/bookingflow/internal/utils"
	"github.com/piresc/bookingflow/services/location"
	"github.com/piresc/bookingflow/services/safety"
	"github.com/piresc/bookingflow/services/safety/checkin"
)

const eventTimeout = 5 * time.Second

// CheckIn starts a session. A location fix is attempted but never required.
func (uc *SafetyUC) CheckIn(ctx context.Context, rc *requestcontext.RequestContext, bookingID int64, req models.StartCheckInRequest) (*models.CheckInSnapshot, error) {
	if rc == nil || rc.UserID == "" {
		return nil, safety.ErrUnauthorized
	}
	if err := utils.Validate(&req); err != nil {
		return nil, err
	}

	key := sessionKey{userID: rc.UserID, bookingID: bookingID}
	if !uc.reserve(key) {
		return nil, safety.ErrSessionExists
	}
	registered := false
	defer func() {
		if !registered {
			uc.release(key)
		}
	}()

	body := models.CheckInRequest{BookingID: bookingID}
	if req.Latitude != nil && req.Longitude != nil {
		body.Latitude, body.Longitude = req.Latitude, req.Longitude
	} else if fix := uc.bestEffortFix(ctx, rc.UserID); fix != nil {
		body.Latitude, body.Longitude = &fix.Latitude, &fix.Longitude
	}

	if err := uc.safetyGW.CheckIn(ctx, rc, body); err != nil {
		return nil, err
	}

	session, err := checkin.NewSession(bookingID, rc.UserID, req.ExpectedDurationMinutes, uc.now())
	if err != nil {
		return nil, err
	}
	session.HasLocation = body.Latitude != nil

	userID := rc.UserID
	timer := checkin.StartTimer(session, uc.cfg.CheckInTick, uc.now, func(s models.CheckInSnapshot) {
		uc.onTransition(userID, s)
	})

	uc.mu.Lock()
	delete(uc.reserved, key)
	uc.sessions[key] = timer
	uc.mu.Unlock()
	registered = true

	uc.metrics.CheckInSessions.Inc()
	uc.metrics.CheckInTransitions.WithLabelValues(string(checkin.StatusActive)).Inc()

	if err := uc.locationUC.StartTracking(userID, bookingID); err != nil {
		logger.Warn("Failed to start location tracking",
			logger.UserID(userID),
			logger.BookingID(bookingID),
			logger.Err(err))
	}

	snapshot := timer.Snapshot()
	uc.publishCheckIn(constants.SubjectCheckInStarted, userID, snapshot)

	logger.Info("Check-in started",
		logger.UserID(userID),
		logger.BookingID(bookingID),
		logger.Int("expected_minutes", req.ExpectedDurationMinutes),
		logger.Bool("has_location", session.HasLocation))
	return &snapshot, nil
}

// CheckOut ends the session once the backend accepted it. On failure the
// session keeps running.
func (uc *SafetyUC) CheckOut(ctx context.Context, rc *requestcontext.RequestContext, bookingID int64) (*models.CheckInSnapshot, error) {
	if rc == nil || rc.UserID == "" {
		return nil, safety.ErrUnauthorized
	}

	key := sessionKey{userID: rc.UserID, bookingID: bookingID}
	timer, ok := uc.timer(key)
	if !ok {
		return nil, safety.ErrSessionNotFound
	}

	if err := uc.safetyGW.CheckOut(ctx, rc, models.CheckOutRequest{BookingID: bookingID}); err != nil {
		return nil, err
	}

	snapshot := timer.End()

	uc.mu.Lock()
	if uc.sessions[key] == timer {
		delete(uc.sessions, key)
	}
	uc.mu.Unlock()

	uc.metrics.CheckInSessions.Dec()
	uc.metrics.CheckInTransitions.WithLabelValues(string(checkin.StatusCompleted)).Inc()

	if err := uc.locationUC.StopTracking(rc.UserID, bookingID); err != nil && !errors.Is(err, location.ErrNotTracking) {
		logger.Warn("Failed to stop location tracking",
			logger.UserID(rc.UserID),
			logger.BookingID(bookingID),
			logger.Err(err))
	}

	uc.publishCheckIn(constants.SubjectCheckInCompleted, rc.UserID, snapshot)

	logger.Info("Check-out completed",
		logger.UserID(rc.UserID),
		logger.BookingID(bookingID),
		logger.Int64("elapsed_seconds", snapshot.ElapsedSeconds))
	return &snapshot, nil
}

// Session returns the running session of the caller
func (uc *SafetyUC) Session(ctx context.Context, rc *requestcontext.RequestContext, bookingID int64) (*models.CheckInSnapshot, error) {
	if rc == nil || rc.UserID == "" {
		return nil, safety.ErrUnauthorized
	}

	timer, ok := uc.timer(sessionKey{userID: rc.UserID, bookingID: bookingID})
	if !ok {
		return nil, safety.ErrSessionNotFound
	}
	snapshot := timer.Snapshot()
	return &snapshot, nil
}

// ExtendSession lengthens the local session after the extra time was granted
func (uc *SafetyUC) ExtendSession(ctx context.Context, rc *requestcontext.RequestContext, bookingID int64, minutes int) (*models.CheckInSnapshot, error) {
	if rc == nil || rc.UserID == "" {
		return nil, safety.ErrUnauthorized
	}

	timer, ok := uc.timer(sessionKey{userID: rc.UserID, bookingID: bookingID})
	if !ok {
		return nil, safety.ErrSessionNotFound
	}

	snapshot, err := timer.Extend(minutes)
	if err != nil {
		return nil, err
	}

	logger.Info("Check-in session extended",
		logger.UserID(rc.UserID),
		logger.BookingID(bookingID),
		logger.Int("minutes", minutes),
		logger.String("status", snapshot.Status))
	return &snapshot, nil
}

// reserve claims key for a check-in that is still talking to the backend
func (uc *SafetyUC) reserve(key sessionKey) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, running := uc.sessions[key]; running {
		return false
	}
	if _, pending := uc.reserved[key]; pending {
		return false
	}
	uc.reserved[key] = struct{}{}
	return true
}

func (uc *SafetyUC) release(key sessionKey) {
	uc.mu.Lock()
	delete(uc.reserved, key)
	uc.mu.Unlock()
}

func (uc *SafetyUC) timer(key sessionKey) (*checkin.Timer, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	timer, ok := uc.sessions[key]
	return timer, ok
}

func (uc *SafetyUC) bestEffortFix(ctx context.Context, userID string) *models.Location {
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.CheckInLocateTimeout)
	defer cancel()

	fix, err := uc.locationUC.Locate(ctx, userID, location.AccuracyBestEffort)
	if err != nil {
		logger.Info("Checking in without location",
			logger.UserID(userID),
			logger.Err(err))
		return nil
	}
	return fix
}

// onTransition runs on the timer goroutine
func (uc *SafetyUC) onTransition(userID string, snapshot models.CheckInSnapshot) {
	uc.metrics.CheckInTransitions.WithLabelValues(snapshot.Status).Inc()

	if snapshot.Status != string(checkin.StatusOverdue) {
		return
	}

	logger.Warn("Check-in session overdue",
		logger.UserID(userID),
		logger.BookingID(snapshot.BookingID),
		logger.Int64("elapsed_seconds", snapshot.ElapsedSeconds),
		logger.Int("expected_minutes", snapshot.ExpectedDurationMinutes))

	uc.publishCheckIn(constants.SubjectCheckInOverdue, userID, snapshot)
	if uc.notifier != nil {
		uc.notifier.NotifyUser(userID, constants.EventCheckInOverdue, snapshot)
	}
}

func (uc *SafetyUC) publishCheckIn(subject, userID string, snapshot models.CheckInSnapshot) {
	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()

	event := models.CheckInEvent{
		EventID:    uuid.New().String(),
		BookingID:  snapshot.BookingID,
		UserID:     userID,
		Status:     snapshot.Status,
		Elapsed:    snapshot.ElapsedSeconds,
		Expected:   snapshot.ExpectedDurationMinutes,
		OccurredAt: uc.now(),
	}
	if err := uc.safetyGW.PublishCheckInEvent(ctx, subject, event); err != nil {
		logger.Warn("Failed to publish check-in event",
			logger.String("subject", subject),
			logger.BookingID(snapshot.BookingID),
			logger.Err(err))
	}
}
