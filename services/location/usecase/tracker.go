package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/bookingflow/internal/pkg/logger"
	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/piresc/bookingflow/services/location"
)

// trackerKey matches the check-in session a tracker belongs to
type trackerKey struct {
	userID    string
	bookingID int64
}

type tracker struct {
	bookingID int64
	cancel    context.CancelFunc
	done      chan struct{}
}

// StartTracking samples the user's fixes every tracking interval and
// publishes each new one for bookingID until StopTracking is called with
// the same user and booking
func (uc *LocationUC) StartTracking(userID string, bookingID int64) error {
	uc.workersMutex.Lock()
	defer uc.workersMutex.Unlock()

	key := trackerKey{userID: userID, bookingID: bookingID}
	if _, exists := uc.workers[key]; exists {
		return fmt.Errorf("%w: user %s booking %d", location.ErrAlreadyTracking, userID, bookingID)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t := &tracker{
		bookingID: bookingID,
		cancel:    cancel,
		done:      make(chan struct{}),
	}
	uc.workers[key] = t

	go uc.track(ctx, t, userID)

	logger.Info("Location tracking started",
		logger.UserID(userID),
		logger.BookingID(bookingID),
		logger.Duration("interval", uc.trackingInterval))
	return nil
}

// StopTracking cancels the worker of one booking and waits for it to
// exit. Trackers of the user's other bookings keep running.
func (uc *LocationUC) StopTracking(userID string, bookingID int64) error {
	key := trackerKey{userID: userID, bookingID: bookingID}

	uc.workersMutex.Lock()
	t, exists := uc.workers[key]
	if exists {
		delete(uc.workers, key)
	}
	uc.workersMutex.Unlock()

	if !exists {
		return fmt.Errorf("%w: user %s booking %d", location.ErrNotTracking, userID, bookingID)
	}

	t.cancel()
	<-t.done

	logger.Info("Location tracking stopped",
		logger.UserID(userID),
		logger.BookingID(t.bookingID))
	return nil
}

// StopAll stops every worker, used on shutdown
func (uc *LocationUC) StopAll() {
	uc.workersMutex.Lock()
	keys := make([]trackerKey, 0, len(uc.workers))
	for key := range uc.workers {
		keys = append(keys, key)
	}
	uc.workersMutex.Unlock()

	for _, key := range keys {
		_ = uc.StopTracking(key.userID, key.bookingID)
	}
}

func (uc *LocationUC) tracking(userID string, bookingID int64) bool {
	uc.workersMutex.Lock()
	defer uc.workersMutex.Unlock()
	_, ok := uc.workers[trackerKey{userID: userID, bookingID: bookingID}]
	return ok
}

func (uc *LocationUC) track(ctx context.Context, t *tracker, userID string) {
	defer close(t.done)

	ticker := time.NewTicker(uc.trackingInterval)
	defer ticker.Stop()

	var last time.Time
	for {
		last = uc.sample(ctx, t, userID, last)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// sample publishes the stored fix when it is newer than the last one sent
func (uc *LocationUC) sample(ctx context.Context, t *tracker, userID string, last time.Time) time.Time {
	fix, err := uc.repo.GetLastLocation(ctx, userID)
	if err != nil {
		if ctx.Err() == nil {
			logger.Debug("Tracking sample failed", logger.UserID(userID), logger.Err(err))
		}
		return last
	}
	if fix == nil || !fix.Timestamp.After(last) {
		return last
	}
	if ctx.Err() != nil {
		return last
	}

	update := models.LocationUpdate{
		BookingID: t.bookingID,
		UserID:    userID,
		Location:  *fix,
		CreatedAt: uc.now(),
	}
	if err := uc.gw.PublishLocationUpdate(ctx, update); err != nil {
		logger.Warn("Failed to publish location update",
			logger.UserID(userID),
			logger.BookingID(t.bookingID),
			logger.Err(err))
		return last
	}
	return fix.Timestamp
}
