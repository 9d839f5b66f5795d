package usecase

import (
	"context"
	"time"

	"github.com/piresc/bookingflow/internal/pkg/logger"
	"github.com/piresc/bookingflow/internal/pkg/requestcontext"
	"github.com/piresc/bookingflow/services/bookings"
	"github.com/piresc/bookingflow/services/bookings/flow"
)

// watch is one subscription's poll loop
type watch struct {
	bookingID int64
	cancel    context.CancelFunc
	done      chan struct{}
	nudge     chan struct{}
}

func (w *watch) Stop() {
	w.cancel()
	<-w.done
}

func (w *watch) Done() <-chan struct{} { return w.done }

// Watch fetches the booking once, delivers the view and keeps polling on a
// fixed interval until the subscription is stopped or ctx ends. onUpdate
// only sees views whose fingerprint differs from the last delivered one and
// must not call Stop itself.
func (u *BookingUC) Watch(ctx context.Context, rc *requestcontext.RequestContext, bookingID int64, onUpdate bookings.UpdateFunc) (bookings.Subscription, error) {
	view, err := u.GetView(ctx, rc, bookingID)
	if err != nil {
		return nil, err
	}
	onUpdate(view)

	ctx, cancel := context.WithCancel(ctx)
	w := &watch{
		bookingID: bookingID,
		cancel:    cancel,
		done:      make(chan struct{}),
		nudge:     make(chan struct{}, 1),
	}
	u.register(w)

	go u.poll(ctx, rc, w, view, onUpdate)
	return w, nil
}

// Nudge makes every watch of the booking refresh now instead of at its next tick
func (u *BookingUC) Nudge(bookingID int64) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for w := range u.watches[bookingID] {
		select {
		case w.nudge <- struct{}{}:
		default:
		}
	}
}

func (u *BookingUC) poll(ctx context.Context, rc *requestcontext.RequestContext, w *watch, last *flow.View, onUpdate bookings.UpdateFunc) {
	defer close(w.done)
	defer u.unregister(w)

	if u.cfg.StopOnTerminal && last.Terminal {
		return
	}

	ticker := time.NewTicker(u.cfg.PollInterval)
	defer ticker.Stop()

	fingerprint := last.Fingerprint()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-w.nudge:
		}

		view, err := u.GetView(ctx, rc.Clone(), w.bookingID)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			u.metrics.Polls.WithLabelValues("error").Inc()
			logger.Debug("Booking poll failed",
				logger.BookingID(w.bookingID),
				logger.UserID(rc.UserID),
				logger.Err(err))
			continue
		}

		next := view.Fingerprint()
		if next == fingerprint {
			u.metrics.Polls.WithLabelValues("unchanged").Inc()
			continue
		}
		fingerprint = next
		u.metrics.Polls.WithLabelValues("changed").Inc()
		onUpdate(view)

		if u.cfg.StopOnTerminal && view.Terminal {
			logger.Debug("Booking reached a terminal status, watch ends",
				logger.BookingID(w.bookingID),
				logger.String("status", string(view.Status)))
			return
		}
	}
}

func (u *BookingUC) register(w *watch) {
	u.mu.Lock()
	defer u.mu.Unlock()

	set, ok := u.watches[w.bookingID]
	if !ok {
		set = make(map[*watch]struct{})
		u.watches[w.bookingID] = set
	}
	set[w] = struct{}{}
	u.metrics.ActiveWatches.Inc()
}

func (u *BookingUC) unregister(w *watch) {
	u.mu.Lock()
	defer u.mu.Unlock()

	set := u.watches[w.bookingID]
	if _, ok := set[w]; !ok {
		return
	}
	delete(set, w)
	if len(set) == 0 {
		delete(u.watches, w.bookingID)
	}
	u.metrics.ActiveWatches.Dec()
}

// activeWatches counts running subscriptions of a booking
func (u *BookingUC) activeWatches(bookingID int64) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.watches[bookingID])
}
