package events

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/piresc/bookingflow/internal/pkg/constants"
	"github.com/piresc/bookingflow/internal/pkg/events"
	"github.com/piresc/bookingflow/internal/pkg/logger"
	"github.com/piresc/bookingflow/services/bookings"
)

// BookingHandler refreshes local watches when any instance reports a
// change of a booking
type BookingHandler struct {
	bookingUC  bookings.BookingUC
	subscriber events.Subscriber

	mu    sync.Mutex
	stops []func()
}

// NewBookingHandler creates a new booking event handler
func NewBookingHandler(bookingUC bookings.BookingUC, subscriber events.Subscriber) *BookingHandler {
	return &BookingHandler{
		bookingUC:  bookingUC,
		subscriber: subscriber,
	}
}

// bookingRef is the part every booking event shares
type bookingRef struct {
	BookingID int64 `json:"booking_id"`
}

// InitConsumers subscribes to the booking subjects
func (h *BookingHandler) InitConsumers() error {
	for _, subject := range []string{constants.SubjectBookingStatusChanged, constants.SubjectBookingAction} {
		stop, err := h.subscriber.Subscribe(subject, h.handleBookingEvent)
		if err != nil {
			h.Stop()
			return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
		}

		h.mu.Lock()
		h.stops = append(h.stops, stop)
		h.mu.Unlock()

		logger.Info("Subscribed to booking events", logger.String("subject", subject))
	}
	return nil
}

// Stop ends every subscription
func (h *BookingHandler) Stop() {
	h.mu.Lock()
	stops := h.stops
	h.stops = nil
	h.mu.Unlock()

	for _, stop := range stops {
		stop()
	}
}

func (h *BookingHandler) handleBookingEvent(data []byte) error {
	var ref bookingRef
	if err := json.Unmarshal(data, &ref); err != nil {
		return fmt.Errorf("failed to unmarshal booking event: %w", err)
	}
	if ref.BookingID == 0 {
		return fmt.Errorf("booking event without booking_id")
	}

	logger.Debug("Booking event received", logger.BookingID(ref.BookingID))
	h.bookingUC.Nudge(ref.BookingID)
	return nil
}
