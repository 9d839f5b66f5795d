package constants

// Event subjects, shared by the NATS and NSQ publishers
const (
	// Bookings
	SubjectBookingStatusChanged = "booking.status.changed"
	SubjectBookingAction        = "booking.action.performed"
	SubjectBookingLocation      = "booking.location.updated"

	// Safety
	SubjectCheckInStarted   = "safety.checkin.started"
	SubjectCheckInOverdue   = "safety.checkin.overdue"
	SubjectCheckInCompleted = "safety.checkin.completed"
	SubjectSOSSent          = "safety.sos.sent"
)
