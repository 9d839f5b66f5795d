package constants

// WebSocket event types
const (
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	EventBookingView    = "booking_view"
	EventRefresh        = "refresh"
	EventCheckInOverdue = "checkin_overdue"
)

// WebSocket error codes
const (
	ErrorInvalidFormat  = "invalid_format"
	ErrorUnauthorized   = "unauthorized"
	ErrorInternalError  = "internal_error"
	ErrorBookingRefresh = "booking_refresh_failed"
	ErrorNotParticipant = "not_participant"
)

// ErrorSeverity decides how much of an error the client gets to see
type ErrorSeverity int

const (
	ErrorSeverityClient ErrorSeverity = iota
	ErrorSeverityServer
	ErrorSeveritySecurity
)
