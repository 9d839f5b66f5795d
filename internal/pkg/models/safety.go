package models

import "time"

// CheckInRequest starts a safety session. Coordinates are optional.
type CheckInRequest struct {
	BookingID int64    `json:"booking_id"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// StartCheckInRequest is what the UI sends to start a session. Coordinates
// skip the one-shot locate when the device already has a fix.
type StartCheckInRequest struct {
	ExpectedDurationMinutes int      `json:"expected_duration_minutes" validate:"required,gt=0,lte=1440"`
	Latitude                *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude               *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
}

// ExtendSessionRequest adds minutes to a running session
type ExtendSessionRequest struct {
	Minutes int `json:"minutes" validate:"required,gt=0,lte=1440"`
}

// CheckOutRequest ends a safety session
type CheckOutRequest struct {
	BookingID int64 `json:"booking_id"`
}

// SOSAlert is the emergency payload. It is sent once per confirmation.
type SOSAlert struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	LocationText string  `json:"location_text"`
	BookingID    *int64  `json:"booking_id,omitempty"`
}

// SOSRequest is the UI's confirm of the SOS modal. Without Confirmed the
// caller gets the confirmation prompt back.
type SOSRequest struct {
	Confirmed    bool     `json:"confirmed"`
	BookingID    *int64   `json:"booking_id,omitempty"`
	LocationText string   `json:"location_text,omitempty" validate:"max=500"`
	Latitude     *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude    *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
}

// SOSState is the per-user indicator of the SOS flow
type SOSState string

const (
	SOSStateIdle SOSState = "idle"
	SOSStateSent SOSState = "sent"
)

// SOSStatus is returned to the UI
type SOSStatus struct {
	State     SOSState   `json:"state"`
	SentAt    *time.Time `json:"sent_at,omitempty"`
	ResetsAt  *time.Time `json:"resets_at,omitempty"`
	BookingID *int64     `json:"booking_id,omitempty"`
}

// CheckInSnapshot is a read-only view of a running check-in session
type CheckInSnapshot struct {
	BookingID               int64     `json:"booking_id"`
	Status                  string    `json:"status"`
	StartTime               time.Time `json:"start_time"`
	ElapsedSeconds          int64     `json:"elapsed_seconds"`
	ExpectedDurationMinutes int       `json:"expected_duration_minutes"`
	Progress                float64   `json:"progress"`
	Warning                 bool      `json:"warning"`
	CanExtend               bool      `json:"can_extend"`
	HasLocation             bool      `json:"has_location"`
}
