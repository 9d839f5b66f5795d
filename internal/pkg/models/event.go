package models

import (
	"encoding/json"
	"time"
)

// BookingStatusChangedEvent is published when a watcher observes a new status
type BookingStatusChangedEvent struct {
	EventID    string        `json:"event_id"`
	BookingID  int64         `json:"booking_id"`
	From       BookingStatus `json:"from"`
	To         BookingStatus `json:"to"`
	ObservedAt time.Time     `json:"observed_at"`
}

// BookingActionEvent is published after a transition action succeeds
type BookingActionEvent struct {
	EventID     string        `json:"event_id"`
	BookingID   int64         `json:"booking_id"`
	UserID      string        `json:"user_id"`
	Role        Role          `json:"role"`
	Action      string        `json:"action"`
	Status      BookingStatus `json:"status,omitempty"`
	PerformedAt time.Time     `json:"performed_at"`
}

// CheckInEvent is published on check-in, check-out and overdue
type CheckInEvent struct {
	EventID    string    `json:"event_id"`
	BookingID  int64     `json:"booking_id"`
	UserID     string    `json:"user_id"`
	Status     string    `json:"status"`
	Elapsed    int64     `json:"elapsed_seconds"`
	Expected   int       `json:"expected_duration_minutes"`
	OccurredAt time.Time `json:"occurred_at"`
}

// SOSSentEvent is published after the SOS alert was accepted
type SOSSentEvent struct {
	EventID string    `json:"event_id"`
	UserID  string    `json:"user_id"`
	Alert   SOSAlert  `json:"alert"`
	SentAt  time.Time `json:"sent_at"`
}

// WSMessage is the envelope of every websocket frame
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage is the payload of an "error" frame
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
