// Package checkin holds the local check-in session state machine:
// idle -> active -> completed, with overdue as a sub-state of active.
package checkin

import (
	"errors"
	"math"
	"time"

	"github.com/piresc/bookingflow/internal/pkg/models"
)

// Status is the session status. It is independent of the booking status.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusActive    Status = "active"
	StatusOverdue   Status = "overdue"
	StatusCompleted Status = "completed"
)

const (
	// WarningPercent colors the countdown
	WarningPercent = 80.0
	// ExtendPercent is where the extend affordance appears
	ExtendPercent = 70.0
)

var (
	ErrNotRunning      = errors.New("check-in session is not running")
	ErrInvalidDuration = errors.New("duration must be positive")
)

// Session is one check-in. Overdue holds exactly when
// ElapsedSeconds >= ExpectedDurationMinutes*60 while running.
type Session struct {
	BookingID               int64
	UserID                  string
	Status                  Status
	StartTime               time.Time
	ElapsedSeconds          int64
	ExpectedDurationMinutes int
	HasLocation             bool
}

// NewSession starts an active session at start
func NewSession(bookingID int64, userID string, expectedMinutes int, start time.Time) (*Session, error) {
	if expectedMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	return &Session{
		BookingID:               bookingID,
		UserID:                  userID,
		Status:                  StatusActive,
		StartTime:               start,
		ExpectedDurationMinutes: expectedMinutes,
	}, nil
}

// Running reports whether the session still ticks
func (s *Session) Running() bool {
	return s.Status == StatusActive || s.Status == StatusOverdue
}

// Tick recomputes the elapsed time from now and returns true when the
// status changed
func (s *Session) Tick(now time.Time) bool {
	if !s.Running() {
		return false
	}
	elapsed := int64(now.Sub(s.StartTime) / time.Second)
	if elapsed < 0 {
		elapsed = 0
	}
	s.ElapsedSeconds = elapsed
	return s.settle()
}

// Extend adds minutes to the expected duration. An overdue session whose
// new ratio is under 100% returns to active.
func (s *Session) Extend(minutes int) (bool, error) {
	if minutes <= 0 {
		return false, ErrInvalidDuration
	}
	if !s.Running() {
		return false, ErrNotRunning
	}
	s.ExpectedDurationMinutes += minutes
	return s.settle(), nil
}

// Complete stops the session for good
func (s *Session) Complete() {
	s.Status = StatusCompleted
}

func (s *Session) settle() bool {
	next := StatusActive
	if s.ElapsedSeconds >= s.expectedSeconds() {
		next = StatusOverdue
	}
	changed := next != s.Status
	s.Status = next
	return changed
}

func (s *Session) expectedSeconds() int64 {
	return int64(s.ExpectedDurationMinutes) * 60
}

// Progress is elapsed over expected, in percent, capped at 100
func (s *Session) Progress() float64 {
	expected := s.expectedSeconds()
	if expected <= 0 {
		return 0
	}
	return math.Min(100, float64(s.ElapsedSeconds)*100/float64(expected))
}

// Warning is true from 80% on
func (s *Session) Warning() bool {
	return s.Running() && s.Progress() >= WarningPercent
}

// CanExtend is true while active past 70%, or when overdue
func (s *Session) CanExtend() bool {
	switch s.Status {
	case StatusOverdue:
		return true
	case StatusActive:
		return s.Progress() >= ExtendPercent
	}
	return false
}

// Snapshot copies the session into its API shape
func (s *Session) Snapshot() models.CheckInSnapshot {
	return models.CheckInSnapshot{
		BookingID:               s.BookingID,
		Status:                  string(s.Status),
		StartTime:               s.StartTime,
		ElapsedSeconds:          s.ElapsedSeconds,
		ExpectedDurationMinutes: s.ExpectedDurationMinutes,
		Progress:                math.Round(s.Progress()*10) / 10,
		Warning:                 s.Warning(),
		CanExtend:               s.CanExtend(),
		HasLocation:             s.HasLocation,
	}
}
