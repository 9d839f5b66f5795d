package checkin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newSession(t *testing.T, minutes int) *Session {
	t.Helper()
	s, err := NewSession(42, "10", minutes, start)
	require.NoError(t, err)
	return s
}

func TestNewSession_RejectsEmptyDuration(t *testing.T) {
	_, err := NewSession(42, "10", 0, start)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestSession_OverdueThreshold(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    Status
	}{
		{name: "one second before", elapsed: 3599 * time.Second, want: StatusActive},
		{name: "exactly expected", elapsed: 3600 * time.Second, want: StatusOverdue},
		{name: "well past", elapsed: 2 * time.Hour, want: StatusOverdue},
		{name: "clock behind start", elapsed: -time.Minute, want: StatusActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(t, 60)

			s.Tick(start.Add(tt.elapsed))

			assert.Equal(t, tt.want, s.Status)
			assert.GreaterOrEqual(t, s.ElapsedSeconds, int64(0))
		})
	}
}

func TestSession_TickReportsChangesOnce(t *testing.T) {
	s := newSession(t, 60)

	assert.False(t, s.Tick(start.Add(3599*time.Second)))
	assert.True(t, s.Tick(start.Add(3600*time.Second)))
	assert.False(t, s.Tick(start.Add(3601*time.Second)))
}

func TestSession_ExtendWhileOverdue(t *testing.T) {
	s := newSession(t, 60)
	s.Tick(start.Add(3700 * time.Second))
	require.Equal(t, StatusOverdue, s.Status)

	changed, err := s.Extend(30)

	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 90, s.ExpectedDurationMinutes)
	assert.Equal(t, StatusActive, s.Status)
}

func TestSession_ExtendNotEnoughStaysOverdue(t *testing.T) {
	s := newSession(t, 60)
	s.Tick(start.Add(2 * time.Hour))

	changed, err := s.Extend(30)

	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 90, s.ExpectedDurationMinutes)
	assert.Equal(t, StatusOverdue, s.Status)
}

func TestSession_ExtendErrors(t *testing.T) {
	s := newSession(t, 60)

	_, err := s.Extend(0)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	s.Complete()
	_, err = s.Extend(30)
	assert.ErrorIs(t, err, ErrNotRunning)
	assert.Equal(t, 60, s.ExpectedDurationMinutes)
}

func TestSession_ProgressWarningAndExtend(t *testing.T) {
	tests := []struct {
		name      string
		elapsed   time.Duration
		progress  float64
		warning   bool
		canExtend bool
	}{
		{name: "start", elapsed: 0, progress: 0},
		{name: "half", elapsed: 30 * time.Minute, progress: 50},
		{name: "seventy", elapsed: 42 * time.Minute, progress: 70, canExtend: true},
		{name: "eighty", elapsed: 48 * time.Minute, progress: 80, warning: true, canExtend: true},
		{name: "overdue capped", elapsed: 90 * time.Minute, progress: 100, warning: true, canExtend: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(t, 60)
			s.Tick(start.Add(tt.elapsed))

			assert.InDelta(t, tt.progress, s.Progress(), 0.001)
			assert.Equal(t, tt.warning, s.Warning())
			assert.Equal(t, tt.canExtend, s.CanExtend())
		})
	}
}

func TestSession_CompletedStopsTicking(t *testing.T) {
	s := newSession(t, 60)
	s.Tick(start.Add(10 * time.Minute))
	s.Complete()

	assert.False(t, s.Tick(start.Add(2*time.Hour)))
	assert.Equal(t, StatusCompleted, s.Status)
	assert.Equal(t, int64(600), s.ElapsedSeconds)
	assert.False(t, s.CanExtend())
	assert.False(t, s.Warning())
}

func TestSession_Snapshot(t *testing.T) {
	s := newSession(t, 60)
	s.HasLocation = true
	s.Tick(start.Add(20 * time.Minute))

	snap := s.Snapshot()

	assert.Equal(t, int64(42), snap.BookingID)
	assert.Equal(t, "active", snap.Status)
	assert.Equal(t, start, snap.StartTime)
	assert.Equal(t, int64(1200), snap.ElapsedSeconds)
	assert.Equal(t, 60, snap.ExpectedDurationMinutes)
	assert.InDelta(t, 33.3, snap.Progress, 0.001)
	assert.True(t, snap.HasLocation)
}
