package checkin

import (
	"sync"
	"testing"
	"time"

	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is moved by hand
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func TestTimer_FlipsToOverdueOnTick(t *testing.T) {
	clock := &fakeClock{now: start}
	transitions := make(chan models.CheckInSnapshot, 4)

	timer := StartTimer(newSession(t, 60), time.Millisecond, clock.Now, func(s models.CheckInSnapshot) {
		transitions <- s
	})
	defer timer.Close()

	clock.Set(start.Add(3599 * time.Second))
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, "active", timer.Snapshot().Status)
	assert.Len(t, transitions, 0)

	clock.Set(start.Add(3600 * time.Second))
	select {
	case s := <-transitions:
		assert.Equal(t, "overdue", s.Status)
		assert.Equal(t, int64(3600), s.ElapsedSeconds)
	case <-time.After(time.Second):
		t.Fatal("no overdue transition")
	}
}

func TestTimer_ExtendRevertsOverdue(t *testing.T) {
	clock := &fakeClock{now: start.Add(61 * time.Minute)}
	transitions := make(chan models.CheckInSnapshot, 4)

	timer := StartTimer(newSession(t, 60), time.Hour, clock.Now, func(s models.CheckInSnapshot) {
		transitions <- s
	})
	defer timer.Close()

	require.Equal(t, "overdue", timer.Snapshot().Status)
	<-transitions

	snap, err := timer.Extend(30)

	require.NoError(t, err)
	assert.Equal(t, 90, snap.ExpectedDurationMinutes)
	assert.Equal(t, "active", snap.Status)
	assert.Equal(t, "active", (<-transitions).Status)
}

func TestTimer_EndStopsLoop(t *testing.T) {
	clock := &fakeClock{now: start}
	timer := StartTimer(newSession(t, 60), time.Millisecond, clock.Now, nil)

	clock.Set(start.Add(15 * time.Minute))
	snap := timer.End()

	assert.Equal(t, "completed", snap.Status)
	assert.Equal(t, int64(900), snap.ElapsedSeconds)
	select {
	case <-timer.Done():
	default:
		t.Fatal("tick goroutine still running")
	}

	_, err := timer.Extend(30)
	assert.ErrorIs(t, err, ErrNotRunning)

	// later time does not move a completed session
	clock.Set(start.Add(2 * time.Hour))
	assert.Equal(t, "completed", timer.Snapshot().Status)
}

func TestTimer_CloseIsIdempotent(t *testing.T) {
	timer := StartTimer(newSession(t, 60), time.Millisecond, nil, nil)

	timer.Close()
	timer.Close()

	<-timer.Done()
}
