package checkin

import (
	"sync"
	"time"

	"github.com/piresc/bookingflow/internal/pkg/models"
)

// Clock returns the current time
type Clock func() time.Time

// TransitionFunc is called after the session status changed. It runs on the
// goroutine that caused the change and must not call back into the Timer.
type TransitionFunc func(snapshot models.CheckInSnapshot)

// Timer ticks a Session until End or Close. The tick goroutine never
// outlives the Timer.
type Timer struct {
	mu           sync.Mutex
	session      *Session
	clock        Clock
	onTransition TransitionFunc

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// StartTimer begins ticking session every tick
func StartTimer(session *Session, tick time.Duration, clock Clock, onTransition TransitionFunc) *Timer {
	if clock == nil {
		clock = time.Now
	}
	t := &Timer{
		session:      session,
		clock:        clock,
		onTransition: onTransition,
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
	go t.run(tick)
	return t
}

func (t *Timer) run(tick time.Duration) {
	defer close(t.done)

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			t.tick()
		}
	}
}

func (t *Timer) tick() {
	t.mu.Lock()
	changed := t.session.Tick(t.clock())
	snapshot := t.session.Snapshot()
	t.mu.Unlock()

	if changed {
		t.notify(snapshot)
	}
}

func (t *Timer) notify(snapshot models.CheckInSnapshot) {
	if t.onTransition != nil {
		t.onTransition(snapshot)
	}
}

// Snapshot brings the session up to date and returns it
func (t *Timer) Snapshot() models.CheckInSnapshot {
	t.mu.Lock()
	changed := t.session.Tick(t.clock())
	snapshot := t.session.Snapshot()
	t.mu.Unlock()

	if changed {
		t.notify(snapshot)
	}
	return snapshot
}

// Extend lengthens the session
func (t *Timer) Extend(minutes int) (models.CheckInSnapshot, error) {
	t.mu.Lock()
	before := t.session.Status
	t.session.Tick(t.clock())
	_, err := t.session.Extend(minutes)
	snapshot := t.session.Snapshot()
	changed := t.session.Status != before
	t.mu.Unlock()

	if err != nil {
		return snapshot, err
	}
	if changed {
		t.notify(snapshot)
	}
	return snapshot, nil
}

// End stops the ticks and completes the session
func (t *Timer) End() models.CheckInSnapshot {
	t.Close()

	t.mu.Lock()
	defer t.mu.Unlock()
	t.session.Tick(t.clock())
	t.session.Complete()
	return t.session.Snapshot()
}

// Close stops the ticks and waits for the goroutine to exit. It is safe to
// call more than once.
func (t *Timer) Close() {
	t.stopOnce.Do(func() { close(t.stop) })
	<-t.done
}

// Done is closed once the tick goroutine has exited
func (t *Timer) Done() <-chan struct{} {
	return t.done
}
