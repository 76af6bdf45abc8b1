package glide

import "time"

// Scheduler runs a callback near the host's next frame. An animation never
// has more than one callback in flight: each frame schedules the next from
// within itself.
type Scheduler interface {
	Schedule(fn func())
}

// DefaultScheduler fires callbacks on a ~16ms timer (roughly 60fps). It is
// the lowest-common-denominator fallback and is always available.
var DefaultScheduler Scheduler = timerScheduler{interval: 16 * time.Millisecond}

// NewTimerScheduler returns a Scheduler firing after the given interval.
// Callbacks run on timer goroutines; an animation still only ever has one
// in flight at a time.
func NewTimerScheduler(interval time.Duration) Scheduler {
	return timerScheduler{interval: interval}
}

type timerScheduler struct {
	interval time.Duration
}

func (s timerScheduler) Schedule(fn func()) {
	time.AfterFunc(s.interval, fn)
}

// ManualScheduler queues callbacks until the owner pumps them, giving
// deterministic frame stepping. Use it in tests together with ManualClock,
// or pump it from a host game loop's update tick (RunAll once per tick).
// Not safe for concurrent use.
type ManualScheduler struct {
	queue []func()
}

// Schedule queues fn for a later Step or RunAll.
func (m *ManualScheduler) Schedule(fn func()) {
	m.queue = append(m.queue, fn)
}

// Pending returns the number of queued callbacks.
func (m *ManualScheduler) Pending() int {
	return len(m.queue)
}

// Step runs the oldest queued callback. It reports whether one ran.
func (m *ManualScheduler) Step() bool {
	if len(m.queue) == 0 {
		return false
	}
	fn := m.queue[0]
	m.queue = m.queue[1:]
	fn()
	return true
}

// RunAll runs every callback queued before the call and returns how many
// ran. Callbacks scheduled during the pass (the next frame re-scheduling
// itself) stay queued for the next RunAll, so one call equals one frame.
func (m *ManualScheduler) RunAll() int {
	batch := m.queue
	m.queue = nil
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// ManualClock is a hand-advanced timestamp source for deterministic tests.
// Pass its Now method in Options.Now.
type ManualClock struct {
	t time.Time
}

// NewManualClock returns a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{t: start}
}

// Now returns the clock's current time.
func (c *ManualClock) Now() time.Time {
	return c.t
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}
