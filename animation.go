package glide

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Animation drives a set of element bindings from their snapshot start
// values to their targets over a fixed duration. It schedules itself frame
// by frame; progress is elapsed time over duration, so a missed or delayed
// frame is self-correcting and visual speed is invariant to frame rate.
//
// An Animation is single-use: Created, Running, done. Start after the first
// call is a no-op; restarting a finished animation is not supported. Create
// a new Animation to run again.
type Animation struct {
	bindings  []ElementBinding
	duration  time.Duration
	easing    EasingFunc
	afterEach func(Element, *PropertySnapshot)
	afterAll  func()
	sched     Scheduler
	now       func() time.Time
	log       *zap.Logger

	// started guards the single Created to Running transition; startTime
	// is written once under that guard. done is terminal for both
	// completion and Stop. It never reverts; there is no pause or resume.
	started   atomic.Bool
	done      atomic.Bool
	startTime time.Time
}

// Bindings returns the animation's element bindings. The slice and the
// snapshots inside it are owned by the animation; treat as read-only.
func (a *Animation) Bindings() []ElementBinding {
	return a.bindings
}

// Duration returns the configured animation duration.
func (a *Animation) Duration() time.Duration {
	return a.duration
}

// Done reports whether the animation has finished, by completing or by
// Stop. A done animation schedules no further frames.
func (a *Animation) Done() bool {
	return a.done.Load()
}

// Start records the start time and schedules the first frame. Only the
// first call does anything.
func (a *Animation) Start() {
	if !a.started.CompareAndSwap(false, true) {
		return
	}
	a.startTime = a.now()
	a.log.Debug("animation started",
		zap.Duration("duration", a.duration),
		zap.Int("elements", len(a.bindings)))
	a.sched.Schedule(a.frame)
}

// Stop cancels the animation. Cancellation is cooperative: the next
// scheduled frame observes it and does nothing, leaving every property at
// its last interpolated value (no snap to target). Stopping an already
// finished animation is a no-op. AfterAll does not fire for a stopped
// animation.
func (a *Animation) Stop() {
	a.done.Store(true)
}

// frame is one tick of the animation loop.
func (a *Animation) frame() {
	if a.done.Load() {
		return
	}

	// A non-positive duration makes the very first progress check already
	// terminal: an instant jump to target, defined behavior rather than an
	// error.
	progress := 1.0
	if a.duration > 0 {
		progress = float64(a.now().Sub(a.startTime)) / float64(a.duration)
	}

	if progress < 1 {
		eased := a.easing(progress)
		for i := range a.bindings {
			b := &a.bindings[i]
			if isDisposed(b.Element) {
				continue
			}
			for j := range b.Snapshots {
				s := &b.Snapshots[j]
				if !s.valid() {
					continue
				}
				current := s.Accessor.Interpolate(s.Start, s.Target, eased)
				s.Accessor.Apply(b.Element, s.Name, s.Start, current)
				if a.afterEach != nil {
					a.afterEach(b.Element, s)
				}
			}
		}
		a.sched.Schedule(a.frame)
		return
	}

	// Terminal commit: force-apply the exact targets so the final state
	// equals the request regardless of clock overshoot, then finish. One
	// transition, after the full sweep.
	for i := range a.bindings {
		b := &a.bindings[i]
		if isDisposed(b.Element) {
			continue
		}
		for j := range b.Snapshots {
			s := &b.Snapshots[j]
			if !s.valid() {
				continue
			}
			s.Accessor.Apply(b.Element, s.Name, s.Start, s.Target)
		}
	}
	a.done.Store(true)
	a.log.Debug("animation completed")
	if a.afterAll != nil {
		a.afterAll()
	}
}

func isDisposed(el Element) bool {
	d, ok := el.(Disposable)
	return ok && d.IsDisposed()
}
