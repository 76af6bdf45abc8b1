package glide

import (
	"time"

	"go.uber.org/zap"
)

// DefaultDuration is used when Options.Duration is zero.
const DefaultDuration = 500 * time.Millisecond

// Instant, set as Options.Duration, jumps straight to the target values on
// the first frame (AfterAll still fires). Any negative duration behaves the
// same; this sentinel just says it by name.
const Instant time.Duration = -1

// Prop names one property to animate and the raw target value to animate it
// to (e.g. {"width", "300px"}). Property order is preserved: snapshots are
// built and applied in the order the props are listed.
type Prop struct {
	Name   string `yaml:"name"`
	Target string `yaml:"target"`
}

// Options configures an Animation. The zero value animates over
// DefaultDuration with linear easing on the default timer scheduler.
type Options struct {
	// Duration of the whole animation. Zero means DefaultDuration; use
	// Instant (or any negative duration) for an immediate jump to the
	// target values on the first frame.
	Duration time.Duration

	// Easing is used directly when non-nil and takes precedence over
	// EasingName.
	Easing EasingFunc

	// EasingName is resolved through the easing registry. Unknown or empty
	// names fall back to linear.
	EasingName string

	// AfterEach fires after every property write, once per (element,
	// property) pair per frame. It does not fire for the terminal commit.
	AfterEach func(el Element, snap *PropertySnapshot)

	// AfterAll fires exactly once, after the terminal commit. It never
	// fires for an animation stopped early.
	AfterAll func()

	// Scheduler runs the frame callbacks. Nil means DefaultScheduler.
	Scheduler Scheduler

	// Now supplies timestamps for progress computation. Nil means time.Now.
	Now func() time.Time

	// Logger receives debug output (skipped properties and the like).
	// Nil means no logging.
	Logger *zap.Logger
}

// Animate builds an animation moving one element's properties from their
// current computed values to the given targets, starts it, and returns the
// handle. See AnimateAll for several elements at once.
func Animate(el Element, props []Prop, opts Options) (*Animation, error) {
	if el == nil {
		return nil, ErrNilElement
	}
	return AnimateAll([]Element{el}, props, opts)
}

// AnimateAll is Animate for an ordered collection of elements. Every element
// gets its own snapshots of the same property list. An empty collection is
// legal and yields a no-op animation whose AfterAll still fires.
func AnimateAll(els []Element, props []Prop, opts Options) (*Animation, error) {
	a, err := New(els, props, opts)
	if err != nil {
		return nil, err
	}
	a.Start()
	return a, nil
}

// New builds an Animation without starting it. Property snapshots are
// resolved against the elements' current computed styles at this point, so
// create the animation only when you are about to run it.
func New(els []Element, props []Prop, opts Options) (*Animation, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	} else {
		log = log.Named("glide")
	}

	bindings := make([]ElementBinding, 0, len(els))
	for _, el := range els {
		if el == nil {
			return nil, ErrNilElement
		}
		bindings = append(bindings, ElementBinding{
			Element:   el,
			Snapshots: buildSnapshots(el, props, log),
		})
	}

	duration := opts.Duration
	if duration == 0 {
		duration = DefaultDuration
	}
	easing := opts.Easing
	if easing == nil {
		easing = EasingByName(opts.EasingName)
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = DefaultScheduler
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Animation{
		bindings:  bindings,
		duration:  duration,
		easing:    easing,
		afterEach: opts.AfterEach,
		afterAll:  opts.AfterAll,
		sched:     sched,
		now:       now,
		log:       log,
	}, nil
}
