package glide

import (
	"math"
	"testing"
	"time"
)

// harness bundles the manual scheduler and clock every animation test uses.
type harness struct {
	sched *ManualScheduler
	clock *ManualClock
}

func newHarness() *harness {
	return &harness{
		sched: &ManualScheduler{},
		clock: NewManualClock(time.Unix(0, 0)),
	}
}

func (h *harness) options(d time.Duration) Options {
	return Options{
		Duration:  d,
		Scheduler: h.sched,
		Now:       h.clock.Now,
	}
}

// step advances the clock then runs the next queued frame.
func (h *harness) step(t *testing.T, d time.Duration) {
	t.Helper()
	h.clock.Advance(d)
	if !h.sched.Step() {
		t.Fatal("no frame queued")
	}
}

func widthOf(t *testing.T, n *Node) float64 {
	t.Helper()
	v, ok := Numeric.Parse(n.ComputedStyle("width"))
	if !ok {
		t.Fatalf("unparsable width %q", n.ComputedStyle("width"))
	}
	return v.(NumericValue).Value
}

func TestAnimateEndToEnd(t *testing.T) {
	h := newHarness()
	n := NewNode("box")
	n.SetStyle("width", "100px")

	allCount := 0
	opts := h.options(100 * time.Millisecond)
	opts.AfterAll = func() { allCount++ }

	a, err := Animate(n, []Prop{{Name: "width", Target: "300px"}}, opts)
	if err != nil {
		t.Fatal(err)
	}

	// First frame at t=0 applies the start value.
	h.step(t, 0)
	if got := widthOf(t, n); got != 100 {
		t.Errorf("width at t=0 = %v, want 100", got)
	}

	// Halfway: linear easing, so ~200px.
	h.step(t, 50*time.Millisecond)
	if got := widthOf(t, n); math.Abs(got-200) > 0.001 {
		t.Errorf("width at t=50ms = %v, want ~200", got)
	}
	if a.Done() {
		t.Fatal("should not be done at halfway")
	}

	// Past the duration: exact target string, AfterAll exactly once.
	h.step(t, 60*time.Millisecond)
	if got := n.ComputedStyle("width"); got != "300px" {
		t.Errorf("final width = %q, want exactly \"300px\"", got)
	}
	if !a.Done() {
		t.Error("expected Done after terminal commit")
	}
	if allCount != 1 {
		t.Errorf("AfterAll fired %d times, want 1", allCount)
	}
	if h.sched.Pending() != 0 {
		t.Errorf("%d frames still queued after completion", h.sched.Pending())
	}
}

func TestAnimationOvershootCommitsExactTarget(t *testing.T) {
	h := newHarness()
	n := NewNode("box")
	n.SetStyle("width", "100px")

	a, err := Animate(n, []Prop{{Name: "width", Target: "300px"}}, h.options(100*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}

	// A badly delayed frame lands far past the duration; the commit must
	// still be the exact target, not an extrapolation.
	h.step(t, 750*time.Millisecond)
	if got := n.ComputedStyle("width"); got != "300px" {
		t.Errorf("width = %q, want \"300px\"", got)
	}
	if !a.Done() {
		t.Error("expected Done")
	}
}

func TestStopFreezesAtLastValue(t *testing.T) {
	h := newHarness()
	n := NewNode("box")
	n.SetStyle("width", "100px")

	allFired := false
	opts := h.options(100 * time.Millisecond)
	opts.AfterAll = func() { allFired = true }

	a, err := Animate(n, []Prop{{Name: "width", Target: "300px"}}, opts)
	if err != nil {
		t.Fatal(err)
	}

	h.step(t, 0)
	h.step(t, 50*time.Millisecond)
	frozen := n.ComputedStyle("width")

	a.Stop()

	// The already-queued frame observes cancellation and does nothing.
	h.clock.Advance(time.Second)
	h.sched.Step()
	if h.sched.Pending() != 0 {
		t.Errorf("%d frames queued after stop", h.sched.Pending())
	}
	if got := n.ComputedStyle("width"); got != frozen {
		t.Errorf("width = %q, want frozen %q", got, frozen)
	}
	if allFired {
		t.Error("AfterAll must not fire for a stopped animation")
	}
	if !a.Done() {
		t.Error("stopped animation should report Done")
	}

	// Stop is idempotent on a stopped (or completed) animation.
	a.Stop()
	a.Stop()
}

func TestAfterEachGranularity(t *testing.T) {
	h := newHarness()
	a := NewNode("a")
	a.SetStyle("width", "0px")
	a.SetStyle("height", "0px")
	b := NewNode("b")
	b.SetStyle("width", "10px")
	b.SetStyle("height", "10px")

	calls := 0
	opts := h.options(100 * time.Millisecond)
	opts.AfterEach = func(el Element, snap *PropertySnapshot) {
		if el == nil || snap == nil {
			t.Fatal("nil callback context")
		}
		calls++
	}

	props := []Prop{
		{Name: "width", Target: "50px"},
		{Name: "height", Target: "80px"},
	}
	if _, err := AnimateAll([]Element{a, b}, props, opts); err != nil {
		t.Fatal(err)
	}

	// Three interpolating frames, then the terminal commit (which does not
	// fire AfterEach). Count = frames x elements x properties.
	h.step(t, 0)
	h.step(t, 30*time.Millisecond)
	h.step(t, 30*time.Millisecond)
	h.step(t, 60*time.Millisecond)

	if want := 3 * 2 * 2; calls != want {
		t.Errorf("AfterEach fired %d times, want %d", calls, want)
	}
}

func TestInstantDurationJumpsToTarget(t *testing.T) {
	h := newHarness()
	n := NewNode("box")
	n.SetStyle("width", "100px")

	allCount := 0
	opts := h.options(Instant)
	opts.AfterAll = func() { allCount++ }

	if _, err := Animate(n, []Prop{{Name: "width", Target: "300px"}}, opts); err != nil {
		t.Fatal(err)
	}

	// The very first frame is already terminal.
	h.step(t, 0)
	if got := n.ComputedStyle("width"); got != "300px" {
		t.Errorf("width = %q, want \"300px\"", got)
	}
	if allCount != 1 {
		t.Errorf("AfterAll fired %d times, want 1", allCount)
	}
}

func TestNegativeDurationBehavesAsInstant(t *testing.T) {
	h := newHarness()
	n := NewNode("box")
	n.SetStyle("width", "100px")

	opts := h.options(-30 * time.Millisecond)
	if _, err := Animate(n, []Prop{{Name: "width", Target: "300px"}}, opts); err != nil {
		t.Fatal(err)
	}

	h.step(t, 0)
	if got := n.ComputedStyle("width"); got != "300px" {
		t.Errorf("width = %q, want \"300px\"", got)
	}
}

func TestZeroElementsStillCompletes(t *testing.T) {
	h := newHarness()

	allCount := 0
	opts := h.options(50 * time.Millisecond)
	opts.AfterAll = func() { allCount++ }

	a, err := AnimateAll(nil, []Prop{{Name: "width", Target: "300px"}}, opts)
	if err != nil {
		t.Fatal(err)
	}

	h.step(t, 0)
	h.step(t, 60*time.Millisecond)
	if allCount != 1 {
		t.Errorf("AfterAll fired %d times, want 1", allCount)
	}
	if !a.Done() {
		t.Error("expected Done")
	}
}

func TestUnparsablePropertyDegradesAlone(t *testing.T) {
	h := newHarness()
	n := NewNode("box")
	n.SetStyle("width", "100px")
	n.SetStyle("display", "block")

	props := []Prop{
		{Name: "display", Target: "none"},
		{Name: "width", Target: "300px"},
	}
	if _, err := Animate(n, props, h.options(100*time.Millisecond)); err != nil {
		t.Fatal(err)
	}

	h.step(t, 0)
	h.step(t, 120*time.Millisecond)

	if got := n.ComputedStyle("width"); got != "300px" {
		t.Errorf("width = %q, want \"300px\"", got)
	}
	if got := n.ComputedStyle("display"); got != "block" {
		t.Errorf("display = %q, want untouched \"block\"", got)
	}
}

func TestIndependentAnimationsSameElement(t *testing.T) {
	h := newHarness()
	n := NewNode("box")
	n.SetStyle("width", "0px")
	n.SetStyle("height", "0px")

	a1, err := Animate(n, []Prop{{Name: "width", Target: "100px"}}, h.options(100*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	a2, err := Animate(n, []Prop{{Name: "height", Target: "50px"}}, h.options(200*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}

	// Both frames are queued; pump tick by tick. Disjoint property sets
	// must not disturb each other's snapshots or timing.
	h.clock.Advance(50 * time.Millisecond)
	h.sched.RunAll()
	if got := widthOf(t, n); math.Abs(got-50) > 0.001 {
		t.Errorf("width at 50ms = %v, want ~50", got)
	}
	hv, _ := Numeric.Parse(n.ComputedStyle("height"))
	if got := hv.(NumericValue).Value; math.Abs(got-12.5) > 0.001 {
		t.Errorf("height at 50ms = %v, want ~12.5", got)
	}

	h.clock.Advance(60 * time.Millisecond)
	h.sched.RunAll()
	if !a1.Done() {
		t.Error("width animation should be done")
	}
	if a2.Done() {
		t.Error("height animation should still be running")
	}
	if got := n.ComputedStyle("width"); got != "100px" {
		t.Errorf("width = %q, want \"100px\"", got)
	}

	h.clock.Advance(100 * time.Millisecond)
	h.sched.RunAll()
	if !a2.Done() {
		t.Error("height animation should be done")
	}
	if got := n.ComputedStyle("height"); got != "50px" {
		t.Errorf("height = %q, want \"50px\"", got)
	}
}

func TestDisposedElementSkipped(t *testing.T) {
	h := newHarness()
	alive := NewNode("alive")
	alive.SetStyle("width", "0px")
	dying := NewNode("dying")
	dying.SetStyle("width", "0px")

	props := []Prop{{Name: "width", Target: "100px"}}
	if _, err := AnimateAll([]Element{alive, dying}, props, h.options(100*time.Millisecond)); err != nil {
		t.Fatal(err)
	}

	h.step(t, 0)
	h.step(t, 50*time.Millisecond)
	lastDying := dying.ComputedStyle("width")

	dying.Dispose()
	h.step(t, 60*time.Millisecond)

	if got := alive.ComputedStyle("width"); got != "100px" {
		t.Errorf("alive width = %q, want \"100px\"", got)
	}
	if got := dying.ComputedStyle("width"); got != lastDying {
		t.Errorf("dying width = %q, want frozen %q", got, lastDying)
	}
}

func TestStartAfterCompletionIsNoOp(t *testing.T) {
	h := newHarness()
	n := NewNode("box")
	n.SetStyle("width", "100px")

	a, err := Animate(n, []Prop{{Name: "width", Target: "300px"}}, h.options(10*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}

	h.step(t, 20*time.Millisecond)
	if !a.Done() {
		t.Fatal("expected Done")
	}

	a.Start()
	if h.sched.Pending() != 0 {
		t.Error("restart must not schedule frames")
	}
}

func TestAnimateNilElement(t *testing.T) {
	if _, err := Animate(nil, []Prop{{Name: "width", Target: "1px"}}, Options{}); err != ErrNilElement {
		t.Errorf("err = %v, want ErrNilElement", err)
	}
	if _, err := AnimateAll([]Element{NewNode("ok"), nil}, nil, Options{}); err != ErrNilElement {
		t.Errorf("err = %v, want ErrNilElement", err)
	}
}

func TestNewDoesNotStart(t *testing.T) {
	h := newHarness()
	n := NewNode("box")
	n.SetStyle("width", "100px")

	a, err := New([]Element{n}, []Prop{{Name: "width", Target: "300px"}}, h.options(100*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	if h.sched.Pending() != 0 {
		t.Fatal("New must not schedule frames")
	}

	a.Start()
	if h.sched.Pending() != 1 {
		t.Fatal("Start should schedule the first frame")
	}
}
