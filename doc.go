// Package glide animates numeric style properties of elements over a fixed
// duration, easing each value from its current computed state to a target.
//
// Glide is rendering-agnostic: anything that can report a computed style
// string and accept a style write can be animated. The built-in [Node] type
// provides a headless map-backed element, and the examples show the engine
// driving an [Ebitengine] scene.
//
// # Quick start
//
//	box := glide.NewNode("box")
//	box.SetStyle("width", "100px")
//
//	glide.Animate(box, []glide.Prop{{Name: "width", Target: "300px"}}, glide.Options{
//		Duration:   250 * time.Millisecond,
//		EasingName: "quad-out",
//		AfterAll:   func() { fmt.Println("done") },
//	})
//
// [Animate] builds a snapshot of every property's current and target value,
// then schedules itself frame by frame until the elapsed-time progress
// reaches 1.0, at which point the exact target values are committed and
// AfterAll fires. Progress is computed from elapsed wall time, not frame
// count, so a dropped or delayed frame never changes the visual speed.
//
// # Accessors
//
// Each property is handled by an [Accessor], the parse/interpolate/apply
// strategy for one kind of value. Unregistered properties fall back to
// [Numeric], which understands CSS-style dimension strings ("12.5px", "50%",
// "0.4"). Register custom accessors with [RegisterAccessor].
//
// # Easing
//
// Easing functions map elapsed-time ratio to animation progress. Name one in
// [Options.EasingName] ("linear", "logarithmic", "quad-in-out", "bounce-out",
// ...), pass one directly in [Options.Easing], or register your own with
// [RegisterEasing]. A gween ease.TweenFunc can be adapted with [FromTween].
// Unknown names fall back to linear.
//
// # Scheduling
//
// Frames run through a [Scheduler]. The default fires on a ~16ms timer; a
// [ManualScheduler] plus [ManualClock] gives deterministic stepping for tests
// and for pumping animations from a host game loop.
//
// [Ebitengine]: https://ebitengine.org
package glide
