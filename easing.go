package glide

import (
	"math"

	fease "github.com/fogleman/ease"
	gease "github.com/tanema/gween/ease"
)

// EasingFunc maps an elapsed-time ratio in [0, 1] to an animation-progress
// ratio. The output shapes the perceived speed curve; it is not required to
// stay inside [0, 1] (elastic and back curves overshoot).
type EasingFunc func(t float64) float64

// Linear is the identity easing and the fallback for unknown names.
func Linear(t float64) float64 { return t }

// Logarithmic eases fast out of the gate and decelerates towards the end:
// log(100t)/log(100). The raw formula is undefined at t = 0, so anything
// at or below zero maps to 0.
func Logarithmic(t float64) float64 {
	if t <= 0 {
		return 0
	}
	return math.Log(t*100) / math.Log(100)
}

// easings is the named easing registry. Built-ins are installed at init;
// the table is read-only while animations run.
var easings = make(map[string]EasingFunc)

// RegisterEasing installs a named easing function, replacing any previous
// registration. Call during setup, not while animations are running.
func RegisterEasing(name string, fn EasingFunc) {
	easings[name] = fn
}

// EasingByName resolves a registered easing function. Unknown or empty
// names fall back to Linear.
func EasingByName(name string) EasingFunc {
	if fn, ok := easings[name]; ok {
		return fn
	}
	return Linear
}

// FromTween adapts a gween ease.TweenFunc to an EasingFunc by evaluating it
// over the normalized 0→1 range.
func FromTween(fn gease.TweenFunc) EasingFunc {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

func init() {
	RegisterEasing("linear", Linear)
	RegisterEasing("logarithmic", Logarithmic)

	RegisterEasing("quad-in", fease.InQuad)
	RegisterEasing("quad-out", fease.OutQuad)
	RegisterEasing("quad-in-out", fease.InOutQuad)
	RegisterEasing("cubic-in", fease.InCubic)
	RegisterEasing("cubic-out", fease.OutCubic)
	RegisterEasing("cubic-in-out", fease.InOutCubic)
	RegisterEasing("quart-in", fease.InQuart)
	RegisterEasing("quart-out", fease.OutQuart)
	RegisterEasing("quart-in-out", fease.InOutQuart)
	RegisterEasing("sine-in", fease.InSine)
	RegisterEasing("sine-out", fease.OutSine)
	RegisterEasing("sine-in-out", fease.InOutSine)
	RegisterEasing("expo-in", fease.InExpo)
	RegisterEasing("expo-out", fease.OutExpo)
	RegisterEasing("expo-in-out", fease.InOutExpo)
	RegisterEasing("circ-in", fease.InCirc)
	RegisterEasing("circ-out", fease.OutCirc)
	RegisterEasing("circ-in-out", fease.InOutCirc)
	RegisterEasing("elastic-in", fease.InElastic)
	RegisterEasing("elastic-out", fease.OutElastic)
	RegisterEasing("elastic-in-out", fease.InOutElastic)
	RegisterEasing("back-in", fease.InBack)
	RegisterEasing("back-out", fease.OutBack)
	RegisterEasing("back-in-out", fease.InOutBack)
	RegisterEasing("bounce-in", fease.InBounce)
	RegisterEasing("bounce-out", fease.OutBounce)
	RegisterEasing("bounce-in-out", fease.InOutBounce)
}
