package glide

import (
	"errors"
	"sync"
)

// ErrNilElement is returned when an animation is constructed with a nil
// element handle. It is the only fatal setup condition: a typed element
// always carries the style read/write capabilities the engine needs.
var ErrNilElement = errors.New("glide: nil element")

// Element is anything the engine can animate: it reports the current
// computed value of a named style property and accepts raw style writes.
// An empty computed value means the element has no value for that property,
// which skips it (the animation itself keeps running).
//
// Elements shared by animations on the default scheduler receive writes
// from timer goroutines, so implementations must be safe for concurrent
// use (Node is).
type Element interface {
	ComputedStyle(property string) string
	SetStyle(property, raw string)
}

// Disposable is optionally implemented by elements that can be torn down
// mid-animation. The frame loop skips writes to disposed elements instead of
// touching dead state; the animation's timing and other elements are
// unaffected.
type Disposable interface {
	IsDisposed() bool
}

// Node is the built-in headless element: a named bag of style strings.
// It satisfies Element and Disposable and is what the tests and examples
// animate.
//
// Node is safe for concurrent use. Independent animations on the default
// scheduler each run on their own timer goroutine, so two animations
// sharing one node write its styles concurrently; the mutex keeps that
// coordination out of the callers' hands.
type Node struct {
	Name string

	mu       sync.RWMutex
	styles   map[string]string
	disposed bool
}

// NewNode creates an empty named node.
func NewNode(name string) *Node {
	return &Node{
		Name:   name,
		styles: make(map[string]string),
	}
}

// ComputedStyle returns the node's current raw value for the property, or ""
// when none has been set. For a plain node the computed value is simply the
// last written value; there is no cascade.
func (n *Node) ComputedStyle(property string) string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.styles[property]
}

// SetStyle writes a raw style value. Writes to a disposed node are dropped.
func (n *Node) SetStyle(property, raw string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.disposed {
		return
	}
	n.styles[property] = raw
}

// Dispose marks the node dead. Disposal is permanent; running animations
// skip the node from their next frame on.
func (n *Node) Dispose() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.disposed = true
}

// IsDisposed reports whether Dispose has been called.
func (n *Node) IsDisposed() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.disposed
}
