// Package focus tracks the focused element and animates the marker head
// that chases it.
package focus

import (
	"math"

	"chosenoffset.com/focustrail/internal/core/geom"
)

// Motion constants for the head. The model is a per-frame ease, so it runs
// faster or slower with the display refresh rate.
const (
	LeadGap        = 12.0 // Gap between the marker and the element's left edge
	Easing         = 0.2  // Fraction of the remaining distance closed per frame
	ImpulseDecay   = 0.8  // Horizontal impulse multiplier per frame
	ImpulseBase    = 8.0  // Minimum leftward kick on a focus change
	ImpulseDivisor = 5.0  // Travel distance divided by this is added to the kick
)

// Element is anything that can receive focus and report its geometry.
// Trackers compare elements with ==, so implementations must be comparable.
type Element interface {
	Offset() geom.Rect
}

// HeadState is the kinematic state of the marker.
type HeadState struct {
	Position geom.Point // Only meaningful when Placed is true
	Placed   bool       // False until the first focus target is established
	Target   geom.Point
	Velocity geom.Vector // Only X is driven
}

// Pos returns the head position and whether it has been placed yet.
func (h HeadState) Pos() (geom.Point, bool) {
	return h.Position, h.Placed
}

// Tracker owns the head state for one effect instance.
type Tracker struct {
	radius              float64
	impulseOnFirstFocus bool
	current             Element
	head                HeadState
}

// NewTracker creates a tracker for a marker of the given radius. When
// impulseOnFirstFocus is set, the very first focus counts as a change and
// kicks the head like any later focus change.
func NewTracker(radius float64, impulseOnFirstFocus bool) *Tracker {
	return &Tracker{
		radius:              radius,
		impulseOnFirstFocus: impulseOnFirstFocus,
	}
}

// OnFocus records a newly focused element and retargets the head. Passing
// nil keeps the current element and only recomputes the target from its
// geometry, e.g. after a resize.
func (t *Tracker) OnFocus(el Element) {
	previous := t.current
	if el != nil {
		t.current = el
	}
	if t.current == nil {
		return
	}

	box := t.current.Offset()
	t.head.Target = geom.Point{
		X: box.Left - LeadGap - t.radius,
		Y: box.Top + box.Height/2,
	}

	if !t.head.Placed {
		t.head.Position = t.head.Target
		t.head.Placed = true
	}

	changed := t.current != previous
	if previous == nil && !t.impulseOnFirstFocus {
		changed = false
	}
	if changed {
		t.head.Velocity.X = -ImpulseBase - math.Abs(t.head.Target.X-t.head.Position.X)/ImpulseDivisor
	}
}

// Advance moves the head one frame towards its target and layers the
// decaying horizontal impulse on top. Vertical motion is pure easing.
func (t *Tracker) Advance() {
	if !t.head.Placed {
		return
	}
	t.head.Position = geom.Lerp(t.head.Position, t.head.Target, Easing)
	t.head.Velocity.X *= ImpulseDecay
	t.head.Position.X += t.head.Velocity.X
}

// Tracking reports whether any element has been focused.
func (t *Tracker) Tracking() bool {
	return t.current != nil
}

// Current returns the tracked element, or nil.
func (t *Tracker) Current() Element {
	return t.current
}

// Head returns a copy of the head state.
func (t *Tracker) Head() HeadState {
	return t.head
}
