package focus

import (
	"math"
	"testing"

	"chosenoffset.com/focustrail/internal/core/geom"
)

type box struct {
	rect geom.Rect
}

func (b *box) Offset() geom.Rect {
	return b.rect
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestUnfocusedTrackerIsUnplaced(t *testing.T) {
	tr := NewTracker(8, false)

	tr.OnFocus(nil)
	tr.Advance()

	if tr.Tracking() {
		t.Error("Expected tracker with no focus to not be tracking")
	}
	if _, placed := tr.Head().Pos(); placed {
		t.Error("Expected head to stay unplaced before the first focus")
	}
}

func TestFirstFocusSnapsToTarget(t *testing.T) {
	tr := NewTracker(8, false)
	a := &box{rect: geom.Rect{Left: 100, Top: 50, Width: 200, Height: 20}}

	tr.OnFocus(a)

	head := tr.Head()
	pos, placed := head.Pos()
	if !placed {
		t.Fatal("Expected head to be placed after the first focus")
	}
	if head.Target.X != 80 || head.Target.Y != 60 {
		t.Errorf("Expected target (80, 60), got (%v, %v)", head.Target.X, head.Target.Y)
	}
	if pos != head.Target {
		t.Errorf("Expected position to equal target, got %v vs %v", pos, head.Target)
	}
	if head.Velocity.X != 0 {
		t.Errorf("Expected no impulse on the first focus, got %v", head.Velocity.X)
	}
	if tr.Current() != Element(a) {
		t.Error("Expected the focused element to be tracked")
	}
}

func TestFirstFocusImpulseOption(t *testing.T) {
	tr := NewTracker(8, true)

	tr.OnFocus(&box{rect: geom.Rect{Left: 100, Top: 50, Width: 200, Height: 20}})

	if v := tr.Head().Velocity.X; v != -ImpulseBase {
		t.Errorf("Expected first-focus impulse %v, got %v", -ImpulseBase, v)
	}
}

func TestFocusChangeImpulse(t *testing.T) {
	tr := NewTracker(8, false)
	a := &box{rect: geom.Rect{Left: 100, Top: 50, Width: 200, Height: 20}}
	b := &box{rect: geom.Rect{Left: 170, Top: 80, Width: 200, Height: 20}}

	tr.OnFocus(a)
	tr.OnFocus(b)

	head := tr.Head()
	if head.Target.X != 150 || head.Target.Y != 90 {
		t.Fatalf("Expected target (150, 90), got (%v, %v)", head.Target.X, head.Target.Y)
	}
	if head.Position.X != 80 || head.Position.Y != 60 {
		t.Errorf("Expected position to stay at (80, 60) until the next frame, got %v", head.Position)
	}
	if head.Velocity.X != -22 {
		t.Errorf("Expected impulse -22, got %v", head.Velocity.X)
	}

	tr.Advance()

	head = tr.Head()
	if !near(head.Position.X, 76.4) {
		t.Errorf("Expected x 76.4 after one frame, got %v", head.Position.X)
	}
	if !near(head.Position.Y, 66) {
		t.Errorf("Expected y 66 after one frame, got %v", head.Position.Y)
	}
}

func TestRefocusSameElementHasNoImpulse(t *testing.T) {
	tr := NewTracker(8, false)
	a := &box{rect: geom.Rect{Left: 100, Top: 50, Width: 200, Height: 20}}
	b := &box{rect: geom.Rect{Left: 300, Top: 50, Width: 200, Height: 20}}

	tr.OnFocus(a)
	tr.OnFocus(b)
	for i := 0; i < 50; i++ {
		tr.Advance()
	}
	settled := tr.Head().Velocity.X

	tr.OnFocus(b)
	if v := tr.Head().Velocity.X; v != settled {
		t.Errorf("Expected refocusing the same element to keep velocity %v, got %v", settled, v)
	}
}

func TestRefreshRecomputesTargetWithoutImpulse(t *testing.T) {
	tr := NewTracker(8, false)
	a := &box{rect: geom.Rect{Left: 100, Top: 50, Width: 200, Height: 20}}

	tr.OnFocus(a)
	a.rect.Left = 400
	a.rect.Top = 10
	tr.OnFocus(nil)

	head := tr.Head()
	if head.Target.X != 380 || head.Target.Y != 20 {
		t.Errorf("Expected refreshed target (380, 20), got (%v, %v)", head.Target.X, head.Target.Y)
	}
	if head.Velocity.X != 0 {
		t.Errorf("Expected refresh to leave velocity alone, got %v", head.Velocity.X)
	}
	if head.Position.X != 80 {
		t.Errorf("Expected refresh to leave position alone, got %v", head.Position.X)
	}
}

func TestImpulseDecaysByFactor(t *testing.T) {
	tr := NewTracker(8, false)
	tr.OnFocus(&box{rect: geom.Rect{Left: 100, Top: 50, Height: 20}})
	tr.OnFocus(&box{rect: geom.Rect{Left: 500, Top: 50, Height: 20}})

	prev := tr.Head().Velocity.X
	for i := 0; i < 20; i++ {
		tr.Advance()
		v := tr.Head().Velocity.X
		if !near(v, prev*ImpulseDecay) {
			t.Fatalf("Frame %d: expected velocity %v, got %v", i, prev*ImpulseDecay, v)
		}
		prev = v
	}
}

func TestPositionConvergesWithoutImpulse(t *testing.T) {
	tr := NewTracker(8, false)
	a := &box{rect: geom.Rect{Left: 100, Top: 50, Height: 20}}
	tr.OnFocus(a)

	// Move the element and refresh: a new target with no impulse.
	a.rect.Left = 600
	a.rect.Top = 400
	tr.OnFocus(nil)

	target := tr.Head().Target
	prev := geom.Distance(tr.Head().Position, target)
	frames := 0
	for prev > 1e-3 {
		tr.Advance()
		d := geom.Distance(tr.Head().Position, target)
		if d >= prev {
			t.Fatalf("Frame %d: expected distance to shrink, %v -> %v", frames, prev, d)
		}
		if !near(d, prev*(1-Easing)) && d > 1e-6 {
			t.Fatalf("Frame %d: expected distance %v, got %v", frames, prev*(1-Easing), d)
		}
		prev = d
		frames++
		if frames > 100 {
			t.Fatal("Expected convergence within 100 frames")
		}
	}
}

func TestVerticalMotionHasNoImpulse(t *testing.T) {
	tr := NewTracker(8, false)
	tr.OnFocus(&box{rect: geom.Rect{Left: 100, Top: 0, Height: 20}})
	tr.OnFocus(&box{rect: geom.Rect{Left: 100, Top: 200, Height: 20}})

	if v := tr.Head().Velocity.Y; v != 0 {
		t.Errorf("Expected vertical velocity to stay 0, got %v", v)
	}

	startY := tr.Head().Position.Y
	targetY := tr.Head().Target.Y
	for i := 0; i < 5; i++ {
		tr.Advance()
		startY += (targetY - startY) * Easing
		if !near(tr.Head().Position.Y, startY) {
			t.Fatalf("Frame %d: expected y %v, got %v", i, startY, tr.Head().Position.Y)
		}
	}
}
