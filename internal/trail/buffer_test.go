package trail

import (
	"testing"

	"chosenoffset.com/focustrail/internal/core/geom"
)

func TestBufferNeverExceedsCapacity(t *testing.T) {
	b := NewBuffer(DefaultLength)

	for i := 0; i < 25; i++ {
		b.Push(geom.Point{X: float64(i), Y: float64(i * 2)})
		if b.Len() > b.Cap() {
			t.Fatalf("Push %d: expected len <= %d, got %d", i, b.Cap(), b.Len())
		}
	}

	if b.Len() != DefaultLength {
		t.Errorf("Expected full buffer of %d, got %d", DefaultLength, b.Len())
	}
}

func TestBufferKeepsNewestOldestFirst(t *testing.T) {
	b := NewBuffer(3)
	for i := 1; i <= 5; i++ {
		b.Push(geom.Point{X: float64(i)})
	}

	points := b.Points()
	want := []float64{3, 4, 5}
	if len(points) != len(want) {
		t.Fatalf("Expected %d points, got %d", len(want), len(points))
	}
	for i, x := range want {
		if points[i].X != x {
			t.Errorf("Point %d: expected x %v, got %v", i, x, points[i].X)
		}
	}
}

func TestBufferMinimumCapacity(t *testing.T) {
	b := NewBuffer(0)
	b.Push(geom.Point{X: 1})
	b.Push(geom.Point{X: 2})

	if b.Len() != 1 || b.Points()[0].X != 2 {
		t.Errorf("Expected a single newest point, got %v", b.Points())
	}
}

func TestBufferReset(t *testing.T) {
	b := NewBuffer(4)
	b.Push(geom.Point{X: 1})
	b.Reset()

	if b.Len() != 0 {
		t.Errorf("Expected empty buffer after reset, got %d points", b.Len())
	}
}

func TestBufferLargeCapacityGrowsLazily(t *testing.T) {
	b := NewBuffer(2000000000)

	if b.Cap() != 2000000000 {
		t.Errorf("Expected capacity 2000000000, got %d", b.Cap())
	}
	if got := cap(b.points); got > maxPrealloc+1 {
		t.Errorf("Expected at most %d reserved points, got %d", maxPrealloc+1, got)
	}

	for i := 0; i < 100; i++ {
		b.Push(geom.Point{X: float64(i)})
	}
	if b.Len() != 100 {
		t.Errorf("Expected 100 points, got %d", b.Len())
	}
}
