// Package trail keeps the recent history of the marker head and turns it
// into a smoothed curve.
package trail

import "chosenoffset.com/focustrail/internal/core/geom"

// DefaultLength is the default number of points kept in a trail.
const DefaultLength = 10

// Buffer is a bounded queue of head positions, oldest first.
type Buffer struct {
	points   []geom.Point
	capacity int
}

// maxPrealloc bounds the storage reserved up front; longer trails grow as
// points arrive.
const maxPrealloc = 64

// NewBuffer creates a buffer holding at most capacity points. A capacity
// below 1 is treated as 1.
func NewBuffer(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{
		points:   make([]geom.Point, 0, min(capacity, maxPrealloc)+1),
		capacity: capacity,
	}
}

// Push appends p and drops the oldest points until the buffer fits.
func (b *Buffer) Push(p geom.Point) {
	b.points = append(b.points, p)
	if over := len(b.points) - b.capacity; over > 0 {
		n := copy(b.points, b.points[over:])
		b.points = b.points[:n]
	}
}

// Len returns the number of points held.
func (b *Buffer) Len() int {
	return len(b.points)
}

// Cap returns the maximum number of points held.
func (b *Buffer) Cap() int {
	return b.capacity
}

// Points returns the held points, oldest first. The slice is only valid
// until the next Push.
func (b *Buffer) Points() []geom.Point {
	return b.points
}

// Reset empties the buffer.
func (b *Buffer) Reset() {
	b.points = b.points[:0]
}
