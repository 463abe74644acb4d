package geom

// Point represents a 2D point on the drawing surface
type Point struct {
	X, Y float64
}

// Vector represents a 2D displacement or velocity
type Vector struct {
	X, Y float64
}

// Rect is an element's box in surface-local pixels, measured from the
// surface's top-left corner.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// Right returns the x coordinate of the rect's right edge.
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Bottom returns the y coordinate of the rect's bottom edge.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// Contains reports whether the point lies inside the rect (edges included)
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right() && p.Y >= r.Top && p.Y <= r.Bottom()
}
