package trail

import (
	"chosenoffset.com/focustrail/internal/core/geom"
	"chosenoffset.com/focustrail/internal/render"
)

// MinPoints is the number of points a trail needs before it is drawn.
// Shorter trails collapse into degenerate curves.
const MinPoints = 4

// Smooth builds a midpoint-smoothed quadratic path through points.
//
// The path starts at the oldest point. Each pair (p[i], p[i+1]) from i = 2
// adds a quadratic curve controlled by p[i] and ending at their midpoint,
// and the last curve runs from p[n-2] to p[n-1] so the tail ends exactly on
// the newest point. Returns nil when there are fewer than MinPoints points.
func Smooth(points []geom.Point) *render.Path {
	n := len(points)
	if n < MinPoints {
		return nil
	}

	path := &render.Path{}
	path.MoveTo(float32(points[0].X), float32(points[0].Y))

	i := 2
	for ; i < n-2; i++ {
		ctrl := points[i]
		end := geom.Midpoint(points[i], points[i+1])
		path.QuadTo(float32(ctrl.X), float32(ctrl.Y), float32(end.X), float32(end.Y))
	}

	ctrl, end := points[i], points[i+1]
	path.QuadTo(float32(ctrl.X), float32(ctrl.Y), float32(end.X), float32(end.Y))

	return path
}
