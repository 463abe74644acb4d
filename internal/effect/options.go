package effect

import (
	"image/color"

	"chosenoffset.com/focustrail/internal/trail"
)

// Options configures an Effect. Zero fields are replaced by their defaults
// in New.
type Options struct {
	Radius     float64
	TailLength int
	BallColor  color.Color
	LineColor  color.Color

	// ImpulseOnFirstFocus kicks the head on the very first focus as well,
	// not only when focus moves between two elements.
	ImpulseOnFirstFocus bool
}

// Default colors of the ball and its trail.
var (
	DefaultBallColor = color.RGBA{0x40, 0xcb, 0x90, 0xff}
	DefaultLineColor = color.RGBA{0x2c, 0x86, 0x60, 0xff}
)

// DefaultRadius is the default ball radius in pixels.
const DefaultRadius = 8.0

// DefaultOptions returns the stock look of the effect.
func DefaultOptions() Options {
	return Options{
		Radius:     DefaultRadius,
		TailLength: trail.DefaultLength,
		BallColor:  DefaultBallColor,
		LineColor:  DefaultLineColor,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Radius <= 0 {
		o.Radius = d.Radius
	}
	if o.TailLength <= 0 {
		o.TailLength = d.TailLength
	}
	if o.BallColor == nil {
		o.BallColor = d.BallColor
	}
	if o.LineColor == nil {
		o.LineColor = d.LineColor
	}
	return o
}
