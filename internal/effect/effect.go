// Package effect draws a ball that chases the focused element, trailing a
// smoothed tail of its recent positions.
package effect

import (
	"chosenoffset.com/focustrail/internal/focus"
	"chosenoffset.com/focustrail/internal/render"
	"chosenoffset.com/focustrail/internal/trail"
)

// Surface is the size of the area the effect draws on.
type Surface struct {
	Width, Height int
}

// Effect is one mounted focus trail. It owns its head state, its trail and
// an offscreen canvas the size of the surface. All methods must be called
// from the frame loop's goroutine.
type Effect struct {
	opts     Options
	renderer render.Renderer
	tracker  *focus.Tracker
	tail     *trail.Buffer
	surface  Surface
	canvas   render.Image
	stroke   render.StrokeOptions
}

// New creates an effect that draws with r.
func New(r render.Renderer, opts Options) *Effect {
	opts = opts.withDefaults()
	return &Effect{
		opts:     opts,
		renderer: r,
		tracker:  focus.NewTracker(opts.Radius, opts.ImpulseOnFirstFocus),
		tail:     trail.NewBuffer(opts.TailLength),
		stroke: render.StrokeOptions{
			Width:   float32(opts.Radius),
			LineCap: render.LineCapRound,
		},
	}
}

// OnFocus is called when el gains focus. Calling it with nil re-reads the
// geometry of the element already tracked.
func (e *Effect) OnFocus(el focus.Element) {
	e.tracker.OnFocus(el)
}

// Resize sets the surface size. The canvas is rebuilt at the next Paint.
// Trail points keep their old coordinates.
func (e *Effect) Resize(width, height int) {
	e.surface = Surface{Width: width, Height: height}
}

// Surface returns the current surface size.
func (e *Effect) Surface() Surface {
	return e.surface
}

// Options returns the effective options.
func (e *Effect) Options() Options {
	return e.opts
}

// Head returns a copy of the marker's head state.
func (e *Effect) Head() focus.HeadState {
	return e.tracker.Head()
}

// Trail returns the trail buffer.
func (e *Effect) Trail() *trail.Buffer {
	return e.tail
}

// Canvas returns the offscreen canvas, or nil before the first Paint.
func (e *Effect) Canvas() render.Image {
	return e.canvas
}

// Paint renders one frame onto the canvas. It runs every frame whether or
// not anything changed. The trail is captured before the head moves so the
// ball always leads its tail.
func (e *Effect) Paint() {
	if !e.ensureCanvas() {
		return
	}

	e.canvas.Clear()
	if !e.tracker.Tracking() {
		return
	}

	pos, _ := e.tracker.Head().Pos()
	e.tail.Push(pos)

	if path := trail.Smooth(e.tail.Points()); path != nil {
		e.renderer.StrokePath(e.canvas, path, &e.stroke, e.opts.LineColor)
	}

	e.tracker.Advance()

	pos, _ = e.tracker.Head().Pos()
	e.renderer.FillCircle(e.canvas, float32(pos.X), float32(pos.Y), float32(e.opts.Radius), e.opts.BallColor)
}

// Draw composites the canvas onto screen.
func (e *Effect) Draw(screen render.Image) {
	if e.canvas == nil || screen == nil {
		return
	}
	screen.DrawImage(e.canvas)
}

// ensureCanvas makes sure a canvas matching the surface exists. It reports
// false when there is nothing to draw on.
func (e *Effect) ensureCanvas() bool {
	if e.renderer == nil || e.surface.Width <= 0 || e.surface.Height <= 0 {
		return false
	}
	if e.canvas == nil || needsResize(e.canvas, e.surface.Width, e.surface.Height) {
		if e.canvas != nil {
			e.canvas.Dispose()
		}
		e.canvas = e.renderer.NewImage(e.surface.Width, e.surface.Height)
	}
	return e.canvas != nil
}

func needsResize(img render.Image, w, h int) bool {
	bounds := img.Bounds()
	return bounds.Dx() != w || bounds.Dy() != h
}
