package raster

import (
	"fmt"
	"image"

	"chosenoffset.com/focustrail/internal/render"
)

// Engine runs a render.Game for a fixed number of frames without a window.
// Every frame it ticks the scripted input, lays out, updates and draws the
// game, then hands the finished frame to OnFrame.
type Engine struct {
	Frames int

	// BeforeFrame runs before the input tick of each frame, so scripted
	// events queued here are seen by that frame's Update.
	BeforeFrame func(frame int)

	// OnFrame receives every drawn frame. The image is reused between
	// frames; copy it to keep it.
	OnFrame func(frame int, img *image.RGBA) error

	input     *Input
	renderer  *Renderer
	width     int
	height    int
	title     string
	resizable bool
}

// NewEngine creates an engine that draws with r and feeds input to the game.
// Either may be nil.
func NewEngine(r *Renderer, input *Input, frames int) *Engine {
	if r == nil {
		r = NewRenderer()
	}
	return &Engine{
		Frames:   frames,
		input:    input,
		renderer: r,
		width:    640,
		height:   480,
	}
}

// SetWindowSize sets the surface size in pixels. Games see the change in
// their next Layout call, the same way a window resize is delivered.
func (e *Engine) SetWindowSize(width, height int) {
	e.width = width
	e.height = height
}

// SetWindowTitle records the title.
func (e *Engine) SetWindowTitle(title string) {
	e.title = title
}

// Title returns the last title set.
func (e *Engine) Title() string {
	return e.title
}

// SetWindowResizable records the setting; a headless surface only changes
// size through SetWindowSize.
func (e *Engine) SetWindowResizable(resizable bool) {
	e.resizable = resizable
}

// RunGame runs the frame loop for e.Frames frames.
func (e *Engine) RunGame(game render.Game) error {
	var screen *Image
	for frame := 0; frame < e.Frames; frame++ {
		if e.BeforeFrame != nil {
			e.BeforeFrame(frame)
		}
		if e.input != nil {
			e.input.Tick()
		}

		w, h := game.Layout(e.width, e.height)
		if w <= 0 || h <= 0 {
			return fmt.Errorf("invalid layout size %dx%d", w, h)
		}
		if screen == nil || needsResize(screen, w, h) {
			screen = e.renderer.NewImage(w, h).(*Image)
		}

		if err := game.Update(); err != nil {
			return err
		}

		screen.Clear()
		game.Draw(screen)

		if e.OnFrame != nil {
			if err := e.OnFrame(frame, screen.RGBA()); err != nil {
				return fmt.Errorf("frame %d: %w", frame, err)
			}
		}
	}
	return nil
}

func needsResize(img render.Image, w, h int) bool {
	bounds := img.Bounds()
	return bounds.Dx() != w || bounds.Dy() != h
}
