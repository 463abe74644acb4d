// Package app ties the demo form and the focus trail effect together into
// a render.Game.
package app

import (
	"errors"
	"image/color"
	"log"
	"sort"

	"chosenoffset.com/focustrail/internal/effect"
	"chosenoffset.com/focustrail/internal/render"
	"chosenoffset.com/focustrail/internal/ui/form"
)

// ErrQuit is returned from Update when the user asks to leave.
var ErrQuit = errors.New("quit requested")

// Background is the page color behind the form.
var Background = color.RGBA{245, 246, 248, 255}

// Manager handles the form, the effect and window resizes.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Form         *form.Form
	Effect       *effect.Effect

	// Debug
	FrameCount  int
	Submissions int
}

// NewManager creates a manager showing fields with a focus trail following
// the focused one.
func NewManager(r render.Renderer, input render.InputManager, fields []*form.Field, opts effect.Options, width, height int) *Manager {
	m := &Manager{
		ScreenWidth:  width,
		ScreenHeight: height,
		Renderer:     r,
		InputMgr:     input,
		Form:         form.New(fields, r, input, width, height),
		Effect:       effect.New(r, opts),
	}
	m.Effect.Resize(width, height)

	m.Form.SetOnFocus(func(field *form.Field) {
		m.Effect.OnFocus(field)
	})
	m.Form.SetOnSubmit(m.onSubmit)

	return m
}

func (m *Manager) onSubmit(values map[string]string) {
	m.Submissions++

	labels := make([]string, 0, len(values))
	for label := range values {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		log.Printf("Submitted %s: %d characters", label, len([]rune(values[label])))
	}
}

// Update handles input.
func (m *Manager) Update() error {
	if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return ErrQuit
	}
	m.Form.Update()
	return nil
}

// Draw paints the form, then the effect over it. The effect repaints every
// frame.
func (m *Manager) Draw(screen render.Image) {
	screen.Fill(Background)
	m.Form.Draw(screen)

	m.Effect.Paint()
	m.Effect.Draw(screen)

	m.FrameCount++
}

// Layout handles window resize. The form is laid out again and the effect
// re-reads the focused field's geometry before the next paint.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != m.ScreenWidth || outsideHeight != m.ScreenHeight {
		m.ScreenWidth = outsideWidth
		m.ScreenHeight = outsideHeight
		m.Form.SetSize(outsideWidth, outsideHeight)
		m.Effect.Resize(outsideWidth, outsideHeight)
		m.Effect.OnFocus(nil)
	}
	return outsideWidth, outsideHeight
}
