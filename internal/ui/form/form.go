// Package form is a small keyboard and mouse driven sign-up form. Every
// focus change is reported so an effect can follow the focused field.
package form

import (
	"image/color"

	"chosenoffset.com/focustrail/internal/core/geom"
	"chosenoffset.com/focustrail/internal/render"
)

// Layout constants, in pixels
const (
	Width        = 300
	LabelHeight  = 20
	InputHeight  = 28
	ButtonHeight = 32
	Gap          = 16
	MinMargin    = 20
	textPadding  = 8
)

var (
	labelColor       = color.RGBA{60, 60, 70, 255}
	inputFillColor   = color.RGBA{255, 255, 255, 255}
	inputBorderColor = color.RGBA{180, 180, 190, 255}
	focusBorderColor = color.RGBA{0x2c, 0x86, 0x60, 255}
	valueColor       = color.RGBA{20, 20, 30, 255}
	buttonFillColor  = color.RGBA{0x40, 0xcb, 0x90, 255}
	buttonTextColor  = color.RGBA{255, 255, 255, 255}
	inputBorderWidth = float32(1)
	focusBorderWidth = float32(2)
)

// Form lays out its fields in a centered column and routes input to them.
type Form struct {
	fields         []*Field
	focused        int
	renderer       render.Renderer
	input          render.InputManager
	screenWidth    int
	screenHeight   int
	lastMouseClick bool
	chars          []rune

	onFocus  func(*Field)
	onSubmit func(values map[string]string)
}

// New creates a form with nothing focused.
func New(fields []*Field, r render.Renderer, input render.InputManager, width, height int) *Form {
	f := &Form{
		fields:   fields,
		focused:  -1,
		renderer: r,
		input:    input,
	}
	f.SetSize(width, height)
	return f
}

// SetOnFocus sets the callback run whenever a different field gains focus.
func (f *Form) SetOnFocus(fn func(*Field)) {
	f.onFocus = fn
}

// SetOnSubmit sets the callback run when the button is activated.
func (f *Form) SetOnSubmit(fn func(values map[string]string)) {
	f.onSubmit = fn
}

// Fields returns the form's fields, top to bottom.
func (f *Form) Fields() []*Field {
	return f.fields
}

// Focused returns the focused field, or nil.
func (f *Form) Focused() *Field {
	if f.focused < 0 {
		return nil
	}
	return f.fields[f.focused]
}

// SetSize lays the fields out again for a new screen size.
func (f *Form) SetSize(width, height int) {
	f.screenWidth = width
	f.screenHeight = height

	total := 0.0
	for _, field := range f.fields {
		if field.Kind == KindButton {
			total += ButtonHeight + Gap
		} else {
			total += LabelHeight + InputHeight + Gap
		}
	}
	if len(f.fields) > 0 {
		total -= Gap
	}

	x := float64(width-Width) / 2
	if x < MinMargin {
		x = MinMargin
	}
	y := (float64(height) - total) / 2
	if y < MinMargin {
		y = MinMargin
	}

	for _, field := range f.fields {
		if field.Kind == KindButton {
			field.box = geom.Rect{Left: x, Top: y, Width: Width, Height: ButtonHeight}
			y += ButtonHeight + Gap
			continue
		}
		field.label = geom.Point{X: x, Y: y}
		y += LabelHeight
		field.box = geom.Rect{Left: x, Top: y, Width: Width, Height: InputHeight}
		y += InputHeight + Gap
	}
}

// Focus moves focus to the field at index i. Out of range indexes and the
// already focused field are ignored.
func (f *Form) Focus(i int) {
	if i < 0 || i >= len(f.fields) || i == f.focused {
		return
	}
	f.focused = i
	if f.onFocus != nil {
		f.onFocus(f.fields[i])
	}
}

// FocusNext moves focus down, wrapping to the top.
func (f *Form) FocusNext() {
	if len(f.fields) == 0 {
		return
	}
	f.Focus((f.focused + 1) % len(f.fields))
}

// FocusPrev moves focus up, wrapping to the bottom.
func (f *Form) FocusPrev() {
	if len(f.fields) == 0 {
		return
	}
	if f.focused <= 0 {
		f.Focus(len(f.fields) - 1)
		return
	}
	f.Focus(f.focused - 1)
}

// Update handles one tick of input. Returns true if the form was submitted.
func (f *Form) Update() bool {
	if len(f.fields) == 0 {
		return false
	}

	mouseX, mouseY := f.input.GetCursorPosition()
	mousePressed := f.input.IsMouseButtonPressed(render.MouseButtonLeft)

	// Detect mouse click (button pressed this frame but not last frame)
	mouseClicked := mousePressed && !f.lastMouseClick
	f.lastMouseClick = mousePressed

	if mouseClicked {
		p := geom.Point{X: float64(mouseX), Y: float64(mouseY)}
		for i, field := range f.fields {
			if field.box.Contains(p) {
				f.Focus(i)
				if field.Kind == KindButton {
					return f.submit()
				}
				break
			}
		}
	}

	if f.input.IsKeyJustPressed(render.KeyTab) {
		if f.input.IsKeyPressed(render.KeyShift) {
			f.FocusPrev()
		} else {
			f.FocusNext()
		}
	}
	if f.input.IsKeyJustPressed(render.KeyDown) {
		f.FocusNext()
	}
	if f.input.IsKeyJustPressed(render.KeyUp) {
		f.FocusPrev()
	}

	focused := f.Focused()
	if focused == nil {
		return false
	}

	// Enter submits from any field, like a browser form.
	if f.input.IsKeyJustPressed(render.KeyEnter) {
		return f.submit()
	}

	f.chars = f.input.AppendInputChars(f.chars[:0])
	focused.insert(f.chars)
	if f.input.IsKeyJustPressed(render.KeyBackspace) {
		focused.backspace()
	}

	return false
}

func (f *Form) submit() bool {
	if f.onSubmit != nil {
		values := make(map[string]string, len(f.fields))
		for _, field := range f.fields {
			if field.Editable() {
				values[field.Label] = field.Value()
			}
		}
		f.onSubmit(values)
	}
	return true
}

// Draw renders the form to the screen.
func (f *Form) Draw(screen render.Image) {
	_, textHeight := f.renderer.MeasureText("M", 1.0)

	for i, field := range f.fields {
		box := field.box
		x, y := float32(box.Left), float32(box.Top)
		w, h := float32(box.Width), float32(box.Height)
		isFocused := i == f.focused

		if field.Kind == KindButton {
			f.renderer.FillRect(screen, x, y, w, h, buttonFillColor)
			textWidth, _ := f.renderer.MeasureText(field.Label, 1.0)
			tx := int(box.Left + (box.Width-float64(textWidth))/2)
			ty := int(box.Top + (box.Height-float64(textHeight))/2)
			f.renderer.DrawText(screen, field.Label, tx, ty, buttonTextColor, 1.0)
			if isFocused {
				f.renderer.StrokeRect(screen, x, y, w, h, focusBorderWidth, focusBorderColor)
			}
			continue
		}

		f.renderer.DrawText(screen, field.Label, int(field.label.X), int(field.label.Y), labelColor, 1.0)
		f.renderer.FillRect(screen, x, y, w, h, inputFillColor)
		if isFocused {
			f.renderer.StrokeRect(screen, x, y, w, h, focusBorderWidth, focusBorderColor)
		} else {
			f.renderer.StrokeRect(screen, x, y, w, h, inputBorderWidth, inputBorderColor)
		}

		ty := int(box.Top + (box.Height-float64(textHeight))/2)
		f.renderer.DrawText(screen, field.Display(), int(box.Left)+textPadding, ty, valueColor, 1.0)
	}
}
