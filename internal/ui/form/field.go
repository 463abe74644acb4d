package form

import (
	"fmt"
	"strings"

	"chosenoffset.com/focustrail/internal/core/geom"
)

// Kind is the type of a form field.
type Kind int

const (
	KindText Kind = iota
	KindPassword
	KindButton
)

// ParseKind parses the config name of a field kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "text", "":
		return KindText, nil
	case "password":
		return KindPassword, nil
	case "button":
		return KindButton, nil
	default:
		return KindText, fmt.Errorf("unknown field kind %q", s)
	}
}

// String returns the config name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPassword:
		return "password"
	case KindButton:
		return "button"
	default:
		return "text"
	}
}

// Field is a focusable form control. Its box is assigned by the form's
// layout.
type Field struct {
	Label string
	Kind  Kind

	value []rune
	label geom.Point
	box   geom.Rect
}

// NewField creates an empty field.
func NewField(label string, kind Kind) *Field {
	return &Field{Label: label, Kind: kind}
}

// Offset returns the field's box in surface pixels.
func (f *Field) Offset() geom.Rect {
	return f.box
}

// Value returns the text typed into the field.
func (f *Field) Value() string {
	return string(f.value)
}

// Display returns the text to show in the field; passwords are masked.
func (f *Field) Display() string {
	if f.Kind == KindPassword {
		return strings.Repeat("*", len(f.value))
	}
	return string(f.value)
}

// Editable reports whether the field accepts typed text.
func (f *Field) Editable() bool {
	return f.Kind != KindButton
}

func (f *Field) insert(runes []rune) {
	if f.Editable() {
		f.value = append(f.value, runes...)
	}
}

func (f *Field) backspace() {
	if f.Editable() && len(f.value) > 0 {
		f.value = f.value[:len(f.value)-1]
	}
}
