// Package config provides the focus trail configuration. It is loaded from
// a JSON file that may contain comments, and every field has a default.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tidwall/jsonc"

	"chosenoffset.com/focustrail/internal/effect"
	"chosenoffset.com/focustrail/internal/ui/form"
)

// Config holds all settings for the focus trail demo
type Config struct {
	// Effect look
	Radius     float64 `json:"radius"`      // Ball radius and tail width in pixels
	TailLength int     `json:"tail_length"` // Number of trail points kept
	BallColor  string  `json:"ball_color"`  // Hex color, e.g. "#40cb90"
	LineColor  string  `json:"line_color"`  // Hex color, e.g. "#2c8660"

	// Kick the ball on the very first focus too
	ImpulseOnFirstFocus bool `json:"impulse_on_first_focus"`

	Window WindowConfig `json:"window"`
	Form   FormConfig   `json:"form"`
}

// WindowConfig defines the initial window
type WindowConfig struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
}

// FormConfig lists the demo form's fields, top to bottom
type FormConfig struct {
	Fields []FieldConfig `json:"fields"`
}

// FieldConfig defines one form field
type FieldConfig struct {
	Label string `json:"label"`
	Kind  string `json:"kind"` // "text", "password" or "button"
}

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Upper bounds for the effect's size settings.
const (
	MaxRadius     = 256
	MaxTailLength = 1000
)

// DefaultConfig returns the stock effect on the stock sign-up form
func DefaultConfig() *Config {
	return &Config{
		Radius:     effect.DefaultRadius,
		TailLength: 10,
		BallColor:  "#40cb90",
		LineColor:  "#2c8660",
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Focus Trail",
		},
		Form: FormConfig{
			Fields: []FieldConfig{
				{Label: "Name", Kind: "text"},
				{Label: "Email", Kind: "text"},
				{Label: "Password", Kind: "password"},
				{Label: "Submit The Thing", Kind: "button"},
			},
		},
	}
}

// LoadConfig loads config from a JSON file. Comments and trailing commas
// are allowed. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// Parse decodes config data on top of the defaults and validates it.
func Parse(data []byte) (*Config, error) {
	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(jsonc.ToJSON(data), config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if c.Radius <= 0 || c.Radius > MaxRadius {
		return fmt.Errorf("%w: radius must be in (0, %d], got %v", ErrInvalid, MaxRadius, c.Radius)
	}
	if c.TailLength < 1 || c.TailLength > MaxTailLength {
		return fmt.Errorf("%w: tail_length must be in [1, %d], got %d", ErrInvalid, MaxTailLength, c.TailLength)
	}
	if _, err := ParseColor(c.BallColor); err != nil {
		return fmt.Errorf("%w: ball_color: %v", ErrInvalid, err)
	}
	if _, err := ParseColor(c.LineColor); err != nil {
		return fmt.Errorf("%w: line_color: %v", ErrInvalid, err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if len(c.Form.Fields) == 0 {
		return fmt.Errorf("%w: form needs at least one field", ErrInvalid)
	}
	for i, f := range c.Form.Fields {
		if _, err := form.ParseKind(f.Kind); err != nil {
			return fmt.Errorf("%w: form field %d: %v", ErrInvalid, i, err)
		}
	}
	return nil
}

// EffectOptions converts the config into effect options. The config must
// have passed Validate.
func (c *Config) EffectOptions() effect.Options {
	ball, _ := ParseColor(c.BallColor)
	line, _ := ParseColor(c.LineColor)
	return effect.Options{
		Radius:              c.Radius,
		TailLength:          c.TailLength,
		BallColor:           ball,
		LineColor:           line,
		ImpulseOnFirstFocus: c.ImpulseOnFirstFocus,
	}
}

// FormFields converts the configured fields into form fields.
func (c *Config) FormFields() []*form.Field {
	fields := make([]*form.Field, 0, len(c.Form.Fields))
	for _, f := range c.Form.Fields {
		kind, _ := form.ParseKind(f.Kind)
		fields = append(fields, form.NewField(f.Label, kind))
	}
	return fields
}

// ParseColor parses a hex color such as "#40cb90" or "#4c9" into an
// opaque color.
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
