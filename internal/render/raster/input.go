package raster

import "chosenoffset.com/focustrail/internal/render"

// Input is a scripted render.InputManager. Events queued with Press, Click
// and Type become visible on the next Tick and last for that tick only;
// keys set with Hold stay down until Release.
type Input struct {
	pendingKeys  map[render.Key]bool
	pendingClick *[2]int
	pendingChars []rune

	justPressed map[render.Key]bool
	held        map[render.Key]bool
	mouseDown   bool
	cursorX     int
	cursorY     int
	chars       []rune
}

// NewInput creates an idle scripted input.
func NewInput() *Input {
	return &Input{
		pendingKeys: make(map[render.Key]bool),
		justPressed: make(map[render.Key]bool),
		held:        make(map[render.Key]bool),
	}
}

// Press queues a key press for the next tick.
func (in *Input) Press(key render.Key) {
	in.pendingKeys[key] = true
}

// Hold keeps key down until Release is called.
func (in *Input) Hold(key render.Key) {
	in.held[key] = true
}

// Release lifts a held key.
func (in *Input) Release(key render.Key) {
	delete(in.held, key)
}

// Click queues a left click at (x, y) for the next tick.
func (in *Input) Click(x, y int) {
	in.pendingClick = &[2]int{x, y}
}

// Type queues text to be delivered as typed characters on the next tick.
func (in *Input) Type(text string) {
	in.pendingChars = append(in.pendingChars, []rune(text)...)
}

// Tick makes the queued events current and clears the previous tick's.
func (in *Input) Tick() {
	in.justPressed, in.pendingKeys = in.pendingKeys, make(map[render.Key]bool)

	in.mouseDown = false
	if in.pendingClick != nil {
		in.cursorX, in.cursorY = in.pendingClick[0], in.pendingClick[1]
		in.mouseDown = true
		in.pendingClick = nil
	}

	in.chars, in.pendingChars = in.pendingChars, nil
}

// IsKeyPressed returns whether the key is held or was pressed this tick.
func (in *Input) IsKeyPressed(key render.Key) bool {
	return in.held[key] || in.justPressed[key]
}

// IsKeyJustPressed returns whether the key was pressed this tick.
func (in *Input) IsKeyJustPressed(key render.Key) bool {
	return in.justPressed[key]
}

// GetCursorPosition returns the position of the last click.
func (in *Input) GetCursorPosition() (x, y int) {
	return in.cursorX, in.cursorY
}

// IsMouseButtonPressed reports a left click during this tick.
func (in *Input) IsMouseButtonPressed(button render.MouseButton) bool {
	return button == render.MouseButtonLeft && in.mouseDown
}

// AppendInputChars appends the characters typed during this tick.
func (in *Input) AppendInputChars(runes []rune) []rune {
	return append(runes, in.chars...)
}
