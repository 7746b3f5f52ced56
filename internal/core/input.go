package core

// Buttons is a bitmask of pad-style buttons held during one tick.
type Buttons uint8

const (
	ButtonPrimary   Buttons = 1 << iota // X, Space, Enter - start, restart
	ButtonSecondary                     // Z, R - reset the player
	ButtonLeft                          // Pan left
	ButtonRight                         // Pan right
	ButtonUp                            // Pan up
	ButtonDown                          // Pan down
)

// String returns a human-readable name for a single button.
func (b Buttons) String() string {
	switch b {
	case 0:
		return "None"
	case ButtonPrimary:
		return "Primary"
	case ButtonSecondary:
		return "Secondary"
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	default:
		return "Multiple"
	}
}

// MouseButtons is a bitmask of pointer buttons held during one tick.
type MouseButtons uint8

const (
	MouseLeft MouseButtons = 1 << iota
	MouseRight
	MouseMiddle
)

// RawInput is the unprocessed input state sampled for one tick.
// MouseX and MouseY are in screen cells.
type RawInput struct {
	Buttons Buttons
	Mouse   MouseButtons
	MouseX  int
	MouseY  int
}

// InputTracker answers edge-triggered queries by comparing the current
// tick's raw input with the previous tick's.
type InputTracker struct {
	prev RawInput
	cur  RawInput
}

// Update shifts the current state into the previous slot and stores raw.
// Call exactly once per tick.
func (t *InputTracker) Update(raw RawInput) {
	t.prev = t.cur
	t.cur = raw
}

// Pressed reports whether any of the buttons in b is held this tick.
func (t *InputTracker) Pressed(b Buttons) bool {
	return t.cur.Buttons&b != 0
}

// NewlyPressed reports whether any button in b went down this tick.
func (t *InputTracker) NewlyPressed(b Buttons) bool {
	changed := t.cur.Buttons ^ t.prev.Buttons
	return t.cur.Buttons&changed&b != 0
}

// Clicked reports whether any mouse button in m is held this tick.
func (t *InputTracker) Clicked(m MouseButtons) bool {
	return t.cur.Mouse&m != 0
}

// NewlyClicked reports whether any mouse button in m went down this tick.
func (t *InputTracker) NewlyClicked(m MouseButtons) bool {
	changed := t.cur.Mouse ^ t.prev.Mouse
	return t.cur.Mouse&changed&m != 0
}

// NewlyReleased reports whether any mouse button in m went up this tick.
func (t *InputTracker) NewlyReleased(m MouseButtons) bool {
	changed := t.cur.Mouse ^ t.prev.Mouse
	return t.prev.Mouse&changed&m != 0
}

// Mouse returns the pointer position in screen cells.
func (t *InputTracker) Mouse() (int, int) {
	return t.cur.MouseX, t.cur.MouseY
}
