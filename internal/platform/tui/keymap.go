package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-cowpult/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Play       key.Binding
	Reset      key.Binding
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Reset, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Play, k.Reset},
		{k.Left, k.Right, k.Up, k.Down},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Play: key.NewBinding(
			key.WithKeys("x", " ", "enter"),
			key.WithHelp("x", "play/restart"),
		),
		Reset: key.NewBinding(
			key.WithKeys("z", "r"),
			key.WithHelp("z/right click", "fetch cow"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "pan left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "pan right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "pan up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "pan down"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Buttons translates a key message to the pad buttons it presses.
// Returns 0 for keys that are not game buttons.
func (k KeyMap) Buttons(msg tea.KeyMsg) core.Buttons {
	switch {
	case key.Matches(msg, k.Play):
		return core.ButtonPrimary
	case key.Matches(msg, k.Reset):
		return core.ButtonSecondary
	case key.Matches(msg, k.Left):
		return core.ButtonLeft
	case key.Matches(msg, k.Right):
		return core.ButtonRight
	case key.Matches(msg, k.Up):
		return core.ButtonUp
	case key.Matches(msg, k.Down):
		return core.ButtonDown
	}
	return 0
}

// mouseButton maps a Bubble Tea mouse button to a pointer bit.
func mouseButton(b tea.MouseButton) core.MouseButtons {
	switch b {
	case tea.MouseButtonLeft:
		return core.MouseLeft
	case tea.MouseButtonRight:
		return core.MouseRight
	case tea.MouseButtonMiddle:
		return core.MouseMiddle
	}
	return 0
}
