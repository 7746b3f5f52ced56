package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-cowpult/internal/core"
)

// helpRows is the number of rows under the game screen used by the help line.
const helpRows = 1

// keyLatch is how long a key counts as held after its last key event.
// Terminals report no key release, a held key arrives as autorepeat presses.
const keyLatch = 100 * time.Millisecond

// Model is the Bubble Tea model that drives a core.Game.
type Model struct {
	game   core.Game
	screen *core.Screen
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model
	logger *log.Logger
	now    func() time.Time

	// Input gathered since the last tick.
	keySeen [8]time.Time      // Last event per core.Buttons bit
	mouse   core.MouseButtons // Pointer buttons currently down
	clicks  core.MouseButtons // Pointer buttons pressed since the last tick
	mouseX  int
	mouseY  int

	err          error
	shotsDir     string
	quitting     bool
	lastShotPath string
}

// NewModel creates a new Bubble Tea model for the game.
func NewModel(g core.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	h := help.New()
	h.ShowAll = false

	m := Model{
		game:   g,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpRows),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
		logger: logger,
		now:    time.Now,
	}
	if home, err := os.UserHomeDir(); err == nil {
		m.shotsDir = filepath.Join(home, ".cowpult", "screenshots")
	}
	g.Resize(cfg.ScreenW, cfg.ScreenH-helpRows)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Err returns the error that stopped the game, if any.
func (m Model) Err() error {
	return m.err
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if b := m.keys.Buttons(msg); b != 0 {
		t := m.now()
		for i := range m.keySeen {
			if b&(1<<i) != 0 {
				m.keySeen[i] = t
			}
		}
	}
	return m, nil
}

// heldButtons returns the keys seen within keyLatch.
func (m Model) heldButtons() core.Buttons {
	now := m.now()
	var b core.Buttons
	for i, seen := range m.keySeen {
		if !seen.IsZero() && now.Sub(seen) < keyLatch {
			b |= 1 << i
		}
	}
	return b
}

// handleMouse tracks pointer buttons and position.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.mouseX, m.mouseY = msg.X, msg.Y

	switch msg.Action {
	case tea.MouseActionPress:
		b := mouseButton(msg.Button)
		m.mouse |= b
		m.clicks |= b
	case tea.MouseActionRelease:
		if b := mouseButton(msg.Button); b != 0 {
			m.mouse &^= b
		} else {
			m.mouse = 0 // Some terminals do not report which button went up
		}
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpRows)
	m.game.Resize(msg.Width, msg.Height-helpRows)
	m.help.Width = msg.Width
	return m, nil
}

// rawInput builds this tick's input. A click that was pressed and released
// between two ticks still shows as held for one tick.
func (m Model) rawInput() core.RawInput {
	return core.RawInput{
		Buttons: m.heldButtons(),
		Mouse:   m.mouse | m.clicks,
		MouseX:  m.mouseX,
		MouseY:  m.mouseY,
	}
}

// handleTick runs one simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res, err := m.game.Step(m.rawInput())
	if err != nil {
		m.logger.Error("game stopped", "error", err, "mode", res.State.Mode)
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	m.clicks = 0

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.shotsDir == "" {
		return
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotsDir, 0o755); err != nil {
		m.logger.Warn("screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotsDir, fmt.Sprintf("cowpult_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "error", err)
		return
	}
	m.lastShotPath = path
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the game.
func Run(g core.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(g, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Dragging needs motion events while a button is held
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
