// Package game runs the cowpult tick pipeline: the game-mode state machine,
// the player launch state machine, collision resolution and physics.
// It depends on core, frame, physics and world but has no terminal code.
package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-cowpult/internal/core"
	"github.com/vovakirdan/tui-cowpult/internal/frame"
	"github.com/vovakirdan/tui-cowpult/internal/physics"
	"github.com/vovakirdan/tui-cowpult/internal/world"
)

// Mode is the outer game state.
type Mode int

const (
	ModeTitleScreen Mode = iota
	ModePlaying
	ModeEndGame
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeTitleScreen:
		return "TitleScreen"
	case ModePlaying:
		return "Playing"
	case ModeEndGame:
		return "EndGame"
	default:
		return "Unknown"
	}
}

// LevelStatus is the verdict of a Rule after the collision pass.
type LevelStatus int

const (
	LevelInProgress LevelStatus = iota
	LevelComplete
	LevelLost
)

// String returns a human-readable name for the status.
func (s LevelStatus) String() string {
	switch s {
	case LevelInProgress:
		return "InProgress"
	case LevelComplete:
		return "Complete"
	case LevelLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Rule decides whether the active level has been won or lost.
type Rule func(active *world.Level, player PlayerStatus) LevelStatus

// AlwaysInProgress is the default Rule. No level is ever won or lost.
func AlwaysInProgress(*world.Level, PlayerStatus) LevelStatus {
	return LevelInProgress
}

// Source supplies the level roster when play starts.
type Source interface {
	Load() ([]world.Level, error)
}

// PlayingData is the state that only exists while playing.
type PlayingData struct {
	Levels  []world.Level // Pristine roster, never mutated
	Current int
	Active  world.Level // Live clone of Levels[Current]
	Player  PlayerStatus
}

// Pristine returns the roster copy of the current level.
func (p *PlayingData) Pristine() *world.Level {
	return &p.Levels[p.Current]
}

// restart re-clones the current level and puts the player back at its
// start position.
func (p *PlayingData) restart() {
	p.Active = p.Pristine().Clone()
	p.Player = ResetStatus(startPosition(p.Pristine()))
}

func startPosition(l *world.Level) physics.Position {
	if og := l.Player(); og != nil {
		return og.Position
	}
	return physics.Position{}
}

// Controller owns the whole game state and advances it one tick per Update.
type Controller struct {
	mode    Mode
	playing *PlayingData
	input   core.InputTracker
	frame   *frame.Frame
	home    physics.Position // Frame anchor restored on level start
	source  Source
	rule    Rule
	panStep float64
	tick    uint64
	session string
	base    *log.Logger
	logger  *log.Logger // base tagged with the session id
}

// Option configures a Controller.
type Option func(*Controller)

// WithRule sets the win/loss rule.
func WithRule(r Rule) Option {
	return func(c *Controller) {
		if r != nil {
			c.rule = r
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.base = l
		}
	}
}

// WithPanStep sets how far arrow keys move the frame per tick, in world units.
func WithPanStep(step float64) Option {
	return func(c *Controller) {
		c.panStep = step
	}
}

// NewController creates a controller on the title screen.
func NewController(src Source, f *frame.Frame, opts ...Option) *Controller {
	c := &Controller{
		mode:    ModeTitleScreen,
		frame:   f,
		home:    f.Anchor,
		source:  src,
		rule:    AlwaysInProgress,
		panStep: 2,
		base:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.base
	return c
}

// Mode returns the current game mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Playing returns the playing state, or nil outside ModePlaying.
func (c *Controller) Playing() *PlayingData {
	return c.playing
}

// Frame returns the viewport.
func (c *Controller) Frame() *frame.Frame {
	return c.frame
}

// Tick returns how many updates have run.
func (c *Controller) Tick() uint64 {
	return c.tick
}

// Session returns the id of the current play session, empty before the
// first start.
func (c *Controller) Session() string {
	return c.session
}

var _ core.Game = (*Controller)(nil)

// Update runs one tick with the given raw input. Mouse coordinates are
// screen cells, the HUD rows above the play area are taken off here.
// It only fails when the level roster cannot be loaded.
func (c *Controller) Update(raw core.RawInput) error {
	raw.MouseY -= HUDRows
	c.input.Update(raw)
	c.tick++

	switch c.mode {
	case ModeTitleScreen:
		if c.input.NewlyPressed(core.ButtonPrimary) {
			return c.start()
		}

	case ModePlaying:
		if c.input.NewlyPressed(core.ButtonPrimary) {
			c.restartLevel()
			c.resetPlayer()
		}
		c.pan()
		c.playTick()

	case ModeEndGame:
		if c.input.NewlyPressed(core.ButtonPrimary) {
			c.logger.Info("back to title")
			c.mode = ModeTitleScreen
		}
	}
	return nil
}

// Step is Update in the shape of core.Game.
func (c *Controller) Step(raw core.RawInput) (core.StepResult, error) {
	err := c.Update(raw)
	return core.StepResult{State: c.State()}, err
}

// State reports the mode, level and player status.
func (c *Controller) State() core.GameState {
	st := core.GameState{
		Mode:     c.mode.String(),
		GameOver: c.mode == ModeEndGame,
	}
	if p := c.playing; p != nil {
		st.Level = p.Active.Number
		st.Player = p.Player.String()
	}
	return st
}

// start loads the roster and begins level 0.
func (c *Controller) start() error {
	levels, err := c.source.Load()
	if err != nil {
		c.logger.Error("loading levels", "error", err)
		return fmt.Errorf("loading levels: %w", err)
	}
	if err := world.ValidateRoster(levels); err != nil {
		c.logger.Error("invalid level roster", "error", err)
		return fmt.Errorf("validating levels: %w", err)
	}

	c.session = uuid.NewString()
	c.logger = c.base.With("session", c.session)

	c.playing = &PlayingData{Levels: levels}
	c.playing.restart()
	c.frame.Anchor = c.home
	c.mode = ModePlaying

	c.logger.Info("playing", "levels", len(levels), "level", c.playing.Active.Number)
	return nil
}

// restartLevel re-clones the current level into the active slot.
func (c *Controller) restartLevel() {
	p := c.playing
	p.Active = p.Pristine().Clone()
	c.logger.Info("level restarted", "level", p.Active.Number)
}

// resetPlayer overwrites the live player with its pristine copy.
func (c *Controller) resetPlayer() {
	p := c.playing
	if live, og := p.Active.Player(), p.Pristine().Player(); live != nil && og != nil {
		*live = *og
	}
	p.Player = ResetStatus(startPosition(p.Pristine()))
}

// playTick runs the per-tick pipeline: transition, collisions, rule, physics.
func (c *Controller) playTick() {
	p := c.playing

	if t, ok := NextTransition(p.Player, &c.input, c.frame); ok {
		before := p.Player
		p.Player = ApplyTransition(p.Player, t, &p.Active, p.Pristine())
		if p.Player != before {
			c.logger.Debug("player transition", "transition", t, "status", p.Player)
		}
	}

	if hits := ResolveCollisions(&p.Active); hits > 0 {
		c.logger.Debug("collisions", "tick", c.tick, "pairs", hits)
	}

	switch c.rule(&p.Active, p.Player) {
	case LevelComplete:
		c.advance()
	case LevelLost:
		c.logger.Info("level lost", "level", p.Active.Number)
		p.restart()
	default:
		for i := range p.Active.Objects {
			p.Active.Objects[i].StepPhysics(p.Active.Physics)
		}
	}
}

// advance moves to the next level, or to EndGame after the last one.
func (c *Controller) advance() {
	p := c.playing
	completed := p.Active.Number
	p.Current++

	if p.Current >= len(p.Levels) {
		c.logger.Info("game complete", "level", completed)
		c.playing = nil
		c.mode = ModeEndGame
		return
	}

	p.restart()
	c.frame.Anchor = c.home
	c.logger.Info("level complete", "level", completed, "next", p.Active.Number)
}

// pan moves the frame while arrow buttons are held.
func (c *Controller) pan() {
	var d physics.Vector
	if c.input.Pressed(core.ButtonLeft) {
		d.X -= c.panStep
	}
	if c.input.Pressed(core.ButtonRight) {
		d.X += c.panStep
	}
	if c.input.Pressed(core.ButtonUp) {
		d.Y += c.panStep
	}
	if c.input.Pressed(core.ButtonDown) {
		d.Y -= c.panStep
	}
	if !d.IsZero() {
		c.frame.Move(d)
	}
}

// ErrNotPlaying is returned by operations that need an active level.
var ErrNotPlaying = errors.New("not playing")

// Launch sets the player in flight with vel as if it had been pulled back
// and released. Used by headless runs.
func (c *Controller) Launch(vel physics.Vector) error {
	if c.mode != ModePlaying {
		return ErrNotPlaying
	}
	p := c.playing
	if live := p.Active.Player(); live != nil {
		live.Velocity = vel
	}
	p.Player = BallisticStatus(vel)
	return nil
}
