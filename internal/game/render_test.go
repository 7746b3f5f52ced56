package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-cowpult/internal/core"
	"github.com/vovakirdan/tui-cowpult/internal/frame"
	"github.com/vovakirdan/tui-cowpult/internal/physics"
	"github.com/vovakirdan/tui-cowpult/internal/world"
)

func TestRenderModes(t *testing.T) {
	complete := func(*world.Level, PlayerStatus) LevelStatus { return LevelComplete }
	f := frame.New(physics.P(0, 0), 2, 5, 80, 23)
	c := NewController(staticSource{levels: testRoster()[:1]}, f, WithRule(complete))
	s := core.NewScreen(80, 24)

	c.Render(s)
	assert.Contains(t, s.String(), "Press X to play")
	assert.Contains(t, s.String(), "┌")

	require.NoError(t, c.Update(press))
	c.Render(s)
	out := s.String()
	assert.True(t, strings.HasPrefix(s.Row(0), " Level 1: First"), "HUD row = %q", s.Row(0))
	assert.Contains(t, s.Row(0), "Reset(20.0, 0.0)")
	assert.Contains(t, out, "@")
	assert.Contains(t, out, "#")

	require.NoError(t, c.Update(idle))
	require.Equal(t, ModeEndGame, c.Mode())
	c.Render(s)
	assert.Contains(t, s.String(), "Congrats! You won!")
}

func TestRenderPlacesObjects(t *testing.T) {
	f := frame.New(physics.P(0, -5), 2, 5, 80, 0)
	c := NewController(staticSource{levels: testRoster()}, f)
	c.Resize(80, 24)
	require.Equal(t, 23, f.Height)

	require.NoError(t, c.Update(press))
	s := core.NewScreen(80, 24)
	c.Render(s)

	// One row of ground is visible below y=0. The cow at world (20, 0) is
	// 10x10: cells x 10..14 on the two rows above it.
	cell := s.GetCell(10, 21)
	assert.Equal(t, '@', cell.Rune)
	assert.Equal(t, core.ColorWhite, cell.Color)
	assert.Equal(t, '@', s.GetCell(14, 22).Rune)
	assert.NotEqual(t, '@', s.GetCell(15, 22).Rune)

	// Ground is drawn on the row for world y=0.
	assert.Equal(t, '▀', s.GetCell(0, 23).Rune)
}

func TestRenderClipsOffscreenObjects(t *testing.T) {
	f := frame.New(physics.P(0, 0), 2, 5, 80, 23)
	c := NewController(staticSource{levels: testRoster()}, f)
	require.NoError(t, c.Update(press))

	f.Move(physics.V(1000, 0))
	s := core.NewScreen(80, 24)
	c.Render(s)

	assert.NotContains(t, s.String(), "@")
	assert.NotContains(t, s.String(), "#")
}
