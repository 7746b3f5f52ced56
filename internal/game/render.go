package game

import (
	"fmt"

	"github.com/vovakirdan/tui-cowpult/internal/core"
	"github.com/vovakirdan/tui-cowpult/internal/physics"
	"github.com/vovakirdan/tui-cowpult/internal/world"
)

// HUDRows is the number of screen rows above the play area.
const HUDRows = 1

// Resize fits the frame to a screen of width x height cells.
func (c *Controller) Resize(width, height int) {
	c.frame.Resize(width, max(height-HUDRows, 0))
}

// Render draws the current mode onto the screen.
func (c *Controller) Render(s *core.Screen) {
	s.Clear()

	switch c.mode {
	case ModeTitleScreen:
		renderTitle(s)
	case ModePlaying:
		c.renderLevel(s)
	case ModeEndGame:
		renderEndGame(s)
	}
}

func renderTitle(s *core.Screen) {
	mid := s.Height() / 2
	drawPanel(s, mid-5, 9, 49)
	s.DrawTextCentered(mid-3, "C O W P U L T", core.ColorBrightYellow)
	s.DrawTextCentered(mid-1, "Press X to play", core.ColorBrightWhite)
	s.DrawTextCentered(mid+1, "drag the cow back with the mouse and let go", core.ColorGray)
}

func renderEndGame(s *core.Screen) {
	mid := s.Height() / 2
	drawPanel(s, mid-3, 7, 36)
	s.DrawTextCentered(mid-1, "Congrats! You won!", core.ColorBrightGreen)
	s.DrawTextCentered(mid+1, "Press X to return to the title", core.ColorGray)
}

// drawPanel outlines a horizontally centered box of the given size starting
// at row y.
func drawPanel(s *core.Screen, y, h, w int) {
	w = min(w, s.Width())
	s.DrawBox(core.NewRect((s.Width()-w)/2, y, w, h), core.ColorOrange)
}

func (c *Controller) renderLevel(s *core.Screen) {
	p := c.playing
	area := core.NewRect(0, HUDRows, s.Width(), s.Height()-HUDRows)

	// Ground
	_, floor := c.frame.WorldToPixel(physics.P(c.frame.Anchor.X, 0))
	if floor >= 0 && floor < area.H {
		s.DrawHLine(0, floor+HUDRows, s.Width(), '▀', core.ColorGreen)
	}

	for i := range p.Active.Objects {
		c.drawObject(s, area, &p.Active.Objects[i])
	}

	if p.Player.State == StateHeld {
		gx, gy := c.frame.WorldToPixel(p.Player.Position)
		if area.Contains(gx, gy+HUDRows) {
			s.SetColored(gx, gy+HUDRows, '+', core.ColorBrightRed)
		}
		mx, my := c.input.Mouse()
		if area.Contains(mx, my+HUDRows) {
			s.SetColored(mx, my+HUDRows, 'o', core.ColorBrightRed)
		}
	}

	title := fmt.Sprintf(" Level %d", p.Active.Number)
	if p.Active.Name != "" {
		title += ": " + p.Active.Name
	}
	s.DrawTextColored(0, 0, title, core.ColorBrightYellow)

	status := p.Player.String() + " "
	s.DrawTextColored(s.Width()-len(status), 0, status, core.ColorGray)
}

// drawObject fills the object's cells, clipped to the play area.
func (c *Controller) drawObject(s *core.Screen, area core.Rect, o *world.Object) {
	x, y, ok := c.frame.DrawingCoords(o.Position, o.Hitbox())
	if !ok {
		return
	}
	w, h := c.frame.CellSize(o.Hitbox())
	r := area.Intersect(core.NewRect(x, y+HUDRows, w, h))
	if r.Empty() {
		return
	}

	glyph, color := appearance(o.Kind)
	s.DrawRect(r, glyph, color)
}

// appearance returns the fill rune and color for an object kind.
func appearance(k world.ObjectKind) (rune, core.Color) {
	switch k.Kind {
	case world.KindPlayer:
		switch k.Avatar {
		case world.AvatarLonghorn:
			return 'Y', core.ColorOrange
		case world.AvatarDairy:
			return '%', core.ColorBrightWhite
		case world.AvatarChocolate:
			return '@', core.ColorYellow
		default:
			return '@', core.ColorWhite
		}
	case world.KindLog:
		if k.Vertical {
			return '|', core.ColorOrange
		}
		return '=', core.ColorOrange
	case world.KindEnemy:
		if k.Enemy == world.EnemyScarecrow {
			return 'S', core.ColorMagenta
		}
		return 'F', core.ColorRed
	default:
		return '#', core.ColorGray
	}
}
