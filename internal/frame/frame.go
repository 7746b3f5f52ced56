// Package frame converts between world units and screen cells.
//
// The frame is a movable viewport: Anchor is the world position of its
// bottom-left corner and every screen cell covers CellW by CellH world units.
// Screen y grows downward while world y grows upward.
package frame

import (
	"math"

	"github.com/vovakirdan/tui-cowpult/internal/physics"
)

// Frame is the viewport through which the level is drawn.
type Frame struct {
	Anchor physics.Position
	CellW  float64 // World units per screen column
	CellH  float64 // World units per screen row
	Width  int     // Viewport width in cells
	Height int     // Viewport height in cells
}

// New creates a frame of width x height cells anchored at anchor.
// Non-positive cell sizes fall back to one world unit per cell.
func New(anchor physics.Position, cellW, cellH float64, width, height int) *Frame {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	return &Frame{Anchor: anchor, CellW: cellW, CellH: cellH, Width: width, Height: height}
}

// Resize changes the viewport size in cells, keeping the anchor.
func (f *Frame) Resize(width, height int) {
	f.Width, f.Height = width, height
}

// Move pans the viewport by offset world units.
func (f *Frame) Move(offset physics.Vector) {
	f.Anchor = f.Anchor.Offset(offset)
}

// Bounds returns the viewport's extent in world units.
func (f *Frame) Bounds() physics.Rect {
	return physics.NewRect(float64(f.Width)*f.CellW, float64(f.Height)*f.CellH)
}

// PixelToWorld returns the world position of the top-left corner of cell (x, y).
func (f *Frame) PixelToWorld(x, y int) physics.Position {
	return physics.P(
		f.Anchor.X+float64(x)*f.CellW,
		f.Anchor.Y+float64(f.Height-y)*f.CellH,
	)
}

// WorldToPixel returns the cell containing pos. Inverse of PixelToWorld.
func (f *Frame) WorldToPixel(pos physics.Position) (int, int) {
	x := math.Round((pos.X - f.Anchor.X) / f.CellW)
	y := float64(f.Height) - math.Round((pos.Y-f.Anchor.Y)/f.CellH)
	return int(x), int(y)
}

// Contains reports whether pos lies inside the viewport, edges included.
func (f *Frame) Contains(pos physics.Position) bool {
	b := f.Bounds()
	far := f.Anchor.Offset(physics.V(b.Width, b.Height))
	return pos.ContainedWithin(f.Anchor, far)
}

// DrawingCoords returns the cell of the top-left corner of a hitbox at pos.
// ok is false when the hitbox does not overlap the viewport.
func (f *Frame) DrawingCoords(pos physics.Position, hitbox physics.Rect) (x, y int, ok bool) {
	if !f.Bounds().Intersects(f.Anchor, hitbox, pos) {
		return 0, 0, false
	}
	x, y = f.WorldToPixel(physics.P(pos.X, pos.Y+hitbox.Height))
	return x, y, true
}

// CellSize returns how many cells a hitbox spans, at least one on each axis.
func (f *Frame) CellSize(hitbox physics.Rect) (int, int) {
	w := int(math.Round(hitbox.Width / f.CellW))
	h := int(math.Round(hitbox.Height / f.CellH))
	return max(w, 1), max(h, 1)
}
