package physics

// Rect is a hitbox size. The rectangle is anchored at its owner's position
// (bottom-left corner, y pointing up) and extends Width to the right and
// Height upwards.
type Rect struct {
	Width  float64
	Height float64
}

// NewRect creates a hitbox of the given size.
func NewRect(width, height float64) Rect {
	return Rect{Width: width, Height: height}
}

// Intersects reports whether r placed at pos overlaps other placed at
// otherPos. Both axes must overlap strictly: rectangles that only touch
// along an edge do not intersect.
func (r Rect) Intersects(pos Position, other Rect, otherPos Position) bool {
	return pos.X+r.Width > otherPos.X &&
		otherPos.X+other.Width > pos.X &&
		pos.Y+r.Height > otherPos.Y &&
		otherPos.Y+other.Height > pos.Y
}
