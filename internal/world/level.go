package world

import "github.com/vovakirdan/tui-cowpult/internal/physics"

// Object is one simulated body.
type Object struct {
	Kind     ObjectKind
	Position physics.Position
	Velocity physics.Vector
}

// NewObject creates an object.
func NewObject(kind ObjectKind, pos physics.Position, vel physics.Vector) Object {
	return Object{Kind: kind, Position: pos, Velocity: vel}
}

// Hitbox returns the object's collision box.
func (o *Object) Hitbox() physics.Rect {
	return o.Kind.Hitbox()
}

// Body returns the mass and velocity used by the collision resolver.
func (o *Object) Body() physics.Body {
	return physics.Body{Mass: o.Kind.Mass(), Velocity: o.Velocity}
}

// Intersects reports whether the two objects' hitboxes overlap.
func (o *Object) Intersects(other *Object) bool {
	return o.Hitbox().Intersects(o.Position, other.Hitbox(), other.Position)
}

// StepPhysics advances the object by one tick.
func (o *Object) StepPhysics(p physics.Params) {
	o.Position, o.Velocity = physics.Step(o.Position, o.Velocity, p)
}

// Level is one level's definition. The copy held in a roster is pristine;
// play happens on a Clone.
type Level struct {
	Number  int
	Name    string
	Objects []Object
	Physics physics.Params
}

// Clone creates a deep copy of the level.
func (l *Level) Clone() Level {
	clone := *l
	clone.Objects = make([]Object, len(l.Objects))
	copy(clone.Objects, l.Objects)
	return clone
}

// PlayerIndex returns the index of the first player object, or -1.
func (l *Level) PlayerIndex() int {
	for i := range l.Objects {
		if l.Objects[i].Kind.IsPlayer() {
			return i
		}
	}
	return -1
}

// Player returns a pointer to the player object, or nil if there is none.
func (l *Level) Player() *Object {
	if i := l.PlayerIndex(); i >= 0 {
		return &l.Objects[i]
	}
	return nil
}

// CountByKind returns how many objects of each kind the level holds.
func (l *Level) CountByKind() map[Kind]int {
	counts := make(map[Kind]int)
	for _, o := range l.Objects {
		counts[o.Kind.Kind]++
	}
	return counts
}
