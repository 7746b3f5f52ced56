package physics

import "fmt"

// CollisionKind selects the formula used by Simulate.
type CollisionKind int

const (
	// Elastic swaps the bodies' momenta, each converted back to a velocity
	// with the receiving body's mass.
	Elastic CollisionKind = iota
	// Damping is Elastic followed by scaling the horizontal component of
	// both results by (1 - Factor).
	Damping
	// PerfectlyInelastic gives both bodies their common centre-of-mass velocity.
	PerfectlyInelastic
)

// String returns a human-readable name for the collision kind.
func (k CollisionKind) String() string {
	switch k {
	case Elastic:
		return "Elastic"
	case Damping:
		return "Damping"
	case PerfectlyInelastic:
		return "PerfectlyInelastic"
	default:
		return fmt.Sprintf("CollisionKind(%d)", int(k))
	}
}

// Collision describes how two bodies exchange momentum.
// Factor is only read for Damping.
type Collision struct {
	Kind   CollisionKind
	Factor float64
}

// ElasticCollision returns an Elastic collision.
func ElasticCollision() Collision {
	return Collision{Kind: Elastic}
}

// DampedCollision returns a Damping collision with the given factor.
func DampedCollision(factor float64) Collision {
	return Collision{Kind: Damping, Factor: factor}
}

// InelasticCollision returns a PerfectlyInelastic collision.
func InelasticCollision() Collision {
	return Collision{Kind: PerfectlyInelastic}
}

// Body is the part of an object the resolver needs.
type Body struct {
	Mass     float64
	Velocity Vector
}

// Simulate returns the velocities of two bodies after they collide.
//
// The elastic formula is v1' = m2*v2/m1 and v2' = m1*v1/m2. It is exact for
// equal masses only; unequal masses are resolved with the same swap.
func Simulate(a, b Body, c Collision) (Vector, Vector) {
	switch c.Kind {
	case PerfectlyInelastic:
		total := a.Velocity.Mul(a.Mass).Add(b.Velocity.Mul(b.Mass))
		vf := total.Div(a.Mass + b.Mass)
		return vf, vf

	case Damping:
		va, vb := swapMomentum(a, b)
		keep := 1 - c.Factor
		va.X *= keep
		vb.X *= keep
		return va, vb

	default:
		return swapMomentum(a, b)
	}
}

func swapMomentum(a, b Body) (Vector, Vector) {
	return b.Velocity.Mul(b.Mass).Div(a.Mass), a.Velocity.Mul(a.Mass).Div(b.Mass)
}
