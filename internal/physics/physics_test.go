package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func assertVector(t *testing.T, expected, actual Vector, delta float64) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, delta, "x component")
	assert.InDelta(t, expected.Y, actual.Y, delta, "y component")
}

func TestVectorArithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(-1, 2)

	assert.Equal(t, V(2, 6), a.Add(b))
	assert.Equal(t, V(4, 2), a.Sub(b))
	assert.Equal(t, V(6, 8), a.Mul(2))
	assert.Equal(t, V(1.5, 2), a.Div(2))
	assert.Equal(t, V(-3, -4), a.Neg())
	assert.Equal(t, 5.0, a.Dot(b))
	assert.Equal(t, 5.0, a.Magnitude())
}

func TestVectorNormalize(t *testing.T) {
	n := V(3, 4).Normalize()
	assertVector(t, V(0.6, 0.8), n, eps)
	assert.InDelta(t, 1.0, n.Magnitude(), eps)

	zero := V(0, 0)
	if !zero.IsZero() {
		t.Fatal("zero vector should report IsZero")
	}
	nz := zero.Normalize()
	if !math.IsNaN(nz.X) || !math.IsNaN(nz.Y) {
		t.Errorf("normalizing zero vector should give NaN, got %+v", nz)
	}
}

func TestBetween(t *testing.T) {
	v := Between(P(1, 1), P(4, -3))
	assert.Equal(t, V(3, -4), v)
	assert.Equal(t, P(4, -3), P(1, 1).Offset(v))
}

func TestContainedWithin(t *testing.T) {
	tests := []struct {
		name     string
		p, a, b  Position
		expected bool
	}{
		{"simple square", P(0.5, 0.5), P(0, 0), P(1, 1), true},
		{"corners in any order", P(0, 0), P(-10, 10), P(6, -1), true},
		{"outside", P(2, 2), P(0, 0), P(1, 1), false},
		{"on lower bound", P(0, 0.5), P(0, 0), P(1, 1), true},
		{"on upper corner", P(1, 1), P(0, 0), P(1, 1), true},
		{"just past bound", P(1.0001, 0.5), P(0, 0), P(1, 1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.ContainedWithin(tc.a, tc.b); got != tc.expected {
				t.Errorf("ContainedWithin() = %v, expected %v", got, tc.expected)
			}
			if got := tc.p.ContainedWithin(tc.b, tc.a); got != tc.expected {
				t.Errorf("ContainedWithin() (swapped corners) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	box := NewRect(10, 10)
	log := NewRect(3, 30)

	tests := []struct {
		name     string
		a        Rect
		pa       Position
		b        Rect
		pb       Position
		expected bool
	}{
		{"overlapping", box, P(0, 0), box, P(5, 5), true},
		{"separate horizontally", box, P(0, 0), box, P(15, 0), false},
		{"separate vertically", box, P(0, 0), box, P(0, 15), false},
		{"touching right edge", box, P(0, 0), box, P(10, 0), false},
		{"touching top edge", box, P(0, 0), box, P(0, 10), false},
		{"contained", NewRect(20, 20), P(0, 0), NewRect(5, 5), P(5, 5), true},
		{"thin log crossing box", box, P(0, 0), log, P(4, -10), true},
		{"tiny overlap", box, P(0, 0), box, P(9.999, 9.999), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.a.Intersects(tc.pa, tc.b, tc.pb)
			if got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if rev := tc.b.Intersects(tc.pb, tc.a, tc.pa); rev != got {
				t.Errorf("Intersects() is not symmetric: %v vs %v", got, rev)
			}
		})
	}
}

func TestStepFreeFall(t *testing.T) {
	p := DefaultParams()
	pos, vel := Step(P(0, 100), V(1, 0), p)

	// Velocity is updated before position.
	assertVector(t, V(1, -50*TimeStep), vel, eps)
	assert.InDelta(t, TimeStep, pos.X, eps)
	assert.InDelta(t, 100+vel.Y*TimeStep, pos.Y, eps)
}

func TestStepFloorBounce(t *testing.T) {
	p := DefaultParams()
	pos, vel := Step(P(5, 0.01), V(0, -10), p)

	if pos.Y != 0 {
		t.Errorf("position should be clamped to floor, got y=%f", pos.Y)
	}
	expected := (10 + 50*TimeStep) * (1 - p.BounceDamping)
	assert.InDelta(t, expected, vel.Y, eps)
	if vel.Y <= 0 || vel.Y >= 10+50*TimeStep {
		t.Errorf("bounce should be upward and damped, got %f", vel.Y)
	}
}

func TestStepFloorThreshold(t *testing.T) {
	p := Params{Gravity: V(0, -0.05), BounceDamping: DefaultBounceDamping}
	pos, vel := Step(P(0, 0), V(0, 0), p)

	if pos.Y != 0 {
		t.Errorf("position should stay on floor, got y=%f", pos.Y)
	}
	if vel.Y != 0 {
		t.Errorf("sub-threshold bounce should be zeroed, got %g", vel.Y)
	}
}

func TestStepFloorRisingBodyNotReflected(t *testing.T) {
	p := Params{Gravity: V(0, 0)}
	pos, vel := Step(P(0, -1), V(0, 3), p)

	if pos.Y != 0 {
		t.Errorf("body below floor should be clamped, got y=%f", pos.Y)
	}
	if vel.Y != 3 {
		t.Errorf("rising body keeps its velocity, got %f", vel.Y)
	}
}

func TestBallisticClosedForm(t *testing.T) {
	pos, vel := Ballistic(P(0, 0), V(10, 10), V(0, -1), 10)

	assert.InDelta(t, 100.0, pos.X, eps)
	assert.InDelta(t, 50.0, pos.Y, eps)
	assertVector(t, V(10, 0), vel, eps)
}

func TestStepMatchesBallistic(t *testing.T) {
	p := Params{Gravity: V(0, -1)}
	pos, vel := P(0, 0), V(10, 10)

	ticks := int(math.Round(10 / TimeStep))
	for i := 0; i < ticks; i++ {
		pos, vel = Step(pos, vel, p)
	}

	wantPos, wantVel := Ballistic(P(0, 0), V(10, 10), V(0, -1), 10)
	// Semi-implicit Euler drifts by about a*dt*T/2 over the flight.
	assert.InDelta(t, wantPos.X, pos.X, 0.1)
	assert.InDelta(t, wantPos.Y, pos.Y, 0.1)
	assertVector(t, wantVel, vel, 1e-6)
}

func TestSimulatePerfectlyInelastic(t *testing.T) {
	a := Body{Mass: 10, Velocity: V(4, 0)}
	b := Body{Mass: 10, Velocity: V(0, 0)}

	va, vb := Simulate(a, b, InelasticCollision())
	assert.Equal(t, va, vb)
	assertVector(t, V(2, 0), va, eps)
	assert.InDelta(t, 2.0, va.Magnitude(), eps)

	// Heavier mover: momentum 3*20 shared over mass 30.
	a = Body{Mass: 20, Velocity: V(3, 0)}
	va, vb = Simulate(a, b, InelasticCollision())
	assert.Equal(t, va, vb)
	assertVector(t, V(2, 0), va, eps)
}

func TestSimulatePerfectlyInelasticConservesMomentum(t *testing.T) {
	// Equal masses at (3,0) and (0,0) share the momentum: (1.5,0) each,
	// not (2,0).
	a := Body{Mass: 10, Velocity: V(3, 0)}
	b := Body{Mass: 10, Velocity: V(0, 0)}

	va, vb := Simulate(a, b, InelasticCollision())
	assert.Equal(t, va, vb)
	assertVector(t, V(1.5, 0), va, eps)

	before := a.Velocity.Mul(a.Mass).Add(b.Velocity.Mul(b.Mass))
	after := va.Mul(a.Mass).Add(vb.Mul(b.Mass))
	assertVector(t, before, after, eps)
}

func TestSimulateElastic(t *testing.T) {
	tests := []struct {
		name   string
		v1, v2 Vector
	}{
		{"one at rest", V(3, 0), V(0, 0)},
		{"head on", V(-3, 0), V(4, 0)},
		{"diagonal", V(1, 2), V(-2, 5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := Body{Mass: 10, Velocity: tc.v1}
			b := Body{Mass: 10, Velocity: tc.v2}

			va, vb := Simulate(a, b, ElasticCollision())
			assertVector(t, tc.v2, va, eps)
			assertVector(t, tc.v1, vb, eps)
		})
	}
}

func TestSimulateElasticUnequalMasses(t *testing.T) {
	a := Body{Mass: 2, Velocity: V(3, 0)}
	b := Body{Mass: 6, Velocity: V(1, 0)}

	va, vb := Simulate(a, b, ElasticCollision())
	assertVector(t, V(3, 0), va, eps) // 6*1/2
	assertVector(t, V(1, 0), vb, eps) // 2*3/6
}

func TestSimulateDamping(t *testing.T) {
	const factor = 0.05

	tests := []struct {
		name   string
		v1, v2 Vector
	}{
		{"one at rest", V(3, 0), V(0, 0)},
		{"head on", V(-3, 0), V(4, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := Body{Mass: 10, Velocity: tc.v1}
			b := Body{Mass: 10, Velocity: tc.v2}

			va, vb := Simulate(a, b, DampedCollision(factor))
			assertVector(t, tc.v2.Mul(1-factor), va, eps)
			assertVector(t, tc.v1.Mul(1-factor), vb, eps)
		})
	}
}

func TestSimulateDampingLeavesVerticalAlone(t *testing.T) {
	a := Body{Mass: 10, Velocity: V(2, -6)}
	b := Body{Mass: 10, Velocity: V(-4, 8)}

	va, vb := Simulate(a, b, DampedCollision(0.5))
	assertVector(t, V(-2, 8), va, eps)
	assertVector(t, V(1, -6), vb, eps)
}

func TestCollisionKindString(t *testing.T) {
	assert.Equal(t, "Elastic", Elastic.String())
	assert.Equal(t, "Damping", Damping.String())
	assert.Equal(t, "PerfectlyInelastic", PerfectlyInelastic.String())
	assert.Equal(t, "CollisionKind(9)", CollisionKind(9).String())
}
