package physics

// Simulation constants.
const (
	TimeStep          = 1.0 / 60.0 // Seconds per tick, fixed
	ThresholdVelocity = 0.001      // Bounce speeds below this are zeroed

	DefaultBounceDamping    = 0.35
	DefaultFrictionDamping  = 0.05
	DefaultCollisionDamping = 0.05
)

// DefaultGravity is the acceleration applied when a level does not set one.
var DefaultGravity = Vector{X: 0, Y: -50}

// Params holds the per-level physical constants. A level's Params are read
// once when it is loaded and never change during play.
type Params struct {
	Gravity          Vector  `yaml:"gravity"`
	BounceDamping    float64 `yaml:"bounce_damping"`
	FrictionDamping  float64 `yaml:"friction_damping"`  // Reserved, not used by Step
	CollisionDamping float64 `yaml:"collision_damping"` // Reserved, the collision pass damps with BounceDamping
}

// DefaultParams returns the stock physics constants.
func DefaultParams() Params {
	return Params{
		Gravity:          DefaultGravity,
		BounceDamping:    DefaultBounceDamping,
		FrictionDamping:  DefaultFrictionDamping,
		CollisionDamping: DefaultCollisionDamping,
	}
}

// Step advances a body by exactly one tick using semi-implicit Euler:
// velocity is updated from gravity first, then position from the new
// velocity. The floor is the plane y = 0. A body that ends the tick at or
// below it is clamped onto it and, if still falling, bounced with its
// vertical speed reduced by BounceDamping. A bounce slower than
// ThresholdVelocity is zeroed so bodies come to rest.
func Step(pos Position, vel Vector, p Params) (Position, Vector) {
	vel = vel.Add(p.Gravity.Mul(TimeStep))
	pos = pos.Offset(vel.Mul(TimeStep))

	if pos.Y <= 0 {
		pos.Y = 0
		if vel.Y < 0 {
			vel.Y *= -(1 - p.BounceDamping)
			if vel.Y < ThresholdVelocity {
				vel.Y = 0
			}
		}
	}

	return pos, vel
}

// Ballistic returns the exact position and velocity of a projectile after
// t seconds of free flight under constant acceleration. No floor is applied.
func Ballistic(pos Position, vel, acc Vector, t float64) (Position, Vector) {
	next := Position{
		X: pos.X + vel.X*t + 0.5*acc.X*t*t,
		Y: pos.Y + vel.Y*t + 0.5*acc.Y*t*t,
	}
	return next, vel.Add(acc.Mul(t))
}
