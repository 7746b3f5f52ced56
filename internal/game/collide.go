package game

import (
	"github.com/vovakirdan/tui-cowpult/internal/physics"
	"github.com/vovakirdan/tui-cowpult/internal/world"
)

// ResolveCollisions runs one all-pairs pass over the level's objects and
// returns how many pairs overlapped.
//
// Pairs are visited in index order i < j and velocities are written back
// immediately, so a later pair sees the result of an earlier one within the
// same pass.
func ResolveCollisions(l *world.Level) int {
	kind := physics.DampedCollision(l.Physics.BounceDamping)
	hits := 0

	for i := 0; i < len(l.Objects); i++ {
		for j := i + 1; j < len(l.Objects); j++ {
			a, b := &l.Objects[i], &l.Objects[j]
			if !a.Intersects(b) {
				continue
			}
			a.Velocity, b.Velocity = physics.Simulate(a.Body(), b.Body(), kind)
			hits++
		}
	}
	return hits
}
