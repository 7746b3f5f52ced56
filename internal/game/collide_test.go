package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-cowpult/internal/physics"
	"github.com/vovakirdan/tui-cowpult/internal/world"
)

func enemyAt(x float64, vx float64) world.Object {
	return world.NewObject(world.Enemy(world.EnemyFarmer), physics.P(x, 0), physics.V(vx, 0))
}

func TestResolveCollisionsDamped(t *testing.T) {
	l := world.Level{
		Objects: []world.Object{enemyAt(0, 3), enemyAt(5, 0)},
		Physics: physics.Params{BounceDamping: 0.05},
	}

	hits := ResolveCollisions(&l)

	assert.Equal(t, 1, hits)
	assert.InDelta(t, 0, l.Objects[0].Velocity.X, 1e-12)
	assert.InDelta(t, 3*0.95, l.Objects[1].Velocity.X, 1e-12)
}

func TestResolveCollisionsNoOverlap(t *testing.T) {
	l := world.Level{
		Objects: []world.Object{enemyAt(0, 3), enemyAt(10, -1)}, // touching edges
		Physics: physics.DefaultParams(),
	}

	assert.Equal(t, 0, ResolveCollisions(&l))
	assert.Equal(t, physics.V(3, 0), l.Objects[0].Velocity)
	assert.Equal(t, physics.V(-1, 0), l.Objects[1].Velocity)
}

func TestResolveCollisionsSequentialOrder(t *testing.T) {
	// All three overlap. Pairs run (0,1), (0,2), (1,2) and each sees the
	// velocities written by the previous one.
	l := world.Level{
		Objects: []world.Object{enemyAt(0, 3), enemyAt(5, 0), enemyAt(8, 0)},
		Physics: physics.Params{},
	}

	hits := ResolveCollisions(&l)

	assert.Equal(t, 3, hits)
	assert.Equal(t, physics.V(0, 0), l.Objects[0].Velocity)
	assert.Equal(t, physics.V(0, 0), l.Objects[1].Velocity)
	assert.Equal(t, physics.V(3, 0), l.Objects[2].Velocity)
}
