package game

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/vovakirdan/tui-cowpult/internal/world"
)

// Snapshot contains the observable game state after a tick.
// Two runs fed the same input produce snapshots with the same Hash.
type Snapshot struct {
	Tick    uint64
	Mode    Mode
	Level   int // Index into the roster, -1 outside ModePlaying
	Number  int // Level number, 0 outside ModePlaying
	Player  PlayerStatus
	Objects []world.Object
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Tick:  c.tick,
		Mode:  c.mode,
		Level: -1,
	}
	if p := c.playing; p != nil {
		s.Level = p.Current
		s.Number = p.Active.Number
		s.Player = p.Player
		s.Objects = p.Active.Clone().Objects
	}
	return s
}

// Hash returns an xxhash digest of the snapshot, excluding Tick.
func (s Snapshot) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte

	writeInt := func(v int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = d.Write(buf[:])
	}
	writeFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}

	writeInt(int64(s.Mode))
	writeInt(int64(s.Level))
	writeInt(int64(s.Number))
	writeInt(int64(s.Player.State))
	writeFloat(s.Player.Position.X)
	writeFloat(s.Player.Position.Y)
	writeFloat(s.Player.Velocity.X)
	writeFloat(s.Player.Velocity.Y)

	writeInt(int64(len(s.Objects)))
	for _, o := range s.Objects {
		_, _ = d.WriteString(o.Kind.String())
		writeFloat(o.Position.X)
		writeFloat(o.Position.Y)
		writeFloat(o.Velocity.X)
		writeFloat(o.Velocity.Y)
	}
	return d.Sum64()
}
