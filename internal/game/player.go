package game

import (
	"fmt"

	"github.com/vovakirdan/tui-cowpult/internal/core"
	"github.com/vovakirdan/tui-cowpult/internal/frame"
	"github.com/vovakirdan/tui-cowpult/internal/physics"
	"github.com/vovakirdan/tui-cowpult/internal/world"
)

// PlayerState tags which variant a PlayerStatus holds.
type PlayerState int

const (
	StateReset     PlayerState = iota // Waiting at the start position
	StateHeld                         // Grabbed by the pointer
	StateBallistic                    // Launched and flying
)

// String returns a human-readable name for the state.
func (s PlayerState) String() string {
	switch s {
	case StateReset:
		return "Reset"
	case StateHeld:
		return "Held"
	case StateBallistic:
		return "Ballistic"
	default:
		return "Unknown"
	}
}

// PlayerStatus is the launch state of the player object.
//
//	Reset(Position) -> Held(Position) -> Ballistic(Velocity) -> Reset(Position)
type PlayerStatus struct {
	State    PlayerState
	Position physics.Position // Reset: pristine position. Held: grab position.
	Velocity physics.Vector   // Ballistic: launch velocity.
}

// ResetStatus returns a Reset status at the pristine position pos.
func ResetStatus(pos physics.Position) PlayerStatus {
	return PlayerStatus{State: StateReset, Position: pos}
}

// HeldStatus returns a Held status grabbed at pos.
func HeldStatus(pos physics.Position) PlayerStatus {
	return PlayerStatus{State: StateHeld, Position: pos}
}

// BallisticStatus returns a Ballistic status launched with vel.
func BallisticStatus(vel physics.Vector) PlayerStatus {
	return PlayerStatus{State: StateBallistic, Velocity: vel}
}

func (s PlayerStatus) String() string {
	switch s.State {
	case StateBallistic:
		return fmt.Sprintf("Ballistic(%.1f, %.1f)", s.Velocity.X, s.Velocity.Y)
	default:
		return fmt.Sprintf("%s(%.1f, %.1f)", s.State, s.Position.X, s.Position.Y)
	}
}

// TransitionKind tags which variant a PlayerTransition holds.
type TransitionKind int

const (
	TransitionGrabbed TransitionKind = iota
	TransitionReleased
	TransitionReset
)

// PlayerTransition is an input event for the player state machine.
// At most one is produced per tick.
type PlayerTransition struct {
	Kind     TransitionKind
	Position physics.Position // Grabbed and Released only
}

// Grabbed returns a transition for the pointer going down at pos.
func Grabbed(pos physics.Position) PlayerTransition {
	return PlayerTransition{Kind: TransitionGrabbed, Position: pos}
}

// Released returns a transition for the pointer going up at pos.
func Released(pos physics.Position) PlayerTransition {
	return PlayerTransition{Kind: TransitionReleased, Position: pos}
}

// ResetPlayer returns the transition that sends the player back to the start.
func ResetPlayer() PlayerTransition {
	return PlayerTransition{Kind: TransitionReset}
}

func (t PlayerTransition) String() string {
	switch t.Kind {
	case TransitionGrabbed:
		return fmt.Sprintf("Grabbed(%.1f, %.1f)", t.Position.X, t.Position.Y)
	case TransitionReleased:
		return fmt.Sprintf("Released(%.1f, %.1f)", t.Position.X, t.Position.Y)
	default:
		return "Reset"
	}
}

// ResetButtons are the pad buttons that return a launched player.
const ResetButtons = core.ButtonSecondary

// NextTransition derives this tick's transition from the input edges.
// Pointer cell coordinates are mapped to world space through f.
func NextTransition(status PlayerStatus, in *core.InputTracker, f *frame.Frame) (PlayerTransition, bool) {
	switch status.State {
	case StateReset:
		if in.NewlyClicked(core.MouseLeft) {
			return Grabbed(f.PixelToWorld(in.Mouse())), true
		}
	case StateHeld:
		if in.NewlyReleased(core.MouseLeft) {
			return Released(f.PixelToWorld(in.Mouse())), true
		}
	case StateBallistic:
		if in.NewlyPressed(ResetButtons) || in.NewlyClicked(core.MouseRight) {
			return ResetPlayer(), true
		}
	}
	return PlayerTransition{}, false
}

// ApplyTransition advances status by t. Combinations that do not match the
// current state are ignored and status is returned unchanged.
//
// A release writes the launch velocity onto the live player object. A reset
// overwrites the live player object with its pristine copy.
func ApplyTransition(status PlayerStatus, t PlayerTransition, active, pristine *world.Level) PlayerStatus {
	switch {
	case status.State == StateReset && t.Kind == TransitionGrabbed:
		return HeldStatus(t.Position)

	case status.State == StateHeld && t.Kind == TransitionReleased:
		vel := physics.Between(t.Position, status.Position)
		if p := active.Player(); p != nil {
			p.Velocity = vel
		}
		return BallisticStatus(vel)

	case status.State == StateBallistic && t.Kind == TransitionReset:
		og := pristine.Player()
		if og == nil {
			return ResetStatus(physics.Position{})
		}
		if p := active.Player(); p != nil {
			*p = *og
		}
		return ResetStatus(og.Position)
	}
	return status
}
