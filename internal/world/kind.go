// Package world defines the simulated contents of a level: the closed set of
// object kinds, the objects themselves and the level that owns them.
// This package depends on physics but nothing here knows about files,
// terminals or input.
package world

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-cowpult/internal/physics"
)

// Kind tags which variant an ObjectKind holds.
type Kind int

const (
	KindBox    Kind = iota // Static obstacle
	KindPlayer             // The controllable cow, exactly one per level
	KindLog                // Elongated body, 3 units thick
	KindEnemy              // Farmers and scarecrows
)

// String returns the lower-case name used in level files.
func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindPlayer:
		return "player"
	case KindLog:
		return "log"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// ParseKind parses a level-file kind name (case-insensitive).
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(s) {
	case "box":
		return KindBox, true
	case "player":
		return KindPlayer, true
	case "log":
		return KindLog, true
	case "enemy":
		return KindEnemy, true
	}
	return 0, false
}

// Avatar is the look of the player's cow.
type Avatar int

const (
	AvatarNormal Avatar = iota
	AvatarLonghorn
	AvatarDairy
	AvatarChocolate
)

var avatarNames = []string{"normal", "longhorn", "dairy", "chocolate"}

// String returns the avatar name.
func (a Avatar) String() string {
	if a < 0 || int(a) >= len(avatarNames) {
		return "unknown"
	}
	return avatarNames[a]
}

// ParseAvatar parses an avatar name; empty means AvatarNormal.
func ParseAvatar(s string) (Avatar, bool) {
	if s == "" {
		return AvatarNormal, true
	}
	for i, name := range avatarNames {
		if strings.EqualFold(s, name) {
			return Avatar(i), true
		}
	}
	return 0, false
}

// Hitbox returns the avatar's collision box.
func (a Avatar) Hitbox() physics.Rect {
	return physics.NewRect(10, 10)
}

// Mass returns the avatar's mass.
func (a Avatar) Mass() float64 {
	return 10
}

// EnemyAvatar is the look of an enemy.
type EnemyAvatar int

const (
	EnemyFarmer EnemyAvatar = iota
	EnemyScarecrow
)

var enemyNames = []string{"farmer", "scarecrow"}

// String returns the enemy name.
func (e EnemyAvatar) String() string {
	if e < 0 || int(e) >= len(enemyNames) {
		return "unknown"
	}
	return enemyNames[e]
}

// ParseEnemy parses an enemy name; empty means EnemyFarmer.
func ParseEnemy(s string) (EnemyAvatar, bool) {
	if s == "" {
		return EnemyFarmer, true
	}
	for i, name := range enemyNames {
		if strings.EqualFold(s, name) {
			return EnemyAvatar(i), true
		}
	}
	return 0, false
}

// Hitbox returns the enemy's collision box.
func (e EnemyAvatar) Hitbox() physics.Rect {
	return physics.NewRect(10, 10)
}

// Mass returns the enemy's mass.
func (e EnemyAvatar) Mass() float64 {
	return 10
}

// LogThickness is the short side of every log.
const LogThickness = 3.0

// ObjectKind is a tagged variant over the four object kinds. Only the fields
// belonging to Kind are meaningful; build values with Box, Player, Log and
// Enemy rather than by hand.
type ObjectKind struct {
	Kind     Kind
	Avatar   Avatar      // KindPlayer
	Enemy    EnemyAvatar // KindEnemy
	Vertical bool        // KindLog
	Length   float64     // KindLog
}

// Box returns a box kind.
func Box() ObjectKind {
	return ObjectKind{Kind: KindBox}
}

// Player returns a player kind with the given avatar.
func Player(a Avatar) ObjectKind {
	return ObjectKind{Kind: KindPlayer, Avatar: a}
}

// Log returns a log kind.
func Log(vertical bool, length float64) ObjectKind {
	return ObjectKind{Kind: KindLog, Vertical: vertical, Length: length}
}

// Enemy returns an enemy kind.
func Enemy(e EnemyAvatar) ObjectKind {
	return ObjectKind{Kind: KindEnemy, Enemy: e}
}

// IsPlayer reports whether this is the controllable object.
func (k ObjectKind) IsPlayer() bool {
	return k.Kind == KindPlayer
}

// Hitbox returns the collision box for this kind.
func (k ObjectKind) Hitbox() physics.Rect {
	switch k.Kind {
	case KindPlayer:
		return k.Avatar.Hitbox()
	case KindLog:
		if k.Vertical {
			return physics.NewRect(LogThickness, k.Length)
		}
		return physics.NewRect(k.Length, LogThickness)
	case KindEnemy:
		return k.Enemy.Hitbox()
	default:
		return physics.NewRect(10, 10)
	}
}

// Mass returns the mass for this kind. A log weighs its length.
func (k ObjectKind) Mass() float64 {
	switch k.Kind {
	case KindPlayer:
		return k.Avatar.Mass()
	case KindLog:
		return k.Length
	case KindEnemy:
		return k.Enemy.Mass()
	default:
		return 1
	}
}

// String returns a short description, e.g. "player(dairy)" or "log(v,30)".
func (k ObjectKind) String() string {
	switch k.Kind {
	case KindPlayer:
		return fmt.Sprintf("player(%s)", k.Avatar)
	case KindLog:
		dir := "h"
		if k.Vertical {
			dir = "v"
		}
		return fmt.Sprintf("log(%s,%g)", dir, k.Length)
	case KindEnemy:
		return fmt.Sprintf("enemy(%s)", k.Enemy)
	default:
		return k.Kind.String()
	}
}
