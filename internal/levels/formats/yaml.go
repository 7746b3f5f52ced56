// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-cowpult/internal/physics"
	"github.com/vovakirdan/tui-cowpult/internal/world"
)

// YAMLFile represents the YAML structure of a level file.
// One file may hold any number of levels.
type YAMLFile struct {
	Levels []YAMLLevel `yaml:"levels"`
}

// YAMLLevel represents a single level in YAML format.
type YAMLLevel struct {
	Number  int          `yaml:"number"`
	Name    string       `yaml:"name,omitempty"`
	Physics *YAMLPhysics `yaml:"physics,omitempty"`
	Objects []YAMLObject `yaml:"objects"`
}

// YAMLPhysics holds per-level physics overrides. Absent fields fall back to
// the loader's defaults.
type YAMLPhysics struct {
	Gravity          *physics.Vector `yaml:"gravity,omitempty"`
	BounceDamping    *float64        `yaml:"bounce_damping,omitempty"`
	FrictionDamping  *float64        `yaml:"friction_damping,omitempty"`
	CollisionDamping *float64        `yaml:"collision_damping,omitempty"`
}

// YAMLObject represents one object in YAML format.
type YAMLObject struct {
	Kind     string           `yaml:"kind"`
	Avatar   string           `yaml:"avatar,omitempty"`   // player
	Enemy    string           `yaml:"enemy,omitempty"`    // enemy
	Vertical bool             `yaml:"vertical,omitempty"` // log
	Length   float64          `yaml:"length,omitempty"`   // log
	Position physics.Position `yaml:"position"`
	Velocity physics.Vector   `yaml:"velocity,omitempty"`
}

// ParseYAML parses a level file. JSON input is accepted as well, since JSON
// is valid YAML.
func ParseYAML(data []byte, defaults physics.Params) ([]world.Level, error) {
	var yf YAMLFile
	if err := yaml.Unmarshal(data, &yf); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	levels := make([]world.Level, 0, len(yf.Levels))
	for _, yl := range yf.Levels {
		lvl, err := yl.toLevel(defaults)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

func (yl YAMLLevel) toLevel(defaults physics.Params) (world.Level, error) {
	lvl := world.Level{
		Number:  yl.Number,
		Name:    yl.Name,
		Objects: make([]world.Object, 0, len(yl.Objects)),
		Physics: yl.Physics.apply(defaults),
	}

	for i, yo := range yl.Objects {
		kind, err := yo.toKind()
		if err != nil {
			return world.Level{}, fmt.Errorf("level %d object %d: %w", yl.Number, i, err)
		}
		lvl.Objects = append(lvl.Objects, world.NewObject(kind, yo.Position, yo.Velocity))
	}
	return lvl, nil
}

func (yp *YAMLPhysics) apply(p physics.Params) physics.Params {
	if yp == nil {
		return p
	}
	if yp.Gravity != nil {
		p.Gravity = *yp.Gravity
	}
	if yp.BounceDamping != nil {
		p.BounceDamping = *yp.BounceDamping
	}
	if yp.FrictionDamping != nil {
		p.FrictionDamping = *yp.FrictionDamping
	}
	if yp.CollisionDamping != nil {
		p.CollisionDamping = *yp.CollisionDamping
	}
	return p
}

func (yo YAMLObject) toKind() (world.ObjectKind, error) {
	kind, ok := world.ParseKind(yo.Kind)
	if !ok {
		return world.ObjectKind{}, world.ValidationError{
			Code:    world.CodeUnknownKind,
			Message: fmt.Sprintf("unknown object kind %q", yo.Kind),
		}
	}

	switch kind {
	case world.KindPlayer:
		a, ok := world.ParseAvatar(yo.Avatar)
		if !ok {
			return world.ObjectKind{}, world.ValidationError{
				Code:    world.CodeUnknownAvatar,
				Message: fmt.Sprintf("unknown avatar %q", yo.Avatar),
			}
		}
		return world.Player(a), nil

	case world.KindEnemy:
		e, ok := world.ParseEnemy(yo.Enemy)
		if !ok {
			return world.ObjectKind{}, world.ValidationError{
				Code:    world.CodeUnknownAvatar,
				Message: fmt.Sprintf("unknown enemy %q", yo.Enemy),
			}
		}
		return world.Enemy(e), nil

	case world.KindLog:
		return world.Log(yo.Vertical, yo.Length), nil

	default:
		return world.Box(), nil
	}
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".json"}
}
