// Package config provides YAML-based configuration loading for cowpult.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-cowpult/internal/frame"
	"github.com/vovakirdan/tui-cowpult/internal/physics"
)

// Config contains all user-tunable settings.
type Config struct {
	Physics physics.Params `yaml:"physics"`  // Used where a level omits its physics block
	Frame   FrameConfig    `yaml:"frame"`    // Initial viewport
	Levels  string         `yaml:"levels"`   // Level file or directory, empty for the built-in levels
	PanStep float64        `yaml:"pan_step"` // World units the view moves per tick while an arrow is held
}

// FrameConfig defines the viewport's initial placement and scale.
type FrameConfig struct {
	Anchor     physics.Position `yaml:"anchor"`      // World position of the bottom-left corner
	CellWidth  float64          `yaml:"cell_width"`  // World units per terminal column
	CellHeight float64          `yaml:"cell_height"` // World units per terminal row
}

// NewFrame builds a viewport of width x height cells from the config.
func (c FrameConfig) NewFrame(width, height int) *frame.Frame {
	return frame.New(c.Anchor, c.CellWidth, c.CellHeight, width, height)
}

// Validate checks value ranges.
func (c Config) Validate() error {
	damping := []struct {
		name string
		v    float64
	}{
		{"physics.bounce_damping", c.Physics.BounceDamping},
		{"physics.friction_damping", c.Physics.FrictionDamping},
		{"physics.collision_damping", c.Physics.CollisionDamping},
	}
	for _, d := range damping {
		if d.v < 0 || d.v > 1 {
			return fmt.Errorf("%s must be within [0, 1], got %g", d.name, d.v)
		}
	}

	if c.Frame.CellWidth <= 0 || c.Frame.CellHeight <= 0 {
		return fmt.Errorf("frame cell size must be positive, got %gx%g", c.Frame.CellWidth, c.Frame.CellHeight)
	}
	if c.PanStep < 0 {
		return fmt.Errorf("pan_step must not be negative, got %g", c.PanStep)
	}
	return nil
}
