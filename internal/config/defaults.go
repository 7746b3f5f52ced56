package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-cowpult/internal/physics"
)

//go:embed defaults/cowpult.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Physics: physics.DefaultParams(),
		Frame: FrameConfig{
			Anchor:     physics.P(-10, -5),
			CellWidth:  2.5,
			CellHeight: 5,
		},
		PanStep: 2,
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}
