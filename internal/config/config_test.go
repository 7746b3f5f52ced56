package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-cowpult/internal/physics"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, wd string) {
	t.Helper()
	home, wd = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)

	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(wd))
	t.Cleanup(func() { _ = os.Chdir(orig) })
	return home, wd
}

func TestEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yaml", `
physics:
  gravity: {x: 0, y: -20}
frame:
  cell_width: 1
levels: /tmp/my-levels
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, physics.V(0, -20), cfg.Physics.Gravity)
	assert.Equal(t, physics.DefaultBounceDamping, cfg.Physics.BounceDamping, "missing keys keep defaults")
	assert.Equal(t, 1.0, cfg.Frame.CellWidth)
	assert.Equal(t, 5.0, cfg.Frame.CellHeight)
	assert.Equal(t, "/tmp/my-levels", cfg.Levels)
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := writeFile(t, dir, "bad.yaml", "physics: [not, a, map]\n")
	_, err = Load(bad)
	assert.Error(t, err)

	invalid := writeFile(t, dir, "invalid.yaml", "physics:\n  bounce_damping: 2\n")
	_, err = Load(invalid)
	assert.Error(t, err)
}

func TestLoadSearchOrder(t *testing.T) {
	home, wd := isolate(t)

	writeFile(t, wd, filepath.Join("configs", "cowpult.yaml"), "pan_step: 7\n")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7.0, cfg.PanStep)

	writeFile(t, home, filepath.Join(".cowpult", "config.yaml"), "pan_step: 9\n")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 9.0, cfg.PanStep, "user config wins over ./configs")
}

func TestLoadSkipsBrokenUserConfig(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, home, filepath.Join(".cowpult", "config.yaml"), "frame:\n  cell_width: -1\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"negative damping", func(c *Config) { c.Physics.FrictionDamping = -0.1 }, false},
		{"zero cell", func(c *Config) { c.Frame.CellHeight = 0 }, false},
		{"negative pan", func(c *Config) { c.PanStep = -1 }, false},
		{"no pan", func(c *Config) { c.PanStep = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestNewFrame(t *testing.T) {
	f := DefaultConfig().Frame.NewFrame(80, 22)
	assert.Equal(t, physics.P(-10, -5), f.Anchor)
	assert.Equal(t, 2.5, f.CellW)
	assert.Equal(t, 80, f.Width)
}
