package levels

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-cowpult/internal/physics"
	"github.com/vovakirdan/tui-cowpult/internal/world"
)

// testdataPath returns path to testdata/<name>.
func testdataPath(name string) string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "testdata", name)
}

func TestLoaderLoadDirectory(t *testing.T) {
	loader := NewLoader(testdataPath("levels"), physics.DefaultParams())

	lvls, err := loader.Load()
	require.NoError(t, err)
	require.Len(t, lvls, 2)

	// Sorted by number regardless of file name order.
	assert.Equal(t, 1, lvls[0].Number)
	assert.Equal(t, "Start", lvls[0].Name)
	assert.Equal(t, 2, lvls[1].Number)
	assert.Equal(t, "Meadow", lvls[1].Name)
}

func TestLoaderJSONLevel(t *testing.T) {
	loader := NewLoader(testdataPath("levels"), physics.DefaultParams())

	lvl, err := loader.LoadByNumber(1)
	require.NoError(t, err)
	require.Len(t, lvl.Objects, 2)

	player := lvl.Player()
	require.NotNil(t, player)
	assert.Equal(t, world.AvatarNormal, player.Kind.Avatar)

	enemy := lvl.Objects[1]
	assert.Equal(t, world.Enemy(world.EnemyScarecrow), enemy.Kind)
	assert.Equal(t, physics.P(80, 0), enemy.Position)
	assert.Equal(t, physics.V(-1, 0), enemy.Velocity)

	assert.Equal(t, physics.DefaultParams(), lvl.Physics)
}

func TestLoaderPhysicsOverride(t *testing.T) {
	defaults := physics.DefaultParams()
	loader := NewLoader(testdataPath("levels"), defaults)

	lvl, err := loader.LoadByNumber(2)
	require.NoError(t, err)

	assert.Equal(t, 0.5, lvl.Physics.BounceDamping)
	assert.Equal(t, defaults.Gravity, lvl.Physics.Gravity)
	assert.Equal(t, defaults.FrictionDamping, lvl.Physics.FrictionDamping)
	assert.Equal(t, world.Log(true, 20), lvl.Objects[1].Kind)
}

func TestLoaderLoadSingleFile(t *testing.T) {
	loader := NewLoader(filepath.Join(testdataPath("levels"), "meadow.yaml"), physics.DefaultParams())

	lvls, err := loader.Load()
	require.NoError(t, err)
	require.Len(t, lvls, 1)
	assert.Equal(t, "Meadow", lvls[0].Name)
}

func TestLoaderMissingLevel(t *testing.T) {
	loader := NewLoader(testdataPath("levels"), physics.DefaultParams())

	_, err := loader.LoadByNumber(42)
	assert.Error(t, err)
}

func TestLoaderMalformedFileIsFatal(t *testing.T) {
	loader := NewLoader(testdataPath("broken"), physics.DefaultParams())

	_, err := loader.Load()
	require.Error(t, err)

	var verr world.ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	assert.Equal(t, world.CodeUnknownKind, verr.Code)
}

func TestLoaderMissingPath(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "nope"), physics.DefaultParams())

	_, err := loader.Load()
	assert.Error(t, err)
}

func TestLoaderEmbeddedDefaults(t *testing.T) {
	loader := NewLoader("", physics.DefaultParams())

	lvls, err := loader.Load()
	require.NoError(t, err)
	require.NotEmpty(t, lvls)
	assert.NoError(t, world.ValidateRoster(lvls))

	for i := 1; i < len(lvls); i++ {
		assert.Less(t, lvls[i-1].Number, lvls[i].Number)
	}
}

func TestResolve(t *testing.T) {
	assert.Equal(t, "custom/levels", Resolve("custom/levels"))

	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(wd) })

	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir))
	assert.Equal(t, "", Resolve(""))

	require.NoError(t, os.Mkdir(filepath.Join(dir, "levels"), 0o755))
	assert.Equal(t, "levels", Resolve(""))
}
