package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/traits/internal/sqlite"
	"github.com/mesh-intelligence/traits/pkg/types"
)

// testEnv isolates config and data directories for one test.
type testEnv struct {
	t         *testing.T
	configDir string
	dataDir   string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	root := t.TempDir()
	t.Setenv("TRAITS_LOG_LEVEL", "")
	t.Setenv("TRAITS_STRICT_IDENTITY", "")
	return &testEnv{
		t:         t,
		configDir: filepath.Join(root, "config"),
		dataDir:   filepath.Join(root, "data"),
	}
}

func (e *testEnv) run(args ...string) (string, error) {
	e.t.Helper()
	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config-dir", e.configDir, "--data-dir", e.dataDir}, args...))
	err := root.Execute()
	return stdout.String(), err
}

func (e *testEnv) mustRun(args ...string) string {
	e.t.Helper()
	out, err := e.run(args...)
	require.NoError(e.t, err, "traits %s", strings.Join(args, " "))
	return out
}

func (e *testEnv) snapshot(objectID string) types.ObjectSnapshot {
	e.t.Helper()
	var snap types.ObjectSnapshot
	require.NoError(e.t, json.Unmarshal([]byte(e.mustRun("--json", "show", objectID)), &snap))
	return snap
}

func traitValue(t *testing.T, snap types.ObjectSnapshot, name string, v any) {
	t.Helper()
	for _, tv := range snap.Traits {
		if tv.Name == name {
			require.NoError(t, json.Unmarshal(tv.Value, v))
			return
		}
	}
	t.Fatalf("trait %q not in snapshot", name)
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)
	out := env.mustRun("version")
	assert.Contains(t, out, "traits v"+Version)
	assert.Contains(t, out, modulePath)
}

func TestInit(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun("init")
	assert.Contains(t, out, "initialized")

	cfgPath := filepath.Join(env.configDir, "config.yaml")
	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "backend: sqlite")
	assert.Contains(t, string(data), "strict_identity: true")

	_, err = os.Stat(filepath.Join(env.dataDir, sqlite.DatabaseFile))
	assert.NoError(t, err)

	require.NoError(t, os.WriteFile(cfgPath, []byte("backend: sqlite\nlog_level: debug\n"), 0o644))
	env.mustRun("init")
	data, err = os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "backend: sqlite\nlog_level: debug\n", string(data), "existing config must be kept")
}

func TestConfig_InvalidLogLevel(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.MkdirAll(env.configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(env.configDir, "config.yaml"), []byte("log_level: loud\n"), 0o644))

	_, err := env.run("list")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrLogLevelUnknown)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestKinds(t *testing.T) {
	env := newTestEnv(t)

	var views []kindView
	require.NoError(t, json.Unmarshal([]byte(env.mustRun("--json", "kinds")), &views))
	require.GreaterOrEqual(t, len(views), 11)

	byName := make(map[string]kindView, len(views))
	for _, v := range views {
		byName[v.Name] = v
	}
	assert.Equal(t, "07423ca6-9262-4d23-891f-b7a057e11f36", byName["Position"].ID)
	assert.Equal(t, "transform.position", byName["Position"].Kind)
	assert.Contains(t, byName, "Collider")

	assert.Contains(t, env.mustRun("kinds"), "HighFidelityPhysics")
}

func TestID(t *testing.T) {
	env := newTestEnv(t)
	assert.Equal(t, "4757fe07-fd49-2a8b-e0ea-6a760d683d6e\n", env.mustRun("id", "position"))

	_, err := env.run("id")
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestObjectLifecycle(t *testing.T) {
	env := newTestEnv(t)

	objectID := strings.TrimSpace(env.mustRun("new", "crate"))
	require.NotEmpty(t, objectID)

	snap := env.snapshot(objectID)
	assert.Equal(t, "crate", snap.Name)
	assert.Equal(t, types.ObjectModel, snap.Kind)
	assert.Len(t, snap.Traits, 11)

	t.Run("altitude write moves position", func(t *testing.T) {
		env.mustRun("set", objectID, "Altitude", "5")
		var pos types.Vec3
		traitValue(t, env.snapshot(objectID), "Position", &pos)
		assert.Equal(t, types.V3(0, 5, 0), pos)
	})

	t.Run("position2d keeps altitude", func(t *testing.T) {
		env.mustRun("set", objectID, "Position2D", `{"x":2,"y":3}`)
		var pos types.Vec3
		traitValue(t, env.snapshot(objectID), "Position", &pos)
		assert.Equal(t, types.V3(2, 5, 3), pos)
	})

	t.Run("trait addressed by identifier", func(t *testing.T) {
		env.mustRun("set", objectID, "b88aecd0-b0c8-4cb7-90e0-57f92c84345a", "false")
		var active bool
		traitValue(t, env.snapshot(objectID), "Active", &active)
		assert.False(t, active)
	})

	t.Run("collider shape persists", func(t *testing.T) {
		env.mustRun("set", objectID, "Collider", `"sphere"`)
		var shape types.ColliderShape
		traitValue(t, env.snapshot(objectID), "Collider", &shape)
		assert.Equal(t, types.ColliderSphere, shape)
	})

	t.Run("invalid shape is a user error", func(t *testing.T) {
		_, err := env.run("set", objectID, "Collider", `"cone"`)
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrInvalidShape)
		assert.Equal(t, exitUserError, exitCode(err))
	})

	t.Run("unknown trait is a user error", func(t *testing.T) {
		_, err := env.run("set", objectID, "Colour", `"red"`)
		assert.ErrorIs(t, err, types.ErrTraitNotFound)
		assert.Equal(t, exitUserError, exitCode(err))
	})

	t.Run("human output lists traits", func(t *testing.T) {
		out := env.mustRun("show", objectID)
		assert.Contains(t, out, "Name:   crate")
		assert.Contains(t, out, "Rotation1D")
	})
}

func TestNewFlat_RotatesAboutZ(t *testing.T) {
	env := newTestEnv(t)
	objectID := strings.TrimSpace(env.mustRun("new", "--flat", "arrow"))

	env.mustRun("set", objectID, "Rotation1D", "90")

	snap := env.snapshot(objectID)
	assert.Equal(t, types.ObjectSymbol, snap.Kind)
	var rot types.Vec3
	traitValue(t, snap, "Rotation", &rot)
	assert.Equal(t, types.V3(0, 0, 90), rot)
}

func TestListAndDelete(t *testing.T) {
	env := newTestEnv(t)
	first := strings.TrimSpace(env.mustRun("new", "a"))
	second := strings.TrimSpace(env.mustRun("new", "b"))

	out := env.mustRun("list")
	assert.Contains(t, out, first)
	assert.Contains(t, out, second)

	assert.Contains(t, env.mustRun("delete", first), "Deleted "+first)

	_, err := env.run("show", first)
	assert.Equal(t, exitUserError, exitCode(err))

	_, err = env.run("delete", first)
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.Equal(t, exitUserError, exitCode(err))

	var snaps []types.ObjectSnapshot
	require.NoError(t, json.Unmarshal([]byte(env.mustRun("--json", "list")), &snaps))
	require.Len(t, snaps, 1)
	assert.Equal(t, second, snaps[0].ObjectID)
}

func TestShow_InvalidID(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run("show", "not-a-uuid")
	assert.ErrorIs(t, err, types.ErrInvalidID)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitSuccess, exitCode(nil))
	assert.Equal(t, exitUserError, exitCode(errors.New("bad flag")))
	assert.Equal(t, exitSysError, exitCode(sysError("disk: %w", os.ErrPermission)))
	assert.ErrorIs(t, sysError("disk: %w", os.ErrPermission), os.ErrPermission)
}
