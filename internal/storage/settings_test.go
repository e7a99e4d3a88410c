package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workouttimer/internal/core/model"
	"workouttimer/internal/ui/setup"
)

const appName = "workouttimer-test"

func isolateConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)
	return dir
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	isolateConfigDir(t)

	settings, err := LoadSettings(appName)
	require.NoError(t, err)
	assert.Equal(t, setup.DefaultSettings(), settings)
}

func TestSaveThenLoad(t *testing.T) {
	isolateConfigDir(t)

	settings := setup.DefaultSettings()
	settings.Options = settings.Options.FromConfig(model.WorkoutConfig{
		ExerciseTime:     10,
		ExerciseQuantity: 2,
		ExerciseRestTime: 5,
		SetQuantity:      2,
		SetRestTime:      10,
	})
	settings.Sound = false
	settings.Language = "pl"
	require.NoError(t, SaveSettings(appName, settings))

	loaded, err := LoadSettings(appName)
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	isolateConfigDir(t)
	path, err := ResolveConfigPath(appName)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("set_quantity: 5\nexercise_time_seconds: 9999\n"), 0o644))

	settings, err := LoadSettings(appName)
	require.NoError(t, err)
	assert.Equal(t, 5, settings.Options.Get(model.OptionSetQuantity))
	assert.Equal(t, 600, settings.Options.Get(model.OptionExerciseTime), "clamped to the option maximum")
	assert.Equal(t, 15, settings.Options.Get(model.OptionExerciseRestTime))
	assert.True(t, settings.Sound)
}

func TestLoadMalformedYaml(t *testing.T) {
	isolateConfigDir(t)
	path, err := ResolveConfigPath(appName)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("set_quantity: [oops"), 0o644))

	settings, err := LoadSettings(appName)
	require.Error(t, err)
	assert.Equal(t, setup.DefaultSettings(), settings)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("WORKOUTTIMER_EXERCISE_TIME", "30")
	t.Setenv("WORKOUTTIMER_SET_QUANTITY", "not-a-number")
	t.Setenv("WORKOUTTIMER_SET_REST", "-4")
	t.Setenv("WORKOUTTIMER_SOUND", "false")
	t.Setenv("WORKOUTTIMER_LANG", "ru")

	settings := setup.DefaultSettings()
	ApplyEnvOverrides(&settings)

	assert.Equal(t, 30, settings.Options.Get(model.OptionExerciseTime))
	assert.Equal(t, 3, settings.Options.Get(model.OptionSetQuantity))
	assert.Equal(t, 120, settings.Options.Get(model.OptionSetRestTime))
	assert.False(t, settings.Sound)
	assert.Equal(t, "ru", settings.Language)
}
