package main

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workouttimer/internal/core/model"
	"workouttimer/internal/i18n"
	"workouttimer/internal/ui/setup"
	"workouttimer/internal/ui/tray"
)

func newTestController(t *testing.T) *controller {
	t.Helper()
	configDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configDir)
	t.Setenv("HOME", configDir)
	t.Setenv("AppData", configDir)

	translator := i18n.New("en")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctrl := newController(test.NewTempApp(t), translator, logger, setup.DefaultSettings())
	ctrl.tickInterval = time.Millisecond
	ctrl.tray = tray.New(nil, translator, tray.Callbacks{
		OnNewWorkout: ctrl.newWorkout,
		OnQuit:       ctrl.quit,
	})
	t.Cleanup(ctrl.shutdown)
	return ctrl
}

func (ctrl *controller) trayStatus() string {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	return ctrl.tray.Status()
}

func silentSettings(config model.WorkoutConfig) setup.Settings {
	settings := setup.DefaultSettings()
	settings.Options = settings.Options.FromConfig(config)
	settings.Sound = false
	return settings
}

func TestControllerRunsWorkoutToTheEnd(t *testing.T) {
	ctrl := newTestController(t)

	// 17 ticks in total.
	err := ctrl.start(silentSettings(model.WorkoutConfig{
		ExerciseTime:     2,
		ExerciseQuantity: 2,
		ExerciseRestTime: 1,
		SetQuantity:      2,
		SetRestTime:      1,
	}))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return ctrl.trayStatus() == "Status: Workout finished!"
	}, 2*time.Second, 5*time.Millisecond)
	assert.True(t, ctrl.board.Visible())
}

func TestNewWorkoutDropsCancelledSession(t *testing.T) {
	ctrl := newTestController(t)

	require.NoError(t, ctrl.start(silentSettings(setup.DefaultSettings().WorkoutConfig())))
	require.Eventually(t, func() bool {
		return ctrl.trayStatus() != "Status: idle"
	}, 2*time.Second, time.Millisecond)

	ctrl.newWorkout()

	assert.Never(t, func() bool {
		return ctrl.trayStatus() != "Status: idle"
	}, 100*time.Millisecond, 5*time.Millisecond)
	assert.False(t, ctrl.board.Visible())
	assert.True(t, ctrl.setup.Visible())
}

func TestRestartReplacesRunningSession(t *testing.T) {
	ctrl := newTestController(t)
	short := model.WorkoutConfig{
		ExerciseTime:     1,
		ExerciseQuantity: 1,
		ExerciseRestTime: 1,
		SetQuantity:      1,
		SetRestTime:      1,
	}

	require.NoError(t, ctrl.start(silentSettings(setup.DefaultSettings().WorkoutConfig())))
	require.NoError(t, ctrl.start(silentSettings(short)))

	require.Eventually(t, func() bool {
		return ctrl.trayStatus() == "Status: Workout finished!"
	}, 2*time.Second, 5*time.Millisecond)
	assert.Never(t, func() bool {
		return ctrl.trayStatus() != "Status: Workout finished!"
	}, 50*time.Millisecond, 5*time.Millisecond, "the replaced session stays silent")
}

func TestStartRejectsInvalidWorkout(t *testing.T) {
	ctrl := newTestController(t)
	settings := setup.DefaultSettings()
	settings.Options[model.OptionSetQuantity].Value = 0

	err := ctrl.start(settings)
	assert.ErrorIs(t, err, model.ErrInvalidConfig)
	assert.False(t, ctrl.board.Visible())
	assert.Equal(t, "Status: idle", ctrl.trayStatus())
}

func TestActivateShowsCurrentWindow(t *testing.T) {
	ctrl := newTestController(t)

	ctrl.activate()
	assert.True(t, ctrl.setup.Visible())
	assert.False(t, ctrl.board.Visible())

	require.NoError(t, ctrl.start(silentSettings(setup.DefaultSettings().WorkoutConfig())))
	ctrl.board.Hide()
	ctrl.activate()
	assert.True(t, ctrl.board.Visible())
}

func TestQuitCancelsSession(t *testing.T) {
	ctrl := newTestController(t)
	require.NoError(t, ctrl.start(silentSettings(setup.DefaultSettings().WorkoutConfig())))

	ctrl.quit()

	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	assert.Nil(t, ctrl.cancel)
}
