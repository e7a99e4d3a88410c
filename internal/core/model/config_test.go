package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurations(t *testing.T) {
	cases := []struct {
		name      string
		config    WorkoutConfig
		wantSet   int
		wantTotal int
	}{
		{"reference", WorkoutConfig{10, 2, 5, 2, 10}, 27, 66},
		{"single exercise", WorkoutConfig{30, 1, 5, 3, 20}, 30, 3*30 + 2*20 + 4},
		{"single set", WorkoutConfig{10, 3, 5, 1, 60}, 3*10 + 2*5 + 4, 3*10 + 2*5 + 4},
		{"single everything", WorkoutConfig{7, 1, 1, 1, 1}, 7, 7},
		{"defaults", DefaultOptions().Config(), 603, 2053},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantSet, tc.config.SetTime())
			assert.Equal(t, tc.wantTotal, tc.config.TotalTime())
		})
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, WorkoutConfig{10, 2, 5, 2, 10}.Validate())

	zeroes := []WorkoutConfig{
		{0, 2, 5, 2, 10},
		{10, 0, 5, 2, 10},
		{10, 2, 0, 2, 10},
		{10, 2, 5, 0, 10},
		{10, 2, 5, 2, 0},
		{10, 2, -5, 2, 10},
	}
	for _, config := range zeroes {
		err := config.Validate()
		assert.ErrorIs(t, err, ErrInvalidConfig, "%+v", config)
	}
}

func TestValidateOverflow(t *testing.T) {
	config := WorkoutConfig{ExerciseTime: 600, ExerciseQuantity: 20, ExerciseRestTime: 600, SetQuantity: 20, SetRestTime: 600}
	assert.ErrorIs(t, config.Validate(), ErrDurationOverflow)

	huge := WorkoutConfig{ExerciseTime: MaxClockSeconds + 1, ExerciseQuantity: 1, ExerciseRestTime: 1, SetQuantity: 1, SetRestTime: 1}
	assert.ErrorIs(t, huge.Validate(), ErrDurationOverflow)

	exact := WorkoutConfig{ExerciseTime: MaxClockSeconds, ExerciseQuantity: 1, ExerciseRestTime: 1, SetQuantity: 1, SetRestTime: 1}
	assert.NoError(t, exact.Validate())
}

func TestOptionsClamp(t *testing.T) {
	options := DefaultOptions()

	assert.Equal(t, 1, options.With(OptionSetQuantity, 0).Get(OptionSetQuantity))
	assert.Equal(t, 20, options.With(OptionSetQuantity, 99).Get(OptionSetQuantity))
	assert.Equal(t, 42, options.With(OptionExerciseTime, 42).Get(OptionExerciseTime))

	// With must not mutate the receiver.
	assert.Equal(t, 45, options.Get(OptionExerciseTime))
}

func TestOptionsRoundTripConfig(t *testing.T) {
	config := WorkoutConfig{10, 2, 5, 2, 10}
	assert.Equal(t, config, DefaultOptions().FromConfig(config).Config())
}
