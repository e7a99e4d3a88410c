package phase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatClock(t *testing.T) {
	cases := map[int]string{
		0:      "00:00:00",
		59:     "00:00:59",
		60:     "00:01:00",
		3599:   "00:59:59",
		3661:   "01:01:01",
		359999: "99:59:59",
		-5:     "00:00:00",
	}
	for seconds, want := range cases {
		assert.Equal(t, want, FormatClock(seconds), "seconds=%d", seconds)
	}
}

func TestNewCountdownRejectsZero(t *testing.T) {
	_, err := NewCountdown(0)
	require.ErrorIs(t, err, ErrZeroLength)

	_, err = NewSet(10, 0)
	require.ErrorIs(t, err, ErrZeroLength)
}

func TestCountdownAdvance(t *testing.T) {
	countdown, err := NewCountdown(3)
	require.NoError(t, err)
	assert.Equal(t, "00:00:00/00:00:03", countdown.Label())

	countdown.Advance(1)
	assert.Equal(t, 33, countdown.Progress())
	assert.False(t, countdown.Finished())

	countdown.Advance(0)
	assert.Equal(t, 1, countdown.Current())
	assert.Equal(t, 33, countdown.Progress())

	countdown.Advance(2)
	assert.Equal(t, 100, countdown.Progress())
	assert.True(t, countdown.Finished())
	assert.Equal(t, "00:00:03/00:00:03", countdown.Label())

	countdown.Advance(1)
	assert.Equal(t, 3, countdown.Current(), "advance after finish is a no-op")

	countdown.Reset()
	assert.Equal(t, 0, countdown.Current())
	assert.Equal(t, 0, countdown.Progress())
	assert.False(t, countdown.Finished())
}

func TestCountdownOvershootPanics(t *testing.T) {
	countdown, err := NewCountdown(5)
	require.NoError(t, err)
	countdown.Advance(4)

	defer func() {
		recovered := recover()
		require.NotNil(t, recovered)
		invariant, ok := recovered.(*InvariantError)
		require.True(t, ok, "panic value %T", recovered)
		assert.Equal(t, 6, invariant.Current)
		assert.Equal(t, 5, invariant.Max)
	}()
	countdown.Advance(2)
}

func TestProgressNeverReaches100Early(t *testing.T) {
	countdown, err := NewCountdown(201)
	require.NoError(t, err)
	for i := 0; i < 200; i++ {
		countdown.Advance(1)
		require.Less(t, countdown.Progress(), 100)
	}
	countdown.Advance(1)
	assert.Equal(t, 100, countdown.Progress())
}

func TestExerciseOrdinalWraps(t *testing.T) {
	exercise, err := NewExercise(10, 3)
	require.NoError(t, err)

	var seen []int
	for i := 0; i < 7; i++ {
		seen = append(seen, exercise.Ordinal())
		exercise.IncrementOrdinal()
	}
	assert.Equal(t, []int{1, 2, 3, 1, 2, 3, 1}, seen)
	assert.Equal(t, "Exercise 2/3 Timer", exercise.Title())
}

func TestSetOrdinalDoesNotWrap(t *testing.T) {
	set, err := NewSet(30, 2)
	require.NoError(t, err)

	set.IncrementOrdinal()
	set.IncrementOrdinal()
	set.IncrementOrdinal()
	assert.Equal(t, 2, set.Ordinal())
	assert.Equal(t, "Set 2/2 Timer", set.Title())
}

func TestClearKeepsOrdinal(t *testing.T) {
	exercise, err := NewExercise(2, 4)
	require.NoError(t, err)
	exercise.Advance(2)
	exercise.IncrementOrdinal()
	exercise.Clear()

	assert.Equal(t, 2, exercise.Ordinal())
	assert.Equal(t, 0, exercise.Current())
	assert.False(t, exercise.Finished())
}
