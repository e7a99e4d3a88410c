package model

import (
	"errors"
	"fmt"
)

// MaxClockSeconds is the longest duration the HH:MM:SS clock can show.
const MaxClockSeconds = 99*3600 + 59*60 + 59

var (
	// ErrInvalidConfig reports a zero or negative workout parameter.
	ErrInvalidConfig = errors.New("invalid workout config")
	// ErrDurationOverflow reports a workout longer than the clock can display.
	ErrDurationOverflow = errors.New("workout duration exceeds 99:59:59")
)

// WorkoutConfig contains the five values a workout is built from.
// Times are in whole seconds.
type WorkoutConfig struct {
	ExerciseTime     int
	ExerciseQuantity int
	ExerciseRestTime int
	SetQuantity      int
	SetRestTime      int
}

// Validate rejects configurations the engine must never be built with.
func (config WorkoutConfig) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"exercise time", config.ExerciseTime},
		{"exercise quantity", config.ExerciseQuantity},
		{"exercise rest time", config.ExerciseRestTime},
		{"set quantity", config.SetQuantity},
		{"set rest time", config.SetRestTime},
	}
	for _, field := range fields {
		if field.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, field.name, field.value)
		}
		if field.value > MaxClockSeconds {
			return fmt.Errorf("%w: %s is %d", ErrDurationOverflow, field.name, field.value)
		}
	}
	if total := config.TotalTime(); total > MaxClockSeconds {
		return fmt.Errorf("%w: total is %d seconds", ErrDurationOverflow, total)
	}
	return nil
}

// SetTime returns the length of one set in ticks.
//
// Each exercise rest costs one extra tick on entry and one on exit, during
// which the set clock runs but the rest clock is held.
func (config WorkoutConfig) SetTime() int {
	return padded(config.ExerciseQuantity, config.ExerciseTime, config.ExerciseRestTime)
}

// TotalTime returns the number of ticks the whole workout takes.
func (config WorkoutConfig) TotalTime() int {
	return padded(config.SetQuantity, config.SetTime(), config.SetRestTime)
}

// padded is n*work + (n-1)*rest + (2n-2) transition ticks.
func padded(n, work, rest int) int {
	return n*work + (n-1)*rest + (2*n - 2)
}
