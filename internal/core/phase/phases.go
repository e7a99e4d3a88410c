package phase

import "fmt"

// Workout spans the whole run. Its Finished flag is the terminal condition.
type Workout struct {
	Countdown
}

// NewWorkout returns the outer workout countdown.
func NewWorkout(total int) (Workout, error) {
	countdown, err := NewCountdown(total)
	if err != nil {
		return Workout{}, fmt.Errorf("workout: %w", err)
	}
	return Workout{Countdown: countdown}, nil
}

// Rest is a pause between exercises or between sets.
type Rest struct {
	Countdown
}

// NewRest returns a rest countdown.
func NewRest(length int) (Rest, error) {
	countdown, err := NewCountdown(length)
	if err != nil {
		return Rest{}, fmt.Errorf("rest: %w", err)
	}
	return Rest{Countdown: countdown}, nil
}

// Clear rewinds the rest.
func (rest *Rest) Clear() {
	rest.Reset()
}

// repeated is a countdown that is run quantity times.
type repeated struct {
	Countdown
	ordinal  int
	quantity int
}

func newRepeated(length, quantity int) (repeated, error) {
	if quantity <= 0 {
		return repeated{}, fmt.Errorf("%w: quantity %d", ErrZeroLength, quantity)
	}
	countdown, err := NewCountdown(length)
	if err != nil {
		return repeated{}, err
	}
	return repeated{Countdown: countdown, ordinal: 1, quantity: quantity}, nil
}

// Ordinal returns the 1-based repetition currently running.
func (r *repeated) Ordinal() int { return r.ordinal }

// Quantity returns the number of repetitions.
func (r *repeated) Quantity() int { return r.quantity }

// Clear rewinds the countdown. The ordinal is left alone.
func (r *repeated) Clear() {
	r.Reset()
}

// Set is one round of exercises. Its ordinal never wraps.
type Set struct {
	repeated
}

// NewSet returns the set countdown.
func NewSet(length, quantity int) (Set, error) {
	r, err := newRepeated(length, quantity)
	if err != nil {
		return Set{}, fmt.Errorf("set: %w", err)
	}
	return Set{repeated: r}, nil
}

// IncrementOrdinal moves to the next set, stopping at the last one.
func (set *Set) IncrementOrdinal() {
	if set.ordinal < set.quantity {
		set.ordinal++
	}
}

// Title returns e.g. "Set 1/3 Timer".
func (set *Set) Title() string {
	return fmt.Sprintf("Set %d/%d Timer", set.ordinal, set.quantity)
}

// Exercise is one exercise inside a set. Its ordinal cycles across sets.
type Exercise struct {
	repeated
}

// NewExercise returns the exercise countdown.
func NewExercise(length, quantity int) (Exercise, error) {
	r, err := newRepeated(length, quantity)
	if err != nil {
		return Exercise{}, fmt.Errorf("exercise: %w", err)
	}
	return Exercise{repeated: r}, nil
}

// IncrementOrdinal moves to the next exercise, wrapping to 1 after the last.
func (exercise *Exercise) IncrementOrdinal() {
	exercise.ordinal++
	if exercise.ordinal > exercise.quantity {
		exercise.ordinal = 1
	}
}

// Title returns e.g. "Exercise 2/10 Timer".
func (exercise *Exercise) Title() string {
	return fmt.Sprintf("Exercise %d/%d Timer", exercise.ordinal, exercise.quantity)
}
