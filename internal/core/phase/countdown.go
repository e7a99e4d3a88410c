// Package phase holds the countdown primitive and the workout phases built on it.
package phase

import (
	"errors"
	"fmt"
)

// ErrZeroLength is returned when a countdown would be built with max <= 0.
var ErrZeroLength = errors.New("countdown length must be positive")

// InvariantError is raised (as a panic value) when a countdown runs past its
// maximum. It indicates a defect in the caller, not a runtime condition.
type InvariantError struct {
	Current int
	Max     int
	Percent int
}

func (err *InvariantError) Error() string {
	return fmt.Sprintf("countdown progress out of range: %d/%d is %d%%", err.Current, err.Max, err.Percent)
}

// Countdown counts whole seconds up from zero to max.
type Countdown struct {
	current     int
	max         int
	progress    int
	finished    bool
	currentText string
	maxText     string
}

// NewCountdown returns a countdown of the given length in seconds.
func NewCountdown(max int) (Countdown, error) {
	if max <= 0 {
		return Countdown{}, fmt.Errorf("%w: got %d", ErrZeroLength, max)
	}
	return Countdown{
		max:         max,
		currentText: FormatClock(0),
		maxText:     FormatClock(max),
	}, nil
}

// Advance moves the countdown forward by the given number of seconds.
// It is a no-op once the countdown has finished; by may be zero.
func (countdown *Countdown) Advance(by int) {
	if countdown.finished {
		return
	}
	if by < 0 {
		panic(&InvariantError{Current: countdown.current + by, Max: countdown.max, Percent: -1})
	}
	countdown.current += by
	countdown.refresh()
}

// Reset rewinds the countdown to zero.
func (countdown *Countdown) Reset() {
	countdown.current = 0
	countdown.refresh()
}

func (countdown *Countdown) refresh() {
	countdown.currentText = FormatClock(countdown.current)
	countdown.progress = percent(countdown.current, countdown.max)
	countdown.finished = countdown.current == countdown.max
}

// Current returns the elapsed seconds.
func (countdown *Countdown) Current() int { return countdown.current }

// Max returns the length in seconds.
func (countdown *Countdown) Max() int { return countdown.max }

// Progress returns the integer percent complete, 0..100.
func (countdown *Countdown) Progress() int { return countdown.progress }

// Finished reports whether the countdown reached its maximum.
func (countdown *Countdown) Finished() bool { return countdown.finished }

// Label returns "HH:MM:SS/HH:MM:SS".
func (countdown *Countdown) Label() string {
	return countdown.currentText + "/" + countdown.maxText
}

func percent(current, max int) int {
	value := current * 100 / max
	if current > max || value < 0 || value > 100 {
		panic(&InvariantError{Current: current, Max: max, Percent: value})
	}
	return value
}
