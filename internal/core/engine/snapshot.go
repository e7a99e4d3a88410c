package engine

import "workouttimer/internal/core/phase"

// Kind names the phase a gauge shows.
type Kind int

const (
	KindNone Kind = iota
	KindWorkout
	KindSet
	KindExercise
	KindSetRest
	KindExerciseRest
)

// Gauge is the read-only view of one phase.
type Gauge struct {
	Kind     Kind
	Title    string
	Label    string
	Progress int
	Finished bool
	Ordinal  int
	Quantity int
}

// Visible reports whether the gauge occupies its slot.
func (gauge Gauge) Visible() bool { return gauge.Kind != KindNone }

// Snapshot is a copy of everything a renderer needs for one frame.
type Snapshot struct {
	State        State
	Workout      Gauge
	Set          Gauge
	Exercise     Gauge
	SetRest      Gauge
	ExerciseRest Gauge
	Elapsed      int
	Total        int
	Finished     bool
}

// Snapshot captures the current state of every phase.
func (engine *Engine) Snapshot() Snapshot {
	return Snapshot{
		State:        engine.state,
		Workout:      gauge(KindWorkout, "Full Workout Timer", &engine.workout.Countdown, 0, 0),
		Set:          gauge(KindSet, engine.set.Title(), &engine.set.Countdown, engine.set.Ordinal(), engine.set.Quantity()),
		Exercise:     gauge(KindExercise, engine.exercise.Title(), &engine.exercise.Countdown, engine.exercise.Ordinal(), engine.exercise.Quantity()),
		SetRest:      gauge(KindSetRest, "Set Rest Timer", &engine.setRest.Countdown, 0, 0),
		ExerciseRest: gauge(KindExerciseRest, "Exercise Rest Timer", &engine.exerciseRest.Countdown, 0, 0),
		Elapsed:      engine.workout.Current(),
		Total:        engine.workout.Max(),
		Finished:     engine.workout.Finished(),
	}
}

func gauge(kind Kind, title string, countdown *phase.Countdown, ordinal, quantity int) Gauge {
	return Gauge{
		Kind:     kind,
		Title:    title,
		Label:    countdown.Label(),
		Progress: countdown.Progress(),
		Finished: countdown.Finished(),
		Ordinal:  ordinal,
		Quantity: quantity,
	}
}

// Slots returns the two sub-gauges shown under the workout gauge. The first
// is the set or the set rest; the second is the exercise, the exercise rest,
// or an empty gauge while resting between sets.
func (snapshot Snapshot) Slots() (Gauge, Gauge) {
	switch snapshot.State {
	case StateInSetRest:
		return snapshot.SetRest, Gauge{}
	case StateInExerciseRest:
		return snapshot.Set, snapshot.ExerciseRest
	default:
		return snapshot.Set, snapshot.Exercise
	}
}
