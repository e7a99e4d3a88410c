// Package engine implements the nested workout timer: a workout made of sets,
// each made of exercises separated by rests, all advanced by a one second tick.
//
// The Engine is not safe for concurrent use. It performs no I/O and never
// blocks; a single caller (see package session) drives it.
package engine

import (
	"fmt"

	"workouttimer/internal/core/model"
	"workouttimer/internal/core/phase"
)

// Change describes a phase transition fired by Tick.
type Change struct {
	From             State
	To               State
	SetOrdinal       int
	ExerciseOrdinal  int
	WorkoutRemaining int
}

// Engine owns every phase and the active state.
type Engine struct {
	config       model.WorkoutConfig
	workout      phase.Workout
	set          phase.Set
	exercise     phase.Exercise
	setRest      phase.Rest
	exerciseRest phase.Rest
	state        State
	ticks        int
}

// New validates config and builds an engine positioned before the first tick.
func New(config model.WorkoutConfig) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	workout, err := phase.NewWorkout(config.TotalTime())
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}
	set, err := phase.NewSet(config.SetTime(), config.SetQuantity)
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}
	exercise, err := phase.NewExercise(config.ExerciseTime, config.ExerciseQuantity)
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}
	setRest, err := phase.NewRest(config.SetRestTime)
	if err != nil {
		return nil, fmt.Errorf("build engine: set %w", err)
	}
	exerciseRest, err := phase.NewRest(config.ExerciseRestTime)
	if err != nil {
		return nil, fmt.Errorf("build engine: exercise %w", err)
	}

	return &Engine{
		config:       config,
		workout:      workout,
		set:          set,
		exercise:     exercise,
		setRest:      setRest,
		exerciseRest: exerciseRest,
		state:        StateInSet,
	}, nil
}

// Tick advances the engine by one second. It first decides whether the active
// phase is complete and switches state, then applies this tick's increments.
// It reports the transition that fired, if any. Once the workout has finished
// Tick leaves every phase untouched.
func (engine *Engine) Tick() (Change, bool) {
	if engine.workout.Finished() {
		return Change{}, false
	}

	inc := defaultIncrements()
	from := engine.state
	change, changed := Change{}, false
	for _, exit := range transitions[from] {
		if !exit.done(engine) {
			continue
		}
		exit.enter(engine, &inc)
		engine.state = exit.to
		changed = true
		break
	}

	engine.workout.Advance(1)
	advances[engine.state](engine, inc)
	engine.ticks++

	if changed {
		change = Change{
			From:             from,
			To:               engine.state,
			SetOrdinal:       engine.set.Ordinal(),
			ExerciseOrdinal:  engine.exercise.Ordinal(),
			WorkoutRemaining: engine.workout.Max() - engine.workout.Current(),
		}
	}
	return change, changed
}

// State returns the active state.
func (engine *Engine) State() State { return engine.state }

// Finished reports whether the workout is over.
func (engine *Engine) Finished() bool { return engine.workout.Finished() }

// Ticks returns how many ticks have been applied.
func (engine *Engine) Ticks() int { return engine.ticks }

// TotalTime returns the derived workout length in seconds.
func (engine *Engine) TotalTime() int { return engine.workout.Max() }

// SetTime returns the derived set length in seconds.
func (engine *Engine) SetTime() int { return engine.set.Max() }

// Config returns the configuration the engine was built from.
func (engine *Engine) Config() model.WorkoutConfig { return engine.config }
