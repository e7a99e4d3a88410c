package engine

// State is the phase currently eligible to advance.
type State int

const (
	StateInSet State = iota
	StateInSetRest
	StateInExerciseRest

	numStates
)

func (state State) String() string {
	switch state {
	case StateInSet:
		return "set"
	case StateInSetRest:
		return "set_rest"
	case StateInExerciseRest:
		return "exercise_rest"
	default:
		return "unknown"
	}
}

// increments is how far each sub-timer moves on one tick. A transition zeroes
// the entry of the phase it just entered so the transition tick is not
// counted into that phase.
type increments struct {
	set          int
	exercise     int
	setRest      int
	exerciseRest int
}

func defaultIncrements() increments {
	return increments{set: 1, exercise: 1, setRest: 1, exerciseRest: 1}
}

// transition leaves a state when done reports true.
type transition struct {
	to    State
	done  func(engine *Engine) bool
	enter func(engine *Engine, inc *increments)
}

// transitions lists, per state, the exits checked in order. At most one fires
// per tick.
var transitions = [numStates][]transition{
	StateInSet: {
		{
			to:   StateInSetRest,
			done: func(engine *Engine) bool { return engine.set.Finished() },
			enter: func(engine *Engine, inc *increments) {
				engine.set.Clear()
				engine.set.IncrementOrdinal()
				engine.exercise.Clear()
				engine.exercise.IncrementOrdinal()
				inc.setRest = 0
			},
		},
		{
			to:   StateInExerciseRest,
			done: func(engine *Engine) bool { return engine.exercise.Finished() },
			enter: func(engine *Engine, inc *increments) {
				engine.exercise.Clear()
				engine.exercise.IncrementOrdinal()
				inc.exerciseRest = 0
			},
		},
	},
	StateInSetRest: {
		{
			to:   StateInSet,
			done: func(engine *Engine) bool { return engine.setRest.Finished() },
			enter: func(engine *Engine, inc *increments) {
				engine.setRest.Clear()
				inc.set = 0
				inc.exercise = 0
			},
		},
	},
	StateInExerciseRest: {
		{
			to:   StateInSet,
			done: func(engine *Engine) bool { return engine.exerciseRest.Finished() },
			enter: func(engine *Engine, inc *increments) {
				engine.exerciseRest.Clear()
				inc.exercise = 0
			},
		},
	},
}

// advances moves the sub-timers that run in each state. The set clock keeps
// running through exercise rests and stops only for set rests.
var advances = [numStates]func(engine *Engine, inc increments){
	StateInSet: func(engine *Engine, inc increments) {
		engine.set.Advance(inc.set)
		engine.exercise.Advance(inc.exercise)
	},
	StateInSetRest: func(engine *Engine, inc increments) {
		engine.setRest.Advance(inc.setRest)
	},
	StateInExerciseRest: func(engine *Engine, inc increments) {
		engine.set.Advance(inc.set)
		engine.exerciseRest.Advance(inc.exerciseRest)
	},
}
