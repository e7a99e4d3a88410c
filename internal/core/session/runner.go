// Package session drives an engine from a real-time ticker and fans the
// resulting snapshots out to observers.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"workouttimer/internal/core/engine"
)

// ErrAlreadyStarted is returned when Run is called twice on one Runner.
var ErrAlreadyStarted = errors.New("session already started")

// Cue is notified of phase changes, e.g. to play a sound.
type Cue interface {
	PhaseChanged(change engine.Change)
	Finished()
}

// Config contains runtime options for Runner.
type Config struct {
	TickInterval time.Duration
}

// Runner owns an engine for the length of one workout. Only the Run
// goroutine touches the engine; observers receive copies.
type Runner struct {
	mu      sync.Mutex
	engine  *engine.Engine
	options Config
	logger  *slog.Logger
	cue     Cue
	events  []chan Event
	started bool
}

// New creates a Runner for the given engine.
func New(workout *engine.Engine, options Config, logger *slog.Logger) *Runner {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		engine:  workout,
		options: options,
		logger:  logger,
	}
}

// SetCue injects a phase change cue.
func (runner *Runner) SetCue(cue Cue) {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	runner.cue = cue
}

// Subscribe registers a new observer channel. The channel is closed when Run
// returns. Events are dropped for observers that fall behind.
func (runner *Runner) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	runner.mu.Lock()
	runner.events = append(runner.events, ch)
	runner.mu.Unlock()
	return ch
}

// Run ticks the engine once per tick interval until the workout finishes or
// ctx is cancelled. It returns nil on completion and ctx.Err() on cancellation.
func (runner *Runner) Run(ctx context.Context) error {
	runner.mu.Lock()
	if runner.started {
		runner.mu.Unlock()
		return ErrAlreadyStarted
	}
	runner.started = true
	runner.mu.Unlock()
	defer runner.closeEvents()

	config := runner.engine.Config()
	runner.logger.Info("workout started",
		"exercise_time", config.ExerciseTime,
		"exercises", config.ExerciseQuantity,
		"exercise_rest", config.ExerciseRestTime,
		"sets", config.SetQuantity,
		"set_rest", config.SetRestTime,
		"total_seconds", runner.engine.TotalTime())
	runner.emit(Event{Type: EventStarted, Snapshot: runner.engine.Snapshot(), At: time.Now()})

	ticker := time.NewTicker(runner.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return runner.cancelled(ctx)
		case tickTime := <-ticker.C:
			if ctx.Err() != nil {
				return runner.cancelled(ctx)
			}
			if runner.tick(tickTime) {
				return nil
			}
		}
	}
}

// tick applies one engine tick and reports whether the workout is over.
func (runner *Runner) tick(now time.Time) bool {
	change, changed := runner.engine.Tick()
	snapshot := runner.engine.Snapshot()
	cue := runner.currentCue()

	if changed {
		runner.logger.Debug("phase change",
			"from", change.From.String(),
			"to", change.To.String(),
			"set", change.SetOrdinal,
			"exercise", change.ExerciseOrdinal,
			"remaining", change.WorkoutRemaining)
		if cue != nil {
			cue.PhaseChanged(change)
		}
		runner.emit(Event{Type: EventPhaseChange, Snapshot: snapshot, Change: change, At: now})
	}
	runner.emit(Event{Type: EventTick, Snapshot: snapshot, At: now})

	if !snapshot.Finished {
		return false
	}
	runner.logger.Info("workout finished", "ticks", runner.engine.Ticks())
	if cue != nil {
		cue.Finished()
	}
	runner.emit(Event{Type: EventFinished, Snapshot: snapshot, At: now})
	return true
}

func (runner *Runner) cancelled(ctx context.Context) error {
	runner.logger.Info("workout cancelled", "elapsed", runner.engine.Ticks())
	runner.emit(Event{Type: EventCancelled, Snapshot: runner.engine.Snapshot(), At: time.Now()})
	return ctx.Err()
}

func (runner *Runner) currentCue() Cue {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	return runner.cue
}

func (runner *Runner) emit(event Event) {
	runner.mu.Lock()
	events := append([]chan Event(nil), runner.events...)
	runner.mu.Unlock()

	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}

func (runner *Runner) closeEvents() {
	runner.mu.Lock()
	events := runner.events
	runner.events = nil
	runner.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}
