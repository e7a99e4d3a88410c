package session

import (
	"time"

	"workouttimer/internal/core/engine"
)

// EventType defines the type of session event.
type EventType string

const (
	EventStarted     EventType = "started"
	EventTick        EventType = "tick"
	EventPhaseChange EventType = "phase_change"
	EventFinished    EventType = "finished"
	EventCancelled   EventType = "cancelled"
)

// Event is a session update for observers.
type Event struct {
	Type     EventType
	Snapshot engine.Snapshot
	Change   engine.Change
	At       time.Time
}
