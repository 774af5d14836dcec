package timer

import (
	"time"

	"focustrack/internal/core/model"
)

// State represents the current Engine mode.
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StatePaused  State = "paused"
)

// EventType defines the type of Engine event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventTick        EventType = "tick"
	EventCompleted   EventType = "completed"
)

// Event represents an Engine update for observers.
type Event struct {
	Type        EventType
	State       State
	SessionType model.SessionType
	Remaining   time.Duration
	Progress    float64
	At          time.Time
}

// OutcomeKind tells what a single tick did.
type OutcomeKind int

const (
	// OutcomeIgnored means the tick was not applied: the engine was not
	// running or the tick did not come from the live countdown.
	OutcomeIgnored OutcomeKind = iota
	OutcomeTicking
	OutcomeCompleted
)

// Outcome is the result of one tick.
type Outcome struct {
	Kind      OutcomeKind
	Remaining time.Duration
	// Finished is the session type that just completed. Only set for
	// OutcomeCompleted.
	Finished model.SessionType
}

// Snapshot is a point-in-time view of the Engine.
type Snapshot struct {
	State       State
	SessionType model.SessionType
	Remaining   time.Duration
	Total       time.Duration
	Progress    float64
}
