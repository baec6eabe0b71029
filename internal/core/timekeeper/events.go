package timekeeper

import (
	"time"

	"aquaremind/internal/core/reminder"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventStarted  EventType = "started"
	EventProgress EventType = "progress"
	EventReminder EventType = "reminder"
	EventDrink    EventType = "drink"
	EventInterval EventType = "interval"
	EventQuote    EventType = "quote"
)

// Event represents a TimeKeeper update for observers. State is a snapshot
// taken after the change.
type Event struct {
	Type  EventType
	State reminder.State
	At    time.Time
}

// Phase is a shorthand for the snapshot phase.
func (event Event) Phase() reminder.Phase {
	return event.State.Phase()
}
