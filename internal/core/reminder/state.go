package reminder

import (
	"time"

	"aquaremind/internal/core/model"
)

// Phase is the derived mode of the reminder state machine.
type Phase string

const (
	PhaseCounting    Phase = "counting"
	PhaseReady       Phase = "ready"
	PhaseReminderDue Phase = "reminder_due"
)

// State is the complete reminder widget state. It is a plain value: update
// functions return a new State instead of mutating shared fields.
type State struct {
	CountdownSeconds int
	IntervalMinutes  int
	ReminderActive   bool
	// Acknowledged disables the drink control until the next reminder.
	Acknowledged bool

	Points    int
	LastDrink time.Time

	Quote string
}

// New returns the state at widget start for the given interval. Intervals
// outside the accepted range fall back to the default.
func New(intervalMinutes int) State {
	if !validMinutes(intervalMinutes) {
		intervalMinutes = model.DefaultIntervalMinutes
	}
	return State{
		CountdownSeconds: intervalMinutes * 60,
		IntervalMinutes:  intervalMinutes,
	}
}

// Phase reports the current state machine phase.
func (state State) Phase() Phase {
	switch {
	case state.Acknowledged:
		return PhaseReady
	case state.ReminderActive:
		return PhaseReminderDue
	default:
		return PhaseCounting
	}
}

// CanAcknowledge reports whether the drink control is enabled.
func (state State) CanAcknowledge() bool {
	return !state.Acknowledged
}

// HasLastDrink reports whether a drink has been recorded this session.
func (state State) HasLastDrink() bool {
	return !state.LastDrink.IsZero()
}

// IntervalSeconds returns the full countdown length.
func (state State) IntervalSeconds() int {
	return state.IntervalMinutes * 60
}

// Remaining returns the countdown as a duration.
func (state State) Remaining() time.Duration {
	return time.Duration(state.CountdownSeconds) * time.Second
}

// Progress returns the elapsed fraction of the current interval in [0, 1].
func (state State) Progress() float64 {
	total := state.IntervalSeconds()
	if total <= 0 {
		return 0
	}
	progress := float64(total-state.CountdownSeconds) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}
