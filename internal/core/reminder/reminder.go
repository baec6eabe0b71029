package reminder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"aquaremind/internal/core/model"
)

// ErrInvalidInterval indicates interval input that is not a positive whole
// number of minutes within range.
var ErrInvalidInterval = errors.New("invalid reminder interval")

// Outcome describes side effects produced by a tick.
type Outcome struct {
	ReminderDue bool
}

// Tick advances the countdown by one second. Reaching zero fires the
// reminder and restarts the countdown from the current interval.
func Tick(state State) (State, Outcome) {
	if state.CountdownSeconds > 0 {
		state.CountdownSeconds--
	}
	if state.CountdownSeconds > 0 {
		return state, Outcome{}
	}

	state.ReminderActive = true
	state.Acknowledged = false
	state.CountdownSeconds = state.IntervalSeconds()
	return state, Outcome{ReminderDue: true}
}

// Acknowledge records a drink at the given instant. It returns false and the
// unchanged state when the drink control is disabled, which limits scoring to
// one acknowledgment per reminder cycle.
func Acknowledge(state State, at time.Time, award int) (State, bool) {
	if !state.CanAcknowledge() {
		return state, false
	}
	if award < 0 {
		award = 0
	}
	state.ReminderActive = false
	state.Acknowledged = true
	state.CountdownSeconds = state.IntervalSeconds()
	state.Points += award
	state.LastDrink = at
	return state, true
}

// EditInterval applies raw user input from the interval field. Invalid input
// leaves the state untouched.
func EditInterval(state State, input string) (State, bool) {
	minutes, err := ParseInterval(input)
	if err != nil {
		return state, false
	}
	return SetInterval(state, minutes)
}

// SetInterval replaces the interval and restarts the countdown, discarding
// progress toward the next reminder.
func SetInterval(state State, minutes int) (State, bool) {
	if !validMinutes(minutes) {
		return state, false
	}
	state.IntervalMinutes = minutes
	state.CountdownSeconds = minutes * 60
	return state, true
}

// ParseInterval converts interval field text to minutes.
func ParseInterval(input string) (int, error) {
	value := strings.TrimSpace(input)
	minutes, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInterval, input)
	}
	if !validMinutes(minutes) {
		return 0, fmt.Errorf("%w: %d minutes", ErrInvalidInterval, minutes)
	}
	return minutes, nil
}

func validMinutes(minutes int) bool {
	return minutes > 0 && minutes <= model.MaxIntervalMinutes
}
