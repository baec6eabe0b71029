// Package present turns reminder state into display strings shared by the
// desktop and terminal surfaces.
package present

import (
	"fmt"
	"time"

	"aquaremind/internal/core/reminder"
	"aquaremind/internal/notify"
)

const (
	AppName = "AquaRemind"
	Heading = "Water Drinking Reminder"
	Tagline = "Stay hydrated, stay healthy!"

	CountdownCaption = "Time until next reminder"
	IntervalLabel    = "Reminder Interval (minutes):"

	DrinkLabel    = "I drank water"
	WaitLabel     = "Wait for next reminder"
	NoDrinkYet    = "Not yet recorded"
	ReminderTitle = "Time to drink water!"
)

// View is the rendered form of a reminder state.
type View struct {
	Countdown    string
	Progress     float64
	Points       string
	LastDrink    string
	Quote        string
	Interval     string
	ButtonLabel  string
	ButtonActive bool
	Reminder     bool
	ReminderBody string
	TrayStatus   string
}

// Render builds the view for state. Times are shown in loc.
func Render(state reminder.State, loc *time.Location) View {
	return View{
		Countdown:    FormatCountdown(state.CountdownSeconds),
		Progress:     state.Progress(),
		Points:       fmt.Sprintf("%d pts", state.Points),
		LastDrink:    "Last drink: " + FormatLastDrink(state, loc),
		Quote:        state.Quote,
		Interval:     fmt.Sprintf("%d", state.IntervalMinutes),
		ButtonLabel:  ButtonLabel(state),
		ButtonActive: state.CanAcknowledge(),
		Reminder:     state.ReminderActive,
		ReminderBody: ReminderBody(state.IntervalMinutes),
		TrayStatus:   "next reminder in " + FormatCountdown(state.CountdownSeconds),
	}
}

// FormatCountdown renders seconds as zero-padded mm:ss. Minutes are not
// wrapped into hours.
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatLastDrink renders the last drink as a local clock time.
func FormatLastDrink(state reminder.State, loc *time.Location) string {
	if !state.HasLastDrink() {
		return NoDrinkYet
	}
	if loc == nil {
		loc = time.Local
	}
	return state.LastDrink.In(loc).Format("15:04:05")
}

// ButtonLabel returns the drink control caption.
func ButtonLabel(state reminder.State) string {
	if state.CanAcknowledge() {
		return DrinkLabel
	}
	return WaitLabel
}

// ReminderBody is the in-window reminder banner text.
func ReminderBody(intervalMinutes int) string {
	return notify.Reminder(ReminderTitle, intervalMinutes).Body
}
