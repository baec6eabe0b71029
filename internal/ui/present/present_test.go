package present

import (
	"testing"
	"time"

	"aquaremind/internal/core/reminder"
	"aquaremind/internal/notify"

	"github.com/stretchr/testify/assert"
)

func TestFormatCountdown(t *testing.T) {
	cases := map[int]string{
		3600: "60:00",
		1800: "30:00",
		61:   "01:01",
		9:    "00:09",
		0:    "00:00",
		-4:   "00:00",
		7200: "120:00",
	}
	for seconds, want := range cases {
		assert.Equal(t, want, FormatCountdown(seconds), seconds)
	}
}

func TestRenderInitialState(t *testing.T) {
	view := Render(reminder.New(60), time.UTC)

	assert.Equal(t, "60:00", view.Countdown)
	assert.Equal(t, 0.0, view.Progress)
	assert.Equal(t, "0 pts", view.Points)
	assert.Equal(t, "Last drink: Not yet recorded", view.LastDrink)
	assert.Equal(t, "60", view.Interval)
	assert.Equal(t, DrinkLabel, view.ButtonLabel)
	assert.True(t, view.ButtonActive)
	assert.False(t, view.Reminder)
	assert.Equal(t, "next reminder in 60:00", view.TrayStatus)
}

func TestRenderAfterDrink(t *testing.T) {
	at := time.Date(2026, 10, 18, 14, 5, 9, 0, time.UTC)
	state, _ := reminder.Acknowledge(reminder.New(30), at, 100)

	view := Render(state, time.UTC)

	assert.Equal(t, "100 pts", view.Points)
	assert.Equal(t, "Last drink: 14:05:09", view.LastDrink)
	assert.Equal(t, WaitLabel, view.ButtonLabel)
	assert.False(t, view.ButtonActive)
}

func TestRenderReminder(t *testing.T) {
	state := reminder.New(45)
	state.ReminderActive = true
	state.CountdownSeconds = 45 * 30

	view := Render(state, time.UTC)

	assert.True(t, view.Reminder)
	assert.Equal(t, "It's been 45 minutes since your last drink. Stay hydrated!", view.ReminderBody)
	assert.InDelta(t, 0.5, view.Progress, 1e-9)
}

func TestReminderBodyMatchesNotification(t *testing.T) {
	assert.Equal(t, notify.Reminder(ReminderTitle, 90).Body, ReminderBody(90))
}
