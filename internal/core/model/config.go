package model

import (
	"math"
	"time"
)

const (
	// DefaultIntervalMinutes is the reminder interval used until the user edits it.
	DefaultIntervalMinutes = 60
	// MaxIntervalMinutes is the largest interval whose length in seconds
	// still fits in an int.
	MaxIntervalMinutes = math.MaxInt / 60
	// DrinkAward is the number of points granted per acknowledgment.
	DrinkAward = 100
	// QuoteRotationSeconds is the quote refresh cadence in scheduler ticks.
	QuoteRotationSeconds = 300
)

// NotificationConfig defines the reminder notification.
type NotificationConfig struct {
	Enabled bool
	Title   string
}

// ReminderConfig contains runtime settings for the reminder engine.
type ReminderConfig struct {
	IntervalMinutes int
	Award           int
	QuoteEvery      int

	Notification NotificationConfig
}

// DefaultReminderConfig returns the stock reminder configuration.
func DefaultReminderConfig() ReminderConfig {
	return ReminderConfig{
		IntervalMinutes: DefaultIntervalMinutes,
		Award:           DrinkAward,
		QuoteEvery:      QuoteRotationSeconds,
		Notification: NotificationConfig{
			Enabled: true,
			Title:   "Time to drink water!",
		},
	}
}

// Interval returns the configured interval as a duration.
func (config ReminderConfig) Interval() time.Duration {
	return time.Duration(config.IntervalMinutes) * time.Minute
}
