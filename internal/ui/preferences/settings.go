package preferences

import (
	"aquaremind/internal/core/model"
)

// Settings defines user preferences read at startup.
type Settings struct {
	IntervalMinutes      int
	NotificationsEnabled bool
	Autostart            bool
	LogLevel             string
}

// DefaultSettings returns default settings for AquaRemind.
func DefaultSettings() Settings {
	return Settings{
		IntervalMinutes:      model.DefaultIntervalMinutes,
		NotificationsEnabled: true,
		Autostart:            false,
		LogLevel:             "info",
	}
}

// WithInterval returns settings with the interval overridden when minutes is
// within the accepted range.
func (settings Settings) WithInterval(minutes int) Settings {
	if minutes > 0 && minutes <= model.MaxIntervalMinutes {
		settings.IntervalMinutes = minutes
	}
	return settings
}

// ReminderConfig converts settings to the reminder engine configuration.
func (settings Settings) ReminderConfig() model.ReminderConfig {
	config := model.DefaultReminderConfig()
	config.IntervalMinutes = settings.IntervalMinutes
	config.Notification.Enabled = settings.NotificationsEnabled
	return config
}
