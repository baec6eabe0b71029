package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"aquaremind/internal/core/model"
	"aquaremind/internal/logging"
	"aquaremind/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	IntervalMinutes      int    `yaml:"interval_minutes"`
	NotificationsEnabled *bool  `yaml:"notifications_enabled"`
	Autostart            bool   `yaml:"autostart"`
	LogLevel             string `yaml:"log_level"`
}

// ConfigDirer resolves the OS configuration directory.
type ConfigDirer interface {
	GetConfigDir() (string, error)
}

// SettingsPath returns the settings file location under the config dir.
func SettingsPath(dirs ConfigDirer, appName string) (string, error) {
	configDir, err := dirs.GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve settings path: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettings reads user preferences from YAML.
// If the file does not exist, default settings are returned. Settings are
// never written back; reminder state does not outlive the process.
func LoadSettings(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.IntervalMinutes > 0 && fileData.IntervalMinutes <= model.MaxIntervalMinutes {
		settings.IntervalMinutes = fileData.IntervalMinutes
	}
	if fileData.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *fileData.NotificationsEnabled
	}
	if level := strings.TrimSpace(fileData.LogLevel); level != "" && logging.ValidLevel(level) == nil {
		settings.LogLevel = strings.ToLower(level)
	}
	settings.Autostart = fileData.Autostart
}
