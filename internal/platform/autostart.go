package platform

import (
	"fmt"
	"os"
	"strings"
)

// Service defines OS-specific helpers needed by the application.
type Service interface {
	GetConfigDir() (string, error)
	EnableAutostart(appName, execPath string) error
	DisableAutostart(appName string) error
	AutostartEnabled(appName string) (bool, error)
}

type platformService struct{}

// NewService returns a platform-specific implementation.
func NewService() Service {
	return &platformService{}
}

// GetConfigDir returns the OS-standard configuration directory.
func (service *platformService) GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return fallbackConfigDir(homeDir), nil
}

// ApplyAutostart makes the login entry match enabled. It only touches the
// system when the current registration differs.
func ApplyAutostart(service Service, appName, execPath string, enabled bool) (bool, error) {
	current, err := service.AutostartEnabled(appName)
	if err != nil {
		return false, fmt.Errorf("check autostart: %w", err)
	}
	if current == enabled {
		return false, nil
	}
	if enabled {
		return true, service.EnableAutostart(appName, execPath)
	}
	return true, service.DisableAutostart(appName)
}

func slugName(appName string) string {
	name := strings.ToLower(strings.TrimSpace(appName))
	if name == "" {
		return "aquaremind"
	}
	return strings.Join(strings.Fields(name), "-")
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
