//go:build linux

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (service *platformService) EnableAutostart(appName, execPath string) error {
	if appName == "" || execPath == "" {
		return fmt.Errorf("enable autostart: app name and exec path are required")
	}

	entryPath, err := service.desktopEntryPath(appName)
	if err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(entryPath), 0o755); err != nil {
		return fmt.Errorf("enable autostart: create autostart dir: %w", err)
	}
	if err := os.WriteFile(entryPath, []byte(desktopEntry(appName, execPath)), 0o644); err != nil {
		return fmt.Errorf("enable autostart: write desktop entry: %w", err)
	}
	return nil
}

func (service *platformService) DisableAutostart(appName string) error {
	entryPath, err := service.desktopEntryPath(appName)
	if err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	if err := os.Remove(entryPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("disable autostart: remove desktop entry: %w", err)
	}
	return nil
}

func (service *platformService) AutostartEnabled(appName string) (bool, error) {
	entryPath, err := service.desktopEntryPath(appName)
	if err != nil {
		return false, err
	}
	return fileExists(entryPath)
}

func (service *platformService) desktopEntryPath(appName string) (string, error) {
	configDir, err := service.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "autostart", slugName(appName)+".desktop"), nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config")
}

func desktopEntry(appName, execPath string) string {
	if strings.ContainsAny(execPath, " \t") && !strings.HasPrefix(execPath, `"`) {
		execPath = `"` + execPath + `"`
	}

	var entry strings.Builder
	entry.WriteString("[Desktop Entry]\n")
	fmt.Fprintf(&entry, "Type=Application\nName=%s\n", appName)
	entry.WriteString("Comment=Reminds you to drink water\n")
	fmt.Fprintf(&entry, "Exec=%s\n", execPath)
	entry.WriteString("Terminal=false\nX-GNOME-Autostart-enabled=true\n")
	return entry.String()
}
