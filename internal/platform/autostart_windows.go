//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

const registryRunKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

func (service *platformService) EnableAutostart(appName, execPath string) error {
	if appName == "" || execPath == "" {
		return fmt.Errorf("enable autostart: app name and exec path are required")
	}
	quoted := `"` + strings.Trim(execPath, `"`) + `"`
	if err := runReg("add", registryRunKey, "/v", appName, "/t", "REG_SZ", "/d", quoted, "/f"); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	return nil
}

func (service *platformService) DisableAutostart(appName string) error {
	if err := runReg("delete", registryRunKey, "/v", appName, "/f"); err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	return nil
}

func (service *platformService) AutostartEnabled(appName string) (bool, error) {
	// reg query exits non-zero when the value is absent.
	err := exec.Command("reg", "query", registryRunKey, "/v", appName).Run()
	if err == nil {
		return true, nil
	}
	if _, ok := err.(*exec.ExitError); ok {
		return false, nil
	}
	return false, fmt.Errorf("query autostart: %w", err)
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "AppData", "Roaming")
}

func runReg(args ...string) error {
	output, err := exec.Command("reg", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("reg %s: %w: %s", args[0], err, strings.TrimSpace(string(output)))
	}
	return nil
}
