//go:build darwin

package platform

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (service *platformService) EnableAutostart(appName, execPath string) error {
	if appName == "" || execPath == "" {
		return fmt.Errorf("enable autostart: app name and exec path are required")
	}

	plistPath, err := launchAgentPath(appName)
	if err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(plistPath), 0o755); err != nil {
		return fmt.Errorf("enable autostart: create LaunchAgents dir: %w", err)
	}
	if err := os.WriteFile(plistPath, []byte(launchAgentPlist(launchAgentLabel(appName), execPath)), 0o644); err != nil {
		return fmt.Errorf("enable autostart: write plist: %w", err)
	}
	return nil
}

func (service *platformService) DisableAutostart(appName string) error {
	plistPath, err := launchAgentPath(appName)
	if err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	if err := os.Remove(plistPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("disable autostart: remove plist: %w", err)
	}
	return nil
}

func (service *platformService) AutostartEnabled(appName string) (bool, error) {
	plistPath, err := launchAgentPath(appName)
	if err != nil {
		return false, err
	}
	return fileExists(plistPath)
}

func launchAgentPath(appName string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, "Library", "LaunchAgents", launchAgentLabel(appName)+".plist"), nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "Library", "Application Support")
}

func launchAgentLabel(appName string) string {
	return "com.aquaremind." + slugName(appName)
}

func launchAgentPlist(label, execPath string) string {
	var plist strings.Builder
	plist.WriteString(xml.Header)
	plist.WriteString(`<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">` + "\n")
	plist.WriteString("<plist version=\"1.0\">\n<dict>\n")
	plist.WriteString("\t<key>Label</key>\n\t<string>" + escapeXML(label) + "</string>\n")
	plist.WriteString("\t<key>ProgramArguments</key>\n\t<array>\n\t\t<string>" + escapeXML(execPath) + "</string>\n\t</array>\n")
	plist.WriteString("\t<key>RunAtLoad</key>\n\t<true/>\n")
	plist.WriteString("</dict>\n</plist>\n")
	return plist.String()
}

func escapeXML(value string) string {
	var escaped strings.Builder
	_ = xml.EscapeText(&escaped, []byte(value))
	return escaped.String()
}
