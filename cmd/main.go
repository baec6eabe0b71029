package main

import (
	"fmt"
	"os"

	"aquaremind/internal/logging"
	"aquaremind/internal/platform"
	"aquaremind/internal/storage"
	"aquaremind/internal/ui/preferences"
	"aquaremind/internal/ui/present"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const appName = present.AppName

type options struct {
	configPath string
	interval   int
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "aquaremind",
		Short:        "Reminds you to drink water on a repeating interval",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, logger := loadSettings(opts)
			defer func() {
				_ = logger.Sync()
			}()
			return runDesktop(settings, logger)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "settings file (default <user config dir>/"+appName+"/settings.yaml)")
	root.PersistentFlags().IntVar(&opts.interval, "interval", 0, "reminder interval in minutes (overrides settings)")

	root.AddCommand(&cobra.Command{
		Use:   "tui",
		Short: "Run the reminder in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, logger := loadSettings(opts)
			defer func() {
				_ = logger.Sync()
			}()
			return runTerminal(settings, logger)
		},
	})

	return root
}

// loadSettings merges defaults, the settings file and flags. Failures fall
// back to defaults and are logged.
func loadSettings(opts *options) (preferences.Settings, *zap.SugaredLogger) {
	settings := preferences.DefaultSettings()

	configPath := opts.configPath
	var loadErr error
	if configPath == "" {
		configPath, loadErr = storage.SettingsPath(platform.NewService(), appName)
	}
	if loadErr == nil {
		settings, loadErr = storage.LoadSettings(configPath)
	}

	settings = settings.WithInterval(opts.interval)
	logger := logging.New(settings.LogLevel, os.Stderr)
	if loadErr != nil {
		logger.Warnw("using default settings", "path", configPath, "error", loadErr)
	} else {
		logger.Debugw("settings loaded", "path", configPath, "interval_minutes", settings.IntervalMinutes)
	}
	return settings, logger
}

func applyAutostart(settings preferences.Settings, logger *zap.SugaredLogger) {
	execPath, err := os.Executable()
	if err != nil {
		logger.Warnw("autostart skipped", "error", fmt.Errorf("resolve executable: %w", err))
		return
	}
	changed, err := platform.ApplyAutostart(platform.NewService(), appName, execPath, settings.Autostart)
	if err != nil {
		logger.Warnw("autostart update failed", "error", err)
		return
	}
	if changed {
		logger.Infow("autostart updated", "enabled", settings.Autostart)
	}
}
