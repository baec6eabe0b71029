package main

import (
	"fmt"
	"time"

	"aquaremind/internal/core/timekeeper"
	"aquaremind/internal/ui/preferences"
	"aquaremind/internal/ui/terminal"

	"go.uber.org/zap"
)

func runTerminal(settings preferences.Settings, logger *zap.SugaredLogger) error {
	keeper := timekeeper.New(settings.ReminderConfig(), timekeeper.Config{TickInterval: time.Second})
	// Only errors reach stderr while the alternate screen is active.
	quiet := logger.Desugar().WithOptions(zap.IncreaseLevel(zap.ErrorLevel)).Sugar()
	keeper.SetLogger(quiet.Named("timekeeper"))

	events := keeper.Subscribe(16)
	program := terminal.NewProgram(keeper, events)
	keeper.SetDispatcher(program)
	keeper.Start()
	defer keeper.Stop()

	if err := program.Run(); err != nil {
		return fmt.Errorf("run terminal: %w", err)
	}
	return nil
}
