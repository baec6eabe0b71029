package main

import (
	"errors"
	"time"

	"aquaremind/internal/core/reminder"
	"aquaremind/internal/core/timekeeper"
	"aquaremind/internal/notify"
	"aquaremind/internal/platform"
	"aquaremind/internal/ui/preferences"
	"aquaremind/internal/ui/present"
	"aquaremind/internal/ui/tray"
	"aquaremind/internal/ui/widget"
	"aquaremind/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"go.uber.org/zap"
)

func runDesktop(settings preferences.Settings, logger *zap.SugaredLogger) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			logger.Infow("already running, activated existing window", "error", err)
			return nil
		}
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	applyAutostart(settings, logger)

	fyneApp := app.NewWithID("com.aquaremind.app")
	fyneApp.SetIcon(resources.MustIcon(resources.IconDefault))

	keeper := timekeeper.New(settings.ReminderConfig(), timekeeper.Config{TickInterval: time.Second})
	keeper.SetDispatcher(notify.NewFyne(fyneApp))
	keeper.SetLogger(logger.Named("timekeeper"))

	reminderWindow := widget.New(fyneApp, present.Render(keeper.Snapshot(), time.Local), widget.Callbacks{
		OnDrink: func() {
			keeper.Acknowledge()
		},
		OnInterval: func(text string) {
			keeper.EditInterval(text)
		},
	})
	guard.OnActivate(func() {
		fyne.Do(reminderWindow.Show)
	})

	var trayManager *tray.Manager
	desktopApp, hasTray := fyneApp.(desktop.App)
	if hasTray {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow: reminderWindow.Show,
			OnDrink: func() {
				keeper.Acknowledge()
			},
			OnQuit: func() {
				keeper.Stop()
				fyneApp.Quit()
			},
		})
		desktopApp.SetSystemTrayIcon(resources.MustIcon(resources.IconDefault))
	} else {
		logger.Infow("system tray unsupported, closing the window quits")
		reminderWindow.SetCloseIntercept(fyneApp.Quit)
	}

	events := keeper.Subscribe(16)
	go func() {
		lastIcon := ""
		for event := range events {
			view := present.Render(event.State, time.Local)
			icon := trayIcon(event.State)
			fyne.Do(func() {
				reminderWindow.Render(view)
				if trayManager == nil {
					return
				}
				trayManager.Update(view)
				if icon != lastIcon {
					desktopApp.SetSystemTrayIcon(resources.MustIcon(icon))
					lastIcon = icon
				}
			})
		}
	}()

	keeper.Start()
	reminderWindow.Show()
	fyneApp.Run()
	keeper.Stop()
	return nil
}

func trayIcon(state reminder.State) string {
	switch state.Phase() {
	case reminder.PhaseReminderDue:
		return resources.IconAlert
	case reminder.PhaseReady:
		return resources.IconReady
	default:
		return resources.IconDefault
	}
}
