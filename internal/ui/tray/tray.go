package tray

import (
	"fmt"

	"aquaremind/internal/ui/present"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow  func()
	OnDrink func()
	OnQuit  func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	statusItem *fyne.MenuItem
	quoteItem  *fyne.MenuItem
	showItem   *fyne.MenuItem
	drinkItem  *fyne.MenuItem
	quitItem   *fyne.MenuItem
	callbacks  Callbacks
	status     string
	points     string
	reminder   bool
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		status:    "starting...",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.quoteItem = fyne.NewMenuItem("", nil)
	manager.quoteItem.Disabled = true

	manager.showItem = fyne.NewMenuItem("Show "+present.AppName, func() {
		if manager.callbacks.OnShow != nil {
			manager.callbacks.OnShow()
		}
	})
	manager.drinkItem = fyne.NewMenuItem(present.DrinkLabel, func() {
		if manager.callbacks.OnDrink != nil {
			manager.callbacks.OnDrink()
		}
	})
	manager.quitItem = fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	manager.quitItem.IsQuit = true

	manager.refreshLabels()
	manager.refreshMenu()
	return manager
}

// Update mirrors the reminder view into the menu.
func (manager *Manager) Update(view present.View) {
	manager.status = view.TrayStatus
	manager.points = view.Points
	manager.reminder = view.Reminder
	manager.drinkItem.Label = view.ButtonLabel
	manager.drinkItem.Disabled = !view.ButtonActive
	manager.quoteItem.Label = truncate(view.Quote, 60)
	manager.refreshLabels()
	manager.refreshMenu()
}

// StatusLabel returns the current status line.
func (manager *Manager) StatusLabel() string {
	return manager.statusItem.Label
}

func (manager *Manager) refreshLabels() {
	status := manager.status
	if manager.reminder {
		status = "time to drink! " + status
	}
	if manager.points != "" {
		status = fmt.Sprintf("%s (%s)", status, manager.points)
	}
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	items := []*fyne.MenuItem{manager.statusItem}
	if manager.quoteItem.Label != "" {
		items = append(items, manager.quoteItem)
	}
	items = append(items, fyne.NewMenuItemSeparator(), manager.showItem, manager.drinkItem, manager.quitItem)
	manager.app.SetSystemTrayMenu(fyne.NewMenu(present.AppName, items...))
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-1]) + "…"
}
