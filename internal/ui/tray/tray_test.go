package tray

import (
	"testing"
	"time"

	"aquaremind/internal/core/reminder"
	"aquaremind/internal/ui/present"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDesktop struct {
	desktop.App
	menus []*fyne.Menu
	icons []fyne.Resource
}

func (app *fakeDesktop) SetSystemTrayMenu(menu *fyne.Menu) {
	app.menus = append(app.menus, menu)
}

func (app *fakeDesktop) SetSystemTrayIcon(icon fyne.Resource) {
	app.icons = append(app.icons, icon)
}

func TestNewInstallsMenu(t *testing.T) {
	app := &fakeDesktop{}
	manager := New(app, Callbacks{})

	require.Len(t, app.menus, 1)
	assert.Equal(t, "Status: starting...", manager.StatusLabel())
}

func TestUpdateReflectsView(t *testing.T) {
	app := &fakeDesktop{}
	manager := New(app, Callbacks{})
	state, _ := reminder.Acknowledge(reminder.New(60), time.Now(), 100)
	state.Quote = "Believe you can and you're halfway there. - Theodore Roosevelt"

	manager.Update(present.Render(state, time.UTC))

	assert.Equal(t, "Status: next reminder in 60:00 (100 pts)", manager.StatusLabel())
	assert.True(t, manager.drinkItem.Disabled)
	assert.Equal(t, present.WaitLabel, manager.drinkItem.Label)
	assert.Len(t, app.menus[len(app.menus)-1].Items, 6)
}

func TestUpdateFlagsReminder(t *testing.T) {
	app := &fakeDesktop{}
	manager := New(app, Callbacks{})
	state := reminder.New(60)
	state.ReminderActive = true

	manager.Update(present.Render(state, time.UTC))

	assert.Equal(t, "Status: time to drink! next reminder in 60:00 (0 pts)", manager.StatusLabel())
	assert.False(t, manager.drinkItem.Disabled)
}

func TestMenuActions(t *testing.T) {
	var shown, drank, quit int
	manager := New(&fakeDesktop{}, Callbacks{
		OnShow:  func() { shown++ },
		OnDrink: func() { drank++ },
		OnQuit:  func() { quit++ },
	})

	manager.showItem.Action()
	manager.drinkItem.Action()
	manager.quitItem.Action()

	assert.Equal(t, 1, shown)
	assert.Equal(t, 1, drank)
	assert.Equal(t, 1, quit)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
