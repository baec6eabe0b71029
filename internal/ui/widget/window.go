package widget

import (
	"image/color"

	"aquaremind/internal/ui/present"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	fynewidget "fyne.io/fyne/v2/widget"
)

// Callbacks defines reminder window action handlers.
type Callbacks struct {
	OnDrink    func()
	OnInterval func(string)
}

// Window is the reminder widget. Render must run on the Fyne goroutine.
type Window struct {
	window     fyne.Window
	callbacks  Callbacks
	banner     *fyne.Container
	bannerBody *fynewidget.Label
	countdown  *canvas.Text
	progress   *fynewidget.ProgressBar
	lastDrink  *fynewidget.Label
	points     *fynewidget.Label
	quote      *fynewidget.Label
	interval   *fynewidget.Entry
	editor     *fyne.Container
	toggle     *fynewidget.Button
	drink      *fynewidget.Button
}

var (
	bannerFill    = color.NRGBA{R: 254, G: 249, B: 195, A: 255}
	bannerText    = color.NRGBA{R: 161, G: 98, B: 7, A: 255}
	countdownText = color.NRGBA{R: 37, G: 99, B: 235, A: 255}
)

// New creates the reminder window with the initial view.
func New(app fyne.App, initial present.View, callbacks Callbacks) *Window {
	window := app.NewWindow(present.AppName)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	heading := fynewidget.NewLabelWithStyle(present.Heading, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	tagline := fynewidget.NewLabel(present.Tagline)

	bannerTitle := canvas.NewText(present.ReminderTitle, bannerText)
	bannerTitle.TextStyle = fyne.TextStyle{Bold: true}
	bannerBody := fynewidget.NewLabel("")
	bannerBody.Wrapping = fyne.TextWrapWord
	banner := container.NewStack(
		canvas.NewRectangle(bannerFill),
		container.NewPadded(container.NewBorder(nil, nil,
			fynewidget.NewIcon(theme.WarningIcon()), nil,
			container.NewVBox(bannerTitle, bannerBody),
		)),
	)
	banner.Hide()

	countdown := canvas.NewText("--:--", countdownText)
	countdown.Alignment = fyne.TextAlignCenter
	countdown.TextStyle = fyne.TextStyle{Bold: true}
	countdown.TextSize = 40
	caption := fynewidget.NewLabelWithStyle(present.CountdownCaption, fyne.TextAlignCenter, fyne.TextStyle{})

	progress := fynewidget.NewProgressBar()
	progress.TextFormatter = func() string { return "" }

	lastDrink := fynewidget.NewLabel("")
	points := fynewidget.NewLabelWithStyle("", fyne.TextAlignTrailing, fyne.TextStyle{Bold: true})

	quote := fynewidget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Italic: true})
	quote.Wrapping = fyne.TextWrapWord

	interval := fynewidget.NewEntry()
	interval.SetText(initial.Interval)
	editor := container.NewVBox(fynewidget.NewLabel(present.IntervalLabel), interval)
	editor.Hide()

	toggle := fynewidget.NewButtonWithIcon("Customize Timer", theme.HistoryIcon(), nil)
	toggle.Importance = fynewidget.LowImportance

	drink := fynewidget.NewButton(present.DrinkLabel, nil)
	drink.Importance = fynewidget.HighImportance

	reminderWindow := &Window{
		window:     window,
		callbacks:  callbacks,
		banner:     banner,
		bannerBody: bannerBody,
		countdown:  countdown,
		progress:   progress,
		lastDrink:  lastDrink,
		points:     points,
		quote:      quote,
		interval:   interval,
		editor:     editor,
		toggle:     toggle,
		drink:      drink,
	}

	interval.OnChanged = reminderWindow.handleInterval
	toggle.OnTapped = reminderWindow.toggleEditor
	drink.OnTapped = reminderWindow.handleDrink

	content := container.NewVBox(
		heading,
		tagline,
		banner,
		countdown,
		caption,
		progress,
		container.NewHBox(lastDrink, layout.NewSpacer(), points),
		quote,
		toggle,
		editor,
	)
	window.SetContent(container.NewBorder(nil, container.NewPadded(drink), nil, nil, container.NewPadded(content)))
	window.Resize(fyne.NewSize(420, 480))
	window.SetCloseIntercept(window.Hide)

	reminderWindow.Render(initial)
	return reminderWindow
}

// Show displays the window.
func (reminderWindow *Window) Show() {
	reminderWindow.window.Show()
	reminderWindow.window.RequestFocus()
}

// SetCloseIntercept replaces the default hide-on-close behaviour.
func (reminderWindow *Window) SetCloseIntercept(handler func()) {
	reminderWindow.window.SetCloseIntercept(handler)
}

// Render applies a view to every bound element. The interval entry is left
// alone so typing is never overwritten by a tick.
func (reminderWindow *Window) Render(view present.View) {
	reminderWindow.countdown.Text = view.Countdown
	reminderWindow.countdown.Refresh()
	reminderWindow.progress.SetValue(view.Progress)
	reminderWindow.lastDrink.SetText(view.LastDrink)
	reminderWindow.points.SetText(view.Points)
	reminderWindow.quote.SetText(view.Quote)

	if view.Reminder {
		reminderWindow.bannerBody.SetText(view.ReminderBody)
		reminderWindow.banner.Show()
	} else {
		reminderWindow.banner.Hide()
	}

	reminderWindow.drink.SetText(view.ButtonLabel)
	if view.ButtonActive {
		reminderWindow.drink.Enable()
	} else {
		reminderWindow.drink.Disable()
	}
}

func (reminderWindow *Window) handleDrink() {
	if reminderWindow.callbacks.OnDrink != nil {
		reminderWindow.callbacks.OnDrink()
	}
}

func (reminderWindow *Window) handleInterval(text string) {
	if reminderWindow.callbacks.OnInterval != nil {
		reminderWindow.callbacks.OnInterval(text)
	}
}

func (reminderWindow *Window) toggleEditor() {
	if reminderWindow.editor.Visible() {
		reminderWindow.editor.Hide()
		reminderWindow.toggle.SetText("Customize Timer")
		return
	}
	reminderWindow.editor.Show()
	reminderWindow.toggle.SetText("Hide Timer")
}
