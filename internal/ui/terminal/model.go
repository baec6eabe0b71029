// Package terminal renders the reminder widget in a terminal using
// Bubbletea.
package terminal

import (
	"strconv"
	"strings"
	"time"

	"aquaremind/internal/core/model"
	"aquaremind/internal/core/reminder"
	"aquaremind/internal/core/timekeeper"
	"aquaremind/internal/notify"
	"aquaremind/internal/ui/present"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Engine is the subset of the timekeeper the terminal drives.
type Engine interface {
	Snapshot() reminder.State
	Acknowledge() bool
	EditInterval(input string) bool
}

// eventMsg carries a timekeeper event into the update loop.
type eventMsg timekeeper.Event

// closedMsg reports that the event stream ended.
type closedMsg struct{}

// notifyMsg is a reminder notification routed through the program so the
// bell is written by the renderer, not by the scheduler goroutine.
type notifyMsg notify.Message

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2563EB"))
	taglineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#93C5FD"))
	bannerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A16207")).Background(lipgloss.Color("#FEF9C3")).Padding(0, 1)
	countdownStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2563EB"))
	pointsStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#16A34A"))
	quoteStyle     = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#6B7280"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	buttonStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#3B82F6")).Padding(0, 2)
	disabledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#9CA3AF")).Padding(0, 2)
	frameStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#3B82F6")).Padding(1, 2)
)

// Model is the Bubbletea model for the terminal surface.
type Model struct {
	engine   Engine
	events   <-chan timekeeper.Event
	state    reminder.State
	location *time.Location
	progress progress.Model
	interval textinput.Model
	editing  bool
	bell     bool
	width    int
}

// NewModel creates a terminal model observing events from engine.
func NewModel(engine Engine, events <-chan timekeeper.Event, location *time.Location) Model {
	if location == nil {
		location = time.Local
	}
	state := engine.Snapshot()

	input := textinput.New()
	input.Placeholder = "minutes"
	input.CharLimit = len(strconv.Itoa(model.MaxIntervalMinutes))
	input.Width = 8
	input.SetValue(present.Render(state, location).Interval)

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 40

	return Model{
		engine:   engine,
		events:   events,
		state:    state,
		location: location,
		progress: bar,
		interval: input,
	}
}

// Init starts listening for timekeeper events.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func waitForEvent(events <-chan timekeeper.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return closedMsg{}
		}
		return eventMsg(event)
	}
}

// Update handles events and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		m.state = msg.State
		if msg.Type == timekeeper.EventProgress {
			m.bell = false
		}
		return m, waitForEvent(m.events)
	case notifyMsg:
		m.bell = true
		return m, nil
	case closedMsg:
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if width := msg.Width - 10; width > 10 && width < 60 {
			m.progress.Width = width
		}
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			return m.updateEditor(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "d", "enter", " ":
			m.engine.Acknowledge()
			m.state = m.engine.Snapshot()
		case "c":
			m.editing = true
			cmd := m.interval.Focus()
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "enter":
		m.editing = false
		m.interval.Blur()
		return m, nil
	}

	before := m.interval.Value()
	var cmd tea.Cmd
	m.interval, cmd = m.interval.Update(msg)
	if value := m.interval.Value(); value != before {
		if m.engine.EditInterval(value) {
			m.state = m.engine.Snapshot()
		}
	}
	return m, cmd
}

// View renders the widget.
func (m Model) View() string {
	view := present.Render(m.state, m.location)

	var body strings.Builder
	if m.bell {
		body.WriteString("\a")
	}
	body.WriteString(titleStyle.Render("💧 "+present.Heading) + "\n")
	body.WriteString(taglineStyle.Render(present.Tagline) + "\n\n")

	if view.Reminder {
		body.WriteString(bannerStyle.Render(present.ReminderTitle+" "+view.ReminderBody) + "\n\n")
	}

	body.WriteString(countdownStyle.Render(view.Countdown) + "\n")
	body.WriteString(helpStyle.Render(present.CountdownCaption) + "\n")
	body.WriteString(m.progress.ViewAs(view.Progress) + "\n\n")
	body.WriteString(view.LastDrink + "   " + pointsStyle.Render("🏆 "+view.Points) + "\n\n")
	if view.Quote != "" {
		body.WriteString(quoteStyle.Render("“"+view.Quote+"”") + "\n\n")
	}

	if m.editing {
		body.WriteString(present.IntervalLabel + " " + m.interval.View() + "\n\n")
	}

	if view.ButtonActive {
		body.WriteString(buttonStyle.Render(view.ButtonLabel))
	} else {
		body.WriteString(disabledStyle.Render(view.ButtonLabel))
	}
	body.WriteString("\n\n")
	body.WriteString(helpStyle.Render(m.help()))

	return frameStyle.Render(body.String()) + "\n"
}

func (m Model) help() string {
	if m.editing {
		return "type minutes • enter/esc: done"
	}
	return "d: I drank water • c: customize timer • q: quit"
}

// Program runs the terminal surface and delivers reminder notifications to
// it as messages.
type Program struct {
	program *tea.Program
}

var _ notify.Dispatcher = (*Program)(nil)

// NewProgram creates the terminal program for engine.
func NewProgram(engine Engine, events <-chan timekeeper.Event, options ...tea.ProgramOption) *Program {
	if len(options) == 0 {
		options = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &Program{program: tea.NewProgram(NewModel(engine, events, time.Local), options...)}
}

// Send implements notify.Dispatcher. It returns once the message is queued
// or the program has exited.
func (program *Program) Send(message notify.Message) error {
	program.program.Send(notifyMsg(message))
	return nil
}

// Run blocks until the user quits or the event stream closes.
func (program *Program) Run() error {
	_, err := program.program.Run()
	return err
}
