package timekeeper

import (
	"math/rand"
	"sync"
	"time"

	"aquaremind/internal/core/model"
	"aquaremind/internal/core/quotes"
	"aquaremind/internal/core/reminder"
	"aquaremind/internal/notify"

	"go.uber.org/zap"
)

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval time.Duration
	Now          func() time.Time
	Rand         *rand.Rand
	Quotes       []string
}

// TimeKeeper owns the reminder state and drives it from a single ticker.
// Quote rotation is gated on the same tick so one handle covers both.
type TimeKeeper struct {
	mu         sync.Mutex
	config     model.ReminderConfig
	options    Config
	state      reminder.State
	rotator    *quotes.Rotator
	dispatcher notify.Dispatcher
	logger     *zap.SugaredLogger
	events     []chan Event
	stopCh     chan struct{}
	running    bool
	stopped    bool
}

// New creates a TimeKeeper with the provided configuration.
func New(config model.ReminderConfig, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Now == nil {
		options.Now = time.Now
	}
	if config.Award <= 0 {
		config.Award = model.DrinkAward
	}
	if config.QuoteEvery <= 0 {
		config.QuoteEvery = model.QuoteRotationSeconds
	}
	if config.Notification.Title == "" {
		config.Notification.Title = model.DefaultReminderConfig().Notification.Title
	}

	return &TimeKeeper{
		config:  config,
		options: options,
		state:   reminder.New(config.IntervalMinutes),
		rotator: quotes.NewRotator(options.Quotes, config.QuoteEvery, options.Rand),
		logger:  zap.NewNop().Sugar(),
		stopCh:  make(chan struct{}),
	}
}

// SetDispatcher injects the notification dispatcher.
func (keeper *TimeKeeper) SetDispatcher(dispatcher notify.Dispatcher) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.dispatcher = dispatcher
}

// SetLogger injects a logger.
func (keeper *TimeKeeper) SetLogger(logger *zap.SugaredLogger) {
	if logger == nil {
		return
	}
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.logger = logger
}

// Subscribe registers a new observer channel.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	if keeper.stopped {
		keeper.mu.Unlock()
		close(ch)
		return ch
	}
	keeper.events = append(keeper.events, ch)
	keeper.mu.Unlock()
	return ch
}

// Snapshot returns a copy of the current state.
func (keeper *TimeKeeper) Snapshot() reminder.State {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.state
}

// Start picks the first quote and launches the ticking loop. A stopped
// TimeKeeper cannot be restarted.
func (keeper *TimeKeeper) Start() {
	keeper.mu.Lock()
	if keeper.running || keeper.stopped {
		keeper.mu.Unlock()
		return
	}
	keeper.running = true
	keeper.state.Quote = keeper.rotator.Start()
	keeper.logger.Infow("reminder started",
		"interval_minutes", keeper.state.IntervalMinutes,
		"tick", keeper.options.TickInterval,
	)
	keeper.emitLocked(EventStarted, keeper.options.Now())
	keeper.mu.Unlock()

	go keeper.run()
}

// Stop terminates the ticking loop and closes observers.
func (keeper *TimeKeeper) Stop() {
	keeper.mu.Lock()
	if keeper.stopped {
		keeper.mu.Unlock()
		return
	}
	keeper.stopped = true
	keeper.running = false
	close(keeper.stopCh)
	events := keeper.events
	keeper.events = nil
	keeper.logger.Infow("reminder stopped", "points", keeper.state.Points)
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Acknowledge records that the user drank water. It returns false when the
// drink control is disabled for the current cycle.
func (keeper *TimeKeeper) Acknowledge() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	now := keeper.options.Now()
	next, ok := reminder.Acknowledge(keeper.state, now, keeper.config.Award)
	if !ok {
		keeper.logger.Debugw("drink ignored until next reminder", "countdown", keeper.state.CountdownSeconds)
		return false
	}
	keeper.state = next
	keeper.logger.Infow("drink recorded", "points", next.Points)
	keeper.emitLocked(EventDrink, now)
	return true
}

// EditInterval applies raw interval field input. Invalid input is ignored.
func (keeper *TimeKeeper) EditInterval(input string) bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	next, ok := reminder.EditInterval(keeper.state, input)
	if !ok {
		keeper.logger.Debugw("interval input ignored", "input", input)
		return false
	}
	keeper.applyIntervalLocked(next)
	return true
}

// SetInterval replaces the interval in minutes.
func (keeper *TimeKeeper) SetInterval(minutes int) bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	next, ok := reminder.SetInterval(keeper.state, minutes)
	if !ok {
		return false
	}
	keeper.applyIntervalLocked(next)
	return true
}

func (keeper *TimeKeeper) applyIntervalLocked(next reminder.State) {
	keeper.state = next
	keeper.config.IntervalMinutes = next.IntervalMinutes
	keeper.logger.Infow("interval changed", "interval_minutes", next.IntervalMinutes)
	keeper.emitLocked(EventInterval, keeper.options.Now())
}

func (keeper *TimeKeeper) run() {
	ticker := time.NewTicker(keeper.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-keeper.stopCh:
			return
		case <-ticker.C:
			keeper.tick(keeper.options.Now())
		}
	}
}

func (keeper *TimeKeeper) tick(now time.Time) {
	keeper.mu.Lock()
	if !keeper.running {
		keeper.mu.Unlock()
		return
	}

	next, outcome := reminder.Tick(keeper.state)
	keeper.state = next
	if quote, ok := keeper.rotator.Advance(); ok {
		keeper.state.Quote = quote
		keeper.emitLocked(EventQuote, now)
	}

	var message *notify.Message
	if outcome.ReminderDue {
		keeper.emitLocked(EventReminder, now)
		if keeper.config.Notification.Enabled && keeper.dispatcher != nil {
			reminderMessage := notify.Reminder(keeper.config.Notification.Title, keeper.state.IntervalMinutes)
			message = &reminderMessage
		}
	} else {
		keeper.emitLocked(EventProgress, now)
	}
	dispatcher := keeper.dispatcher
	logger := keeper.logger
	keeper.mu.Unlock()

	if message != nil {
		if err := dispatcher.Send(*message); err != nil {
			logger.Warnw("reminder notification failed", "error", err)
		}
	}
}

func (keeper *TimeKeeper) emitLocked(eventType EventType, at time.Time) {
	event := Event{
		Type:  eventType,
		State: keeper.state,
		At:    at,
	}
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
