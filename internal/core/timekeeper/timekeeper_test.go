package timekeeper

import (
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"aquaremind/internal/core/model"
	"aquaremind/internal/core/quotes"
	"aquaremind/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingDispatcher struct {
	mu       sync.Mutex
	messages []notify.Message
	err      error
}

func (dispatcher *recordingDispatcher) Send(message notify.Message) error {
	dispatcher.mu.Lock()
	defer dispatcher.mu.Unlock()
	dispatcher.messages = append(dispatcher.messages, message)
	return dispatcher.err
}

func (dispatcher *recordingDispatcher) sent() []notify.Message {
	dispatcher.mu.Lock()
	defer dispatcher.mu.Unlock()
	return append([]notify.Message(nil), dispatcher.messages...)
}

type fakeClock struct {
	now time.Time
}

func (clock *fakeClock) Now() time.Time {
	return clock.now
}

// newManualKeeper returns a started keeper whose ticker never fires during
// the test; ticks are driven by calling tick directly.
func newManualKeeper(t *testing.T, config model.ReminderConfig) (*TimeKeeper, *fakeClock, *recordingDispatcher) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)}
	dispatcher := &recordingDispatcher{}
	keeper := New(config, Config{
		TickInterval: time.Hour,
		Now:          clock.Now,
		Rand:         rand.New(rand.NewSource(3)),
	})
	keeper.SetDispatcher(dispatcher)
	keeper.SetLogger(zap.NewNop().Sugar())
	keeper.Start()
	t.Cleanup(keeper.Stop)
	return keeper, clock, dispatcher
}

func advance(keeper *TimeKeeper, clock *fakeClock, seconds int) {
	for i := 0; i < seconds; i++ {
		clock.now = clock.now.Add(time.Second)
		keeper.tick(clock.now)
	}
}

func TestStartPicksQuote(t *testing.T) {
	keeper, _, _ := newManualKeeper(t, model.DefaultReminderConfig())

	state := keeper.Snapshot()
	assert.Contains(t, quotes.Default, state.Quote)
	assert.Equal(t, 3600, state.CountdownSeconds)
	assert.Zero(t, state.Points)
}

func TestReminderNotification(t *testing.T) {
	keeper, clock, dispatcher := newManualKeeper(t, model.DefaultReminderConfig())

	advance(keeper, clock, 3599)
	assert.Empty(t, dispatcher.sent())
	assert.False(t, keeper.Snapshot().ReminderActive)

	advance(keeper, clock, 1)
	state := keeper.Snapshot()
	assert.True(t, state.ReminderActive)
	assert.Equal(t, 3600, state.CountdownSeconds)

	sent := dispatcher.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "Time to drink water!", sent[0].Title)
	assert.Equal(t, "It's been 60 minutes since your last drink. Stay hydrated!", sent[0].Body)
}

func TestNotificationEveryCycle(t *testing.T) {
	config := model.DefaultReminderConfig()
	config.IntervalMinutes = 1
	keeper, clock, dispatcher := newManualKeeper(t, config)

	advance(keeper, clock, 180)

	assert.Len(t, dispatcher.sent(), 3)
}

func TestNotificationsDisabled(t *testing.T) {
	config := model.DefaultReminderConfig()
	config.IntervalMinutes = 1
	config.Notification.Enabled = false
	keeper, clock, dispatcher := newManualKeeper(t, config)

	advance(keeper, clock, 60)

	assert.True(t, keeper.Snapshot().ReminderActive)
	assert.Empty(t, dispatcher.sent())
}

func TestNotificationFailureIsIgnored(t *testing.T) {
	config := model.DefaultReminderConfig()
	config.IntervalMinutes = 1
	keeper, clock, dispatcher := newManualKeeper(t, config)
	dispatcher.err = errors.New("permission denied")

	advance(keeper, clock, 120)

	assert.Len(t, dispatcher.sent(), 2)
	assert.True(t, keeper.Snapshot().ReminderActive)
}

func TestAcknowledge(t *testing.T) {
	keeper, clock, _ := newManualKeeper(t, model.DefaultReminderConfig())
	advance(keeper, clock, 2600)
	require.Equal(t, 1000, keeper.Snapshot().CountdownSeconds)

	require.True(t, keeper.Acknowledge())
	state := keeper.Snapshot()
	assert.Equal(t, 100, state.Points)
	assert.Equal(t, 3600, state.CountdownSeconds)
	assert.Equal(t, clock.now, state.LastDrink)
	assert.False(t, state.ReminderActive)

	assert.False(t, keeper.Acknowledge())
	assert.Equal(t, 100, keeper.Snapshot().Points)
}

func TestEditInterval(t *testing.T) {
	keeper, clock, dispatcher := newManualKeeper(t, model.DefaultReminderConfig())
	advance(keeper, clock, 3590)

	assert.False(t, keeper.EditInterval("abc"))
	assert.Equal(t, 10, keeper.Snapshot().CountdownSeconds)

	require.True(t, keeper.EditInterval("30"))
	state := keeper.Snapshot()
	assert.Equal(t, 30, state.IntervalMinutes)
	assert.Equal(t, 1800, state.CountdownSeconds)

	advance(keeper, clock, 1800)
	sent := dispatcher.sent()
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].Body, "30 minutes")
}

func TestSetIntervalRejectsOutOfRange(t *testing.T) {
	keeper, _, _ := newManualKeeper(t, model.DefaultReminderConfig())

	assert.False(t, keeper.SetInterval(0))
	assert.True(t, keeper.SetInterval(5))
	assert.Equal(t, 300, keeper.Snapshot().CountdownSeconds)
}

func TestQuoteRotatesOnSharedTick(t *testing.T) {
	keeper, clock, _ := newManualKeeper(t, model.DefaultReminderConfig())
	events := keeper.Subscribe(2000)

	advance(keeper, clock, 900)

	var quoteEvents []time.Time
	for len(events) > 0 {
		event := <-events
		if event.Type == EventQuote {
			quoteEvents = append(quoteEvents, event.At)
			assert.Contains(t, quotes.Default, event.State.Quote)
		}
	}
	require.Len(t, quoteEvents, 3)
	start := time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, start.Add(300*time.Second), quoteEvents[0])
	assert.Equal(t, start.Add(600*time.Second), quoteEvents[1])
	assert.Equal(t, start.Add(900*time.Second), quoteEvents[2])
}

func TestSubscribeReceivesUserEvents(t *testing.T) {
	keeper, _, _ := newManualKeeper(t, model.DefaultReminderConfig())
	events := keeper.Subscribe(4)

	keeper.Acknowledge()
	keeper.EditInterval("15")

	first := <-events
	assert.Equal(t, EventDrink, first.Type)
	assert.Equal(t, 100, first.State.Points)
	second := <-events
	assert.Equal(t, EventInterval, second.Type)
	assert.Equal(t, 900, second.State.CountdownSeconds)
}

func TestStopClosesObserversAndIsIdempotent(t *testing.T) {
	keeper := New(model.DefaultReminderConfig(), Config{TickInterval: time.Hour})
	events := keeper.Subscribe(1)
	keeper.Start()

	keeper.Stop()
	keeper.Stop()

	for range events {
	}
	_, open := <-keeper.Subscribe(1)
	assert.False(t, open)

	before := keeper.Snapshot()
	keeper.tick(time.Now())
	assert.Equal(t, before, keeper.Snapshot())
}

func TestRunLoopTicks(t *testing.T) {
	config := model.DefaultReminderConfig()
	config.IntervalMinutes = 1
	keeper := New(config, Config{TickInterval: 5 * time.Millisecond})
	events := keeper.Subscribe(64)
	keeper.Start()
	defer keeper.Stop()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case event := <-events:
			if event.Type == EventProgress {
				assert.Less(t, event.State.CountdownSeconds, 60)
				return
			}
		case <-deadline:
			t.Fatal("no progress event")
		}
	}
}
