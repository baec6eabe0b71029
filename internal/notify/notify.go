package notify

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// Message is a host notification request.
type Message struct {
	Title string
	Body  string
}

// Dispatcher delivers notifications to the host. Delivery is best effort.
type Dispatcher interface {
	Send(message Message) error
}

// Reminder builds the reminder notification for the given interval.
func Reminder(title string, intervalMinutes int) Message {
	return Message{
		Title: title,
		Body:  fmt.Sprintf("It's been %d minutes since your last drink. Stay hydrated!", intervalMinutes),
	}
}

// FyneDispatcher sends notifications through the Fyne app.
type FyneDispatcher struct {
	app fyne.App
}

// NewFyne returns a dispatcher backed by the Fyne notification API.
func NewFyne(app fyne.App) *FyneDispatcher {
	return &FyneDispatcher{app: app}
}

// Send implements Dispatcher. It is safe to call from any goroutine.
func (dispatcher *FyneDispatcher) Send(message Message) error {
	if dispatcher.app == nil {
		return fmt.Errorf("send notification: no app")
	}
	notification := fyne.NewNotification(message.Title, message.Body)
	fyne.Do(func() {
		dispatcher.app.SendNotification(notification)
	})
	return nil
}
