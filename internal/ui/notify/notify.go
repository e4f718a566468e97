package notify

import (
	"fmt"

	"fyne.io/fyne/v2"

	"tomato/internal/core/timekeeper"
)

// Sender is the part of fyne.App that delivers desktop notifications.
type Sender interface {
	SendNotification(notification *fyne.Notification)
}

// Notifier posts a desktop notification whenever an interval completes.
type Notifier struct {
	sender Sender
}

// New creates a notifier sending through sender.
func New(sender Sender) *Notifier {
	return &Notifier{sender: sender}
}

// Handle sends a notification for interval completion events and ignores the rest.
func (notifier *Notifier) Handle(event timekeeper.Event) {
	if event.Type != timekeeper.EventIntervalComplete {
		return
	}
	notifier.sender.SendNotification(Message(event))
}

// Message builds the notification for a completion event.
func Message(event timekeeper.Event) *fyne.Notification {
	next := fmt.Sprintf("%s of %s starts now.", event.Interval.Label(), timekeeper.FormatRemaining(event.Remaining))
	switch event.Finished {
	case timekeeper.IntervalWork:
		return fyne.NewNotification("Pomodoro complete", "Time for a break. "+next)
	case timekeeper.IntervalLongBreak:
		return fyne.NewNotification("Long break over", next)
	default:
		return fyne.NewNotification("Break over", next)
	}
}
