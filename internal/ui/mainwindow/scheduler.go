package mainwindow

import (
	"time"

	"fyne.io/fyne/v2"
)

// Scheduler runs callbacks on the Fyne main goroutine after a delay.
type Scheduler struct{}

// NewScheduler returns a Scheduler bound to the running Fyne app.
func NewScheduler() Scheduler {
	return Scheduler{}
}

// After invokes fn once, delay from now, on the UI thread.
func (Scheduler) After(delay time.Duration, fn func()) {
	time.AfterFunc(delay, func() {
		fyne.Do(fn)
	})
}
