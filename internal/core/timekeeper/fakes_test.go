package timekeeper

import (
	"context"
	"time"
)

type fakeDisplay struct {
	texts        []string
	progress     []float64
	startEnabled bool
	opacities    []float64
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{startEnabled: true}
}

func (display *fakeDisplay) SetText(text string)              { display.texts = append(display.texts, text) }
func (display *fakeDisplay) SetProgress(value float64)        { display.progress = append(display.progress, value) }
func (display *fakeDisplay) SetStartEnabled(enabled bool)     { display.startEnabled = enabled }
func (display *fakeDisplay) SetWindowOpacity(opacity float64) { display.opacities = append(display.opacities, opacity) }

func (display *fakeDisplay) lastText() string {
	if len(display.texts) == 0 {
		return ""
	}
	return display.texts[len(display.texts)-1]
}

func (display *fakeDisplay) lastProgress() float64 {
	if len(display.progress) == 0 {
		return -1
	}
	return display.progress[len(display.progress)-1]
}

// fakeScheduler queues callbacks and fires them on demand.
type fakeScheduler struct {
	pending []scheduled
}

type scheduled struct {
	delay time.Duration
	fn    func()
}

func (scheduler *fakeScheduler) After(delay time.Duration, fn func()) {
	scheduler.pending = append(scheduler.pending, scheduled{delay: delay, fn: fn})
}

// fire runs the oldest pending callback and reports whether there was one.
func (scheduler *fakeScheduler) fire() bool {
	if len(scheduler.pending) == 0 {
		return false
	}
	next := scheduler.pending[0]
	scheduler.pending = scheduler.pending[1:]
	next.fn()
	return true
}

func (scheduler *fakeScheduler) fireN(count int) {
	for index := 0; index < count; index++ {
		if !scheduler.fire() {
			return
		}
	}
}

type fakeNotifier struct {
	err   error
	calls int
	freq  float64
	dur   time.Duration
}

func (notifier *fakeNotifier) PlayTone(frequency float64, duration time.Duration) error {
	notifier.calls++
	notifier.freq = frequency
	notifier.dur = duration
	return notifier.err
}

// recordingTransition captures controller state when the pulse starts and
// finishes immediately unless hold is set.
type recordingTransition struct {
	controller *Controller
	hold       bool
	runs       int
	running    []bool
	cycles     []int
	states     []State
	done       func()
}

func (transition *recordingTransition) Run(_ context.Context, apply func(float64), done func()) {
	transition.runs++
	transition.running = append(transition.running, transition.controller.Running())
	transition.cycles = append(transition.cycles, transition.controller.Cycles())
	transition.states = append(transition.states, transition.controller.State())
	apply(0)
	apply(1)
	if transition.hold {
		transition.done = done
		return
	}
	done()
}
