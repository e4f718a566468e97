package timekeeper

import (
	"context"
	"log/slog"
	"time"

	"tomato/internal/core/model"
)

// Display renders the countdown.
type Display interface {
	SetText(text string)
	SetProgress(value float64)
	SetStartEnabled(enabled bool)
	SetWindowOpacity(opacity float64)
}

// Notifier emits the audible cue at interval completion. Errors are best-effort.
type Notifier interface {
	PlayTone(frequency float64, duration time.Duration) error
}

// Scheduler invokes fn once after delay on the UI thread.
type Scheduler interface {
	After(delay time.Duration, fn func())
}

// Transition plays the completion pulse. It applies opacities in order and calls
// done once finished; done is not called if ctx is cancelled first.
type Transition interface {
	Run(ctx context.Context, apply func(opacity float64), done func())
}

// Dependencies are the collaborators a Controller drives.
type Dependencies struct {
	Display    Display
	Notifier   Notifier
	Scheduler  Scheduler
	Transition Transition
	Logger     *slog.Logger
}

// Controller owns the countdown state and decides interval transitions.
// All methods must be called from the UI thread.
type Controller struct {
	config model.TimerConfig

	display    Display
	notifier   Notifier
	scheduler  Scheduler
	transition Transition
	logger     *slog.Logger

	work       int
	shortBreak int
	longBreak  int

	state     State
	interval  Interval
	current   int
	remaining int
	running   bool
	cycles    int

	// generation invalidates tick callbacks armed before the last Start or Reset.
	generation       uint64
	cancelTransition context.CancelFunc

	events []chan Event
}

// New creates a Controller in the idle state holding a full work interval.
// deps.Scheduler is required; the other dependencies fall back to no-ops.
func New(config model.TimerConfig, deps Dependencies) *Controller {
	if deps.Scheduler == nil {
		panic("timekeeper: nil scheduler")
	}
	if config.TickInterval <= 0 {
		config.TickInterval = time.Second
	}
	if config.LongBreakEvery <= 0 {
		config.LongBreakEvery = 4
	}
	if deps.Display == nil {
		deps.Display = nopDisplay{}
	}
	if deps.Notifier == nil {
		deps.Notifier = NopNotifier{}
	}
	if deps.Transition == nil {
		deps.Transition = instantTransition{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	controller := &Controller{
		config:     config,
		display:    deps.Display,
		notifier:   deps.Notifier,
		scheduler:  deps.Scheduler,
		transition: deps.Transition,
		logger:     deps.Logger,
		work:       seconds(config.Work),
		shortBreak: seconds(config.ShortBreak),
		longBreak:  seconds(config.LongBreak),
		state:      StateIdle,
	}
	controller.restoreWork()
	return controller
}

// Subscribe registers a new observer channel.
func (controller *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	controller.events = append(controller.events, ch)
	return ch
}

// Close closes observer channels. The controller must not be used afterwards.
func (controller *Controller) Close() {
	events := controller.events
	controller.events = nil
	for _, ch := range events {
		close(ch)
	}
}

// Start begins the tick loop. It is a no-op while already running.
// Starting during a completion pulse cuts the pulse short.
func (controller *Controller) Start() {
	if controller.running {
		return
	}
	if controller.cancelTransition != nil {
		controller.cancelTransition()
		controller.cancelTransition = nil
		controller.display.SetWindowOpacity(1)
	}
	controller.running = true
	controller.state = StateRunning
	controller.display.SetStartEnabled(false)
	controller.generation++
	controller.emitState()

	controller.tick(controller.generation)
}

// Reset stops the countdown and restores a full work interval.
// The completed cycle count is kept.
func (controller *Controller) Reset() {
	controller.running = false
	controller.generation++
	if controller.cancelTransition != nil {
		controller.cancelTransition()
		controller.cancelTransition = nil
		controller.display.SetWindowOpacity(1)
	}
	controller.restoreWork()
	controller.state = StateIdle

	controller.display.SetText(FormatRemaining(controller.work))
	controller.display.SetProgress(0)
	controller.display.SetStartEnabled(true)
	controller.emitState()
}

// State returns the current controller mode.
func (controller *Controller) State() State { return controller.state }

// Running reports whether ticks are being scheduled.
func (controller *Controller) Running() bool { return controller.running }

// Remaining returns the seconds left in the current interval.
func (controller *Controller) Remaining() int { return controller.remaining }

// Current returns the length in seconds of the current interval.
func (controller *Controller) Current() int { return controller.current }

// Interval returns the kind of the current interval.
func (controller *Controller) Interval() Interval { return controller.interval }

// Cycles returns the number of completed intervals of any kind.
func (controller *Controller) Cycles() int { return controller.cycles }

// Progress returns the elapsed share of the current interval in percent.
func (controller *Controller) Progress() float64 {
	return ProgressFraction(controller.current, controller.remaining)
}

func (controller *Controller) tick(generation uint64) {
	if generation != controller.generation || !controller.running {
		return
	}

	if controller.remaining > 0 {
		controller.display.SetText(FormatRemaining(controller.remaining))
		progress := controller.Progress()
		controller.display.SetProgress(progress)
		controller.emit(Event{
			Type:      EventTick,
			State:     controller.state,
			Interval:  controller.interval,
			Remaining: controller.remaining,
			Progress:  progress,
			Cycles:    controller.cycles,
		})
		controller.remaining--
		controller.scheduler.After(controller.config.TickInterval, func() {
			controller.tick(generation)
		})
		return
	}

	controller.complete()
}

func (controller *Controller) complete() {
	controller.running = false
	controller.state = StateTransitioning
	controller.cycles++
	controller.display.SetProgress(100)
	finished := controller.interval

	if err := controller.notifier.PlayTone(controller.config.ToneFrequency, controller.config.ToneDuration); err != nil {
		controller.logger.Warn("completion tone failed", "error", err)
		controller.emit(Event{
			Type:     EventNotifyError,
			State:    controller.state,
			Finished: finished,
			Cycles:   controller.cycles,
			Message:  err.Error(),
		})
	}

	// Every completion counts, breaks included.
	if controller.cycles%controller.config.LongBreakEvery == 0 {
		controller.interval = IntervalLongBreak
		controller.current = controller.longBreak
	} else {
		controller.interval = IntervalShortBreak
		controller.current = controller.shortBreak
	}
	controller.remaining = controller.current
	controller.display.SetStartEnabled(true)

	controller.logger.Info("interval complete",
		"finished", finished,
		"cycles", controller.cycles,
		"next", controller.interval,
		"next_seconds", controller.current,
	)
	controller.emit(Event{
		Type:      EventIntervalComplete,
		State:     controller.state,
		Interval:  controller.interval,
		Finished:  finished,
		Remaining: controller.remaining,
		Progress:  100,
		Cycles:    controller.cycles,
	})

	ctx, cancel := context.WithCancel(context.Background())
	controller.cancelTransition = cancel
	controller.transition.Run(ctx, controller.display.SetWindowOpacity, func() {
		if ctx.Err() != nil || controller.state != StateTransitioning {
			return
		}
		controller.cancelTransition = nil
		cancel()
		controller.Start()
	})
}

func (controller *Controller) restoreWork() {
	controller.interval = IntervalWork
	controller.current = controller.work
	controller.remaining = controller.work
}

func (controller *Controller) emitState() {
	controller.emit(Event{
		Type:      EventStateChange,
		State:     controller.state,
		Interval:  controller.interval,
		Remaining: controller.remaining,
		Progress:  controller.Progress(),
		Cycles:    controller.cycles,
	})
}

func (controller *Controller) emit(event Event) {
	for _, ch := range controller.events {
		select {
		case ch <- event:
		default:
		}
	}
}

func seconds(value time.Duration) int {
	return int(value / time.Second)
}

// NopNotifier discards completion tones.
type NopNotifier struct{}

// PlayTone implements Notifier.
func (NopNotifier) PlayTone(float64, time.Duration) error { return nil }

type nopDisplay struct{}

func (nopDisplay) SetText(string)           {}
func (nopDisplay) SetProgress(float64)      {}
func (nopDisplay) SetStartEnabled(bool)     {}
func (nopDisplay) SetWindowOpacity(float64) {}

type instantTransition struct{}

func (instantTransition) Run(_ context.Context, _ func(float64), done func()) {
	done()
}
