package animation

import (
	"context"
	"time"
)

// Scheduler invokes fn once after delay on the UI thread.
type Scheduler interface {
	After(delay time.Duration, fn func())
}

// Config contains pulse timing values.
type Config struct {
	// StepPercent is the opacity change per step, in percent.
	StepPercent int
	StepDelay   time.Duration
	// Blocking runs the pulse as a sleep loop on the calling goroutine.
	// Otherwise each step is re-armed through the Scheduler.
	Blocking bool
}

// Pulse ramps window opacity from transparent to opaque and back.
type Pulse struct {
	config    Config
	scheduler Scheduler
}

// New creates a pulse. scheduler may be nil when config.Blocking is set.
func New(config Config, scheduler Scheduler) *Pulse {
	if config.StepPercent <= 0 || config.StepPercent > 100 {
		config.StepPercent = DefaultConfig().StepPercent
	}
	if config.StepDelay < 0 {
		config.StepDelay = 0
	}
	if scheduler == nil {
		config.Blocking = true
	}
	return &Pulse{config: config, scheduler: scheduler}
}

// Steps returns the opacity sequence of one pulse: 0 up to 1, then back down to 0.
func Steps(stepPercent int) []float64 {
	if stepPercent <= 0 {
		stepPercent = DefaultConfig().StepPercent
	}
	steps := make([]float64, 0, 2*(100/stepPercent+1))
	for value := 0; value <= 100; value += stepPercent {
		steps = append(steps, float64(value)/100)
	}
	for value := 100; value >= 0; value -= stepPercent {
		steps = append(steps, float64(value)/100)
	}
	return steps
}

// Run plays the pulse, then restores full opacity and calls done.
// Cancelling ctx stops the pulse without calling done.
func (pulse *Pulse) Run(ctx context.Context, apply func(opacity float64), done func()) {
	steps := Steps(pulse.config.StepPercent)
	if pulse.config.Blocking {
		pulse.runBlocking(ctx, steps, apply, done)
		return
	}
	pulse.runScheduled(ctx, steps, 0, apply, done)
}

func (pulse *Pulse) runBlocking(ctx context.Context, steps []float64, apply func(float64), done func()) {
	for _, opacity := range steps {
		if ctx.Err() != nil {
			return
		}
		apply(opacity)
		if !sleepWithContext(ctx, pulse.config.StepDelay) {
			return
		}
	}
	apply(1)
	done()
}

func (pulse *Pulse) runScheduled(ctx context.Context, steps []float64, index int, apply func(float64), done func()) {
	if ctx.Err() != nil {
		return
	}
	if index >= len(steps) {
		apply(1)
		done()
		return
	}
	apply(steps[index])
	pulse.scheduler.After(pulse.config.StepDelay, func() {
		pulse.runScheduled(ctx, steps, index+1, apply, done)
	})
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
