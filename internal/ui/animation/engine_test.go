package animation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type queueScheduler struct {
	pending []func()
	delays  []time.Duration
}

func (scheduler *queueScheduler) After(delay time.Duration, fn func()) {
	scheduler.delays = append(scheduler.delays, delay)
	scheduler.pending = append(scheduler.pending, fn)
}

func (scheduler *queueScheduler) drain() {
	for len(scheduler.pending) > 0 {
		next := scheduler.pending[0]
		scheduler.pending = scheduler.pending[1:]
		next()
	}
}

func TestSteps(t *testing.T) {
	steps := Steps(10)
	require.Len(t, steps, 22)
	assert.Equal(t, 0.0, steps[0])
	assert.Equal(t, 1.0, steps[10])
	assert.Equal(t, 1.0, steps[11])
	assert.Equal(t, 0.0, steps[21])

	assert.Equal(t, []float64{0, 0.3, 0.6, 0.9, 1, 0.7, 0.4, 0.1}, Steps(30))
	assert.Equal(t, Steps(10), Steps(0))
}

func TestBlockingPulse(t *testing.T) {
	pulse := New(Config{StepPercent: 25, StepDelay: time.Millisecond, Blocking: true}, nil)
	var applied []float64
	done := false

	started := time.Now()
	pulse.Run(context.Background(), func(opacity float64) {
		applied = append(applied, opacity)
	}, func() { done = true })

	assert.True(t, done)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1, 1, 0.75, 0.5, 0.25, 0, 1}, applied)
	assert.GreaterOrEqual(t, time.Since(started), 10*time.Millisecond)
}

func TestBlockingPulseCancelled(t *testing.T) {
	pulse := New(Config{StepPercent: 50, Blocking: true}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	done := false

	pulse.Run(ctx, func(float64) {
		t.Fatal("no step may be applied after cancellation")
	}, func() { done = true })

	assert.False(t, done)
}

func TestScheduledPulse(t *testing.T) {
	scheduler := &queueScheduler{}
	pulse := New(Config{StepPercent: 50, StepDelay: 50 * time.Millisecond}, scheduler)
	var applied []float64
	done := false

	pulse.Run(context.Background(), func(opacity float64) {
		applied = append(applied, opacity)
	}, func() { done = true })

	assert.Equal(t, []float64{0}, applied)
	assert.False(t, done)

	scheduler.drain()

	assert.True(t, done)
	assert.Equal(t, []float64{0, 0.5, 1, 1, 0.5, 0, 1}, applied)
	for _, delay := range scheduler.delays {
		assert.Equal(t, 50*time.Millisecond, delay)
	}
}

func TestScheduledPulseCancelled(t *testing.T) {
	scheduler := &queueScheduler{}
	pulse := New(Config{StepPercent: 50, StepDelay: 50 * time.Millisecond}, scheduler)
	ctx, cancel := context.WithCancel(context.Background())
	applied := 0
	done := false

	pulse.Run(ctx, func(float64) { applied++ }, func() { done = true })
	cancel()
	scheduler.drain()

	assert.Equal(t, 1, applied)
	assert.False(t, done)
}

func TestNewFallsBackToBlockingWithoutScheduler(t *testing.T) {
	pulse := New(Config{StepPercent: 200}, nil)
	assert.True(t, pulse.config.Blocking)
	assert.Equal(t, DefaultConfig().StepPercent, pulse.config.StepPercent)
}
