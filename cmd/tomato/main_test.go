package main

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tomato/internal/core/model"
	"tomato/internal/core/timekeeper"
	"tomato/internal/ui/mainwindow"
	"tomato/internal/ui/notify"
)

type fakeSender struct {
	sent []*fyne.Notification
}

func (sender *fakeSender) SendNotification(notification *fyne.Notification) {
	sender.sent = append(sender.sent, notification)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPulseConfigFallsBackWithoutNativeOpacity(t *testing.T) {
	settings := model.PulseConfig{StepPercent: 10, StepDelay: 50 * time.Millisecond, Blocking: true}

	assert.False(t, pulseConfig(settings, false, discardLogger()).Blocking)

	config := pulseConfig(settings, true, discardLogger())
	assert.True(t, config.Blocking)
	assert.Equal(t, 10, config.StepPercent)
	assert.Equal(t, 50*time.Millisecond, config.StepDelay)

	settings.Blocking = false
	assert.False(t, pulseConfig(settings, true, discardLogger()).Blocking)
}

func TestEventBridgeUpdatesTitleAndNotifies(t *testing.T) {
	app := test.NewApp()
	t.Cleanup(app.Quit)
	view := mainwindow.New(app, mainwindow.Config{Title: "Pomodoro Timer", Width: 400, Height: 200})
	sender := &fakeSender{}
	bridge := &eventBridge{view: view, notifier: notify.New(sender)}

	bridge.handle(timekeeper.Event{
		Type:      timekeeper.EventTick,
		State:     timekeeper.StateRunning,
		Interval:  timekeeper.IntervalWork,
		Remaining: 1499,
	})
	assert.Equal(t, "24:59 - Work | Pomodoro Timer", view.FyneWindow().Title())
	assert.Empty(t, sender.sent)

	bridge.handle(timekeeper.Event{
		Type:      timekeeper.EventIntervalComplete,
		State:     timekeeper.StateTransitioning,
		Interval:  timekeeper.IntervalShortBreak,
		Finished:  timekeeper.IntervalWork,
		Remaining: 300,
		Cycles:    1,
	})
	assert.Equal(t, "05:00 - Short break | Pomodoro Timer", view.FyneWindow().Title())
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Pomodoro complete", sender.sent[0].Title)

	bridge.handle(timekeeper.Event{
		Type:      timekeeper.EventStateChange,
		State:     timekeeper.StateIdle,
		Interval:  timekeeper.IntervalWork,
		Remaining: 1500,
		Cycles:    1,
	})
	assert.Equal(t, "Pomodoro Timer", view.FyneWindow().Title())
	assert.Len(t, sender.sent, 1)
}
