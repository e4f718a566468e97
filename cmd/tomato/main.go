package main

import (
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"tomato/internal/audio"
	"tomato/internal/config"
	"tomato/internal/core/model"
	"tomato/internal/core/timekeeper"
	"tomato/internal/platform"
	"tomato/internal/ui/animation"
	"tomato/internal/ui/mainwindow"
	"tomato/internal/ui/notify"
	"tomato/internal/ui/tray"
	"tomato/resources"

	"github.com/faiface/beep"
)

const appName = "Tomato"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	lock, err := platform.AcquireInstanceLock(appName)
	if err != nil {
		logger.Error("single instance", "error", err)
		return
	}
	defer func() {
		_ = lock.Release()
	}()

	settings := config.MustLoad(resources.Defaults())

	fyneApp := app.NewWithID("com.tomato.timer")
	fyneApp.SetIcon(resources.MustIcon())

	view := mainwindow.New(fyneApp, mainwindow.Config{
		Title:      settings.Window.Title,
		Fullscreen: settings.Window.Fullscreen,
		Width:      settings.Window.Width,
		Height:     settings.Window.Height,
	})

	scheduler := mainwindow.NewScheduler()
	controller := timekeeper.New(settings.Timer, timekeeper.Dependencies{
		Display:    view,
		Notifier:   newNotifier(settings.Audio, logger),
		Scheduler:  scheduler,
		Transition: animation.New(pulseConfig(settings.Pulse, view.NativeOpacity(), logger), scheduler),
		Logger:     logger.With("component", "timekeeper"),
	})

	view.SetOnStart(controller.Start)
	view.SetOnReset(controller.Reset)

	bridge := &eventBridge{view: view}
	if settings.Notifications.Enabled {
		bridge.notifier = notify.New(fyneApp)
	}
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		desktopApp.SetSystemTrayIcon(fyneApp.Icon())
		bridge.tray = tray.New(desktopApp, appName, tray.Callbacks{
			OnStart:            controller.Start,
			OnReset:            controller.Reset,
			OnToggleFullscreen: view.ToggleFullscreen,
			OnQuit:             fyneApp.Quit,
		})
	} else {
		logger.Info("system tray unsupported on this platform")
	}

	events := controller.Subscribe(16)
	go func() {
		for event := range events {
			fyne.Do(func() {
				bridge.handle(event)
			})
		}
	}()

	view.FyneWindow().SetOnClosed(func() {
		controller.Close()
	})
	view.FyneWindow().SetMaster()

	controller.Reset()
	view.Show()
	logger.Info("timer ready",
		"work", settings.Timer.Work,
		"short_break", settings.Timer.ShortBreak,
		"long_break", settings.Timer.LongBreak,
	)
	fyneApp.Run()
}

// eventBridge applies controller events to the window, tray and notifications.
// It runs on the UI thread.
type eventBridge struct {
	view     *mainwindow.Window
	tray     *tray.Manager
	notifier *notify.Notifier
}

func (bridge *eventBridge) handle(event timekeeper.Event) {
	if event.Type != timekeeper.EventNotifyError {
		label := event.Interval.Label()
		bridge.view.SetIntervalLabel(label)
		if event.State == timekeeper.StateIdle {
			bridge.view.SetCountdownTitle("", "")
		} else {
			bridge.view.SetCountdownTitle(timekeeper.FormatRemaining(event.Remaining), label)
		}
	}
	if bridge.tray != nil {
		bridge.tray.Handle(event)
	}
	if bridge.notifier != nil {
		bridge.notifier.Handle(event)
	}
}

func newNotifier(settings model.AudioConfig, logger *slog.Logger) timekeeper.Notifier {
	if !settings.Enabled {
		return timekeeper.NopNotifier{}
	}
	return audio.New(audio.Config{
		SampleRate: beep.SampleRate(settings.SampleRate),
		Volume:     settings.Volume,
	}, logger.With("component", "audio"))
}

// pulseConfig maps pulse settings to the animation. A blocking pulse is only
// visible when the platform fades the window natively, so it falls back to
// scheduled steps elsewhere.
func pulseConfig(settings model.PulseConfig, nativeOpacity bool, logger *slog.Logger) animation.Config {
	blocking := settings.Blocking
	if blocking && !nativeOpacity {
		logger.Info("no native window opacity, running pulse on the scheduler")
		blocking = false
	}
	return animation.Config{
		StepPercent: settings.StepPercent,
		StepDelay:   settings.StepDelay,
		Blocking:    blocking,
	}
}
