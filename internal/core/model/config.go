package model

import "time"

// TimerConfig holds the fixed interval lengths and cue settings of the countdown.
type TimerConfig struct {
	Work       time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration

	// LongBreakEvery is the completion count modulus that selects a long break.
	LongBreakEvery int
	TickInterval   time.Duration

	ToneFrequency float64
	ToneDuration  time.Duration
}

// PulseConfig controls the opacity pulse played between intervals.
type PulseConfig struct {
	StepPercent int
	StepDelay   time.Duration
	Blocking    bool
}

// WindowConfig defines the main window presentation.
type WindowConfig struct {
	Title      string
	Fullscreen bool
	Width      float32
	Height     float32
}

// AudioConfig defines tone playback output.
type AudioConfig struct {
	Enabled    bool
	SampleRate int
	Volume     float64
}

// NotificationConfig controls the desktop notification sent when an interval ends.
type NotificationConfig struct {
	Enabled bool
}

// AppConfig groups every compiled-in setting of the application.
type AppConfig struct {
	Timer  TimerConfig
	Pulse  PulseConfig
	Window WindowConfig
	Audio  AudioConfig

	Notifications NotificationConfig
}

// DefaultTimerConfig returns the classic 25/5/15 Pomodoro schedule.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		Work:           25 * time.Minute,
		ShortBreak:     5 * time.Minute,
		LongBreak:      15 * time.Minute,
		LongBreakEvery: 4,
		TickInterval:   time.Second,
		ToneFrequency:  440,
		ToneDuration:   time.Second,
	}
}

// DefaultAppConfig returns defaults for every section.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Timer: DefaultTimerConfig(),
		Pulse: PulseConfig{
			StepPercent: 10,
			StepDelay:   50 * time.Millisecond,
			Blocking:    true,
		},
		Window: WindowConfig{
			Title:      "Pomodoro Timer",
			Fullscreen: true,
			Width:      400,
			Height:     200,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0,
		},
		Notifications: NotificationConfig{Enabled: true},
	}
}
