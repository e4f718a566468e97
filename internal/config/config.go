package config

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"tomato/internal/core/model"
)

// ErrInvalid indicates a configuration value outside its allowed range.
var ErrInvalid = errors.New("invalid config")

type yamlConfig struct {
	Timer struct {
		WorkMinutes       int `yaml:"work_minutes"`
		ShortBreakMinutes int `yaml:"short_break_minutes"`
		LongBreakMinutes  int `yaml:"long_break_minutes"`
		LongBreakEvery    int `yaml:"long_break_every"`
		TickMillis        int `yaml:"tick_millis"`
	} `yaml:"timer"`
	Tone struct {
		FrequencyHz    float64 `yaml:"frequency_hz"`
		DurationMillis int     `yaml:"duration_millis"`
	} `yaml:"tone"`
	Pulse struct {
		StepPercent int   `yaml:"step_percent"`
		StepMillis  *int  `yaml:"step_millis"`
		Blocking    *bool `yaml:"blocking"`
	} `yaml:"pulse"`
	Window struct {
		Title      string  `yaml:"title"`
		Fullscreen *bool   `yaml:"fullscreen"`
		Width      float32 `yaml:"width"`
		Height     float32 `yaml:"height"`
	} `yaml:"window"`
	Audio struct {
		Enabled    *bool    `yaml:"enabled"`
		SampleRate int      `yaml:"sample_rate"`
		Volume     *float64 `yaml:"volume"`
	} `yaml:"audio"`
	Notifications struct {
		Enabled *bool `yaml:"enabled"`
	} `yaml:"notifications"`
}

// Load decodes a YAML document over the defaults and validates the result.
// Absent or zero values keep their defaults.
func Load(data []byte) (model.AppConfig, error) {
	config := model.DefaultAppConfig()

	var fileData yamlConfig
	if err := yaml.Unmarshal(data, &fileData); err != nil {
		return config, fmt.Errorf("parse config yaml: %w", err)
	}

	applyYamlConfig(&config, fileData)
	if err := Validate(config); err != nil {
		return config, err
	}
	return config, nil
}

// MustLoad is like Load but panics on error.
func MustLoad(data []byte) model.AppConfig {
	config, err := Load(data)
	if err != nil {
		panic(err)
	}
	return config
}

// Validate checks the ranges the timer relies on.
func Validate(config model.AppConfig) error {
	timer := config.Timer
	durations := []struct {
		name  string
		value time.Duration
	}{
		{"work", timer.Work},
		{"short break", timer.ShortBreak},
		{"long break", timer.LongBreak},
	}
	for _, duration := range durations {
		if duration.value < time.Second || duration.value%time.Second != 0 {
			return fmt.Errorf("%w: %s duration %s must be a positive whole number of seconds", ErrInvalid, duration.name, duration.value)
		}
	}
	if timer.LongBreakEvery <= 0 {
		return fmt.Errorf("%w: long break cadence %d must be positive", ErrInvalid, timer.LongBreakEvery)
	}
	if timer.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval %s must be positive", ErrInvalid, timer.TickInterval)
	}
	if config.Pulse.StepPercent <= 0 || config.Pulse.StepPercent > 100 {
		return fmt.Errorf("%w: pulse step %d%% must be within 1..100", ErrInvalid, config.Pulse.StepPercent)
	}
	if config.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d must be positive", ErrInvalid, config.Audio.SampleRate)
	}
	return nil
}

func applyYamlConfig(config *model.AppConfig, fileData yamlConfig) {
	if fileData.Timer.WorkMinutes > 0 {
		config.Timer.Work = time.Duration(fileData.Timer.WorkMinutes) * time.Minute
	}
	if fileData.Timer.ShortBreakMinutes > 0 {
		config.Timer.ShortBreak = time.Duration(fileData.Timer.ShortBreakMinutes) * time.Minute
	}
	if fileData.Timer.LongBreakMinutes > 0 {
		config.Timer.LongBreak = time.Duration(fileData.Timer.LongBreakMinutes) * time.Minute
	}
	if fileData.Timer.LongBreakEvery != 0 {
		config.Timer.LongBreakEvery = fileData.Timer.LongBreakEvery
	}
	if fileData.Timer.TickMillis > 0 {
		config.Timer.TickInterval = time.Duration(fileData.Timer.TickMillis) * time.Millisecond
	}

	if fileData.Tone.FrequencyHz > 0 {
		config.Timer.ToneFrequency = fileData.Tone.FrequencyHz
	}
	if fileData.Tone.DurationMillis > 0 {
		config.Timer.ToneDuration = time.Duration(fileData.Tone.DurationMillis) * time.Millisecond
	}

	if fileData.Pulse.StepPercent != 0 {
		config.Pulse.StepPercent = fileData.Pulse.StepPercent
	}
	if fileData.Pulse.StepMillis != nil && *fileData.Pulse.StepMillis >= 0 {
		config.Pulse.StepDelay = time.Duration(*fileData.Pulse.StepMillis) * time.Millisecond
	}
	if fileData.Pulse.Blocking != nil {
		config.Pulse.Blocking = *fileData.Pulse.Blocking
	}

	if fileData.Window.Title != "" {
		config.Window.Title = fileData.Window.Title
	}
	if fileData.Window.Fullscreen != nil {
		config.Window.Fullscreen = *fileData.Window.Fullscreen
	}
	if fileData.Window.Width > 0 {
		config.Window.Width = fileData.Window.Width
	}
	if fileData.Window.Height > 0 {
		config.Window.Height = fileData.Window.Height
	}

	if fileData.Audio.Enabled != nil {
		config.Audio.Enabled = *fileData.Audio.Enabled
	}
	if fileData.Audio.SampleRate != 0 {
		config.Audio.SampleRate = fileData.Audio.SampleRate
	}
	if fileData.Audio.Volume != nil {
		config.Audio.Volume = *fileData.Audio.Volume
	}

	if fileData.Notifications.Enabled != nil {
		config.Notifications.Enabled = *fileData.Notifications.Enabled
	}
}
