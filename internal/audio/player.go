package audio

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

// ErrUnavailable indicates the audio device could not be opened.
var ErrUnavailable = errors.New("audio output unavailable")

const amplitude = 0.5

// Config defines tone playback output.
type Config struct {
	SampleRate beep.SampleRate
	// Volume is relative to unity gain in base-2 steps, 0 keeps the tone unchanged.
	Volume float64
}

// Player plays sine tones through the system speaker.
type Player struct {
	config Config
	logger *slog.Logger

	initOnce sync.Once
	initErr  error

	initSpeaker func(sampleRate beep.SampleRate, bufferSize int) error
	play        func(streamers ...beep.Streamer)
}

// New creates a Player. The speaker is opened lazily on the first tone.
func New(config Config, logger *slog.Logger) *Player {
	if config.SampleRate <= 0 {
		config.SampleRate = 44100
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Player{
		config:      config,
		logger:      logger,
		initSpeaker: speaker.Init,
		play:        speaker.Play,
	}
}

// PlayTone starts a tone and returns without waiting for it to finish.
func (player *Player) PlayTone(frequency float64, duration time.Duration) error {
	if err := player.ensureSpeaker(); err != nil {
		return err
	}
	if frequency <= 0 || duration <= 0 {
		return nil
	}

	player.play(&effects.Volume{
		Streamer: Tone(player.config.SampleRate, frequency, duration),
		Base:     2,
		Volume:   player.config.Volume,
	})
	return nil
}

func (player *Player) ensureSpeaker() error {
	player.initOnce.Do(func() {
		bufferSize := player.config.SampleRate.N(time.Second / 10)
		if err := player.initSpeaker(player.config.SampleRate, bufferSize); err != nil {
			player.initErr = fmt.Errorf("%w: %v", ErrUnavailable, err)
			player.logger.Warn("speaker init failed, tones disabled", "error", err)
		}
	})
	return player.initErr
}

// Tone returns a mono sine wave duplicated on both channels.
func Tone(sampleRate beep.SampleRate, frequency float64, duration time.Duration) beep.Streamer {
	total := sampleRate.N(duration)
	step := 2 * math.Pi * frequency / float64(sampleRate)
	position := 0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if position >= total {
			return 0, false
		}
		count := 0
		for index := range samples {
			if position >= total {
				break
			}
			value := amplitude * math.Sin(step*float64(position))
			samples[index][0] = value
			samples[index][1] = value
			position++
			count++
		}
		return count, true
	})
}
