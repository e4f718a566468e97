package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(streamer beep.Streamer) (int, float64) {
	buffer := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := streamer.Stream(buffer)
		for _, sample := range buffer[:n] {
			if sample[0] > peak {
				peak = sample[0]
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestToneLength(t *testing.T) {
	sampleRate := beep.SampleRate(8000)
	samples, peak := drain(Tone(sampleRate, 440, time.Second))

	assert.Equal(t, 8000, samples)
	assert.InDelta(t, amplitude, peak, 0.01)
}

func TestToneZeroDuration(t *testing.T) {
	samples, _ := drain(Tone(beep.SampleRate(8000), 440, 0))
	assert.Equal(t, 0, samples)
}

func TestPlayToneUnavailable(t *testing.T) {
	player := New(Config{SampleRate: 8000}, nil)
	initCalls := 0
	player.initSpeaker = func(beep.SampleRate, int) error {
		initCalls++
		return errors.New("no device")
	}
	player.play = func(...beep.Streamer) {
		t.Fatal("play must not be called without a speaker")
	}

	err := player.PlayTone(440, time.Second)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))

	err = player.PlayTone(440, time.Second)
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.Equal(t, 1, initCalls)
}

func TestPlayToneStartsStreamer(t *testing.T) {
	player := New(Config{SampleRate: 8000}, nil)
	var bufferSize int
	player.initSpeaker = func(_ beep.SampleRate, size int) error {
		bufferSize = size
		return nil
	}
	var played []beep.Streamer
	player.play = func(streamers ...beep.Streamer) {
		played = append(played, streamers...)
	}

	require.NoError(t, player.PlayTone(440, 250*time.Millisecond))
	require.Len(t, played, 1)
	assert.Equal(t, 800, bufferSize)

	samples, _ := drain(played[0])
	assert.Equal(t, 2000, samples)
}
