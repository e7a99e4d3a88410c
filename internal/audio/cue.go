// Package audio plays short synthesized tones when the workout changes phase.
package audio

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"workouttimer/internal/core/engine"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	freq   float64
	length time.Duration
}

var (
	workTone   = tone{freq: 880, length: 250 * time.Millisecond}
	restTone   = tone{freq: 523.25, length: 400 * time.Millisecond}
	finishTone = tone{freq: 1046.5, length: 300 * time.Millisecond}
	toneGap    = 120 * time.Millisecond
)

// Player implements session.Cue on the system speaker.
type Player struct {
	mu      sync.Mutex
	enabled bool
	logger  *slog.Logger
}

// NewPlayer initialises the speaker. When enabled is false or the speaker
// cannot be opened the player stays silent.
func NewPlayer(enabled bool, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.Default()
	}
	player := &Player{logger: logger}
	if !enabled {
		return player
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		logger.Warn("audio disabled: failed to initialize speaker", "error", err)
		return player
	}
	player.enabled = true
	return player
}

// Enabled reports whether tones are audible.
func (player *Player) Enabled() bool {
	player.mu.Lock()
	defer player.mu.Unlock()
	return player.enabled
}

// PhaseChanged plays the tone for the phase that was entered.
func (player *Player) PhaseChanged(change engine.Change) {
	player.play(changeTones(change))
}

// Finished plays the closing tones.
func (player *Player) Finished() {
	player.play(finishTones())
}

func changeTones(change engine.Change) []tone {
	switch change.To {
	case engine.StateInSetRest:
		return []tone{restTone, restTone}
	case engine.StateInExerciseRest:
		return []tone{restTone}
	default:
		return []tone{workTone}
	}
}

func finishTones() []tone {
	return []tone{finishTone, finishTone, finishTone}
}

func (player *Player) play(tones []tone) {
	if !player.Enabled() || len(tones) == 0 {
		return
	}
	streamers := make([]beep.Streamer, 0, 2*len(tones))
	for i, t := range tones {
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			player.logger.Warn("build tone", "freq", t.freq, "error", err)
			return
		}
		if i > 0 {
			streamers = append(streamers, beep.Silence(sampleRate.N(toneGap)))
		}
		streamers = append(streamers, beep.Take(sampleRate.N(t.length), sine))
	}

	player.mu.Lock()
	defer player.mu.Unlock()
	speaker.Play(&effects.Volume{
		Streamer: beep.Seq(streamers...),
		Base:     2,
		Volume:   -2,
	})
}
