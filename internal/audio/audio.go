// Package audio plays the game's sound effects through the speaker.
// Effects are synthesized with short oscillator bursts, so no binary
// audio assets are shipped; the assets manifest only names the patches.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tuigames/flappy/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Player is a beep-backed game.SoundPlayer. The zero value is unusable;
// call NewPlayer and Init.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates an uninitialized player. Play is a no-op until Init
// succeeds, which keeps headless environments (tests, SSH servers) safe.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker and attaches the mixer. One-shot; repeated
// calls are no-ops.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences the mixer. beep offers no speaker teardown; clearing
// the mixer is enough to stop all playback.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Play implements game.SoundPlayer. Mixing happens on the speaker
// goroutine, so the simulation tick never blocks on playback.
func (p *Player) Play(s game.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	streamer := patchFor(s)
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// patchFor builds the synthesizer burst for a sound effect.
func patchFor(s game.Sound) beep.Streamer {
	switch s {
	case game.SoundWing:
		// Quick rising chirp
		return newSweep(300, 700, 60*time.Millisecond, waveSquare)
	case game.SoundPoint:
		// Bright two-tone blip
		return beep.Seq(
			newSweep(880, 880, 40*time.Millisecond, waveSine),
			newSweep(1320, 1320, 60*time.Millisecond, waveSine),
		)
	case game.SoundHit:
		// Falling crunch
		return newSweep(400, 80, 180*time.Millisecond, waveNoise)
	case game.SoundSwoosh:
		// Wide downward sweep
		return newSweep(900, 200, 150*time.Millisecond, waveSaw)
	default:
		return beep.Silence(0)
	}
}
