package audio

import (
	"testing"
	"time"

	"github.com/tuigames/flappy/internal/game"
)

func TestSweepProducesFiniteBurst(t *testing.T) {
	s := newSweep(440, 440, 10*time.Millisecond, waveSine)

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}

	want := sampleRate.N(10 * time.Millisecond)
	if total != want {
		t.Errorf("burst length = %d samples, expected %d", total, want)
	}
}

func TestSweepAmplitudeBounded(t *testing.T) {
	s := newSweep(900, 100, 20*time.Millisecond, waveSaw)

	buf := make([][2]float64, 1024)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] > 1 || buf[i][0] < -1 {
				t.Fatalf("sample %d out of range: %v", i, buf[i][0])
			}
		}
		if !ok {
			break
		}
	}
}

func TestUninitializedPlayerIsSafe(t *testing.T) {
	p := NewPlayer()

	// No speaker: Play and Close must be harmless no-ops
	p.Play(game.SoundWing)
	p.Play(game.SoundHit)
	p.Close()
}

func TestPatchForCoversAllSounds(t *testing.T) {
	for _, s := range []game.Sound{game.SoundWing, game.SoundPoint, game.SoundHit, game.SoundSwoosh} {
		if patchFor(s) == nil {
			t.Errorf("no patch for sound %v", s)
		}
	}
}
