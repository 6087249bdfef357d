package game

import (
	"strings"

	"github.com/tuigames/flappy/internal/assets"
)

// stubSprite builds a single-frame sprite without touching embedded files.
func stubSprite(w, h int) *assets.Resource {
	lines := make([]string, h)
	for i := range lines {
		lines[i] = strings.Repeat("#", w)
	}
	return &assets.Resource{Frames: [][]string{lines}, W: w, H: h}
}

// fakeStore is an in-memory ScoreStore recording every persistence call.
type fakeStore struct {
	high     int
	saves    []int
	sessions []int
}

func (f *fakeStore) HighScore() (int, error) { return f.high, nil }

func (f *fakeStore) SaveHighScore(score int) error {
	f.high = score
	f.saves = append(f.saves, score)
	return nil
}

func (f *fakeStore) RecordSession(score int) error {
	f.sessions = append(f.sessions, score)
	return nil
}
