package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "scores.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	store.Close()
}

func TestHighScoreDefaultsToZero(t *testing.T) {
	store := openTestStore(t)

	score, err := store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if score != 0 {
		t.Errorf("expected 0 for fresh database, got %d", score)
	}
}

func TestSetHighScoreMonotonic(t *testing.T) {
	store := openTestStore(t)

	if err := store.SetHighScore("flappy", 50); err != nil {
		t.Fatalf("SetHighScore failed: %v", err)
	}
	// A lower value must not overwrite the stored best
	if err := store.SetHighScore("flappy", 30); err != nil {
		t.Fatalf("SetHighScore failed: %v", err)
	}

	score, err := store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if score != 50 {
		t.Errorf("expected 50, got %d", score)
	}

	if err := store.SetHighScore("flappy", 70); err != nil {
		t.Fatalf("SetHighScore failed: %v", err)
	}
	score, _ = store.HighScore("flappy")
	if score != 70 {
		t.Errorf("expected 70 after raise, got %d", score)
	}
}

func TestHighScoresAreIsolatedPerGame(t *testing.T) {
	store := openTestStore(t)

	if err := store.SetHighScore("flappy", 10); err != nil {
		t.Fatalf("SetHighScore failed: %v", err)
	}
	score, err := store.HighScore("other")
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if score != 0 {
		t.Errorf("expected 0 for other game, got %d", score)
	}
}

func TestSaveScoreAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{10, 50, 30, 50, 20} {
		if _, err := store.SaveScore("flappy", s); err != nil {
			t.Fatalf("SaveScore failed: %v", err)
		}
	}

	entries, err := store.TopScores("flappy", 3)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	want := []int{50, 50, 30}
	for i, e := range entries {
		if e.Score != want[i] {
			t.Errorf("entry %d: expected score %d, got %d", i, want[i], e.Score)
		}
		if e.GameID != "flappy" {
			t.Errorf("entry %d: expected game_id flappy, got %s", i, e.GameID)
		}
	}
}

func TestTopScoresEmptyGame(t *testing.T) {
	store := openTestStore(t)

	entries, err := store.TopScores("flappy", 10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestGameStoreAdapter(t *testing.T) {
	store := openTestStore(t)
	gs := store.ForGame("flappy")

	score, err := gs.HighScore()
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if score != 0 {
		t.Errorf("expected 0, got %d", score)
	}

	if err := gs.SaveHighScore(42); err != nil {
		t.Fatalf("SaveHighScore failed: %v", err)
	}
	score, _ = gs.HighScore()
	if score != 42 {
		t.Errorf("expected 42, got %d", score)
	}

	if err := gs.RecordSession(42); err != nil {
		t.Fatalf("RecordSession failed: %v", err)
	}
	entries, err := store.TopScores("flappy", 10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Score != 42 {
		t.Errorf("expected one session with score 42, got %+v", entries)
	}
}
