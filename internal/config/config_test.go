package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Game.FrameRate <= 0 {
		t.Errorf("expected positive frame rate, got %d", cfg.Game.FrameRate)
	}
	if cfg.Actor.Gravity <= 0 {
		t.Errorf("expected positive gravity, got %f", cfg.Actor.Gravity)
	}
	if cfg.Tubes.SpaceMin > cfg.Tubes.SpaceMax {
		t.Errorf("space_min %f exceeds space_max %f", cfg.Tubes.SpaceMin, cfg.Tubes.SpaceMax)
	}
	if cfg.Tubes.DistanceMin > cfg.Tubes.DistanceMax {
		t.Errorf("distance_min %f exceeds distance_max %f", cfg.Tubes.DistanceMin, cfg.Tubes.DistanceMax)
	}
	if len(cfg.Keys.Primary) == 0 {
		t.Error("expected at least one primary key binding")
	}
}

func TestLoadExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := []byte("game:\n  frame_rate: 30\n  score_step: 5\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Game.FrameRate != 30 {
		t.Errorf("expected frame_rate 30, got %d", cfg.Game.FrameRate)
	}
	if cfg.Game.ScoreStep != 5 {
		t.Errorf("expected score_step 5, got %d", cfg.Game.ScoreStep)
	}
}

func TestLoadExplicitPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoadExplicitPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("game: [not a map"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestValidPreset(t *testing.T) {
	for _, name := range []string{"easy", "normal", "hard", "fixed"} {
		if !ValidPreset(name) {
			t.Errorf("expected %q to be valid", name)
		}
	}
	if ValidPreset("nightmare") {
		t.Error("expected unknown preset to be invalid")
	}
}

func TestApplyPresetEasy(t *testing.T) {
	cfg := Default()
	base := cfg

	ApplyPreset(&cfg, PresetEasy)

	if cfg.Tubes.Speed >= base.Tubes.Speed {
		t.Errorf("easy should slow tubes: %f >= %f", cfg.Tubes.Speed, base.Tubes.Speed)
	}
	if cfg.Tubes.SpaceMin != base.Tubes.SpaceMin+1 {
		t.Errorf("easy should widen gaps: got %f", cfg.Tubes.SpaceMin)
	}
}

func TestApplyPresetHard(t *testing.T) {
	cfg := Default()
	base := cfg

	ApplyPreset(&cfg, PresetHard)

	if cfg.Tubes.Speed <= base.Tubes.Speed {
		t.Errorf("hard should speed up tubes: %f <= %f", cfg.Tubes.Speed, base.Tubes.Speed)
	}
	if cfg.Tubes.DistanceMax >= base.Tubes.DistanceMax {
		t.Errorf("hard should tighten spacing: got %f", cfg.Tubes.DistanceMax)
	}
	// Spacing stays ordered after the preset
	if cfg.Tubes.DistanceMin > cfg.Tubes.DistanceMax {
		t.Errorf("hard broke spacing order: %f > %f", cfg.Tubes.DistanceMin, cfg.Tubes.DistanceMax)
	}
}

func TestApplyPresetFixed(t *testing.T) {
	cfg := Default()
	ApplyPreset(&cfg, PresetFixed)

	if cfg.Game.LevelUpAcceleration != 0 {
		t.Errorf("fixed should zero acceleration, got %f", cfg.Game.LevelUpAcceleration)
	}
}

func TestApplyPresetNormalIsIdentity(t *testing.T) {
	cfg := Default()
	base := cfg

	ApplyPreset(&cfg, PresetNormal)

	if cfg.Tubes != base.Tubes || cfg.Game != base.Game {
		t.Error("normal preset should leave config untouched")
	}
}
