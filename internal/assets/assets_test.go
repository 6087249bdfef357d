package assets

import "testing"

func TestLoadDefaultManifest(t *testing.T) {
	s := NewStore()
	if err := s.Load(DefaultManifest()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	bird, err := s.Get("bird")
	if err != nil {
		t.Fatalf("Get(bird) failed: %v", err)
	}
	if bird.Type != Image {
		t.Errorf("bird should be an image resource")
	}
	if len(bird.Frames) != 2 {
		t.Errorf("bird should have 2 animation frames, got %d", len(bird.Frames))
	}
	if bird.W == 0 || bird.H == 0 {
		t.Errorf("bird frame dimensions not set: %dx%d", bird.W, bird.H)
	}

	wing, err := s.Get("wing")
	if err != nil {
		t.Fatalf("Get(wing) failed: %v", err)
	}
	if wing.Type != Audio {
		t.Errorf("wing should be an audio resource")
	}

	if _, err := s.Get("no-such-thing"); err == nil {
		t.Error("Get of an unknown name should fail")
	}
}

func TestParseSheet(t *testing.T) {
	frames, err := ParseSheet("ab\ncd\n--\nef\ngh\n")
	if err != nil {
		t.Fatalf("ParseSheet failed: %v", err)
	}
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}
	if frames[1][0] != "ef" {
		t.Errorf("second frame wrong: %q", frames[1][0])
	}
}

func TestParseSheetPadsRaggedLines(t *testing.T) {
	frames, err := ParseSheet("abcd\nx\n")
	if err != nil {
		t.Fatalf("ParseSheet failed: %v", err)
	}
	if len(frames[0][1]) != 4 {
		t.Errorf("short line should be padded to sheet width, got %q", frames[0][1])
	}
}

func TestParseSheetRejectsUnevenFrames(t *testing.T) {
	if _, err := ParseSheet("ab\n--\ncd\nef\n"); err == nil {
		t.Error("frames of different heights should be rejected")
	}
}

func TestFrameWrapsIndex(t *testing.T) {
	r := &Resource{Frames: [][]string{{"a"}, {"b"}}}
	if r.Frame(0)[0] != "a" || r.Frame(1)[0] != "b" || r.Frame(2)[0] != "a" {
		t.Error("Frame index should wrap around the sheet")
	}
	var empty Resource
	if empty.Frame(3) != nil {
		t.Error("Frame on an empty resource should be nil")
	}
}
