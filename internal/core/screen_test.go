package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '@')
	if got := s.Get(3, 2); got != '@' {
		t.Errorf("Get(3,2) = %q, expected '@'", got)
	}

	// Out of bounds writes are ignored, reads return space
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, expected space", got)
	}
	if got := s.Get(10, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, expected space", got)
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(6, 3)

	s.SetColored(1, 1, '█', ColorGreen)
	cell := s.GetCell(1, 1)
	if cell.Rune != '█' || cell.Color != ColorGreen {
		t.Errorf("GetCell(1,1) = %+v, expected green block", cell)
	}

	s.Clear()
	cell = s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear should reset cells, got %+v", cell)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, '#')

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Fatalf("Resize dimensions = %dx%d, expected 20x10", s.Width(), s.Height())
	}
	if got := s.Get(2, 2); got != '#' {
		t.Errorf("Resize should preserve content, Get(2,2) = %q", got)
	}

	// Shrinking clips
	s.Resize(2, 2)
	if got := s.Get(2, 2); got != ' ' {
		t.Errorf("shrunk screen should clip, Get(2,2) = %q", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")

	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Errorf("DrawText misplaced: row = %q", s.Row(1))
	}

	// Clipped at the right edge without panicking
	s.DrawText(8, 1, "long text")
	if s.Get(8, 1) != 'l' || s.Get(9, 1) != 'o' {
		t.Errorf("clipped DrawText wrong: row = %q", s.Row(1))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc")
	// (11-3)/2 = 4
	if s.Get(4, 1) != 'a' {
		t.Errorf("centered text misplaced: row = %q", s.Row(1))
	}
}

func TestScreenDrawFrameTransparency(t *testing.T) {
	s := NewScreen(8, 4)
	s.DrawRect(0, 0, 8, 4, '.', ColorDefault)

	frame := []string{
		"<o",
		" \\",
	}
	s.DrawFrame(2, 1, frame, ColorYellow)

	if s.Get(2, 1) != '<' || s.Get(3, 1) != 'o' {
		t.Errorf("frame top row wrong: %q", s.Row(1))
	}
	// The space in the frame is transparent: the backdrop shows through
	if s.Get(2, 2) != '.' {
		t.Errorf("frame space should be transparent, got %q", s.Get(2, 2))
	}
	if s.Get(3, 2) != '\\' {
		t.Errorf("frame bottom row wrong: %q", s.Row(2))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() should have 2 lines, got %d", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(1, 1, 5, 3)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' {
		t.Errorf("box top corners wrong: %q", s.Row(1))
	}
	if s.Get(1, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Errorf("box bottom corners wrong: %q", s.Row(3))
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Errorf("box edges wrong")
	}
}
