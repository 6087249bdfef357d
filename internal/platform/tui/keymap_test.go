package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuigames/flappy/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestKeyMapperPrimaryKeys(t *testing.T) {
	km := NewKeyMapper([]string{" ", "up", "w", "enter"})

	for _, k := range []string{" ", "up", "w", "enter"} {
		if got := km.MapKey(keyMsg(k)); got != core.ActionPrimary {
			t.Errorf("key %q: expected ActionPrimary, got %v", k, got)
		}
	}
}

func TestKeyMapperQuitKeys(t *testing.T) {
	km := NewKeyMapper([]string{" "})

	for _, k := range []string{"q", "esc", "ctrl+c"} {
		if got := km.MapKey(keyMsg(k)); got != core.ActionQuit {
			t.Errorf("key %q: expected ActionQuit, got %v", k, got)
		}
	}
}

func TestKeyMapperUnboundKey(t *testing.T) {
	km := NewKeyMapper([]string{" "})

	if got := km.MapKey(keyMsg("x")); got != core.ActionNone {
		t.Errorf("expected ActionNone for unbound key, got %v", got)
	}
}

func TestResizeDebounceIgnoresStaleTimer(t *testing.T) {
	km := []string{" "}
	m := NewModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, FrameRate: 60}, km)

	// Two resize events in a burst; only the second timer should apply
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	next, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	// Stale timer from the first event
	next, _ = m.Update(resizeSettledMsg{seq: 1})
	m = next.(Model)
	if m.rt.ScreenW != 80 || m.rt.ScreenH != 24 {
		t.Errorf("stale timer applied resize: %dx%d", m.rt.ScreenW, m.rt.ScreenH)
	}

	if m.pendingW != 120 || m.pendingH != 40 {
		t.Errorf("expected pending 120x40, got %dx%d", m.pendingW, m.pendingH)
	}
}
