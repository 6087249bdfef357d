// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// resizeDebounce is how long to wait after the last resize event before
// applying the new dimensions. Terminals emit a burst of size messages
// while the user drags the window.
const resizeDebounce = 100 * time.Millisecond

// TickMsg carries the wall-clock time of a simulation tick.
type TickMsg time.Time

// tickCmd returns a command that sends tick messages at the given frame rate.
func tickCmd(frameRate int) tea.Cmd {
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// resizeSettledMsg fires once the resize burst has gone quiet. The seq
// field lets stale timers from earlier bursts be ignored.
type resizeSettledMsg struct {
	seq int
}

// resizeSettleCmd schedules the debounce timer for a resize burst.
func resizeSettleCmd(seq int) tea.Cmd {
	return tea.Tick(resizeDebounce, func(time.Time) tea.Msg {
		return resizeSettledMsg{seq: seq}
	})
}
