package game

import (
	"fmt"

	"github.com/tuigames/flappy/internal/core"
)

// Draw renders the current state to the screen buffer: the scene by
// z-index, the score label, and the active state's overlay.
func (m *Machine) Draw(dst *core.Screen) {
	if m.state == StateLoading {
		dst.Clear()
		dst.DrawTextCentered(dst.Height()/2, m.cfg.Overlays.Loading)
		return
	}

	m.scene.Draw(dst)

	label := fmt.Sprintf(" Score: %d  Best: %d  Level: %d ", m.score, m.highScore, m.level)
	dst.DrawTextColored(m.cfg.ScoreLabel.X, m.cfg.ScoreLabel.Y, label, core.ColorBrightWhite)

	switch m.state {
	case StateIdle:
		m.drawOverlay(dst, m.cfg.Overlays.Idle, "")
	case StateGameOver:
		sub := fmt.Sprintf("Score: %d  |  %s", m.score, m.cfg.Overlays.Idle)
		m.drawOverlay(dst, m.cfg.Overlays.GameOver, sub)
	}
}

// drawOverlay draws a boxed message in the center of the screen.
func (m *Machine) drawOverlay(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	if subtitle != "" {
		dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
	}
}
