package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tuigames/flappy/internal/core"
	"github.com/tuigames/flappy/internal/game"
)

// GameID is the identifier used for this game's rows in score storage.
const GameID = "flappy"

// loadedMsg signals that asset and score loading finished.
type loadedMsg struct{}

// loadFailedMsg carries a fatal loading error.
type loadFailedMsg struct {
	err error
}

// Model is the Bubble Tea model driving a single game session.
type Model struct {
	machine *game.Machine
	screen  *core.Screen
	rt      core.RuntimeConfig
	keys    *KeyMapper
	spinner spinner.Model

	loading  bool
	loadErr  error
	ticking  bool
	quitting bool

	// Resize events arrive in bursts; the latest one is held here until
	// the debounce timer with a matching seq fires.
	pendingW  int
	pendingH  int
	resizeSeq int
}

// NewModel creates a model for the given machine and runtime config.
func NewModel(machine *game.Machine, rt core.RuntimeConfig, primaryKeys []string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))

	return Model{
		machine: machine,
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH),
		rt:      rt,
		keys:    NewKeyMapper(primaryKeys),
		spinner: sp,
		loading: true,
	}
}

// Init starts asset loading and the spinner.
func (m Model) Init() tea.Cmd {
	machine := m.machine
	prepare := func() tea.Msg {
		if err := machine.Prepare(); err != nil {
			return loadFailedMsg{err: err}
		}
		return loadedMsg{}
	}
	return tea.Batch(m.spinner.Tick, prepare)
}

// Update handles messages and advances the session.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.loading = false
		return m, nil

	case loadFailedMsg:
		m.loadErr = msg.err
		m.quitting = true
		return m, tea.Quit

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.pendingW = msg.Width
		m.pendingH = msg.Height
		m.resizeSeq++
		return m, resizeSettleCmd(m.resizeSeq)

	case resizeSettledMsg:
		// Only the timer from the latest burst applies
		if msg.seq != m.resizeSeq {
			return m, nil
		}
		m.rt.ScreenW = m.pendingW
		m.rt.ScreenH = m.pendingH
		m.screen.Resize(m.pendingW, m.pendingH)
		m.machine.Resize(m.pendingW, m.pendingH)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionPrimary:
		if m.loading {
			return m, nil
		}
		m.machine.HandleAction()
		// A run just started; kick off the simulation loop
		if m.machine.State() == game.StatePlaying && !m.ticking {
			m.ticking = true
			return m, tickCmd(m.rt.FrameRate)
		}
	}

	return m, nil
}

// handleTick advances the simulation one frame.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if m.machine.Tick(time.Time(msg)) {
		return m, tickCmd(m.rt.FrameRate)
	}
	m.ticking = false
	return m, nil
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.loading {
		line := fmt.Sprintf("%s loading...", m.spinner.View())
		return lipgloss.Place(m.rt.ScreenW, m.rt.ScreenH, lipgloss.Center, lipgloss.Center, line)
	}

	m.machine.Draw(m.screen)
	return RenderScreen(m.screen)
}

// LoadError returns the fatal loading error, if any.
func (m Model) LoadError() error {
	return m.loadErr
}

// Run starts the Bubble Tea program for the given machine and blocks
// until the session ends.
func Run(machine *game.Machine, rt core.RuntimeConfig, primaryKeys []string) error {
	model := NewModel(machine, rt, primaryKeys)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(Model); ok && m.LoadError() != nil {
		return m.LoadError()
	}
	return nil
}
