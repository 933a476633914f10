package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/session"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model hosting one arcade session.
type Model struct {
	ctrl     *session.Controller
	keys     KeyMap
	help     help.Model
	screen   *core.Screen
	holds    *holdTracker
	tickRate int
	last     time.Time
	quitting bool
}

// NewModel wraps a session controller. The screen starts at the runtime
// size and follows window resizes.
func NewModel(ctrl *session.Controller, cfg core.RuntimeConfig) Model {
	return Model{
		ctrl:     ctrl,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		screen:   core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		holds:    newHoldTracker(HoldTimeout),
		tickRate: cfg.TickRate,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		// Last row is reserved for the help bar.
		m.screen.Resize(msg.Width, max(1, msg.Height-1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Quit):
		if m.ctrl.State() == session.StateMenu {
			m.quitting = true
			return m, tea.Quit
		}
		m.press(core.IntentCancel, now)
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Snapshot):
		m.saveScreenshot()
		return m, nil
	}

	if intent, ok := m.keys.Intent(msg); ok {
		m.press(intent, now)
	}
	return m, nil
}

// press forwards a key press. Holds are only tracked while a run is live;
// the controller releases held intents itself when play stops.
func (m Model) press(i core.Intent, now time.Time) {
	m.ctrl.HandleInput(core.Press(i))
	if m.ctrl.State() != session.StatePlaying {
		m.holds.Reset()
		return
	}
	if holdable(i) {
		m.holds.Press(i, now)
	}
}

func holdable(i core.Intent) bool {
	switch i {
	case core.IntentUp, core.IntentDown, core.IntentLeft, core.IntentRight,
		core.IntentPrimary, core.IntentSecondary:
		return true
	}
	return false
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt float64
	if !m.last.IsZero() {
		dt = now.Sub(m.last).Seconds()
	}
	m.last = now

	for _, i := range m.holds.Expire(now) {
		m.ctrl.HandleInput(core.Release(i))
	}
	m.ctrl.Tick(dt)

	return m, tickCmd(m.tickRate)
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() {
	Paint(m.screen, m.ctrl.View())

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := m.ctrl.View().GameID
	if name == "" {
		name = "menu"
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", name, time.Now().Format("20060102_150405")))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	Paint(m.screen, m.ctrl.View())
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts a full-screen Bubble Tea program for the controller.
func Run(ctrl *session.Controller, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(NewModel(ctrl, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
