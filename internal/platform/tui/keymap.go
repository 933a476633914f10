package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// KeyMap binds terminal keys to session intents.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Primary   key.Binding
	Secondary key.Binding
	Pause     key.Binding
	Cancel    key.Binding
	Confirm   key.Binding
	Quit      key.Binding
	Help      key.Binding
	Snapshot  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Primary, k.Pause, k.Cancel, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Primary, k.Secondary, k.Confirm},
		{k.Pause, k.Cancel, k.Quit},
		{k.Help, k.Snapshot},
	}
}

// DefaultKeyMap returns the arrow/WASD layout.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Primary: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "action"),
		),
		Secondary: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "alt"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// Intent translates a key message. ok is false for unbound keys and for
// the quit binding, which the model handles itself.
func (k KeyMap) Intent(msg tea.KeyMsg) (intent core.Intent, ok bool) {
	switch {
	case key.Matches(msg, k.Up):
		return core.IntentUp, true
	case key.Matches(msg, k.Down):
		return core.IntentDown, true
	case key.Matches(msg, k.Left):
		return core.IntentLeft, true
	case key.Matches(msg, k.Right):
		return core.IntentRight, true
	case key.Matches(msg, k.Primary):
		return core.IntentPrimary, true
	case key.Matches(msg, k.Secondary):
		return core.IntentSecondary, true
	case key.Matches(msg, k.Pause):
		return core.IntentPause, true
	case key.Matches(msg, k.Cancel):
		return core.IntentCancel, true
	case key.Matches(msg, k.Confirm):
		return core.IntentConfirm, true
	}
	return core.IntentNone, false
}
