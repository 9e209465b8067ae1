package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-odyssey/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Thrust  key.Binding
	Reverse key.Binding
	Fire    key.Binding
	Pause   key.Binding
	Back    key.Binding
	Confirm key.Binding
	Debug   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Thrust, k.Left, k.Right, k.Fire, k.Back, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Thrust, k.Reverse, k.Left, k.Right},
		{k.Fire, k.Pause, k.Back, k.Confirm},
		{k.Debug, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "turn left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "turn right"),
		),
		Thrust: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "thrust"),
		),
		Reverse: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "reverse"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Debug: key.NewBinding(
			key.WithKeys("f3", "`"),
			key.WithHelp("f3", "hitboxes"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Actions translates a key message into the actions it triggers.
// Up and down double as menu navigation; the world ignores whichever
// action does not apply to the current mode.
func (k KeyMap) Actions(msg tea.KeyMsg) []core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return []core.Action{core.ActionQuit}
	case key.Matches(msg, k.Left):
		return []core.Action{core.ActionTurnLeft}
	case key.Matches(msg, k.Right):
		return []core.Action{core.ActionTurnRight}
	case key.Matches(msg, k.Thrust):
		return []core.Action{core.ActionThrust, core.ActionMenuUp}
	case key.Matches(msg, k.Reverse):
		return []core.Action{core.ActionReverse, core.ActionMenuDown}
	case key.Matches(msg, k.Fire):
		return []core.Action{core.ActionFire}
	case key.Matches(msg, k.Pause):
		return []core.Action{core.ActionPause}
	case key.Matches(msg, k.Back):
		return []core.Action{core.ActionBack}
	case key.Matches(msg, k.Confirm):
		return []core.Action{core.ActionConfirm}
	case key.Matches(msg, k.Debug):
		return []core.Action{core.ActionDebug}
	}
	return nil
}
