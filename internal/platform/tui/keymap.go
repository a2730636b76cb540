package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fish-clicker/internal/core"
)

// Command is a host-level request that never reaches the game.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandScreenshot
	CommandScores
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Confirm    key.Binding
	Scores     key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Confirm, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Confirm},
		{k.Scores, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter", "select"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message into a game action or a host command.
// At most one of the results is not None.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Action, Command) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionNone, CommandQuit
	case key.Matches(msg, km.keys.Screenshot):
		return core.ActionNone, CommandScreenshot
	case key.Matches(msg, km.keys.Scores):
		return core.ActionNone, CommandScores
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft, CommandNone
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight, CommandNone
	case key.Matches(msg, km.keys.Confirm):
		return core.ActionConfirm, CommandNone
	}
	return core.ActionNone, CommandNone
}

// MapMouse translates a mouse press into a pointer button.
// Releases, motion and wheel events map to ButtonNone.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.Button {
	if msg.Action != tea.MouseActionPress {
		return core.ButtonNone
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		return core.ButtonPrimary
	case tea.MouseButtonRight:
		return core.ButtonSecondary
	case tea.MouseButtonMiddle:
		return core.ButtonMiddle
	}
	return core.ButtonNone
}
