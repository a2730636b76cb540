package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fish-clicker/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		cmd    Command
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, CommandNone},
		{"h", runeKey('h'), core.ActionLeft, CommandNone},
		{"a", runeKey('a'), core.ActionLeft, CommandNone},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, CommandNone},
		{"l", runeKey('l'), core.ActionRight, CommandNone},
		{"d", runeKey('d'), core.ActionRight, CommandNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, CommandNone},
		{"space", runeKey(' '), core.ActionConfirm, CommandNone},
		{"q", runeKey('q'), core.ActionNone, CommandQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionNone, CommandQuit},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone, CommandScreenshot},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNone, CommandScores},
		{"unbound", runeKey('z'), core.ActionNone, CommandNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, cmd := km.MapKey(tc.msg)
			if action != tc.action || cmd != tc.cmd {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tc.msg.String(), action, cmd, tc.action, tc.cmd)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.MouseMsg
		want core.Button
	}{
		{"left press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.ButtonPrimary},
		{"right press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, core.ButtonSecondary},
		{"middle press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonMiddle}, core.ButtonMiddle},
		{"left release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, core.ButtonNone},
		{"motion", tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, core.ButtonNone},
		{"wheel", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, core.ButtonNone},
	}

	for _, tc := range tests {
		if got := km.MapMouse(tc.msg); got != tc.want {
			t.Errorf("%s: MapMouse = %v, expected %v", tc.name, got, tc.want)
		}
	}
}
