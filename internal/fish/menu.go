package fish

import "github.com/vovakirdan/fish-clicker/internal/core"

// State is the top-level mode of a session.
type State int

const (
	StateMenu State = iota
	StatePlaying
)

// String returns a human-readable name for the state.
func (s State) String() string {
	if s == StatePlaying {
		return "playing"
	}
	return "menu"
}

// Option is a menu entry.
type Option int

const (
	OptionStart Option = iota
	OptionExit
)

// Toggle returns the other option.
func (o Option) Toggle() Option {
	if o == OptionStart {
		return OptionExit
	}
	return OptionStart
}

// Transition describes what a key press did to the session.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionToggled
	TransitionStarted
	TransitionExit
)

// Session is the player's mutable game state.
type Session struct {
	Score         int
	State         State
	Selection     Option
	ExitRequested bool
}

// NewSession returns a session at the menu with START selected.
func NewSession() Session {
	return Session{State: StateMenu, Selection: OptionStart}
}

// HandleKey applies a pressed key to the menu.
// Keys are ignored outside the menu.
func HandleKey(s *Session, a core.Action) Transition {
	if s.State != StateMenu || s.ExitRequested {
		return TransitionNone
	}

	switch {
	case a.IsDirectional():
		s.Selection = s.Selection.Toggle()
		return TransitionToggled
	case a == core.ActionConfirm:
		if s.Selection == OptionStart {
			s.State = StatePlaying
			return TransitionStarted
		}
		s.ExitRequested = true
		return TransitionExit
	}
	return TransitionNone
}

// MenuItem is one rendered menu option.
type MenuItem struct {
	Label       string
	Highlighted bool
}

// MenuItems returns the START and EXIT entries for the current selection.
// Exactly one of them is highlighted.
func MenuItems(selection Option) [2]MenuItem {
	start := MenuItem{Label: " START"}
	exit := MenuItem{Label: " EXIT"}
	if selection == OptionStart {
		start = MenuItem{Label: ">START", Highlighted: true}
	} else {
		exit = MenuItem{Label: ">EXIT", Highlighted: true}
	}
	return [2]MenuItem{start, exit}
}
