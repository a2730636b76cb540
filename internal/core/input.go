package core

// Action represents a semantic input, abstracted from physical keys.
// Platforms map their own key codes onto these.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H
	ActionRight          // Right arrow, D, L
	ActionConfirm        // Enter
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the action is a left or right input.
func (a Action) IsDirectional() bool {
	return a == ActionLeft || a == ActionRight
}

// Button identifies a pointer button.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

// EventKind distinguishes key events from pointer events.
type EventKind int

const (
	EventKey EventKind = iota
	EventPointer
)

// Event is a single input event delivered by a platform.
// Pointer coordinates are in world space, not screen space.
type Event struct {
	Kind    EventKind
	Action  Action // EventKey only
	Button  Button // EventPointer only
	Pressed bool   // False for releases
	X, Y    float64
}

// KeyPress builds a key-pressed event.
func KeyPress(a Action) Event {
	return Event{Kind: EventKey, Action: a, Pressed: true}
}

// KeyRelease builds a key-released event.
func KeyRelease(a Action) Event {
	return Event{Kind: EventKey, Action: a}
}

// Click builds a button-pressed pointer event at world position (x, y).
func Click(b Button, x, y float64) Event {
	return Event{Kind: EventPointer, Button: b, Pressed: true, X: x, Y: y}
}

// EventQueue buffers input events between ticks.
// Platforms push as events arrive and drain once per tick.
type EventQueue struct {
	events []Event
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 8)}
}

// Push appends an event in arrival order.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of buffered events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns all buffered events in arrival order and empties the queue.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

// Partition splits events into key and pointer events,
// preserving arrival order within each group.
func Partition(events []Event) (keys, pointers []Event) {
	for _, e := range events {
		switch e.Kind {
		case EventKey:
			keys = append(keys, e)
		case EventPointer:
			pointers = append(pointers, e)
		}
	}
	return keys, pointers
}
