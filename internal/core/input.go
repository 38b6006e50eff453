package core

// EventKind is a logical, device-agnostic input event.
// Input sources (keyboard, gamepad) are normalized into these before the game
// sees them.
type EventKind int

const (
	EventNone               EventKind = iota
	EventMoveLeft                     // Level-triggered: held left
	EventMoveRight                    // Level-triggered: held right
	EventFire                         // Shoot (playing)
	EventConfirm                      // Start, restart, submit initials
	EventCancel                       // Back to title
	EventTogglePause                  // Pause/unpause while playing
	EventMenuSecondary                // Title -> high scores
	EventCharInput                    // A letter typed while entering initials
	EventBackspace                    // Remove last initial
	EventInitialsCursorUp             // Cycle last initial forward
	EventInitialsCursorDown           // Cycle last initial backward
	EventInitialsCursorLeft           // Remove last initial (gamepad)
	EventInitialsCursorRight          // Append a new initial (gamepad)
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventMoveLeft:
		return "MoveLeft"
	case EventMoveRight:
		return "MoveRight"
	case EventFire:
		return "Fire"
	case EventConfirm:
		return "Confirm"
	case EventCancel:
		return "Cancel"
	case EventTogglePause:
		return "TogglePause"
	case EventMenuSecondary:
		return "MenuSecondary"
	case EventCharInput:
		return "CharInput"
	case EventBackspace:
		return "Backspace"
	case EventInitialsCursorUp:
		return "InitialsCursorUp"
	case EventInitialsCursorDown:
		return "InitialsCursorDown"
	case EventInitialsCursorLeft:
		return "InitialsCursorLeft"
	case EventInitialsCursorRight:
		return "InitialsCursorRight"
	default:
		return "Unknown"
	}
}

// Event is one logical input event. Char is only meaningful for EventCharInput.
type Event struct {
	Kind EventKind
	Char rune
}

// InputFrame is the normalized input observed by one simulation tick.
// Edge-triggered events are listed in arrival order; horizontal movement is
// level-triggered and carried as an axis value in [-1, 1].
type InputFrame struct {
	Events []Event
	Axis   float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Add appends an edge-triggered event.
func (f *InputFrame) Add(kind EventKind) {
	f.Events = append(f.Events, Event{Kind: kind})
}

// AddChar appends a character event.
func (f *InputFrame) AddChar(r rune) {
	f.Events = append(f.Events, Event{Kind: EventCharInput, Char: r})
}

// Has returns true if the given event was triggered this frame.
// MoveLeft/MoveRight are answered from the axis.
func (f InputFrame) Has(kind EventKind) bool {
	switch kind {
	case EventMoveLeft:
		return f.Axis < 0
	case EventMoveRight:
		return f.Axis > 0
	}
	for _, ev := range f.Events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
	f.Axis = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Axis: f.Axis}
	if len(f.Events) > 0 {
		clone.Events = make([]Event, len(f.Events))
		copy(clone.Events, f.Events)
	}
	return clone
}
