package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/input"
)

// KeyMapper translates Bubble Tea key messages into normalizer input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a named key. Printable keys other than space return
// KeyNone and are handled as runes.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) input.Key {
	switch msg.String() {
	case "left":
		return input.KeyLeft
	case "right":
		return input.KeyRight
	case "up":
		return input.KeyUp
	case "down":
		return input.KeyDown
	case " ":
		return input.KeyFire
	case "enter":
		return input.KeyEnter
	case "esc":
		return input.KeyEscape
	case "backspace":
		return input.KeyBackspace
	}
	return input.KeyNone
}

// IsQuit reports whether the key ends the program. While typing, q is a
// letter like any other.
func (km *KeyMapper) IsQuit(msg tea.KeyMsg, typing bool) bool {
	switch msg.String() {
	case "ctrl+c":
		return true
	case "q", "Q":
		return !typing
	}
	return false
}

// Apply feeds a key message into the normalizer.
func (km *KeyMapper) Apply(msg tea.KeyMsg, n *input.Normalizer) {
	if k := km.MapKey(msg); k != input.KeyNone {
		n.PressKey(k)
		return
	}
	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			n.PressRune(r)
		}
	}
}
