// Package input turns raw device input into the logical event stream the
// game consumes. Keyboard presses and gamepad polls are merged into one
// core.InputFrame per tick.
package input

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Key is a device-independent keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyFire
	KeyEnter
	KeyEscape
	KeyPause
	KeyHighScores
	KeyBackspace
)

// Standard gamepad button indices.
const (
	ButtonA         = 0
	ButtonB         = 1
	ButtonY         = 3
	ButtonStart     = 9
	ButtonDPadUp    = 12
	ButtonDPadDown  = 13
	ButtonDPadLeft  = 14
	ButtonDPadRight = 15
)

// MaxButtons is the number of gamepad buttons tracked.
const MaxButtons = 16

// GamepadState is one poll of a gamepad.
type GamepadState struct {
	Connected bool
	Axis0     float64 // Horizontal stick, -1 (left) to 1 (right)
	Buttons   [MaxButtons]bool
}

// buttonEvents lists the events fired on a button's rising edge.
var buttonEvents = map[int][]core.EventKind{
	ButtonA:         {core.EventFire, core.EventConfirm},
	ButtonB:         {core.EventCancel},
	ButtonY:         {core.EventMenuSecondary},
	ButtonStart:     {core.EventTogglePause},
	ButtonDPadUp:    {core.EventInitialsCursorUp},
	ButtonDPadDown:  {core.EventInitialsCursorDown},
	ButtonDPadLeft:  {core.EventInitialsCursorLeft},
	ButtonDPadRight: {core.EventInitialsCursorRight},
}

// Normalizer accumulates input between ticks. It is not safe for
// concurrent use; drivers feed it from their own loop.
type Normalizer struct {
	deadzone  float64
	holdTicks int

	pending core.InputFrame

	// Terminals only report presses, so a direction press counts as held
	// for holdTicks polls. Key-up aware sources use leftDown/rightDown.
	leftHold, rightHold int
	leftDown, rightDown bool

	padAxis     float64
	lastButtons [MaxButtons]bool
}

// NewNormalizer creates a normalizer from the input config.
func NewNormalizer(cfg config.InputConfig) *Normalizer {
	return &Normalizer{
		deadzone:  cfg.AxisDeadzone,
		holdTicks: max(cfg.KeyHoldTicks, 1),
	}
}

// PressKey records a key press.
func (n *Normalizer) PressKey(k Key) {
	switch k {
	case KeyLeft:
		n.leftHold = n.holdTicks
		n.rightHold = 0
	case KeyRight:
		n.rightHold = n.holdTicks
		n.leftHold = 0
	case KeyUp:
		n.pending.Add(core.EventInitialsCursorUp)
	case KeyDown:
		n.pending.Add(core.EventInitialsCursorDown)
	case KeyFire:
		n.pending.Add(core.EventFire)
	case KeyEnter:
		n.pending.Add(core.EventConfirm)
	case KeyEscape:
		n.pending.Add(core.EventCancel)
	case KeyPause:
		n.pending.Add(core.EventTogglePause)
	case KeyHighScores:
		n.pending.Add(core.EventMenuSecondary)
	case KeyBackspace:
		n.pending.Add(core.EventBackspace)
	}
}

// PressRune records a printable key. Letters are always reported as
// character input; those bound to commands also fire the command.
func (n *Normalizer) PressRune(r rune) {
	if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
		n.pending.AddChar(r)
	}
	switch r {
	case ' ':
		n.PressKey(KeyFire)
	case 'a', 'A':
		n.PressKey(KeyLeft)
	case 'd', 'D':
		n.PressKey(KeyRight)
	case 'r', 'R':
		n.PressKey(KeyPause)
	case 'h', 'H':
		n.PressKey(KeyHighScores)
	}
}

// SetKeyHeld reports the held state of a direction key for sources that
// see key releases.
func (n *Normalizer) SetKeyHeld(k Key, down bool) {
	switch k {
	case KeyLeft:
		n.leftDown = down
	case KeyRight:
		n.rightDown = down
	}
}

// UpdateGamepad records one gamepad poll. Buttons fire on their rising
// edge only. A disconnected pad releases everything.
func (n *Normalizer) UpdateGamepad(st GamepadState) {
	if !st.Connected {
		n.padAxis = 0
		n.lastButtons = [MaxButtons]bool{}
		return
	}

	n.padAxis = st.Axis0
	for i, pressed := range st.Buttons {
		if pressed && !n.lastButtons[i] {
			for _, ev := range buttonEvents[i] {
				n.pending.Add(ev)
			}
		}
	}
	n.lastButtons = st.Buttons
}

// Poll returns the input for the next tick and starts a new frame.
// Held keys win over the analog stick.
func (n *Normalizer) Poll() core.InputFrame {
	frame := n.pending.Clone()
	frame.Axis = n.axis()

	n.pending.Clear()
	n.leftHold = max(n.leftHold-1, 0)
	n.rightHold = max(n.rightHold-1, 0)
	return frame
}

func (n *Normalizer) axis() float64 {
	var keys float64
	if n.leftDown || n.leftHold > 0 {
		keys--
	}
	if n.rightDown || n.rightHold > 0 {
		keys++
	}
	if keys != 0 {
		return keys
	}
	if math.Abs(n.padAxis) <= n.deadzone {
		return 0
	}
	return core.ClampF(n.padAxis, -1, 1)
}
