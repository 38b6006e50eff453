package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-invaders/internal/input"
)

// keyBindings are the edge-triggered named keys. Letters and space arrive
// through AppendInputChars.
var keyBindings = []struct {
	key ebiten.Key
	in  input.Key
}{
	{ebiten.KeyArrowUp, input.KeyUp},
	{ebiten.KeyArrowDown, input.KeyDown},
	{ebiten.KeyEnter, input.KeyEnter},
	{ebiten.KeyNumpadEnter, input.KeyEnter},
	{ebiten.KeyEscape, input.KeyEscape},
	{ebiten.KeyBackspace, input.KeyBackspace},
}

func (w *Window) pollKeyboard() {
	left := ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	right := ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	w.normalizer.SetKeyHeld(input.KeyLeft, left)
	w.normalizer.SetKeyHeld(input.KeyRight, right)

	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			w.normalizer.PressKey(b.in)
		}
	}

	typing := w.game.State().Typing
	w.chars = ebiten.AppendInputChars(w.chars[:0])
	for _, r := range w.chars {
		if isQuitRune(r, typing) {
			w.quit = true
			continue
		}
		w.normalizer.PressRune(r)
	}
}

// isQuitRune reports whether r ends the program. While typing, q is a letter.
func isQuitRune(r rune, typing bool) bool {
	return (r == 'q' || r == 'Q') && !typing
}

// pollGamepad reads the first connected pad. Pads with the standard
// layout use its button order, which matches input's button indices.
func (w *Window) pollGamepad() {
	w.padIDs = ebiten.AppendGamepadIDs(w.padIDs[:0])
	if len(w.padIDs) == 0 {
		w.normalizer.UpdateGamepad(input.GamepadState{})
		return
	}

	id := w.padIDs[0]
	var st input.GamepadState
	if ebiten.IsStandardGamepadLayoutAvailable(id) {
		st = gamepadState(
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			func(i int) bool {
				return ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButton(i))
			},
		)
	} else {
		st = gamepadState(
			ebiten.GamepadAxisValue(id, 0),
			func(i int) bool {
				return ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton(i))
			},
		)
	}
	w.normalizer.UpdateGamepad(st)
}

// gamepadState builds a connected pad reading.
func gamepadState(axis float64, pressed func(i int) bool) input.GamepadState {
	st := input.GamepadState{Connected: true, Axis0: axis}
	for i := range st.Buttons {
		st.Buttons[i] = pressed(i)
	}
	return st
}
