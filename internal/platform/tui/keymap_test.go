package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/input"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want input.Key
	}{
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, input.KeyLeft},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, input.KeyRight},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, input.KeyUp},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, input.KeyDown},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, input.KeyFire},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, input.KeyEnter},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, input.KeyEscape},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, input.KeyBackspace},
		{"letter", runes("a"), input.KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestIsQuit(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		typing bool
		want   bool
	}{
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, false, true},
		{"ctrl+c while typing", tea.KeyMsg{Type: tea.KeyCtrlC}, true, true},
		{"q", runes("q"), false, true},
		{"Q", runes("Q"), false, true},
		{"q while typing", runes("q"), true, false},
		{"other letter", runes("x"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.IsQuit(tt.msg, tt.typing); got != tt.want {
				t.Errorf("IsQuit(%q, %v) = %v, expected %v", tt.msg.String(), tt.typing, got, tt.want)
			}
		})
	}
}

func TestApplyFeedsNormalizer(t *testing.T) {
	km := NewKeyMapper()
	n := input.NewNormalizer(config.InputConfig{AxisDeadzone: 0.1, KeyHoldTicks: 2})

	km.Apply(tea.KeyMsg{Type: tea.KeyEnter}, n)
	km.Apply(runes("x"), n)
	km.Apply(tea.KeyMsg{Type: tea.KeyLeft}, n)

	f := n.Poll()
	if !f.Has(core.EventConfirm) {
		t.Error("enter should produce Confirm")
	}
	if !f.Has(core.EventCharInput) {
		t.Error("letters should produce CharInput")
	}
	if f.Axis != -1 {
		t.Errorf("Axis = %v, expected -1 after left", f.Axis)
	}
}
