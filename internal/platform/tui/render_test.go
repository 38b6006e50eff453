package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawText(0, 1, "cd")

	if got := RenderScreen(s); got != s.String() {
		t.Errorf("RenderScreen = %q, expected %q", got, s.String())
	}
}

func TestRenderScreenColoredRuns(t *testing.T) {
	s := core.NewScreen(10, 1)
	s.DrawTextColored(2, 0, "XYZ", core.ColorRed)

	out := RenderScreen(s)
	if !strings.Contains(out, "XYZ") {
		t.Errorf("colored run should stay contiguous, got %q", out)
	}
	if strings.Contains(out, "\n") {
		t.Error("single row should not contain newlines")
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("unknown color should render unstyled, got %q", got)
	}
}

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}
	for _, tt := range tests {
		if got := frameInterval(tt.rate); got != tt.want {
			t.Errorf("frameInterval(%d) = %v, expected %v", tt.rate, got, tt.want)
		}
	}
}
