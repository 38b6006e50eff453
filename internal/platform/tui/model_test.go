package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultInvadersConfig()
	game := invaders.New(cfg, nil)
	m := NewModel(game, cfg.Input, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}, nil)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init should schedule a tick")
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return mm, cmd
}

func TestModelStartsGameOnEnter(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, TickMsg(time.Now()))
	if m.State().Mode != "title" {
		t.Fatalf("Mode = %q, expected title", m.State().Mode)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := update(t, m, TickMsg(time.Now()))
	if m.State().Mode != "playing" {
		t.Errorf("Mode = %q, expected playing", m.State().Mode)
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.State().Lives != 3 {
		t.Errorf("Lives = %d, expected 3", m.State().Lives)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, TickMsg(time.Now()))

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = update(t, m, TickMsg(time.Now()))

	if m.State().Mode != "playing" {
		t.Errorf("Mode = %q after resize, expected playing", m.State().Mode)
	}
	if lines := strings.Count(m.View(), "\n") + 1; lines != 40 {
		t.Errorf("View has %d lines, expected 40", lines)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}

	// Ticks after quitting stop the loop
	if _, cmd := update(t, m, TickMsg(time.Now())); cmd != nil {
		t.Error("no tick should be scheduled after quitting")
	}
}

func TestModelViewShowsTitle(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, TickMsg(time.Now()))

	if !strings.Contains(m.View(), "H - HIGH SCORES") {
		t.Errorf("title screen should offer the high score table:\n%s", m.View())
	}
}
