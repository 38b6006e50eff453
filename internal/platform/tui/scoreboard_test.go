package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/scores"
)

func loadScoreboard(t *testing.T, m ScoreboardModel) ScoreboardModel {
	t.Helper()
	msg := m.Init()()
	next, _ := m.Update(msg)
	return next.(ScoreboardModel)
}

func TestScoreboardShowsEntries(t *testing.T) {
	mem := scores.NewMemory()
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, e := range []scores.Entry{
		{Initials: "AAA", Score: 120, Level: 2, CreatedAt: now.Add(-time.Hour)},
		{Initials: "BOB", Score: 450, Level: 4, CreatedAt: now.Add(-2 * time.Hour)},
	} {
		if err := mem.InsertScore(ctx, e); err != nil {
			t.Fatalf("InsertScore: %v", err)
		}
	}

	m := NewScoreboardModel(mem, 80, 30)
	m.now = func() time.Time { return now }
	m = loadScoreboard(t, m)

	if m.loading {
		t.Error("model should stop loading after scores arrive")
	}
	if len(m.entries) != 2 || m.entries[0].Initials != "BOB" {
		t.Fatalf("entries = %+v, expected BOB first", m.entries)
	}

	view := m.View()
	for _, want := range []string{"BOB", "000450", "1 hour ago"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestScoreboardEmptyAndUnavailable(t *testing.T) {
	m := loadScoreboard(t, NewScoreboardModel(scores.NewMemory(), 80, 30))
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Errorf("empty store should say so:\n%s", m.View())
	}

	m = loadScoreboard(t, NewScoreboardModel(nil, 80, 30))
	if !strings.Contains(m.View(), "Scores unavailable") {
		t.Errorf("missing store should report unavailable:\n%s", m.View())
	}
}

func TestScoreboardKeys(t *testing.T) {
	m := loadScoreboard(t, NewScoreboardModel(scores.NewMemory(), 80, 30))

	next, cmd := m.Update(runes("r"))
	m = next.(ScoreboardModel)
	if !m.loading || cmd == nil {
		t.Error("r should start a reload")
	}

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = next.(ScoreboardModel)
	if cmd == nil || !m.quitting {
		t.Fatal("esc should quit")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, expected %q", got, "  ab")
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText should not truncate, got %q", got)
	}
}
