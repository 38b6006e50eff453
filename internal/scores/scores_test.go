package scores

import (
	"context"
	"errors"
	"testing"
	"time"
)

func table(values ...int) []Entry {
	top := make([]Entry, 0, len(values))
	for _, v := range values {
		top = append(top, Entry{Initials: "AAA", Score: v, Level: 1})
	}
	return top
}

func TestQualifies(t *testing.T) {
	full := table(500, 400, 300, 200, 100)

	tests := []struct {
		name  string
		top   []Entry
		score int
		want  bool
	}{
		{"empty table", nil, 0, true},
		{"short table", table(500, 400), 1, true},
		{"above lowest", full, 150, true},
		{"tie with lowest", full, 100, false},
		{"below lowest", full, 99, false},
		{"new best", full, 501, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Qualifies(tt.top, tt.score, DefaultLimit); got != tt.want {
				t.Errorf("Qualifies(%d) = %v, expected %v", tt.score, got, tt.want)
			}
		})
	}
}

func TestQualifiesDefaultSize(t *testing.T) {
	if Qualifies(table(500, 400, 300, 200, 100), 50, 0) {
		t.Error("size 0 should fall back to the default table size")
	}
}

func TestRank(t *testing.T) {
	full := table(500, 400, 300, 200, 100)

	tests := []struct {
		score int
		want  int
	}{
		{501, 1},
		{450, 2},
		{150, 5},
		{100, 6},
	}
	for _, tt := range tests {
		if got := Rank(full, tt.score); got != tt.want {
			t.Errorf("Rank(%d) = %d, expected %d", tt.score, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  error
	}{
		{"valid", Entry{Initials: "ABC", Score: 0, Level: 1}, nil},
		{"short initials", Entry{Initials: "AB", Score: 10, Level: 1}, ErrInvalidInitials},
		{"long initials", Entry{Initials: "ABCD", Score: 10, Level: 1}, ErrInvalidInitials},
		{"lowercase", Entry{Initials: "abc", Score: 10, Level: 1}, ErrInvalidInitials},
		{"digit", Entry{Initials: "A1C", Score: 10, Level: 1}, ErrInvalidInitials},
		{"negative score", Entry{Initials: "ABC", Score: -1, Level: 1}, ErrInvalidScore},
		{"zero level", Entry{Initials: "ABC", Score: 10, Level: 0}, ErrInvalidLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.entry)
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, expected %v", err, tt.want)
			}
		})
	}
}

func TestNewEntryUppercases(t *testing.T) {
	e := NewEntry("abc", 150, 2)
	if e.Initials != "ABC" || e.Score != 150 || e.Level != 2 {
		t.Errorf("NewEntry = %+v", e)
	}
	if err := Validate(e); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestFormatRow(t *testing.T) {
	got := FormatRow(1, Entry{Initials: "ABC", Score: 150, Level: 2})
	if got != "1. ABC  000150  LVL 2" {
		t.Errorf("FormatRow = %q", got)
	}
}

func TestMemoryOrdering(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	inserts := []Entry{
		{Initials: "LOW", Score: 10, Level: 1},
		{Initials: "TOP", Score: 90, Level: 3},
		{Initials: "MID", Score: 50, Level: 2},
		{Initials: "TIE", Score: 50, Level: 2},
	}
	for _, e := range inserts {
		if err := m.InsertScore(ctx, e); err != nil {
			t.Fatalf("InsertScore(%s): %v", e.Initials, err)
		}
	}

	top, err := m.TopScores(ctx, 3)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	want := []string{"TOP", "MID", "TIE"}
	if len(top) != len(want) {
		t.Fatalf("got %d entries, expected %d", len(top), len(want))
	}
	for i, w := range want {
		if top[i].Initials != w {
			t.Errorf("top[%d] = %s, expected %s", i, top[i].Initials, w)
		}
		if top[i].CreatedAt.IsZero() {
			t.Errorf("top[%d] has no timestamp", i)
		}
	}
}

func TestMemoryRejectsInvalid(t *testing.T) {
	m := NewMemory()
	err := m.InsertScore(context.Background(), Entry{Initials: "A", Score: 10, Level: 1})
	if !errors.Is(err, ErrInvalidInitials) {
		t.Errorf("InsertScore = %v, expected ErrInvalidInitials", err)
	}
	top, _ := m.TopScores(context.Background(), 5)
	if len(top) != 0 {
		t.Error("invalid entry must not be stored")
	}
}

func TestMemoryKeepsTimestamp(t *testing.T) {
	m := NewMemory()
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if err := m.InsertScore(context.Background(), Entry{Initials: "ABC", Score: 1, Level: 1, CreatedAt: at}); err != nil {
		t.Fatal(err)
	}
	top, _ := m.TopScores(context.Background(), 1)
	if !top[0].CreatedAt.Equal(at) {
		t.Errorf("CreatedAt = %v, expected %v", top[0].CreatedAt, at)
	}
}

func TestMemoryCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := NewMemory()
	if _, err := m.TopScores(ctx, 5); !errors.Is(err, context.Canceled) {
		t.Errorf("TopScores = %v, expected context.Canceled", err)
	}
	if err := m.InsertScore(ctx, NewEntry("ABC", 1, 1)); !errors.Is(err, context.Canceled) {
		t.Errorf("InsertScore = %v, expected context.Canceled", err)
	}
}
