// Package scores holds the high-score model and the asynchronous adapter the
// game uses to talk to a score store without blocking the frame loop.
package scores

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// DefaultLimit is the size of the high-score table.
const DefaultLimit = 5

// InitialsLen is the exact number of letters in a player's initials.
const InitialsLen = 3

// Validation errors returned by Validate.
var (
	ErrInvalidInitials = errors.New("scores: initials must be exactly 3 letters A-Z")
	ErrInvalidScore    = errors.New("scores: score must not be negative")
	ErrInvalidLevel    = errors.New("scores: level must be positive")
)

// ErrUnavailable is reported when no store is configured.
var ErrUnavailable = errors.New("scores: no score service configured")

// Entry is one submitted high score. Entries are immutable once stored.
type Entry struct {
	Initials  string
	Score     int
	Level     int
	CreatedAt time.Time
}

// Service is a high-score store.
type Service interface {
	// TopScores returns at most limit entries ordered by score descending.
	TopScores(ctx context.Context, limit int) ([]Entry, error)

	// InsertScore stores a validated entry.
	InsertScore(ctx context.Context, e Entry) error
}

// IsInitialsLetter reports whether r may appear in initials (either case).
func IsInitialsLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// ValidInitials reports whether s is exactly three uppercase letters.
func ValidInitials(s string) bool {
	if len(s) != InitialsLen {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// Validate checks an entry before it is stored.
func Validate(e Entry) error {
	switch {
	case !ValidInitials(e.Initials):
		return fmt.Errorf("%w: %q", ErrInvalidInitials, e.Initials)
	case e.Score < 0:
		return fmt.Errorf("%w: %d", ErrInvalidScore, e.Score)
	case e.Level < 1:
		return fmt.Errorf("%w: %d", ErrInvalidLevel, e.Level)
	}
	return nil
}

// NewEntry builds an entry, upper-casing the initials.
func NewEntry(initials string, score, level int) Entry {
	return Entry{
		Initials: strings.ToUpper(initials),
		Score:    score,
		Level:    level,
	}
}

// Qualifies reports whether score earns a place in a table of the given
// size. top must be ordered by score descending. A tie with the lowest
// entry of a full table does not qualify.
func Qualifies(top []Entry, score, size int) bool {
	if size <= 0 {
		size = DefaultLimit
	}
	if len(top) < size {
		return true
	}
	return score > top[size-1].Score
}

// Rank returns the 1-based position score would take in top.
func Rank(top []Entry, score int) int {
	for i, e := range top {
		if score > e.Score {
			return i + 1
		}
	}
	return len(top) + 1
}

// FormatRow renders one leaderboard line, e.g. "1. ABC  000150  LVL 2".
func FormatRow(rank int, e Entry) string {
	return fmt.Sprintf("%d. %-3s  %06d  LVL %d", rank, e.Initials, e.Score, e.Level)
}
