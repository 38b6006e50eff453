// Package storage provides the high-score stores behind scores.Service:
// a local SQLite database and a shared Postgres database.
// SQLite uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-invaders/internal/scores"
)

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// Stats contains aggregated statistics over every stored score.
type Stats struct {
	Games      int
	HighScore  int
	AvgScore   float64
	BestLevel  int
	LastPlayed time.Time
}

// sqliteTime is the layout SQLite uses for CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := ExpandPath(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			initials TEXT NOT NULL CHECK (length(initials) = 3),
			score INTEGER NOT NULL CHECK (score >= 0),
			level INTEGER NOT NULL CHECK (level >= 1),
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_high_scores_score ON high_scores(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// InsertScore validates and records a new entry.
func (s *Store) InsertScore(ctx context.Context, e scores.Entry) error {
	if err := scores.Validate(e); err != nil {
		return err
	}

	var err error
	if e.CreatedAt.IsZero() {
		_, err = s.db.ExecContext(ctx,
			"INSERT INTO high_scores (initials, score, level) VALUES (?, ?, ?)",
			e.Initials, e.Score, e.Level,
		)
	} else {
		_, err = s.db.ExecContext(ctx,
			"INSERT INTO high_scores (initials, score, level, created_at) VALUES (?, ?, ?, ?)",
			e.Initials, e.Score, e.Level, e.CreatedAt.UTC().Format(sqliteTime),
		)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	return nil
}

// TopScores retrieves the top entries ordered by score descending.
// Equal scores keep insertion order.
func (s *Store) TopScores(ctx context.Context, limit int) ([]scores.Entry, error) {
	if limit <= 0 {
		limit = scores.DefaultLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT initials, score, level, created_at
		 FROM high_scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []scores.Entry
	for rows.Next() {
		var e scores.Entry
		var createdAt any
		if err := rows.Scan(&e.Initials, &e.Score, &e.Level, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Stats returns aggregated statistics over all scores.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	var lastPlayed any
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(level), 0), MAX(created_at)
		 FROM high_scores`,
	).Scan(&stats.Games, &stats.HighScore, &stats.AvgScore, &stats.BestLevel, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// ClearScores deletes every stored score.
func (s *Store) ClearScores(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM high_scores")
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

var _ scores.Service = (*Store)(nil)
