package storage

import (
	"context"
	"io/fs"
	"os"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/scores"
)

func TestMigrationsEmbedded(t *testing.T) {
	data, err := fs.ReadFile(migrations, "migrations/00001_high_scores.sql")
	if err != nil {
		t.Fatalf("migration not embedded: %v", err)
	}
	sql := string(data)
	for _, want := range []string{"-- +goose Up", "-- +goose Down", "CREATE TABLE IF NOT EXISTS high_scores", "score DESC"} {
		if !strings.Contains(sql, want) {
			t.Errorf("migration missing %q", want)
		}
	}
}

func TestOpenPostgresBadDSN(t *testing.T) {
	if _, err := OpenPostgres(context.Background(), "postgres://%zz"); err == nil {
		t.Error("expected an error for a malformed DSN")
	}
}

// TestPostgresRoundTrip runs against a live database when
// INVADERS_TEST_POSTGRES is set, e.g. postgres://localhost/invaders_test.
func TestPostgresRoundTrip(t *testing.T) {
	dsn := os.Getenv("INVADERS_TEST_POSTGRES")
	if dsn == "" {
		t.Skip("INVADERS_TEST_POSTGRES not set")
	}
	ctx := context.Background()

	pg, err := OpenPostgres(ctx, dsn)
	if err != nil {
		t.Fatalf("OpenPostgres() failed: %v", err)
	}
	defer pg.Close()

	if _, err := pg.pool.Exec(ctx, "TRUNCATE high_scores"); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	for _, e := range []scores.Entry{
		scores.NewEntry("AAA", 100, 1),
		scores.NewEntry("BBB", 300, 3),
		scores.NewEntry("CCC", 200, 2),
	} {
		if err := pg.InsertScore(ctx, e); err != nil {
			t.Fatalf("InsertScore(%s) failed: %v", e.Initials, err)
		}
	}

	top, err := pg.TopScores(ctx, 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 2 || top[0].Initials != "BBB" || top[1].Initials != "CCC" {
		t.Errorf("TopScores() = %+v", top)
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should default to now()")
	}
}
