package storage

import (
	"context"
	"embed"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/vovakirdan/tui-invaders/internal/scores"
)

//go:embed migrations/*.sql
var migrations embed.FS

// PingTimeout bounds the connectivity check in OpenPostgres.
const PingTimeout = 5 * time.Second

// Postgres is a shared high-score store backed by a pgx connection pool.
type Postgres struct {
	pool *pgxpool.Pool
}

// OpenPostgres connects to dsn, verifies the connection and applies
// pending migrations.
func OpenPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, PingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("storage: cannot ping database: %w", err)
	}

	if err := runMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

// runMigrations applies the embedded goose migrations.
func runMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	goose.SetLogger(goose.NopLogger())
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	return goose.UpContext(ctx, db, "migrations")
}

// Close releases every pooled connection.
func (p *Postgres) Close() {
	p.pool.Close()
}

// InsertScore validates and records a new entry.
func (p *Postgres) InsertScore(ctx context.Context, e scores.Entry) error {
	if err := scores.Validate(e); err != nil {
		return err
	}

	var createdAt *time.Time
	if !e.CreatedAt.IsZero() {
		createdAt = &e.CreatedAt
	}
	_, err := p.pool.Exec(ctx,
		`INSERT INTO high_scores (initials, score, level, created_at)
		 VALUES ($1, $2, $3, COALESCE($4, now()))`,
		e.Initials, e.Score, e.Level, createdAt,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	return nil
}

// TopScores retrieves the top entries ordered by score descending.
func (p *Postgres) TopScores(ctx context.Context, limit int) ([]scores.Entry, error) {
	if limit <= 0 {
		limit = scores.DefaultLimit
	}

	rows, err := p.pool.Query(ctx,
		`SELECT initials, score, level, created_at
		 FROM high_scores
		 ORDER BY score DESC, id ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []scores.Entry
	for rows.Next() {
		var e scores.Entry
		if err := rows.Scan(&e.Initials, &e.Score, &e.Level, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

var _ scores.Service = (*Postgres)(nil)
