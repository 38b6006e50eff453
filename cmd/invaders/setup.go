package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/scores"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// defaultLogFile receives terminal game logs, which must stay off the TUI.
const defaultLogFile = "~/.invaders/invaders.log"

// newLogger builds the process logger. When fallback is nil and no
// --log-file is given, logs go to defaultLogFile. The returned closer
// releases the log file, if any.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w, closer := fallback, func() {}
	path := flagLogFile
	if path == "" && fallback == nil {
		path = defaultLogFile
	}
	if path != "" {
		f, err := openLogFile(path)
		if err != nil {
			return nil, nil, err
		}
		w, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

func openLogFile(path string) (*os.File, error) {
	path, err := storage.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

// loadGameConfig loads the YAML config and applies --difficulty.
func loadGameConfig() (config.InvadersConfig, error) {
	cfg, err := config.LoadInvaders(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty == "" {
		return cfg, nil
	}

	preset := config.ParsePreset(flagDifficulty)
	if preset == "" {
		return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	config.ApplyInvadersPreset(&cfg, preset)
	return cfg, nil
}

// openScoreService opens the Postgres store when --scores-dsn is set and
// the local SQLite database otherwise.
func openScoreService() (scores.Service, func(), error) {
	if flagScoresDSN != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		pg, err := storage.OpenPostgres(ctx, flagScoresDSN)
		if err != nil {
			return nil, nil, err
		}
		return pg, pg.Close, nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, nil, err
	}
	return store, func() { store.Close() }, nil
}
