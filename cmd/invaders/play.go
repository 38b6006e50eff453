package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/scores"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game of Space Invaders in the terminal.

Controls:
  Left/Right, A/D  - Move
  Space            - Fire
  Enter            - Start / confirm initials
  R                - Pause
  H                - High scores (title screen)
  Esc              - Back
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, enemies shoot less
  normal - Default settings
  hard   - 2 lives, faster and trigger-happy swarm
  fixed  - No per-level speed-up

Logs are written to ~/.invaders/invaders.log unless --log-file is set.

Examples:
  invaders play
  invaders play --difficulty easy
  invaders play --config ./my-invaders.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger("invaders", nil)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// The game still works without a score store
	svc, closeStore, err := openScoreService()
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		svc, closeStore = nil, func() {}
	}
	defer closeStore()

	adapter := scores.NewAdapter(svc, scores.WithLogger(logger))
	defer adapter.Close()

	game, err := registry.Create("invaders", registry.Deps{Config: gameCfg, Scores: adapter})
	if err != nil {
		fail("creating game: %v", err)
	}

	if err := tui.Run(game, gameCfg.Input, cfg, logger); err != nil {
		adapter.Close()
		closeStore()
		fail("running game: %v", err)
	}
}
