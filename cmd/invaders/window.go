package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/desktop"
	"github.com/vovakirdan/tui-invaders/internal/scores"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open Space Invaders in a desktop window at playfield resolution.

The window driver sees key releases and reads the first connected gamepad:
  Left stick   - Move
  A            - Fire / confirm
  B            - Back
  Y            - High scores
  Start        - Pause
  D-pad        - Edit initials

Examples:
  invaders window
  invaders window --scale 1.5 --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the 800x600 playfield")
}

func runWindow(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := newLogger("invaders", os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	svc, closeStore, err := openScoreService()
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		svc, closeStore = nil, func() {}
	}
	defer closeStore()

	adapter := scores.NewAdapter(svc, scores.WithLogger(logger))
	defer adapter.Close()

	game := invaders.New(gameCfg, adapter)
	if err := desktop.Run(game, gameCfg, flagSeed, flagScale, logger); err != nil {
		adapter.Close()
		closeStore()
		fail("running window: %v", err)
	}
}
