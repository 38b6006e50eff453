// Package desktop runs the invaders game in a native window with Ebitengine.
// It is the driver that sees real key releases and gamepads.
package desktop

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/input"
)

// Window adapts an invaders game to ebiten.Game. Every Update is one
// fixed simulation tick.
type Window struct {
	game       *invaders.Game
	normalizer *input.Normalizer
	logger     *log.Logger

	fieldW, fieldH int
	chars          []rune
	padIDs         []ebiten.GamepadID
	quit           bool
}

// NewWindow wraps game. The game must already be Reset.
func NewWindow(game *invaders.Game, cfg config.InvadersConfig, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Key releases are observed directly, so a press only holds for its own tick
	inCfg := cfg.Input
	inCfg.KeyHoldTicks = 1

	return &Window{
		game:       game,
		normalizer: input.NewNormalizer(inCfg),
		logger:     logger,
		fieldW:     int(cfg.Playfield.Width),
		fieldH:     int(cfg.Playfield.Height),
	}
}

// Update polls input and advances the game by one tick.
func (w *Window) Update() error {
	w.pollKeyboard()
	w.pollGamepad()
	if w.quit {
		w.logger.Info("quit", "score", w.game.State().Score)
		return ebiten.Termination
	}

	prev := w.game.Mode()
	w.game.Step(w.normalizer.Poll())
	if mode := w.game.Mode(); mode != prev {
		w.logger.Debug("mode changed", "from", prev, "to", mode)
	}
	return nil
}

// Draw renders the latest snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	snap := w.game.Snapshot()
	drawSnapshot(screen, &snap)
}

// Layout keeps the logical screen at playfield size; ebiten scales it.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.fieldW, w.fieldH
}

// tickRate converts the configured tick length to updates per second.
func tickRate(tickMillis int) int {
	if tickMillis <= 0 {
		return ebiten.DefaultTPS
	}
	return max(int(time.Second/(time.Duration(tickMillis)*time.Millisecond)), 1)
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(game *invaders.Game, cfg config.InvadersConfig, seed int64, scale float64, logger *log.Logger) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if scale <= 0 {
		scale = 1
	}
	tps := tickRate(cfg.Timing.TickMillis)

	game.Reset(core.RuntimeConfig{
		ScreenW:  int(cfg.Playfield.Width),
		ScreenH:  int(cfg.Playfield.Height),
		TickRate: tps,
		Seed:     seed,
	})
	w := NewWindow(game, cfg, logger)

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(int(cfg.Playfield.Width*scale), int(cfg.Playfield.Height*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)

	w.logger.Info("starting window", "tps", tps, "seed", seed)
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	w.logger.Info("window closed")
	return nil
}
