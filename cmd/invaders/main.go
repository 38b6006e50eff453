// invaders is a Space Invaders arcade shooter for the terminal, a desktop
// window, or remote play over SSH.
//
// Usage:
//
//	invaders play            - Play in the terminal
//	invaders window          - Play in a desktop window (gamepad supported)
//	invaders scores          - Show the high score table
//	invaders serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set terminal frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.invaders/scores.db)
//	--scores-dsn <dsn>    - Use a shared Postgres score table instead of the local database
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagScoresDSN  string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders - defend the planet from your terminal",
	Long: `Invaders is a retro arcade shooter. Destroy the descending swarm,
hide behind barriers and keep your initials on the top-5 table.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window with gamepad support
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  invaders play
  invaders play --difficulty hard
  invaders window --scale 1.5
  invaders scores --interactive
  invaders serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Terminal frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.invaders/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagScoresDSN, "scores-dsn", "", "Postgres connection string for a shared score table")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// fail prints an error the way every subcommand reports it and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
