package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-invaders/internal/scores"
)

const configFileName = "invaders.yaml"

// LoadInvaders loads invaders configuration.
// Search order: customPath -> ~/.invaders/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default
//
// Every source is decoded on top of DefaultInvadersConfig, so a partial
// file only overrides the keys it names.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFileName); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", configFileName)); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	embedded := DefaultInvadersConfig()
	if err := yaml.Unmarshal(defaultInvadersYAML, &embedded); err != nil {
		return DefaultInvadersConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Missing, broken or invalid
// files are skipped so the next source in the search order is used.
func tryLoad(path string) (InvadersConfig, bool) {
	cfg := DefaultInvadersConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", "configs", filename)
}

// Validate reports values the simulation cannot run with.
func (c InvadersConfig) Validate() error {
	switch {
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("config: playfield must be positive, got %vx%v", c.Playfield.Width, c.Playfield.Height)
	case c.Timing.TickMillis <= 0:
		return fmt.Errorf("config: tick_ms must be positive, got %d", c.Timing.TickMillis)
	case c.Enemies.Rows <= 0 || c.Enemies.Cols <= 0:
		return fmt.Errorf("config: enemy grid must be non-empty, got %dx%d", c.Enemies.Rows, c.Enemies.Cols)
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("config: lives must be positive, got %d", c.Gameplay.Lives)
	case c.Gameplay.HighScoreSlots <= 0:
		return fmt.Errorf("config: high_score_slots must be positive, got %d", c.Gameplay.HighScoreSlots)
	case c.Gameplay.HighScoreSlots > scores.DefaultLimit:
		return fmt.Errorf("config: high_score_slots must be at most %d, got %d", scores.DefaultLimit, c.Gameplay.HighScoreSlots)
	case c.Barriers.Health <= 0 && c.Barriers.Count > 0:
		return fmt.Errorf("config: barrier health must be positive, got %d", c.Barriers.Health)
	}
	return nil
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Difficulty.BaseShootChance = 0.015
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Difficulty.BaseEnemySpeed = 1.5
		cfg.Difficulty.BaseShootChance = 0.03
	}
}
