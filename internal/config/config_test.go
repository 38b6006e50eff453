package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg InvadersConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if cfg != DefaultInvadersConfig() {
		t.Errorf("embedded yaml = %+v\nexpected %+v", cfg, DefaultInvadersConfig())
	}
}

func TestLoadInvadersCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("gameplay:\n  lives: 7\nplayer:\n  speed: 12\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders: %v", err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Gameplay.Lives)
	}
	if cfg.Player.Speed != 12 {
		t.Errorf("Player.Speed = %v, expected 12", cfg.Player.Speed)
	}
	// Keys not named keep their defaults
	if cfg.Enemies.Rows != 5 || cfg.Playfield.Width != 800 {
		t.Errorf("unset keys lost defaults: rows=%d width=%v", cfg.Enemies.Rows, cfg.Playfield.Width)
	}
}

func TestLoadInvadersCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadInvaders(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("playfield: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadInvaders(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("timing:\n  tick_ms: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadInvaders(invalid); err == nil {
		t.Error("expected validation error for tick_ms 0")
	}
}

func TestValidateHighScoreSlots(t *testing.T) {
	tests := []struct {
		slots   int
		wantErr bool
	}{
		{0, true},
		{1, false},
		{5, false},
		{6, true},
	}
	for _, tt := range tests {
		cfg := DefaultInvadersConfig()
		cfg.Gameplay.HighScoreSlots = tt.slots
		if err := cfg.Validate(); (err != nil) != tt.wantErr {
			t.Errorf("slots %d: Validate() error = %v, wantErr %v", tt.slots, err, tt.wantErr)
		}
	}
}

func TestLoadInvadersSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults
	cfg, err := LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders: %v", err)
	}
	if cfg != DefaultInvadersConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	// Local configs directory
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	local := []byte("gameplay:\n  lives: 4\n")
	if err := os.WriteFile(filepath.Join(work, "configs", "invaders.yaml"), local, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadInvaders("")
	if cfg.Gameplay.Lives != 4 {
		t.Errorf("local config: Lives = %d, expected 4", cfg.Gameplay.Lives)
	}

	// User config wins over local
	userDir := filepath.Join(home, ".invaders", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	user := []byte("gameplay:\n  lives: 9\n")
	if err := os.WriteFile(filepath.Join(userDir, "invaders.yaml"), user, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadInvaders("")
	if cfg.Gameplay.Lives != 9 {
		t.Errorf("user config: Lives = %d, expected 9", cfg.Gameplay.Lives)
	}

	// A broken user file falls through to the local one
	if err := os.WriteFile(filepath.Join(userDir, "invaders.yaml"), []byte(":::"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadInvaders("")
	if cfg.Gameplay.Lives != 4 {
		t.Errorf("broken user config should fall through: Lives = %d, expected 4", cfg.Gameplay.Lives)
	}
}

func TestApplyInvadersPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		lives   int
		speed   float64
		chance  float64
		enabled bool
	}{
		{DifficultyNormal, 3, 1.0, 0.02, true},
		{DifficultyEasy, 5, 1.0, 0.015, true},
		{DifficultyHard, 2, 1.5, 0.03, true},
		{DifficultyFixed, 3, 1.0, 0.02, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			ApplyInvadersPreset(&cfg, tt.preset)
			if cfg.Gameplay.Lives != tt.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Gameplay.Lives, tt.lives)
			}
			if cfg.Difficulty.BaseEnemySpeed != tt.speed {
				t.Errorf("BaseEnemySpeed = %v, expected %v", cfg.Difficulty.BaseEnemySpeed, tt.speed)
			}
			if cfg.Difficulty.BaseShootChance != tt.chance {
				t.Errorf("BaseShootChance = %v, expected %v", cfg.Difficulty.BaseShootChance, tt.chance)
			}
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tt.enabled)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should yield empty")
	}
}

func TestDifficultyProgression(t *testing.T) {
	const eps = 1e-9
	d := NewDifficultyManager(DefaultInvadersConfig().Difficulty)

	tests := []struct {
		level  int
		speed  float64
		chance float64
	}{
		{1, 1.0, 0.02},
		{2, 1.2, 0.025},
		{3, 1.4, 0.03},
		{6, 2.0, 0.045},
	}
	for _, tt := range tests {
		if got := d.EnemySpeed(tt.level); math.Abs(got-tt.speed) > eps {
			t.Errorf("EnemySpeed(%d) = %v, expected %v", tt.level, got, tt.speed)
		}
		if got := d.ShootChance(tt.level); math.Abs(got-tt.chance) > eps {
			t.Errorf("ShootChance(%d) = %v, expected %v", tt.level, got, tt.chance)
		}
	}

	d.SetEnabled(false)
	if d.IsEnabled() {
		t.Error("IsEnabled should be false after SetEnabled(false)")
	}
	if got := d.EnemySpeed(5); math.Abs(got-1.0) > eps {
		t.Errorf("disabled progression: EnemySpeed(5) = %v, expected 1.0", got)
	}
}

func TestDifficultyCaps(t *testing.T) {
	cfg := DefaultInvadersConfig().Difficulty
	cfg.MaxEnemySpeed = 1.5
	cfg.MaxShootChance = 0.03
	d := NewDifficultyManager(cfg)

	if got := d.EnemySpeed(10); got != 1.5 {
		t.Errorf("EnemySpeed(10) = %v, expected cap 1.5", got)
	}
	if got := d.ShootChance(10); got != 0.03 {
		t.Errorf("ShootChance(10) = %v, expected cap 0.03", got)
	}
}
