package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Playfield: PlayfieldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:        60,
			Height:       32,
			Speed:        8,
			BottomOffset: 50,
		},
		Enemies: EnemyConfig{
			Rows:         5,
			Cols:         10,
			Width:        40,
			Height:       32,
			Padding:      10,
			TopOffset:    50,
			DropDistance: 30,
		},
		Barriers: BarrierConfig{
			Count:        4,
			Width:        60,
			Height:       40,
			Health:       4,
			BottomOffset: 150,
		},
		Bullets: BulletsConfig{
			Player: BulletConfig{Width: 4, Height: 10, Speed: 7},
			Enemy:  BulletConfig{Width: 4, Height: 10, Speed: 5},
		},
		Timing: TimingConfig{
			TickMillis:         16, // 60 steps per second
			ExplosionMillis:    2000,
			InvincibleMillis:   2000,
			LevelMessageMillis: 2000,
		},
		Gameplay: GameplayConfig{
			Lives:          3,
			EnemyPoints:    10,
			ParticleCount:  20,
			ParticleSpeed:  5,
			ParticleSize:   3,
			ParticleShrink: 0.99,
			HighScoreSlots: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			BaseEnemySpeed:  1.0,
			EnemySpeedStep:  0.2,
			BaseShootChance: 0.02,
			ShootChanceStep: 0.005,
		},
		Input: InputConfig{
			AxisDeadzone: 0.1,
			KeyHoldTicks: 6,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
