// Package config provides YAML-based game configuration loading and
// difficulty progression for the invaders game.
package config

// InvadersConfig contains all configuration for the invaders game.
// Distances are playfield units, durations are milliseconds.
type InvadersConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Player     PlayerConfig     `yaml:"player"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Barriers   BarrierConfig    `yaml:"barriers"`
	Bullets    BulletsConfig    `yaml:"bullets"`
	Timing     TimingConfig     `yaml:"timing"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Input      InputConfig      `yaml:"input"`
}

// PlayfieldConfig defines the simulated area.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset"` // y = playfield height - bottom_offset
}

// EnemyConfig defines the swarm grid.
type EnemyConfig struct {
	Rows         int     `yaml:"rows"`
	Cols         int     `yaml:"cols"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Padding      float64 `yaml:"padding"`
	TopOffset    float64 `yaml:"top_offset"`
	DropDistance float64 `yaml:"drop_distance"`
}

// BarrierConfig defines the defensive barriers.
type BarrierConfig struct {
	Count        int     `yaml:"count"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Health       int     `yaml:"health"`
	BottomOffset float64 `yaml:"bottom_offset"` // y = playfield height - bottom_offset
}

// BulletConfig defines one kind of bullet.
type BulletConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// BulletsConfig groups player and enemy bullets.
type BulletsConfig struct {
	Player BulletConfig `yaml:"player"`
	Enemy  BulletConfig `yaml:"enemy"`
}

// TimingConfig defines the fixed tick and timed effects.
type TimingConfig struct {
	TickMillis         int `yaml:"tick_ms"`
	ExplosionMillis    int `yaml:"explosion_ms"`
	InvincibleMillis   int `yaml:"invincible_ms"`
	LevelMessageMillis int `yaml:"level_message_ms"`
}

// GameplayConfig defines scoring and lives.
type GameplayConfig struct {
	Lives          int     `yaml:"lives"`
	EnemyPoints    int     `yaml:"enemy_points"`
	ParticleCount  int     `yaml:"particle_count"`
	ParticleSpeed  float64 `yaml:"particle_speed"`
	ParticleSize   float64 `yaml:"particle_size"`
	ParticleShrink float64 `yaml:"particle_shrink"` // Multiplicative size factor per tick
	HighScoreSlots int     `yaml:"high_score_slots"` // At most scores.DefaultLimit
}

// DifficultyConfig defines the per-level progression.
type DifficultyConfig struct {
	Enabled         bool    `yaml:"enabled"`
	BaseEnemySpeed  float64 `yaml:"base_enemy_speed"`
	EnemySpeedStep  float64 `yaml:"enemy_speed_step"`
	BaseShootChance float64 `yaml:"base_shoot_chance"`
	ShootChanceStep float64 `yaml:"shoot_chance_step"`
	MaxEnemySpeed   float64 `yaml:"max_enemy_speed"`  // 0 = unbounded
	MaxShootChance  float64 `yaml:"max_shoot_chance"` // 0 = unbounded
}

// InputConfig defines input normalization parameters.
type InputConfig struct {
	AxisDeadzone float64 `yaml:"axis_deadzone"`
	KeyHoldTicks int     `yaml:"key_hold_ticks"` // Terminals report no key-up; a press counts as held this long
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
