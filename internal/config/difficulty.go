package config

import "math"

// DifficultyManager derives per-level enemy parameters.
// Both values grow linearly with the level number:
//
//	speed  = base_enemy_speed  + enemy_speed_step  * (level - 1)
//	chance = base_shoot_chance + shoot_chance_step * (level - 1)
//
// When progression is disabled every level plays like level 1.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// EnemySpeed returns the horizontal swarm speed for a level.
func (d *DifficultyManager) EnemySpeed(level int) float64 {
	v := d.cfg.BaseEnemySpeed + d.cfg.EnemySpeedStep*d.steps(level)
	return capAt(v, d.cfg.MaxEnemySpeed)
}

// ShootChance returns the swarm-wide, per-tick probability that one enemy
// fires at the given level.
func (d *DifficultyManager) ShootChance(level int) float64 {
	v := d.cfg.BaseShootChance + d.cfg.ShootChanceStep*d.steps(level)
	return clampF(capAt(v, d.cfg.MaxShootChance), 0.0, 1.0)
}

func (d *DifficultyManager) steps(level int) float64 {
	if !d.cfg.Enabled || level <= 1 {
		return 0
	}
	return float64(level - 1)
}

// capAt limits v to limit; a non-positive limit means unbounded.
func capAt(v, limit float64) float64 {
	if limit > 0 && v > limit {
		return limit
	}
	return v
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
