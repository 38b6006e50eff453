package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Outcome reports what happened during one simulation tick.
type Outcome struct {
	PlayerHit bool // A life was lost and the explosion started
	Cleared   bool // The last enemy was destroyed
	Over      bool // The session ended
	Breach    bool // The session ended because the swarm reached the player
}

// Session is one play-through: the player, swarm, barriers, bullets and
// counters. It advances in fixed ticks and never blocks or logs.
type Session struct {
	cfg        config.InvadersConfig
	difficulty *config.DifficultyManager
	rng        Random

	score int
	lives int
	level int

	player       Player
	enemies      []Enemy
	enemyBullets []Bullet
	barriers     []Barrier
	particles    []Particle

	direction   float64 // +1 right, -1 left
	enemySpeed  float64
	shootChance float64

	// Timers in milliseconds, counting down
	invincibleMs   int
	explosionMs    int
	levelMessageMs int
	exploding      bool
}

// NewSession creates a session at level 1 with full lives.
func NewSession(cfg config.InvadersConfig, rng Random) *Session {
	s := &Session{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rng,
	}
	s.Reset()
	return s
}

// Reset restores the initial session state. Every entity is replaced.
func (s *Session) Reset() {
	s.score = 0
	s.lives = s.cfg.Gameplay.Lives
	s.level = 1
	s.player = newPlayer(s.cfg)
	s.enemies = newSwarm(s.cfg)
	s.enemyBullets = nil
	s.barriers = newBarriers(s.cfg)
	s.particles = nil
	s.direction = 1
	s.invincibleMs = 0
	s.explosionMs = 0
	s.levelMessageMs = 0
	s.exploding = false
	s.applyDifficulty()
}

func (s *Session) applyDifficulty() {
	s.enemySpeed = s.difficulty.EnemySpeed(s.level)
	s.shootChance = s.difficulty.ShootChance(s.level)
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Level returns the current level, starting at 1.
func (s *Session) Level() int { return s.level }

// Exploding reports whether the explosion sub-state is active.
func (s *Session) Exploding() bool { return s.exploding }

// EnemySpeed returns the current horizontal swarm speed.
func (s *Session) EnemySpeed() float64 { return s.enemySpeed }

// ShootChance returns the current per-tick enemy fire probability.
func (s *Session) ShootChance() float64 { return s.shootChance }

// Move shifts the player by axis*speed and clamps it to the playfield.
func (s *Session) Move(axis float64) {
	if axis == 0 {
		return
	}
	s.player.X = core.ClampF(
		s.player.X+axis*s.player.Speed,
		0,
		s.cfg.Playfield.Width-s.player.W,
	)
}

// Fire spawns one player bullet.
func (s *Session) Fire() {
	s.player.Bullets = append(s.player.Bullets, playerShot(s.player, s.cfg.Bullets.Player))
}

// Tick advances the session by one fixed step.
func (s *Session) Tick() Outcome {
	dt := s.cfg.Timing.TickMillis

	s.invincibleMs = max(s.invincibleMs-dt, 0)
	s.levelMessageMs = max(s.levelMessageMs-dt, 0)

	s.advanceBullets()
	s.moveSwarm()

	if len(s.enemies) > 0 && s.rng.Float64() < s.shootChance {
		shooter := s.enemies[pick(s.rng, len(s.enemies))]
		s.enemyBullets = append(s.enemyBullets, enemyShot(shooter, s.cfg.Bullets.Enemy))
	}

	var out Outcome
	s.resolvePlayerBullets()
	s.resolveEnemyBullets(&out)
	if out.Over {
		return out
	}
	s.resolveBarriers()

	if len(s.enemies) == 0 {
		out.Cleared = true
		return out
	}
	for _, e := range s.enemies {
		if e.Bottom() >= s.player.Y {
			out.Over = true
			out.Breach = true
			break
		}
	}
	return out
}

func (s *Session) advanceBullets() {
	kept := s.player.Bullets[:0]
	for _, b := range s.player.Bullets {
		b.Y += b.Speed
		if b.Y > 0 {
			kept = append(kept, b)
		}
	}
	s.player.Bullets = kept

	keptEnemy := s.enemyBullets[:0]
	for _, b := range s.enemyBullets {
		b.Y += b.Speed
		if b.Y < s.cfg.Playfield.Height {
			keptEnemy = append(keptEnemy, b)
		}
	}
	s.enemyBullets = keptEnemy
}

// moveSwarm shifts every enemy horizontally. If any enemy touches an edge
// the direction flips for the next tick and the whole swarm drops now.
func (s *Session) moveSwarm() {
	touched := false
	dx := s.enemySpeed * s.direction
	for i := range s.enemies {
		e := &s.enemies[i]
		e.X += dx
		if e.X <= 0 || e.Right() >= s.cfg.Playfield.Width {
			touched = true
		}
	}
	if !touched {
		return
	}
	s.direction = -s.direction
	for i := range s.enemies {
		s.enemies[i].Y += s.cfg.Enemies.DropDistance
	}
}

// resolvePlayerBullets pairs each player bullet with the first live enemy
// it overlaps. Both are removed and the hit is scored.
func (s *Session) resolvePlayerBullets() {
	if len(s.player.Bullets) == 0 || len(s.enemies) == 0 {
		return
	}
	dead := make([]bool, len(s.enemies))
	kept := s.player.Bullets[:0]
	for _, b := range s.player.Bullets {
		hit := false
		for i := range s.enemies {
			if dead[i] || !core.Overlaps(b.Rect, s.enemies[i].Rect) {
				continue
			}
			dead[i] = true
			hit = true
			s.score += s.cfg.Gameplay.EnemyPoints
			break
		}
		if !hit {
			kept = append(kept, b)
		}
	}
	s.player.Bullets = kept

	alive := s.enemies[:0]
	for i, e := range s.enemies {
		if !dead[i] {
			alive = append(alive, e)
		}
	}
	s.enemies = alive
}

// resolveEnemyBullets handles at most one hit on the player per tick.
func (s *Session) resolveEnemyBullets(out *Outcome) {
	if s.invincibleMs > 0 || s.exploding {
		return
	}
	for i, b := range s.enemyBullets {
		if !core.Overlaps(b.Rect, s.player.Rect) {
			continue
		}
		s.enemyBullets = append(s.enemyBullets[:i], s.enemyBullets[i+1:]...)
		s.hitPlayer(out)
		return
	}
}

func (s *Session) hitPlayer(out *Outcome) {
	s.lives--
	if s.lives <= 0 {
		s.lives = 0
		out.Over = true
		return
	}
	out.PlayerHit = true
	s.exploding = true
	s.explosionMs = s.cfg.Timing.ExplosionMillis
	cx, cy := s.player.Center()
	s.particles = burst(cx, cy, s.cfg.Gameplay)
}

// resolveBarriers stops each bullet at the first barrier it overlaps.
// Player bullets are resolved before enemy bullets.
func (s *Session) resolveBarriers() {
	s.player.Bullets = s.absorb(s.player.Bullets)
	s.enemyBullets = s.absorb(s.enemyBullets)
}

func (s *Session) absorb(bullets []Bullet) []Bullet {
	if len(s.barriers) == 0 {
		return bullets
	}
	kept := bullets[:0]
	for _, b := range bullets {
		if !s.damageBarrier(b.Rect) {
			kept = append(kept, b)
		}
	}
	return kept
}

// damageBarrier hits the first barrier overlapping r. A barrier is
// removed as soon as its health reaches zero.
func (s *Session) damageBarrier(r core.Rect) bool {
	for i := range s.barriers {
		if !core.Overlaps(r, s.barriers[i].Rect) {
			continue
		}
		s.barriers[i].Health--
		if s.barriers[i].Health <= 0 {
			s.barriers = append(s.barriers[:i], s.barriers[i+1:]...)
		}
		return true
	}
	return false
}

// ExplosionTick advances the explosion sub-state by one step. It returns
// true once the explosion has ended and the invincibility window started.
func (s *Session) ExplosionTick() bool {
	if !s.exploding {
		return true
	}
	s.explosionMs -= s.cfg.Timing.TickMillis
	if s.explosionMs <= 0 {
		s.explosionMs = 0
		s.exploding = false
		s.particles = nil
		s.invincibleMs = s.cfg.Timing.InvincibleMillis
		return true
	}

	total := float64(s.cfg.Timing.ExplosionMillis)
	for i := range s.particles {
		p := &s.particles[i]
		p.X += p.VX
		p.Y += p.VY
		p.Alpha = float64(s.explosionMs) / total
		p.Size *= s.cfg.Gameplay.ParticleShrink
	}
	return false
}

// AdvanceLevel moves to the next level: a fresh swarm, harder difficulty
// and the level banner. Barriers, bullets and swarm direction carry over.
func (s *Session) AdvanceLevel() {
	s.level++
	s.enemies = newSwarm(s.cfg)
	s.applyDifficulty()
	s.levelMessageMs = s.cfg.Timing.LevelMessageMillis
}

// PlayerVisible reports whether the ship should be drawn this tick.
// It is hidden while exploding and blinks every 100 ms while invincible.
func (s *Session) PlayerVisible() bool {
	if s.exploding {
		return false
	}
	return s.invincibleMs <= 0 || (s.invincibleMs/100)%2 == 0
}
