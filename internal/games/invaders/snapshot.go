package invaders

import (
	"math"
	"slices"

	"github.com/vovakirdan/tui-invaders/internal/scores"
)

// Snapshot is a read-only copy of everything needed to draw one frame.
// Renderers never touch the live session.
type Snapshot struct {
	Tick uint64
	Mode Mode

	Score int
	Lives int
	Level int

	FieldW float64
	FieldH float64

	Player        Player // Bullets are copied
	PlayerVisible bool
	Enemies       []Enemy
	EnemyBullets  []Bullet
	Barriers      []Barrier
	BarrierHealth int // Starting health, for shading
	Particles     []Particle

	Direction   float64
	EnemySpeed  float64
	ShootChance float64

	InvincibleMs   int
	ExplosionMs    int
	LevelMessageMs int
	TitleMs        int

	Initials   string
	Checking   bool // Qualification fetch in flight
	Submitting bool // Initials submit in flight
	HighScores []scores.Entry

	RNGState uint64 // Zero unless the generator is a *SimpleRNG
}

// Snapshot returns the current frame state.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	player := s.player
	player.Bullets = slices.Clone(s.player.Bullets)

	snap := Snapshot{
		Tick:  g.tick,
		Mode:  g.mode,
		Score: s.score,
		Lives: s.lives,
		Level: s.level,

		FieldW: g.cfg.Playfield.Width,
		FieldH: g.cfg.Playfield.Height,

		Player:        player,
		PlayerVisible: s.PlayerVisible(),
		Enemies:       slices.Clone(s.enemies),
		EnemyBullets:  slices.Clone(s.enemyBullets),
		Barriers:      slices.Clone(s.barriers),
		BarrierHealth: g.cfg.Barriers.Health,
		Particles:     slices.Clone(s.particles),

		Direction:   s.direction,
		EnemySpeed:  s.enemySpeed,
		ShootChance: s.shootChance,

		InvincibleMs:   s.invincibleMs,
		ExplosionMs:    s.explosionMs,
		LevelMessageMs: s.levelMessageMs,
		TitleMs:        g.titleMs,

		Initials:   string(g.initials),
		Checking:   g.checkTicket != 0,
		Submitting: g.submitTicket != 0,
		HighScores: g.scores.Cached(),
	}
	if rng, ok := g.rng.(*SimpleRNG); ok {
		snap.RNGState = rng.State()
	}
	return snap
}

// Hash returns a simple hash of the simulation state for determinism
// testing. Cosmetic fields (particles, title timer, cached scores) are
// left out.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Mode)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level) //#nosec G115 -- hash computation

	h = hashRect(h, snap.Player.X, snap.Player.Y)
	for _, b := range snap.Player.Bullets {
		h = hashRect(h, b.X, b.Y)
	}
	for _, e := range snap.Enemies {
		h = hashRect(h, e.X, e.Y)
	}
	for _, b := range snap.EnemyBullets {
		h = hashRect(h, b.X, b.Y)
	}
	for _, b := range snap.Barriers {
		h = hashRect(h, b.X, b.Y)
		h = h*31 + uint64(b.Health) //#nosec G115 -- hash computation
	}

	h = h*31 + math.Float64bits(snap.Direction)
	h = h*31 + math.Float64bits(snap.EnemySpeed)
	h = h*31 + math.Float64bits(snap.ShootChance)
	h = h*31 + uint64(snap.InvincibleMs)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ExplosionMs)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelMessageMs) //#nosec G115 -- hash computation

	h = h*31 + snap.RNGState
	return h
}

func hashRect(h uint64, x, y float64) uint64 {
	h = h*31 + math.Float64bits(x)
	return h*31 + math.Float64bits(y)
}
