package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Player is the ship controlled by the user. Bullets lists the player's
// shots in firing order.
type Player struct {
	core.Rect
	Speed   float64
	Bullets []Bullet
}

// Enemy is one member of the swarm.
type Enemy struct {
	core.Rect
	Row int // Grid row at spawn, used for coloring
}

// Bullet is a projectile. Speed is signed: negative travels up the
// playfield, positive travels down.
type Bullet struct {
	core.Rect
	Speed float64
}

// Barrier is a destructible shield.
type Barrier struct {
	core.Rect
	Health int
}

// Particle is one fragment of the player explosion. It has no effect on
// gameplay.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Alpha  float64
}

// newPlayer places the player centered near the bottom of the playfield.
func newPlayer(cfg config.InvadersConfig) Player {
	return Player{
		Rect: core.NewRect(
			cfg.Playfield.Width/2-cfg.Player.Width/2,
			cfg.Playfield.Height-cfg.Player.BottomOffset,
			cfg.Player.Width,
			cfg.Player.Height,
		),
		Speed: cfg.Player.Speed,
	}
}

// newSwarm builds a full enemy grid in row-major order.
func newSwarm(cfg config.InvadersConfig) []Enemy {
	ec := cfg.Enemies
	enemies := make([]Enemy, 0, ec.Rows*ec.Cols)
	for row := range ec.Rows {
		for col := range ec.Cols {
			enemies = append(enemies, Enemy{
				Rect: core.NewRect(
					float64(col)*(ec.Width+ec.Padding)+ec.Padding,
					float64(row)*(ec.Height+ec.Padding)+ec.Padding+ec.TopOffset,
					ec.Width,
					ec.Height,
				),
				Row: row,
			})
		}
	}
	return enemies
}

// newBarriers spaces the barriers evenly across the playfield.
func newBarriers(cfg config.InvadersConfig) []Barrier {
	bc := cfg.Barriers
	spacing := cfg.Playfield.Width / float64(bc.Count+1)
	barriers := make([]Barrier, 0, bc.Count)
	for i := range bc.Count {
		barriers = append(barriers, Barrier{
			Rect: core.NewRect(
				spacing*float64(i+1)-bc.Width/2,
				cfg.Playfield.Height-bc.BottomOffset,
				bc.Width,
				bc.Height,
			),
			Health: bc.Health,
		})
	}
	return barriers
}

// playerShot spawns a bullet at the player's top center.
func playerShot(p Player, bc config.BulletConfig) Bullet {
	return Bullet{
		Rect:  core.NewRect(p.X+p.W/2-bc.Width/2, p.Y, bc.Width, bc.Height),
		Speed: -bc.Speed,
	}
}

// enemyShot spawns a bullet at the enemy's bottom center.
func enemyShot(e Enemy, bc config.BulletConfig) Bullet {
	return Bullet{
		Rect:  core.NewRect(e.X+e.W/2-bc.Width/2, e.Bottom(), bc.Width, bc.Height),
		Speed: bc.Speed,
	}
}

// burst creates a radial ring of particles around (cx, cy).
func burst(cx, cy float64, gc config.GameplayConfig) []Particle {
	n := gc.ParticleCount
	particles := make([]Particle, 0, n)
	for i := range n {
		angle := 2 * math.Pi * float64(i) / float64(n)
		particles = append(particles, Particle{
			X:     cx,
			Y:     cy,
			VX:    math.Cos(angle) * gc.ParticleSpeed,
			VY:    math.Sin(angle) * gc.ParticleSpeed,
			Size:  gc.ParticleSize,
			Alpha: 1,
		})
	}
	return particles
}
