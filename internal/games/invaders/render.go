package invaders

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/scores"
)

// Minimum terminal size that still shows the whole swarm.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// Visual characters for rendering
const (
	PlayerBulletChar = '│'
	EnemyBulletChar  = '!'
	ParticleChar     = '*'
	FadedParticle    = '·'
	LifeChar         = '♥'
)

// Enemy sprites by spawn row (cycling through)
var enemySprites = []string{"/^^\\", "{@@}", "<##>", "/vv\\", "[==]"}

// Enemy colors by spawn row (cycling through)
var enemyColors = []core.Color{
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorCyan,
	core.ColorGreen,
	core.ColorGreen,
}

// Barrier glyphs by remaining health, weakest first
var barrierGlyphs = []rune{'░', '▒', '▓', '█'}

// Render draws the current frame to the screen.
func (g *Game) Render(dst *core.Screen) {
	snap := g.Snapshot()
	RenderSnapshot(dst, &snap)
}

// RenderSnapshot draws a snapshot as terminal cells.
func RenderSnapshot(dst *core.Screen, snap *Snapshot) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorDefault)
		return
	}

	switch snap.Mode {
	case ModeTitle:
		renderTitle(dst, snap)
		return
	case ModeHighScores:
		renderHighScores(dst, snap)
		return
	}

	renderHUD(dst, snap)
	renderField(dst, snap)

	if lines := Overlay(snap); lines != nil {
		drawCenteredBox(dst, overlayColor(snap.Mode), lines...)
	} else if snap.LevelMessageMs > 0 {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("LEVEL %d", snap.Level), core.ColorWhite)
	}
}

// Overlay returns the message box shown over the playfield, or nil when
// the mode has none.
func Overlay(snap *Snapshot) []string {
	switch snap.Mode {
	case ModePaused:
		return []string{"PAUSED", "", "Press R to resume"}
	case ModeGameOver:
		status := "ENTER play again  ESC title"
		if snap.Checking {
			status = "Checking high scores..."
		}
		return []string{"GAME OVER", fmt.Sprintf("Score: %d", snap.Score), status}
	case ModeEnteringInitials:
		status := "ENTER to confirm"
		if snap.Submitting {
			status = "Saving..."
		}
		return []string{
			"NEW HIGH SCORE!",
			fmt.Sprintf("Score: %d", snap.Score),
			"Enter your initials:",
			initialsSlots(snap.Initials),
			status,
		}
	}
	return nil
}

func overlayColor(m Mode) core.Color {
	switch m {
	case ModePaused:
		return core.ColorYellow
	case ModeGameOver:
		return core.ColorBrightRed
	default:
		return core.ColorBrightYellow
	}
}

// initialsSlots pads entered initials with underscores: "AB" -> "A B _".
func initialsSlots(initials string) string {
	slots := make([]string, scores.InitialsLen)
	for i := range slots {
		slots[i] = "_"
	}
	for i, r := range initials {
		if i < len(slots) {
			slots[i] = string(r)
		}
	}
	return strings.Join(slots, " ")
}

// viewport maps playfield units to screen cells below the HUD row.
type viewport struct {
	top    int
	sx, sy float64
}

func newViewport(dst *core.Screen, snap *Snapshot) viewport {
	return viewport{
		top: 1,
		sx:  float64(dst.Width()) / snap.FieldW,
		sy:  float64(dst.Height()-1) / snap.FieldH,
	}
}

// cells converts a rectangle to a cell box at least one cell in size.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	x = int(math.Round(r.X * v.sx))
	y = v.top + int(math.Round(r.Y*v.sy))
	w = max(int(math.Round(r.Right()*v.sx))-x, 1)
	h = max(v.top+int(math.Round(r.Bottom()*v.sy))-y, 1)
	return x, y, w, h
}

func (v viewport) point(px, py float64) (int, int) {
	return int(math.Round(px * v.sx)), v.top + int(math.Round(py*v.sy))
}

// renderHUD draws score, level and lives on the top row.
func renderHUD(dst *core.Screen, snap *Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("SCORE %06d", snap.Score), core.ColorWhite)
	dst.DrawTextCentered(0, fmt.Sprintf("LEVEL %d", snap.Level), core.ColorWhite)

	lives := "LIVES " + strings.Repeat(string(LifeChar), max(snap.Lives, 0))
	dst.DrawTextColored(dst.Width()-len([]rune(lives))-1, 0, lives, core.ColorBrightRed)
}

// renderField draws every entity.
func renderField(dst *core.Screen, snap *Snapshot) {
	v := newViewport(dst, snap)

	for _, b := range snap.Barriers {
		x, y, w, h := v.cells(b.Rect)
		dst.FillRect(x, y, w, h, barrierGlyph(b.Health, snap.BarrierHealth), core.ColorGreen)
	}

	for _, e := range snap.Enemies {
		x, y, w, h := v.cells(e.Rect)
		sprite := []rune(enemySprites[e.Row%len(enemySprites)])
		color := enemyColors[e.Row%len(enemyColors)]
		for dy := range h {
			for dx := range w {
				dst.SetColored(x+dx, y+dy, sprite[dx%len(sprite)], color)
			}
		}
	}

	if snap.PlayerVisible {
		x, y, w, _ := v.cells(snap.Player.Rect)
		for dx := range w {
			r := '█'
			switch dx {
			case 0:
				r = '◢'
			case w - 1:
				r = '◣'
			}
			dst.SetColored(x+dx, y, r, core.ColorBrightGreen)
		}
		if w >= 3 {
			dst.SetColored(x+w/2, y-1, '▲', core.ColorBrightGreen)
		}
	}

	for _, b := range snap.Player.Bullets {
		x, y, _, _ := v.cells(b.Rect)
		dst.SetColored(x, y, PlayerBulletChar, core.ColorBrightYellow)
	}
	for _, b := range snap.EnemyBullets {
		x, y, _, _ := v.cells(b.Rect)
		dst.SetColored(x, y, EnemyBulletChar, core.ColorRed)
	}

	for _, p := range snap.Particles {
		x, y := v.point(p.X, p.Y)
		if p.Alpha > 0.5 {
			dst.SetColored(x, y, ParticleChar, core.ColorOrange)
		} else if p.Alpha > 0 {
			dst.SetColored(x, y, FadedParticle, core.ColorYellow)
		}
	}
}

func barrierGlyph(health, full int) rune {
	if full <= 0 || health <= 0 {
		return barrierGlyphs[0]
	}
	i := (health*len(barrierGlyphs) + full - 1) / full
	return barrierGlyphs[core.Clamp(i-1, 0, len(barrierGlyphs)-1)]
}

// renderTitle draws the attract screen.
func renderTitle(dst *core.Screen, snap *Snapshot) {
	y := dst.Height() / 4
	dst.DrawTextCentered(y, "S P A C E   I N V A D E R S", core.ColorBrightGreen)
	dst.DrawTextCentered(y+2, strings.Join(enemySprites[:3], "  "), core.ColorMagenta)

	if (snap.TitleMs/500)%2 == 0 {
		dst.DrawTextCentered(y+5, "PRESS ENTER TO START", core.ColorWhite)
	}
	dst.DrawTextCentered(y+7, "H - HIGH SCORES", core.ColorCyan)

	dst.DrawTextCentered(dst.Height()-2, "←/→ move  SPACE fire  R pause  Q quit", core.ColorGray)
}

// renderHighScores draws the cached top table.
func renderHighScores(dst *core.Screen, snap *Snapshot) {
	y := dst.Height() / 5
	dst.DrawTextCentered(y, "HIGH SCORES", core.ColorBrightYellow)

	if len(snap.HighScores) == 0 {
		dst.DrawTextCentered(y+3, "Loading scores...", core.ColorGray)
	}
	for i, e := range snap.HighScores {
		dst.DrawTextCentered(y+3+i*2, scores.FormatRow(i+1, e), core.ColorWhite)
	}

	dst.DrawTextCentered(dst.Height()-2, "ESC - BACK", core.ColorGray)
}

// drawCenteredBox draws a bordered message box with one line per entry.
func drawCenteredBox(dst *core.Screen, color core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, color)

	for i, l := range lines {
		lx := boxX + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(lx, boxY+1+i, l, color)
	}
}
