package desktop

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/scores"
)

// Debug font cell size in pixels
const (
	glyphW = 6
	glyphH = 16
)

var (
	colorBackground   = color.RGBA{0, 0, 0, 255}
	colorPlayer       = color.RGBA{0, 255, 0, 255}
	colorPlayerBullet = color.RGBA{255, 255, 0, 255}
	colorEnemyBullet  = color.RGBA{255, 0, 0, 255}
	colorPanel        = color.RGBA{0, 0, 0, 200}
	colorPanelBorder  = color.RGBA{255, 255, 255, 255}
)

// Enemy colors by spawn row (cycling through)
var enemyColors = []color.RGBA{
	{255, 0, 255, 255},
	{0, 255, 255, 255},
	{0, 255, 255, 255},
	{0, 255, 0, 255},
	{0, 255, 0, 255},
}

func enemyColor(row int) color.RGBA {
	return enemyColors[row%len(enemyColors)]
}

// barrierColor fades a barrier as it loses health.
func barrierColor(health, full int) color.NRGBA {
	alpha := 1.0
	if full > 0 {
		alpha = core.ClampF(float64(health)/float64(full), 0.2, 1)
	}
	return color.NRGBA{0, 200, 0, uint8(alpha * 255)}
}

// particleColor is the explosion orange at the particle's opacity.
func particleColor(alpha float64) color.NRGBA {
	return color.NRGBA{255, 140, 0, uint8(core.ClampF(alpha, 0, 1) * 255)}
}

func fillRect(dst *ebiten.Image, r core.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

// textX centers text of n runes in a screen width w.
func textX(w, n int) int {
	return (w - n*glyphW) / 2
}

func drawCentered(dst *ebiten.Image, y int, text string) {
	ebitenutil.DebugPrintAt(dst, text, textX(dst.Bounds().Dx(), len([]rune(text))), y)
}

func drawSnapshot(dst *ebiten.Image, snap *invaders.Snapshot) {
	dst.Fill(colorBackground)

	switch snap.Mode {
	case invaders.ModeTitle:
		drawLines(dst, dst.Bounds().Dy()/4, titleLines(snap))
		return
	case invaders.ModeHighScores:
		drawLines(dst, dst.Bounds().Dy()/5, highScoreLines(snap.HighScores))
		return
	}

	drawField(dst, snap)
	drawHUD(dst, snap)

	if lines := invaders.Overlay(snap); lines != nil {
		drawPanel(dst, lines)
	} else if snap.LevelMessageMs > 0 {
		drawCentered(dst, dst.Bounds().Dy()/2, fmt.Sprintf("LEVEL %d", snap.Level))
	}
}

func drawLines(dst *ebiten.Image, y int, lines []string) {
	for i, l := range lines {
		drawCentered(dst, y+i*glyphH, l)
	}
}

// titleLines is the attract screen text. The prompt blinks twice a second.
func titleLines(snap *invaders.Snapshot) []string {
	prompt := "PRESS ENTER TO START"
	if (snap.TitleMs/500)%2 != 0 {
		prompt = ""
	}
	return []string{
		"S P A C E   I N V A D E R S",
		"",
		"",
		prompt,
		"",
		"H - HIGH SCORES",
		"",
		"ARROWS/A/D move  SPACE fire  R pause  Q quit",
		"Gamepad: stick move  A fire  START pause",
	}
}

func highScoreLines(top []scores.Entry) []string {
	lines := []string{"HIGH SCORES", ""}
	if len(top) == 0 {
		lines = append(lines, "Loading scores...")
	}
	for i, e := range top {
		lines = append(lines, scores.FormatRow(i+1, e))
	}
	return append(lines, "", "ESC - BACK")
}

func drawHUD(dst *ebiten.Image, snap *invaders.Snapshot) {
	w := dst.Bounds().Dx()
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("SCORE %06d", snap.Score), 10, 4)
	drawCentered(dst, 4, fmt.Sprintf("LEVEL %d", snap.Level))

	lives := "LIVES " + strings.Repeat("*", max(snap.Lives, 0))
	ebitenutil.DebugPrintAt(dst, lives, w-10-len(lives)*glyphW, 4)
}

func drawField(dst *ebiten.Image, snap *invaders.Snapshot) {
	for _, b := range snap.Barriers {
		fillRect(dst, b.Rect, barrierColor(b.Health, snap.BarrierHealth))
	}
	for _, e := range snap.Enemies {
		fillRect(dst, e.Rect, enemyColor(e.Row))
	}
	if snap.PlayerVisible {
		fillRect(dst, snap.Player.Rect, colorPlayer)
	}
	for _, b := range snap.Player.Bullets {
		fillRect(dst, b.Rect, colorPlayerBullet)
	}
	for _, b := range snap.EnemyBullets {
		fillRect(dst, b.Rect, colorEnemyBullet)
	}
	for _, p := range snap.Particles {
		if p.Alpha <= 0 {
			continue
		}
		vector.DrawFilledRect(dst, float32(p.X), float32(p.Y), float32(p.Size), float32(p.Size), particleColor(p.Alpha), false)
	}
}

// drawPanel draws a bordered message box in the middle of the screen.
func drawPanel(dst *ebiten.Image, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := float32((width + 4) * glyphW)
	boxH := float32((len(lines) + 1) * glyphH)
	x := (float32(dst.Bounds().Dx()) - boxW) / 2
	y := (float32(dst.Bounds().Dy()) - boxH) / 2

	vector.DrawFilledRect(dst, x, y, boxW, boxH, colorPanel, false)
	vector.StrokeRect(dst, x, y, boxW, boxH, 2, colorPanelBorder, false)

	top := int(y) + glyphH/2
	for i, l := range lines {
		drawCentered(dst, top+i*glyphH, l)
	}
}
