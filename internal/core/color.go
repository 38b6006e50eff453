package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to terminal or window colors.
type Color uint8

// Palette used by the invaders renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorMagenta
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorOrange
	ColorGray
)
