package core

// Color represents a foreground color for a screen cell.
// The tui layer maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the platformer renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorBrown
	ColorGray
)
