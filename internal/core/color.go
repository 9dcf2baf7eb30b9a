package core

// Color represents a foreground color for a screen cell.
// Frontends map it to ANSI 256-color codes or RGB.
type Color uint8

// Palette used by the invasion renderer.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorGray
	ColorBrightRed
	ColorBrightGreen
	ColorBrightMagenta
)
