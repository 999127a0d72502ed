package core

// Color represents a foreground color for a screen cell.
// Front-ends map it to ANSI 256-color codes or RGBA values.
type Color uint8

// Predefined palette used by terrain, buildings and UI.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorYellow
	ColorOrange
	ColorBrown
	ColorRed
	ColorCyan
	ColorWhite
	ColorGray
	ColorBrightWhite
	ColorBrightGreen
	ColorBrightYellow
)
