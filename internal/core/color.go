package core

// Color is a foreground color for a screen cell.
// The platform layer maps these to ANSI styles; game logic only picks from
// this closed set so it stays terminal-agnostic.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBrightWhite
	ColorGray
)
