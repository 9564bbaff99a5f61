package core

// Color represents a foreground colour for a screen cell.
// The platform maps these onto ANSI colour codes.
type Color uint8

// Predefined colours. The first four after ColorDefault form the lane palette.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
)

// LanePalette is the set of colours a generated lane may be drawn in.
var LanePalette = []Color{ColorRed, ColorGreen, ColorYellow, ColorBlue}
