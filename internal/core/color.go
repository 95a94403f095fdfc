package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for board cells and HUD text.
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
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// palette lists the board colors in the order players select them (keys 1-8).
var palette = [...]Color{
	ColorRed,
	ColorGreen,
	ColorYellow,
	ColorBlue,
	ColorMagenta,
	ColorCyan,
	ColorOrange,
	ColorBrightWhite,
}

// PaletteSize is the largest palette a board may use.
const PaletteSize = len(palette)

// PaletteColor maps a board color index to a screen color.
// Out of range indexes render as ColorGray.
func PaletteColor(i int) Color {
	if i < 0 || i >= len(palette) {
		return ColorGray
	}
	return palette[i]
}
