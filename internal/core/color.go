package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to an ANSI 256-color style.
type Color uint8

// Predefined colors for tiles and board chrome.
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

// tilePalette cycles through distinct colors as tiles grow: 2, 4, 8, ...
var tilePalette = []Color{
	ColorWhite,
	ColorBrightWhite,
	ColorYellow,
	ColorOrange,
	ColorBrightRed,
	ColorRed,
	ColorBrightYellow,
	ColorBrightGreen,
	ColorGreen,
	ColorBrightCyan,
	ColorBrightBlue,
	ColorBrightMagenta,
}

// TileColor returns the display color for a tile value.
// Empty cells and unknown values use ColorGray.
func TileColor(value int) Color {
	if value < 2 {
		return ColorGray
	}
	exp := 0
	for v := value; v > 1; v >>= 1 {
		exp++
	}
	return tilePalette[(exp-1)%len(tilePalette)]
}
