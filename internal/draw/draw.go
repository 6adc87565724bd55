// Package draw renders game frames into terminal cells.
package draw

// Point represents a 2D coordinate in canvas pixels.
type Point struct {
	X, Y float64
}

// Shade characters from lightest to darkest.
var Shades = []rune{' ', '░', '▒', '▓', '█'}

// ShadeLevel returns a shade character for a value between 0.0 (empty) and 1.0 (solid).
func ShadeLevel(intensity float64) rune {
	if intensity <= 0 {
		return Shades[0]
	}
	if intensity >= 1 {
		return Shades[len(Shades)-1]
	}
	idx := int(intensity * float64(len(Shades)-1))
	return Shades[idx]
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockLight     = '░'
	BlockMedium    = '▒'
	BlockDark      = '▓'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Color is a small terminal palette. The zero value is "nothing drawn".
type Color uint8

const (
	ColorNone Color = iota
	ColorWhite
	ColorGray
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorMagenta
)

// ansi returns the SGR foreground code for c.
func (c Color) ansi() int {
	switch c {
	case ColorGray:
		return 90
	case ColorRed:
		return 91
	case ColorGreen:
		return 92
	case ColorYellow:
		return 93
	case ColorBlue:
		return 94
	case ColorMagenta:
		return 95
	case ColorCyan:
		return 96
	default:
		return 97
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
