package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility and maps to linear
// RGB for the windowed renderer.
type Color uint8

// Predefined colors for game elements.
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

// rgb holds the window palette, indexed by Color.
var rgb = [...][3]float32{
	ColorDefault:       {0.85, 0.85, 0.85},
	ColorRed:           {0.80, 0.10, 0.10},
	ColorGreen:         {0.10, 0.70, 0.20},
	ColorYellow:        {0.85, 0.75, 0.10},
	ColorBlue:          {0.15, 0.30, 0.85},
	ColorMagenta:       {0.70, 0.20, 0.70},
	ColorCyan:          {0.10, 0.75, 0.80},
	ColorWhite:         {0.90, 0.90, 0.90},
	ColorBrightRed:     {1.00, 0.30, 0.30},
	ColorBrightGreen:   {0.40, 1.00, 0.40},
	ColorBrightYellow:  {1.00, 1.00, 0.40},
	ColorBrightBlue:    {0.40, 0.55, 1.00},
	ColorBrightMagenta: {1.00, 0.45, 1.00},
	ColorBrightCyan:    {0.45, 1.00, 1.00},
	ColorBrightWhite:   {1.00, 1.00, 1.00},
	ColorOrange:        {1.00, 0.55, 0.10},
	ColorGray:          {0.50, 0.50, 0.50},
}

// RGB returns the color as red, green and blue components in [0, 1].
// Unknown colors map to the default.
func (c Color) RGB() (r, g, b float32) {
	if int(c) >= len(rgb) {
		c = ColorDefault
	}
	v := rgb[c]
	return v[0], v[1], v[2]
}
