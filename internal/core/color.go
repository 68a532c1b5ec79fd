package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform layer.
type Color uint8

// Palette used by the renderer.
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
	ColorBrown
)

// RGB is a 24-bit color in 0xRRGGBB form. The simulation carries material
// colors as RGB; the renderer folds them onto the terminal palette.
type RGB uint32

// NewRGB packs unit-range channels into an RGB value.
func NewRGB(r, g, b float64) RGB {
	return RGB(channel(r)<<16 | channel(g)<<8 | channel(b))
}

func channel(v float64) uint32 {
	return uint32(min(max(v, 0), 1)*255 + 0.5)
}

// Channels returns the unit-range red, green and blue components.
func (c RGB) Channels() (r, g, b float64) {
	return float64(c>>16&0xff) / 255, float64(c>>8&0xff) / 255, float64(c&0xff) / 255
}

// Palette folds the color onto the nearest terminal palette entry.
// Dim colors (max channel below 0.25) collapse to gray.
func (c RGB) Palette() Color {
	r, g, b := c.Channels()
	hi := max(r, g, b)
	lo := min(r, g, b)

	switch {
	case hi < 0.25:
		return ColorGray
	case hi-lo < 0.12:
		if hi > 0.8 {
			return ColorBrightWhite
		}
		return ColorGray
	}

	bright := hi > 0.75
	switch {
	case r >= g && r >= b:
		switch {
		case b > 0.6*r:
			return pick(bright, ColorMagenta, ColorBrightMagenta)
		case g > 0.8*r:
			return pick(bright, ColorYellow, ColorBrightYellow)
		case g > 0.45*r:
			if bright {
				return ColorOrange
			}
			return ColorBrown
		default:
			return pick(bright, ColorRed, ColorBrightRed)
		}
	case g >= r && g >= b:
		switch {
		case b > 0.7*g:
			return pick(bright, ColorCyan, ColorBrightCyan)
		case r > 0.7*g:
			return pick(bright, ColorYellow, ColorBrightYellow)
		default:
			return pick(bright, ColorGreen, ColorBrightGreen)
		}
	default:
		switch {
		case r > 0.6*b:
			return pick(bright, ColorMagenta, ColorBrightMagenta)
		case g > 0.7*b:
			return pick(bright, ColorCyan, ColorBrightCyan)
		default:
			return pick(bright, ColorBlue, ColorBrightBlue)
		}
	}
}

func pick(bright bool, dim, lit Color) Color {
	if bright {
		return lit
	}
	return dim
}
