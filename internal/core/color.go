package core

// Color is a palette entry shared by the terminal and window frontends.
// Values map to ANSI 256-color codes in the terminal and to RGB in the window.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

// ANSI returns the 256-color code for the terminal frontend ("" = no styling).
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "9"
	case ColorGreen:
		return "10"
	case ColorYellow:
		return "11"
	case ColorBlue:
		return "12"
	case ColorMagenta:
		return "13"
	case ColorCyan:
		return "14"
	case ColorWhite:
		return "15"
	case ColorOrange:
		return "208"
	case ColorGray:
		return "245"
	default:
		return ""
	}
}

// RGB returns the color for the window frontend. ColorDefault is white.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed:
		return 0xe0, 0x4f, 0x4f
	case ColorGreen:
		return 0x5f, 0xd0, 0x6b
	case ColorYellow:
		return 0xf2, 0xd3, 0x4f
	case ColorBlue:
		return 0x4f, 0x8a, 0xe0
	case ColorMagenta:
		return 0xc8, 0x5f, 0xd6
	case ColorCyan:
		return 0x4f, 0xd6, 0xd6
	case ColorOrange:
		return 0xf2, 0x95, 0x3a
	case ColorGray:
		return 0x8a, 0x8a, 0x8a
	default:
		return 0xff, 0xff, 0xff
	}
}
