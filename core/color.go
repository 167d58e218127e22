package core

// Color is a named text-mode palette entry
type Color uint8

const (
	ColorBlack Color = iota
	ColorRed
	ColorGreen
	ColorLightBlue
	ColorLightGreen
	ColorLightRed
	ColorWhite
)

// Semantic aliases
const (
	ColorFriendly = ColorLightBlue
	ColorHostile  = ColorRed
	ColorWall     = ColorLightGreen
	ColorHUD      = ColorLightRed
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// palette follows the standard VGA text-mode values
var palette = [...]RGB{
	ColorBlack:      {0x00, 0x00, 0x00},
	ColorRed:        {0xAA, 0x00, 0x00},
	ColorGreen:      {0x00, 0xAA, 0x00},
	ColorLightBlue:  {0x55, 0x55, 0xFF},
	ColorLightGreen: {0x55, 0xFF, 0x55},
	ColorLightRed:   {0xFF, 0x55, 0x55},
	ColorWhite:      {0xFF, 0xFF, 0xFF},
}

var colorNames = [...]string{
	ColorBlack:      "black",
	ColorRed:        "red",
	ColorGreen:      "green",
	ColorLightBlue:  "light-blue",
	ColorLightGreen: "light-green",
	ColorLightRed:   "light-red",
	ColorWhite:      "white",
}

// RGB returns the channel values for c, white for unknown entries
func (c Color) RGB() RGB {
	if int(c) >= len(palette) {
		return palette[ColorWhite]
	}
	return palette[c]
}

func (c Color) String() string {
	if int(c) >= len(colorNames) {
		return "unknown"
	}
	return colorNames[c]
}
