package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/not-rogue/core"
)

// ToTcell converts a palette color to a true-color tcell.Color
func ToTcell(c core.Color) tcell.Color {
	rgb := c.RGB()
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// StyleFor builds the tcell style for a foreground/background pair
func StyleFor(fg, bg core.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(ToTcell(fg)).Background(ToTcell(bg))
}
