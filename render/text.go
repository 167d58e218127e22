package render

import (
	"strconv"

	"github.com/lixenwraith/not-rogue/constants"
	"github.com/lixenwraith/not-rogue/core"
)

// PlotStr writes str left to right starting at (col, row)
func PlotStr(s core.Surface, str string, col, row int, fg, bg core.Color) {
	for _, ch := range str {
		s.Plot(ch, col, row, fg, bg)
		col++
	}
}

// PlotNum writes n left-aligned in a field of NumFieldWidth cells, blank-padded
// so a shorter value overwrites every digit of a longer one
func PlotNum(s core.Surface, n int, col, row int, fg, bg core.Color) {
	str := strconv.Itoa(n)
	PlotStr(s, str, col, row, fg, bg)
	for i := len(str); i < constants.NumFieldWidth; i++ {
		s.Plot(' ', col+i, row, fg, bg)
	}
}
