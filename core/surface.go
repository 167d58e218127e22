package core

//go:generate mockgen -destination=mock/mock_surface.go -package=mockcore github.com/lixenwraith/not-rogue/core Surface

// Surface is a fixed-size character grid addressed by column and row
type Surface interface {
	// Plot writes ch at (col, row) with the given colors
	Plot(ch rune, col, row int, fg, bg Color)
	// Clear blanks a single cell
	Clear(col, row int)
	// ClearScreen blanks every cell
	ClearScreen()
}
