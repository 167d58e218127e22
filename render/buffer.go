package render

import (
	"strings"

	"github.com/lixenwraith/not-rogue/core"
)

// Cell is one character position in a Buffer
type Cell struct {
	Rune rune
	Fg   core.Color
	Bg   core.Color
}

var blankCell = Cell{Rune: ' ', Fg: core.ColorBlack, Bg: core.ColorBlack}

// Buffer is an in-memory Surface for headless runs and tests
type Buffer struct {
	width  int
	height int
	lines  [][]Cell
	plots  int
}

// NewBuffer creates a blank buffer with the given dimensions
func NewBuffer(width, height int) *Buffer {
	lines := make([][]Cell, height)
	for y := range lines {
		lines[y] = make([]Cell, width)
		for x := range lines[y] {
			lines[y][x] = blankCell
		}
	}

	return &Buffer{
		width:  width,
		height: height,
		lines:  lines,
	}
}

// Width returns the buffer width
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height
func (b *Buffer) Height() int {
	return b.height
}

// Plot writes ch at (col, row); out-of-range writes are dropped
func (b *Buffer) Plot(ch rune, col, row int, fg, bg core.Color) {
	if !b.inBounds(col, row) {
		return
	}
	b.lines[row][col] = Cell{Rune: ch, Fg: fg, Bg: bg}
	b.plots++
}

// Clear blanks a single cell
func (b *Buffer) Clear(col, row int) {
	if !b.inBounds(col, row) {
		return
	}
	b.lines[row][col] = blankCell
}

// ClearScreen blanks every cell
func (b *Buffer) ClearScreen() {
	for y := range b.lines {
		for x := range b.lines[y] {
			b.lines[y][x] = blankCell
		}
	}
}

// At returns the cell at (col, row), blank when out of range
func (b *Buffer) At(col, row int) Cell {
	if !b.inBounds(col, row) {
		return blankCell
	}
	return b.lines[row][col]
}

// Row returns the characters of one row
func (b *Buffer) Row(row int) string {
	if row < 0 || row >= b.height {
		return ""
	}
	var sb strings.Builder
	sb.Grow(b.width)
	for _, c := range b.lines[row] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns all rows joined by newlines
func (b *Buffer) String() string {
	rows := make([]string, b.height)
	for y := range rows {
		rows[y] = b.Row(y)
	}
	return strings.Join(rows, "\n")
}

// Plots returns the number of Plot calls that landed in range
func (b *Buffer) Plots() int {
	return b.plots
}

func (b *Buffer) inBounds(col, row int) bool {
	return col >= 0 && col < b.width && row >= 0 && row < b.height
}
