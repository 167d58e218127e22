package engine

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/not-rogue/core"
	"github.com/lixenwraith/not-rogue/rng"
)

// Map is a static occupancy grid of wall cells
type Map struct {
	width  int
	height int
	color  core.Color
	cells  [][]bool // [row][col]
}

// NewMap parses a newline-delimited layout where '#' marks a wall.
// Characters beyond width x height are ignored, missing cells are free.
func NewMap(width, height int, layout string, color core.Color) *Map {
	cells := make([][]bool, height)
	for row := range cells {
		cells[row] = make([]bool, width)
	}

	for row, line := range strings.Split(layout, "\n") {
		if row >= height {
			break
		}
		col := 0
		for _, ch := range line {
			if col >= width {
				break
			}
			cells[row][col] = ch == '#'
			col++
		}
	}

	return &Map{
		width:  width,
		height: height,
		color:  color,
		cells:  cells,
	}
}

// Width returns the column count
func (m *Map) Width() int {
	return m.width
}

// Height returns the row count
func (m *Map) Height() int {
	return m.height
}

// InBounds reports whether (row, col) addresses a cell
func (m *Map) InBounds(row, col int) bool {
	return row >= 0 && row < m.height && col >= 0 && col < m.width
}

// Occupied reports whether (row, col) is a wall. Panics outside the grid
func (m *Map) Occupied(row, col int) bool {
	m.mustBeInBounds(row, col)
	return m.cells[row][col]
}

// Add marks (row, col) occupied
func (m *Map) Add(row, col int) {
	m.mustBeInBounds(row, col)
	m.cells[row][col] = true
}

// Remove marks (row, col) free
func (m *Map) Remove(row, col int) {
	m.mustBeInBounds(row, col)
	m.cells[row][col] = false
}

// AddRandom occupies a random cell away from the top row and left column, returning its position
func (m *Map) AddRandom(src *rng.FastRand) (row, col int) {
	col = 1 + src.Intn(m.width-1)
	row = 1 + src.Intn(m.height-1)
	m.Add(row, col)
	return row, col
}

// Color returns the wall color
func (m *Map) Color() core.Color {
	return m.color
}

// SetColor changes the wall color
func (m *Map) SetColor(c core.Color) {
	m.color = c
}

// Draw plots glyph on every occupied cell in the map color
func (m *Map) Draw(s core.Surface, glyph rune) {
	for row := range m.cells {
		for col, occupied := range m.cells[row] {
			if occupied {
				s.Plot(glyph, col, row, m.color, core.ColorBlack)
			}
		}
	}
}

// String renders the grid back to '#' and ' ' lines
func (m *Map) String() string {
	var sb strings.Builder
	sb.Grow((m.width + 1) * m.height)
	for row := range m.cells {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for _, occupied := range m.cells[row] {
			if occupied {
				sb.WriteByte('#')
			} else {
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}

func (m *Map) mustBeInBounds(row, col int) {
	if !m.InBounds(row, col) {
		panic(fmt.Sprintf("map: cell (row %d, col %d) outside %dx%d grid", row, col, m.width, m.height))
	}
}
