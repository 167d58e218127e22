package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/not-rogue/core"
)

// TerminalSurface draws the game grid onto a tcell screen.
// Cells outside width x height are dropped so a larger terminal keeps its margin blank.
type TerminalSurface struct {
	screen tcell.Screen
	width  int
	height int
	blank  tcell.Style
}

// NewTerminalSurface wraps an initialized screen
func NewTerminalSurface(screen tcell.Screen, width, height int) *TerminalSurface {
	return &TerminalSurface{
		screen: screen,
		width:  width,
		height: height,
		blank:  StyleFor(core.ColorBlack, core.ColorBlack),
	}
}

// Plot writes ch at (col, row)
func (t *TerminalSurface) Plot(ch rune, col, row int, fg, bg core.Color) {
	if !t.inGrid(col, row) {
		return
	}
	t.screen.SetContent(col, row, ch, nil, StyleFor(fg, bg))
}

// Clear blanks (col, row) to black
func (t *TerminalSurface) Clear(col, row int) {
	if !t.inGrid(col, row) {
		return
	}
	t.screen.SetContent(col, row, ' ', nil, t.blank)
}

// ClearScreen blanks the whole screen
func (t *TerminalSurface) ClearScreen() {
	t.screen.SetStyle(t.blank)
	t.screen.Clear()
}

// Show flushes pending cells to the terminal
func (t *TerminalSurface) Show() {
	t.screen.Show()
}

// Screen returns the underlying tcell screen
func (t *TerminalSurface) Screen() tcell.Screen {
	return t.screen
}

func (t *TerminalSurface) inGrid(col, row int) bool {
	return col >= 0 && col < t.width && row >= 0 && row < t.height
}
