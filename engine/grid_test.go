package engine

import (
	"strings"
	"testing"

	"github.com/lixenwraith/not-rogue/core"
	"github.com/lixenwraith/not-rogue/render"
	"github.com/lixenwraith/not-rogue/rng"
)

func TestNewMapDefaultLayout(t *testing.T) {
	m := NewMap(80, 25, DefaultLayout, core.ColorWall)

	if m.Width() != 80 || m.Height() != 25 {
		t.Fatalf("dimensions = %dx%d, want 80x25", m.Width(), m.Height())
	}

	for col := 0; col < 80; col++ {
		if !m.Occupied(0, col) || !m.Occupied(24, col) {
			t.Fatalf("column %d: top/bottom perimeter missing", col)
		}
	}
	for row := 0; row < 25; row++ {
		if !m.Occupied(row, 0) || !m.Occupied(row, 79) {
			t.Fatalf("row %d: left/right perimeter missing", row)
		}
	}
	for row := 1; row < 24; row++ {
		for col := 1; col < 79; col++ {
			if m.Occupied(row, col) {
				t.Fatalf("interior cell (%d,%d) should be free", row, col)
			}
		}
	}
}

func TestMapStringRoundTrip(t *testing.T) {
	m := NewMap(80, 25, DefaultLayout, core.ColorWall)
	if got := m.String(); got != DefaultLayout {
		t.Error("String() should reproduce the layout it was parsed from")
	}
}

func TestNewMapIgnoresOverflow(t *testing.T) {
	layout := "#####\n#  ##\n#####\n#####"
	m := NewMap(3, 2, layout, core.ColorWall)

	want := "###\n#  "
	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNewMapShortLayout(t *testing.T) {
	m := NewMap(4, 3, "#", core.ColorWall)
	if !m.Occupied(0, 0) {
		t.Error("(0,0) should be a wall")
	}
	if m.Occupied(2, 3) {
		t.Error("cells missing from the layout should be free")
	}
}

func TestMapAddRemove(t *testing.T) {
	m := NewMap(80, 25, DefaultLayout, core.ColorWall)

	m.Add(5, 5)
	if !m.Occupied(5, 5) {
		t.Error("Add did not occupy the cell")
	}
	m.Remove(5, 5)
	if m.Occupied(5, 5) {
		t.Error("Remove did not free the cell")
	}
	m.Remove(0, 0)
	if m.Occupied(0, 0) {
		t.Error("Remove should also free perimeter cells")
	}
}

func TestMapOccupiedOutOfBoundsPanics(t *testing.T) {
	m := NewMap(10, 5, "", core.ColorWall)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on out-of-range lookup")
		}
	}()
	m.Occupied(5, 0)
}

func TestMapAddRandom(t *testing.T) {
	m := NewMap(80, 25, "", core.ColorWall)
	src := rng.NewFastRand(99)

	for i := 0; i < 200; i++ {
		row, col := m.AddRandom(src)
		if row < 1 || row > 24 || col < 1 || col > 79 {
			t.Fatalf("AddRandom placed a cell at (%d,%d)", row, col)
		}
		if !m.Occupied(row, col) {
			t.Fatalf("AddRandom reported (%d,%d) but did not occupy it", row, col)
		}
	}
}

func TestMapDraw(t *testing.T) {
	m := NewMap(80, 25, DefaultLayout, core.ColorWall)
	buf := render.NewBuffer(80, 25)

	m.Draw(buf, '#')

	cell := buf.At(0, 0)
	if cell.Rune != '#' || cell.Fg != core.ColorWall || cell.Bg != core.ColorBlack {
		t.Errorf("corner cell = %+v", cell)
	}
	if buf.At(10, 10).Rune != ' ' {
		t.Error("interior should stay blank")
	}

	lines := strings.Split(buf.String(), "\n")
	if lines[0] != strings.Repeat("#", 80) {
		t.Errorf("top row = %q", lines[0])
	}

	m.SetColor(core.ColorLightRed)
	m.Draw(buf, '%')
	if c := buf.At(79, 24); c.Rune != '%' || c.Fg != core.ColorLightRed {
		t.Errorf("redraw after SetColor = %+v", c)
	}
}
