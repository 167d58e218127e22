package input

import "github.com/gdamore/tcell/v2"

// FromTcell converts a terminal key event; unnamed keys become RawOther
func FromTcell(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyRune:
		return Char(ev.Rune())
	case tcell.KeyUp:
		return Raw(RawUp)
	case tcell.KeyDown:
		return Raw(RawDown)
	case tcell.KeyLeft:
		return Raw(RawLeft)
	case tcell.KeyRight:
		return Raw(RawRight)
	}
	return Raw(RawOther)
}

// IsExit reports the driver exit keys, Escape and Ctrl+C
func IsExit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC
}
