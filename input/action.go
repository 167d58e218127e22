package input

import (
	"github.com/lixenwraith/not-rogue/components"
	"github.com/lixenwraith/not-rogue/constants"
)

// Action is what a key means to the game
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionReset
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:      "none",
	ActionMoveUp:    "move_up",
	ActionMoveDown:  "move_down",
	ActionMoveLeft:  "move_left",
	ActionMoveRight: "move_right",
	ActionReset:     "reset",
	ActionQuit:      "quit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// IsMovement reports whether a is one of the four moves
func (a Action) IsMovement() bool {
	return a >= ActionMoveUp && a <= ActionMoveRight
}

// Direction returns the step for a movement action, DirNone otherwise
func (a Action) Direction() components.Direction {
	switch a {
	case ActionMoveUp:
		return components.DirUp
	case ActionMoveDown:
		return components.DirDown
	case ActionMoveLeft:
		return components.DirLeft
	case ActionMoveRight:
		return components.DirRight
	}
	return components.DirNone
}

// Decode maps arrows and w/a/s/d to movement, and the reset and quit characters to control actions
func Decode(k Key) Action {
	if raw, ok := k.RawKey(); ok {
		switch raw {
		case RawUp:
			return ActionMoveUp
		case RawDown:
			return ActionMoveDown
		case RawLeft:
			return ActionMoveLeft
		case RawRight:
			return ActionMoveRight
		}
		return ActionNone
	}

	ch, _ := k.Rune()
	switch ch {
	case 'w':
		return ActionMoveUp
	case 's':
		return ActionMoveDown
	case 'a':
		return ActionMoveLeft
	case 'd':
		return ActionMoveRight
	case constants.KeyReset:
		return ActionReset
	case constants.KeyQuit:
		return ActionQuit
	}
	return ActionNone
}
