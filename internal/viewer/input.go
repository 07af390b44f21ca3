package viewer

import "github.com/gdamore/tcell/v2"

// Action represents a viewer command.
type Action uint8

const (
	ActionNone Action = iota
	ActionPanN
	ActionPanS
	ActionPanE
	ActionPanW
	ActionRecenter
	ActionNewSeed
	ActionDescend
	ActionAscend
	ActionCyclePath
	ActionQuit
)

// keyToAction maps a tcell key event to a viewer action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionPanN
	case tcell.KeyDown:
		return ActionPanS
	case tcell.KeyRight:
		return ActionPanE
	case tcell.KeyLeft:
		return ActionPanW
	case tcell.KeyTab:
		return ActionCyclePath
	case tcell.KeyEscape:
		return ActionQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K':
		return ActionPanN
	case 'j', 'J':
		return ActionPanS
	case 'l', 'L':
		return ActionPanE
	case 'h', 'H':
		return ActionPanW
	case 'c', 'C':
		return ActionRecenter
	case 'n', 'N':
		return ActionNewSeed
	case '>':
		return ActionDescend
	case '<':
		return ActionAscend
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// panStep is how many cells one pan key moves the view.
const panStep = 4

// actionToDelta converts a pan action to (dx, dy). Y grows upward.
func actionToDelta(a Action) (int, int) {
	switch a {
	case ActionPanN:
		return 0, panStep
	case ActionPanS:
		return 0, -panStep
	case ActionPanE:
		return panStep, 0
	case ActionPanW:
		return -panStep, 0
	}
	return 0, 0
}
