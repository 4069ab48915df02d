package view

import (
	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/gol-sim/game"
)

const helpLine = "[s/space] start/stop  [n] step  [r] reset  [p] log board  [q] quit"

type action struct {
	cmd   game.Command
	quit  bool
	print bool
}

// keyAction maps a key press to what the consumer should do. running is the
// run state of the latest snapshot, it decides what the start/stop toggle sends.
func keyAction(key tcell.Key, r rune, running bool) (action, bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return action{quit: true}, true
	case tcell.KeyEnter:
		return action{cmd: game.Step}, true
	case tcell.KeyRune:
	default:
		return action{}, false
	}

	switch r {
	case 'q', 'Q':
		return action{quit: true}, true
	case 's', 'S', ' ':
		if running {
			return action{cmd: game.Stop}, true
		}
		return action{cmd: game.Start}, true
	case 'n', 'N':
		return action{cmd: game.Step}, true
	case 'r', 'R':
		return action{cmd: game.Reset}, true
	case 'p', 'P':
		return action{print: true}, true
	}
	return action{}, false
}
