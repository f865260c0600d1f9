package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/hammerjam/ecs/component"
)

// holdTicks is how long a movement key counts as held. Terminals report
// presses and repeats but no releases.
const holdTicks = 12

// keyInput turns terminal key events into simulation input.
type keyInput struct {
	moveX, moveY float64
	held         int
	slam         bool
}

// press records a key. It reports false for keys it does not handle.
func (k *keyInput) press(ev *tcell.EventKey) bool {
	dx, dy := 0.0, 0.0
	switch ev.Key() {
	case tcell.KeyLeft:
		dx = -1
	case tcell.KeyRight:
		dx = 1
	case tcell.KeyUp:
		dy = 1
	case tcell.KeyDown:
		dy = -1
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'h':
			dx = -1
		case 'd', 'l':
			dx = 1
		case 'w', 'k':
			dy = 1
		case 's', 'j':
			dy = -1
		case ' ':
			k.slam = true
			return true
		default:
			return false
		}
	default:
		return false
	}
	k.moveX, k.moveY = dx, dy
	k.held = holdTicks
	return true
}

func (k *keyInput) Poll() component.Input {
	in := component.Input{Slam: k.slam}
	k.slam = false
	if k.held > 0 {
		in.MoveX, in.MoveY = k.moveX, k.moveY
		k.held--
	}
	return in
}
