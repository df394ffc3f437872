// Package input maps host key events onto the eight Game Boy buttons.
package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/hollowcrest/pocketgb/pocketgb"
)

// DefaultKeyMap is the baseline rune-to-button mapping; backends may
// extend or override it.
var DefaultKeyMap = map[rune]pocketgb.Button{
	'z': pocketgb.A,
	'x': pocketgb.B,
	'w': pocketgb.Up,
	's': pocketgb.Down,
	'a': pocketgb.Left,
	'd': pocketgb.Right,
}

// DefaultSpecialKeyMap covers the buttons best expressed as named keys
// rather than runes (arrows, enter). Select is bound to Tab directly in
// Resolve rather than through this map.
var DefaultSpecialKeyMap = map[tcell.Key]pocketgb.Button{
	tcell.KeyUp:    pocketgb.Up,
	tcell.KeyDown:  pocketgb.Down,
	tcell.KeyLeft:  pocketgb.Left,
	tcell.KeyRight: pocketgb.Right,
	tcell.KeyEnter: pocketgb.Start,
}

// Resolve returns the button bound to a key event, if any.
func Resolve(ev *tcell.EventKey) (pocketgb.Button, bool) {
	if b, ok := DefaultSpecialKeyMap[ev.Key()]; ok {
		return b, true
	}
	if ev.Key() == tcell.KeyRune {
		if b, ok := DefaultKeyMap[ev.Rune()]; ok {
			return b, true
		}
	}
	switch ev.Key() {
	case tcell.KeyTAB:
		return pocketgb.Select, true
	}
	return 0, false
}
