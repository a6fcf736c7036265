package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (Ctrl+*, ESC)
	SpecialKeys map[tcell.Key]Action

	// Rune bindings, matched case-insensitively
	Runes map[rune]Action
}

// DefaultKeyTable returns the default bindings: W/S left paddle, I/K right paddle
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyEscape: ActionEscape,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlQ:  ActionQuit,
		},
		Runes: map[rune]Action{
			'w': ActionLeftUp,
			's': ActionLeftDown,
			'i': ActionRightUp,
			'k': ActionRightDown,
		},
	}
}

// Lookup resolves a key event to its bound action
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[unicode.ToLower(ev.Rune())]
	}
	return kt.SpecialKeys[ev.Key()]
}
