package input

import (
	"maps"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sketchy-shooter/engine"
)

// KeyEntry describes a binding without function pointers
type KeyEntry struct {
	Intent IntentType
	Move   engine.Key // IntentMove only
	Slot   int        // IntentSelect only, zero-based shop row
}

// KeyTable maps terminal keys to bindings
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc, Tab)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings, matched case-insensitively
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyEscape: {Intent: IntentPause},
			tcell.KeyEnter:  {Intent: IntentStart},
			tcell.KeyTab:    {Intent: IntentShop},
			tcell.KeyUp:     {Intent: IntentMove, Move: engine.ArrowUp},
			tcell.KeyDown:   {Intent: IntentMove, Move: engine.ArrowDown},
			tcell.KeyLeft:   {Intent: IntentMove, Move: engine.ArrowLeft},
			tcell.KeyRight:  {Intent: IntentMove, Move: engine.ArrowRight},
		},
		Runes: map[rune]KeyEntry{
			'q': {Intent: IntentQuit},
			'w': {Intent: IntentMove, Move: engine.KeyW},
			'a': {Intent: IntentMove, Move: engine.KeyA},
			's': {Intent: IntentMove, Move: engine.KeyS},
			'd': {Intent: IntentMove, Move: engine.KeyD},
			' ': {Intent: IntentFire},
			'v': {Intent: IntentView},
			'1': {Intent: IntentSelect, Slot: 0},
			'2': {Intent: IntentSelect, Slot: 1},
			'3': {Intent: IntentSelect, Slot: 2},
			'4': {Intent: IntentSelect, Slot: 3},
			'5': {Intent: IntentSelect, Slot: 4},
		},
	}
}

// Lookup resolves a key event to its binding
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() != tcell.KeyRune {
		e, ok := kt.SpecialKeys[ev.Key()]
		return e, ok
	}
	e, ok := kt.Runes[unicode.ToLower(ev.Rune())]
	return e, ok
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}
