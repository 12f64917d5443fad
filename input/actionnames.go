package input

import "github.com/lixenwraith/sketchy-shooter/engine"

// actionRegistry maps canonical action names to KeyEntry structs
// Used by the keymap loader to resolve TOML action strings to bindings
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	"quit":  {Intent: IntentQuit},
	"pause": {Intent: IntentPause},
	"start": {Intent: IntentStart},
	"fire":  {Intent: IntentFire},
	"shop":  {Intent: IntentShop},
	"view":  {Intent: IntentView},

	"move_up":    {Intent: IntentMove, Move: engine.KeyW},
	"move_down":  {Intent: IntentMove, Move: engine.KeyS},
	"move_left":  {Intent: IntentMove, Move: engine.KeyA},
	"move_right": {Intent: IntentMove, Move: engine.KeyD},

	"slot_1": {Intent: IntentSelect, Slot: 0},
	"slot_2": {Intent: IntentSelect, Slot: 1},
	"slot_3": {Intent: IntentSelect, Slot: 2},
	"slot_4": {Intent: IntentSelect, Slot: 3},
	"slot_5": {Intent: IntentSelect, Slot: 4},
}

// ActionEntry returns the binding for a canonical action name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[name]
	return e, ok
}
