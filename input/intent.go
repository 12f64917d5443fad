package input

// IntentType discriminates what a key does
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System
	IntentQuit  // q, Ctrl+C
	IntentPause // Esc toggles pause
	IntentStart // Enter starts from menu, restarts after game over

	// Play
	IntentMove // WASD, arrows; held until released or expired
	IntentFire // Space

	// Panels
	IntentShop   // Tab
	IntentSelect // 1-5 buy or equip the shop row
	IntentView   // v toggles top-down and first-person
)

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentPause:
		return "pause"
	case IntentStart:
		return "start"
	case IntentMove:
		return "move"
	case IntentFire:
		return "fire"
	case IntentShop:
		return "shop"
	case IntentSelect:
		return "select"
	case IntentView:
		return "view"
	default:
		return "none"
	}
}
