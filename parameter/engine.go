package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the simulation+render frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameClockStep is the game clock advance applied per simulated frame
	GameClockStep = 16 * time.Millisecond

	// WaveAdvanceDelay is the delay between a cleared wave and the wave increment
	WaveAdvanceDelay = 1 * time.Second

	// KeyReleaseTimeout is how long a key stays held without a repeat event
	// Terminals do not report key-up, so held keys are expired by the listener
	KeyReleaseTimeout = 150 * time.Millisecond
)

// Arena
const (
	// ArenaWidth is the logical width of the top-down arena
	ArenaWidth = 800.0

	// ArenaHeight is the logical height of the top-down arena
	ArenaHeight = 600.0

	// ArenaMargin keeps the player this far from the arena edge
	ArenaMargin = 20.0
)
