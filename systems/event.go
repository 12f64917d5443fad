package systems

import "github.com/lixenwraith/sketchy-shooter/engine"

// EventKind classifies what happened during a step
type EventKind uint8

const (
	EventShotFired EventKind = iota
	EventEnemyHit
	EventEnemyKilled
	EventPlayerHurt
	EventPlayerDied
	EventWaveCleared
)

func (k EventKind) String() string {
	switch k {
	case EventShotFired:
		return "shot_fired"
	case EventEnemyHit:
		return "enemy_hit"
	case EventEnemyKilled:
		return "enemy_killed"
	case EventPlayerHurt:
		return "player_hurt"
	case EventPlayerDied:
		return "player_died"
	case EventWaveCleared:
		return "wave_cleared"
	default:
		return "unknown"
	}
}

// Event reports a step outcome to audio, metrics and timers
// Events never feed back into the simulation
type Event struct {
	Kind   EventKind
	Pos    engine.Vec
	Amount int    // Damage for hits and hurt, reward for kills
	Weapon string // Weapon id for ShotFired
}
