package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/sketchy-shooter/catalog"
	"github.com/lixenwraith/sketchy-shooter/parameter"
)

// Phase is the top-level game phase
type Phase uint8

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// ViewMode selects the projection used by simulation and rendering
type ViewMode uint8

const (
	// ViewTopDown keeps the player moving inside a fixed arena
	ViewTopDown ViewMode = iota
	// ViewFirstPerson keeps the player at the origin and moves the world
	ViewFirstPerson
)

func (v ViewMode) String() string {
	if v == ViewFirstPerson {
		return "first-person"
	}
	return "top-down"
}

// EnemyKind tags an enemy archetype; only EnemyBasic is spawned
type EnemyKind uint8

const (
	EnemyBasic EnemyKind = iota
	EnemyFast
	EnemyHeavy
	EnemyBoss
)

// Enemy is a hostile chasing the player
type Enemy struct {
	ID        string
	Pos       Vec
	Health    int
	MaxHealth int
	Speed     float64
	Reward    int
	Kind      EnemyKind
}

// Bullet is a projectile; damage is fixed when fired
type Bullet struct {
	ID        string
	Pos       Vec
	Vel       Vec
	Damage    int
	Traveled  float64
	MaxTravel float64
}

// Particle is a cosmetic hit spark; Life counts down in frames
type Particle struct {
	ID    string
	Pos   Vec
	Vel   Vec
	Life  int
	Color string
}

// Player holds per-player stats; Pos is meaningful in top-down view,
// Heading in first-person view
type Player struct {
	Pos       Vec
	Heading   float64
	Health    int
	MaxHealth int
	Weapon    string // Equipped weapon id
}

// State is an immutable game snapshot
// Slices and the key set are never mutated once placed in a State; the
// reducer replaces them wholesale
type State struct {
	Phase    Phase
	ShowShop bool
	View     ViewMode

	Coins int
	Score int
	Level int
	Wave  int

	Player  Player
	Weapons []catalog.Weapon

	Enemies   []Enemy
	Bullets   []Bullet
	Particles []Particle

	LastShot time.Time // Zero until the first accepted shot
	Input    Input
	GameTime time.Duration

	// WavePending is set while a wave advance is scheduled
	WavePending bool
	// Session increments on every reset; deferred callbacks carry it
	Session uint64
}

// NewState returns the initial state for the given weapon list
func NewState(weapons []catalog.Weapon) State {
	return State{
		Phase: PhaseMenu,
		View:  ViewTopDown,
		Coins: parameter.PlayerStartCoins,
		Level: 1,
		Wave:  1,
		Player: Player{
			Pos:       Vec{parameter.PlayerStartX, parameter.PlayerStartY},
			Heading:   3 * math.Pi / 2, // Facing up the screen
			Health:    parameter.PlayerMaxHealth,
			MaxHealth: parameter.PlayerMaxHealth,
			Weapon:    startWeapon(weapons),
		},
		Weapons: weapons,
		Input:   Input{Keys: KeySet{}},
	}
}

// startWeapon picks the default weapon, falling back to the first unlocked one
func startWeapon(weapons []catalog.Weapon) string {
	if i := catalog.Find(weapons, parameter.StartWeaponID); i >= 0 && weapons[i].Unlocked {
		return parameter.StartWeaponID
	}
	for _, w := range weapons {
		if w.Unlocked {
			return w.ID
		}
	}
	return ""
}

// Weapon returns the weapon with id
func (s State) Weapon(id string) (catalog.Weapon, bool) {
	if i := catalog.Find(s.Weapons, id); i >= 0 {
		return s.Weapons[i], true
	}
	return catalog.Weapon{}, false
}

// EquippedWeapon returns the currently equipped weapon
func (s State) EquippedWeapon() (catalog.Weapon, bool) {
	return s.Weapon(s.Player.Weapon)
}
