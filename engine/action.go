package engine

import (
	"time"
)

// Action is a store mutation request
// The set is closed: only types in this file implement it
type Action interface {
	action()
}

type (
	// SetPhase switches the game phase
	SetPhase struct{ Phase Phase }

	// SetShowShop shows or hides the shop panel
	SetShowShop struct{ Show bool }

	// SetViewMode selects top-down or first-person
	SetViewMode struct{ Mode ViewMode }

	// AddCoins adjusts the coin balance; the result floors at zero
	AddCoins struct{ Amount int }

	// SpendCoins debits coins; the result floors at zero
	SpendCoins struct{ Amount int }

	// AddScore adjusts the score; the result floors at zero
	AddScore struct{ Amount int }

	SetLevel struct{ Level int }
	SetWave  struct{ Wave int }

	// SetPlayerHealth sets health clamped to [0, MaxHealth]
	SetPlayerHealth struct{ Health int }

	SetPlayerPosition struct{ Pos Vec }

	// SetHeading sets the first-person facing, normalized to [0, 2π)
	SetHeading struct{ Heading float64 }

	// SetCurrentWeapon equips an unlocked weapon; unknown or locked ids are ignored
	SetCurrentWeapon struct{ ID string }

	// UnlockWeapon marks a weapon unlocked without charging for it
	UnlockWeapon struct{ ID string }

	// PurchaseWeapon debits the cost and unlocks in one step when affordable
	PurchaseWeapon struct{ ID string }

	SetEnemies   struct{ Enemies []Enemy }
	SetBullets   struct{ Bullets []Bullet }
	SetParticles struct{ Particles []Particle }

	SetLastShot struct{ At time.Time }

	PressKey   struct{ Key Key }
	ReleaseKey struct{ Key Key }

	// SetPointer records the aim point in arena coordinates
	SetPointer struct{ Pos Vec }

	// RequestFire latches one fire request for the next frame
	RequestFire struct{}

	// AckFire marks fire requests up to Seq as consumed
	AckFire struct{ Seq uint64 }

	// AdvanceClock moves the game clock forward
	AdvanceClock struct{ Delta time.Duration }

	SetWavePending struct{ Pending bool }

	// AdvanceWave increments the wave if still playing the same session
	AdvanceWave struct{ Session uint64 }

	// Reset restores initial values, keeping weapon unlocks and view mode
	Reset struct{}

	// Batch applies actions in order as one dispatch
	Batch []Action
)

func (SetPhase) action()          {}
func (SetShowShop) action()       {}
func (SetViewMode) action()       {}
func (AddCoins) action()          {}
func (SpendCoins) action()        {}
func (AddScore) action()          {}
func (SetLevel) action()          {}
func (SetWave) action()           {}
func (SetPlayerHealth) action()   {}
func (SetPlayerPosition) action() {}
func (SetHeading) action()        {}
func (SetCurrentWeapon) action()  {}
func (UnlockWeapon) action()      {}
func (PurchaseWeapon) action()    {}
func (SetEnemies) action()        {}
func (SetBullets) action()        {}
func (SetParticles) action()      {}
func (SetLastShot) action()       {}
func (PressKey) action()          {}
func (ReleaseKey) action()        {}
func (SetPointer) action()        {}
func (RequestFire) action()       {}
func (AckFire) action()           {}
func (AdvanceClock) action()      {}
func (SetWavePending) action()    {}
func (AdvanceWave) action()       {}
func (Reset) action()             {}
func (Batch) action()             {}
