package systems

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/sketchy-shooter/engine"
)

// Shop errors give callers a reason; the store itself silently ignores
// purchases and equips that do not apply
var (
	ErrUnknownWeapon     = errors.New("unknown weapon")
	ErrAlreadyUnlocked   = errors.New("weapon already unlocked")
	ErrInsufficientCoins = errors.New("insufficient coins")
	ErrLocked            = errors.New("weapon locked")
)

// Dispatcher is the store surface used by the shop
type Dispatcher interface {
	State() engine.State
	Dispatch(engine.Action) engine.State
}

// Purchase debits the weapon cost and unlocks it as one dispatch
func Purchase(d Dispatcher, id string) error {
	s := d.State()
	w, ok := s.Weapon(id)
	switch {
	case !ok:
		return fmt.Errorf("purchase %q: %w", id, ErrUnknownWeapon)
	case w.Unlocked:
		return fmt.Errorf("purchase %q: %w", id, ErrAlreadyUnlocked)
	case s.Coins < w.Cost:
		return fmt.Errorf("purchase %q: %w: need %d, have %d", id, ErrInsufficientCoins, w.Cost, s.Coins)
	}

	// Coins may have moved since the snapshot; the reducer rechecks
	next := d.Dispatch(engine.PurchaseWeapon{ID: id})
	if w, _ := next.Weapon(id); !w.Unlocked {
		return fmt.Errorf("purchase %q: %w: need %d, have %d", id, ErrInsufficientCoins, w.Cost, next.Coins)
	}
	return nil
}

// Equip makes an unlocked weapon current; equipping the current one is a no-op
func Equip(d Dispatcher, id string) error {
	s := d.State()
	w, ok := s.Weapon(id)
	if !ok {
		return fmt.Errorf("equip %q: %w", id, ErrUnknownWeapon)
	}
	if !w.Unlocked {
		return fmt.Errorf("equip %q: %w", id, ErrLocked)
	}
	if s.Player.Weapon == id {
		return nil
	}
	d.Dispatch(engine.SetCurrentWeapon{ID: id})
	return nil
}
