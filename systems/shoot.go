package systems

import (
	"time"

	"github.com/lixenwraith/sketchy-shooter/engine"
	"github.com/lixenwraith/sketchy-shooter/parameter"
)

// CanShoot reports whether a shot at now clears the fire-rate cooldown
// The first shot of a session is always accepted
func CanShoot(last time.Time, rate time.Duration, now time.Time) bool {
	return last.IsZero() || now.Sub(last) >= rate
}

// Shoot builds a bullet from the equipped weapon when the cooldown allows
// Damage and range are captured at fire time, so re-equipping never alters
// bullets in flight
func Shoot(s engine.State, now time.Time, id string) (engine.Bullet, bool) {
	w, ok := s.EquippedWeapon()
	if !ok || !CanShoot(s.LastShot, w.FireRate, now) {
		return engine.Bullet{}, false
	}

	origin, dir := aim(s)
	return engine.Bullet{
		ID:        id,
		Pos:       origin,
		Vel:       dir.Scale(parameter.BulletSpeed),
		Damage:    w.Damage,
		MaxTravel: w.Range,
	}, true
}

// aim returns the muzzle position and unit firing direction
func aim(s engine.State) (origin, dir engine.Vec) {
	if s.View == engine.ViewFirstPerson {
		return engine.Vec{}, engine.FromAngle(s.Player.Heading)
	}

	dir = s.Input.Pointer.Sub(s.Player.Pos).Norm()
	if dir == (engine.Vec{}) {
		// Pointer on the player: fire right
		dir = engine.Vec{X: 1}
	}
	return s.Player.Pos, dir
}
