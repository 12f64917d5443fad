package engine

import (
	"math"
	"slices"

	"github.com/lixenwraith/sketchy-shooter/catalog"
	"github.com/lixenwraith/sketchy-shooter/parameter"
)

// Reduce returns the state that results from applying a to s
// s is never modified; actions that do not apply return s unchanged
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SetPhase:
		s.Phase = a.Phase
	case SetShowShop:
		s.ShowShop = a.Show
	case SetViewMode:
		s.View = a.Mode
	case AddCoins:
		s.Coins = max(0, s.Coins+a.Amount)
	case SpendCoins:
		s.Coins = max(0, s.Coins-a.Amount)
	case AddScore:
		s.Score = max(0, s.Score+a.Amount)
	case SetLevel:
		s.Level = max(1, a.Level)
	case SetWave:
		s.Wave = max(1, a.Wave)
	case SetPlayerHealth:
		s.Player.Health = clampInt(a.Health, 0, s.Player.MaxHealth)
	case SetPlayerPosition:
		s.Player.Pos = a.Pos
	case SetHeading:
		s.Player.Heading = normalizeAngle(a.Heading)
	case SetCurrentWeapon:
		if w, ok := s.Weapon(a.ID); ok && w.Unlocked {
			s.Player.Weapon = a.ID
		}
	case UnlockWeapon:
		s.Weapons = unlock(s.Weapons, a.ID)
	case PurchaseWeapon:
		w, ok := s.Weapon(a.ID)
		if !ok || w.Unlocked || s.Coins < w.Cost {
			return s
		}
		s.Coins -= w.Cost
		s.Weapons = unlock(s.Weapons, a.ID)
	case SetEnemies:
		s.Enemies = a.Enemies
	case SetBullets:
		s.Bullets = a.Bullets
	case SetParticles:
		s.Particles = a.Particles
	case SetLastShot:
		s.LastShot = a.At
	case PressKey:
		s.Input.Keys = s.Input.Keys.With(a.Key)
	case ReleaseKey:
		s.Input.Keys = s.Input.Keys.Without(a.Key)
	case SetPointer:
		s.Input.Pointer = a.Pos
	case RequestFire:
		s.Input.FireSeq++
	case AckFire:
		s.Input.FireAck = max(s.Input.FireAck, min(a.Seq, s.Input.FireSeq))
	case AdvanceClock:
		s.GameTime += a.Delta
	case SetWavePending:
		s.WavePending = a.Pending
	case AdvanceWave:
		s.WavePending = false
		if a.Session != s.Session || s.Phase != PhasePlaying {
			return s
		}
		if s.Wave%parameter.LevelEveryWaves == 0 {
			s.Level++
		}
		s.Wave++
	case Reset:
		next := NewState(s.Weapons)
		next.View = s.View
		next.Session = s.Session + 1
		return next
	case Batch:
		for _, sub := range a {
			s = Reduce(s, sub)
		}
	}
	return s
}

// unlock returns a copy of weapons with id unlocked
// The input slice is returned as-is when nothing changes
func unlock(weapons []catalog.Weapon, id string) []catalog.Weapon {
	i := catalog.Find(weapons, id)
	if i < 0 || weapons[i].Unlocked {
		return weapons
	}
	out := slices.Clone(weapons)
	out[i].Unlocked = true
	return out
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
