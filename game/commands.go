package game

import (
	"errors"

	"github.com/lixenwraith/sketchy-shooter/engine"
	"github.com/lixenwraith/sketchy-shooter/systems"
)

// Quit ends the session; safe to call more than once
func (g *Game) Quit() {
	g.quitOnce.Do(func() {
		g.log.Info("quit requested")
		close(g.quit)
	})
}

// TogglePause switches between playing and paused
func (g *Game) TogglePause() {
	switch g.store.State().Phase {
	case engine.PhasePlaying:
		g.store.Dispatch(engine.SetPhase{Phase: engine.PhasePaused})
	case engine.PhasePaused:
		g.store.Dispatch(engine.SetPhase{Phase: engine.PhasePlaying})
	}
}

// ToggleShop shows or hides the shop panel
func (g *Game) ToggleShop() {
	s := g.store.State()
	if s.Phase == engine.PhaseMenu {
		return
	}
	g.store.Dispatch(engine.SetShowShop{Show: !s.ShowShop})
}

// ToggleView switches between top-down and first-person
func (g *Game) ToggleView() {
	mode := engine.ViewFirstPerson
	if g.store.State().View == engine.ViewFirstPerson {
		mode = engine.ViewTopDown
	}
	g.store.Dispatch(engine.SetViewMode{Mode: mode})
}

// Start begins play from the menu, resumes from pause, or resets after game over
func (g *Game) Start() {
	switch g.store.State().Phase {
	case engine.PhaseMenu, engine.PhasePaused:
		g.store.Dispatch(engine.SetPhase{Phase: engine.PhasePlaying})
	case engine.PhaseGameOver:
		next := g.store.Dispatch(engine.Reset{})
		g.log.WithField("session", next.Session).Info("session reset")
	}
}

// Select acts on shop row slot (1-based): buy when locked, otherwise equip
// Ignored unless the shop is open
func (g *Game) Select(slot int) {
	s := g.store.State()
	if !s.ShowShop || slot < 1 || slot > len(s.Weapons) {
		return
	}
	w := s.Weapons[slot-1]

	var err error
	if w.Unlocked {
		err = systems.Equip(g.store, w.ID)
	} else {
		err = systems.Purchase(g.store, w.ID)
		if err == nil {
			g.log.WithField("weapon", w.ID).Info("weapon purchased")
		}
	}

	switch {
	case err == nil:
	case errors.Is(err, systems.ErrInsufficientCoins):
		g.log.WithError(err).Debug("purchase declined")
	default:
		g.log.WithError(err).Warn("shop selection failed")
	}
}
