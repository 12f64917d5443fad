package input

import (
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sketchy-shooter/engine"
	"github.com/lixenwraith/sketchy-shooter/parameter"
)

// Dispatcher is the store surface the listener writes to
type Dispatcher interface {
	State() engine.State
	Dispatch(engine.Action) engine.State
}

// Commands receives intents that change session flow rather than input state
type Commands interface {
	Quit()
	TogglePause()
	ToggleShop()
	ToggleView()
	Start()
	Select(slot int)
}

// PointerMapper converts a terminal cell to arena coordinates
// ok is false when the cell is outside the playfield
type PointerMapper interface {
	ScreenToArena(x, y int) (pos engine.Vec, ok bool)
}

// Listener turns terminal events into store actions
// Terminals report key presses and repeats but never releases, so a held
// key is released once its repeat stream has been silent for
// parameter.KeyReleaseTimeout
type Listener struct {
	store  Dispatcher
	cmds   Commands
	keys   *KeyTable
	mapper PointerMapper
	clock  engine.TimeProvider

	mu      sync.Mutex
	held    map[engine.Key]time.Time // Last press or repeat per key
	buttons tcell.ButtonMask
}

// NewListener creates a listener; a nil keys table uses the defaults
func NewListener(store Dispatcher, cmds Commands, keys *KeyTable, mapper PointerMapper, clock engine.TimeProvider) *Listener {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Listener{
		store:  store,
		cmds:   cmds,
		keys:   keys,
		mapper: mapper,
		clock:  clock,
		held:   make(map[engine.Key]time.Time),
	}
}

// Handle processes one terminal event
func (l *Listener) Handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		l.handleKey(ev)
	case *tcell.EventMouse:
		l.handleMouse(ev)
	}
}

func (l *Listener) handleKey(ev *tcell.EventKey) {
	entry, ok := l.keys.Lookup(ev)
	if !ok {
		return
	}

	switch entry.Intent {
	case IntentMove:
		l.press(entry.Move)
	case IntentFire:
		l.fire()
	case IntentQuit:
		l.cmds.Quit()
	case IntentPause:
		l.cmds.TogglePause()
	case IntentStart:
		l.cmds.Start()
	case IntentShop:
		l.cmds.ToggleShop()
	case IntentView:
		l.cmds.ToggleView()
	case IntentSelect:
		l.cmds.Select(entry.Slot)
	}
}

// handleMouse tracks the pointer and fires on a left-button press edge
// Other buttons are ignored
func (l *Listener) handleMouse(ev *tcell.EventMouse) {
	if pos, ok := l.mapper.ScreenToArena(ev.Position()); ok {
		l.store.Dispatch(engine.SetPointer{Pos: pos})
	}

	l.mu.Lock()
	pressed := ev.Buttons()&tcell.Button1 != 0 && l.buttons&tcell.Button1 == 0
	l.buttons = ev.Buttons()
	l.mu.Unlock()

	if pressed {
		l.fire()
	}
}

// fire latches a shot request while a session is running; menu and
// game-over input must not carry a shot into the next session
func (l *Listener) fire() {
	switch l.store.State().Phase {
	case engine.PhasePlaying, engine.PhasePaused:
		l.store.Dispatch(engine.RequestFire{})
	}
}

// press refreshes a held key, dispatching PressKey when the store does not
// already hold it (first press, or after a reset cleared the set)
func (l *Listener) press(k engine.Key) {
	l.mu.Lock()
	l.held[k] = l.clock.Now()
	l.mu.Unlock()

	if !l.store.State().Input.Keys.Has(k) {
		l.store.Dispatch(engine.PressKey{Key: k})
	}
}

// Expire releases keys whose repeat stream stopped before now
func (l *Listener) Expire(now time.Time) {
	var released []engine.Key

	l.mu.Lock()
	for k, at := range l.held {
		if now.Sub(at) >= parameter.KeyReleaseTimeout {
			delete(l.held, k)
			released = append(released, k)
		}
	}
	l.mu.Unlock()

	for _, k := range released {
		l.store.Dispatch(engine.ReleaseKey{Key: k})
	}
}

// OnStateChange matches engine.Listener; leaving the playing phase drops
// held keys so movement does not resume on return
func (l *Listener) OnStateChange(prev, next engine.State) {
	if prev.Phase == engine.PhasePlaying && next.Phase != engine.PhasePlaying {
		l.ReleaseAll()
	}
}

// ReleaseAll drops every held key, used when play stops
func (l *Listener) ReleaseAll() {
	l.mu.Lock()
	released := make([]engine.Key, 0, len(l.held))
	for k := range l.held {
		released = append(released, k)
	}
	clear(l.held)
	l.mu.Unlock()

	for _, k := range released {
		l.store.Dispatch(engine.ReleaseKey{Key: k})
	}
}

// Run expires stale keys on a fixed interval until ctx is cancelled
func (l *Listener) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			l.Expire(l.clock.Now())
		}
	}
}
