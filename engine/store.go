package engine

import "sync"

// Listener observes committed dispatches
type Listener func(prev, next State)

// Store owns the authoritative State
// Dispatch is safe from any goroutine; each dispatch is atomic
type Store struct {
	mu    sync.RWMutex
	state State

	lmu       sync.RWMutex
	listeners []Listener
}

// NewStore creates a store holding initial
func NewStore(initial State) *Store {
	return &Store{state: initial}
}

// State returns the current snapshot
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies a and returns the committed state
// Listeners run after the store lock is released and may dispatch
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	prev := s.state
	next := Reduce(prev, a)
	s.state = next
	s.mu.Unlock()

	s.lmu.RLock()
	listeners := s.listeners
	s.lmu.RUnlock()

	for _, fn := range listeners {
		fn(prev, next)
	}
	return next
}

// Subscribe registers fn for every subsequent dispatch
func (s *Store) Subscribe(fn Listener) {
	s.lmu.Lock()
	defer s.lmu.Unlock()
	// Copy so in-flight notifications keep iterating the old slice
	listeners := make([]Listener, len(s.listeners), len(s.listeners)+1)
	copy(listeners, s.listeners)
	s.listeners = append(listeners, fn)
}
