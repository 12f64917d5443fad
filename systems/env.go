package systems

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Env carries the nondeterministic inputs of one simulation step
type Env struct {
	Now  time.Time  // Pausable game clock reading, used for fire-rate gating
	Rand *rand.Rand // Spawn trials and particle spread

	// NewID returns a fresh entity id; uuid.NewString when nil
	NewID func() string
}

func (e Env) id() string {
	if e.NewID != nil {
		return e.NewID()
	}
	return uuid.NewString()
}
