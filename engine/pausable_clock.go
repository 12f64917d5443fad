package engine

import (
	"sync"
	"time"
)

// PausableClock provides game time that stands still while paused
// Fire-rate cooldowns are measured against it, so pausing does not cool a weapon
type PausableClock struct {
	mu sync.RWMutex

	source        TimeProvider
	realStartTime time.Time // When clock was created (source time)
	gameStartTime time.Time // Game time epoch

	isPaused        bool
	pauseStartTime  time.Time     // When current pause started (source time)
	totalPausedTime time.Duration // Cumulative pause duration
}

// NewPausableClock creates a running clock over the real system time
func NewPausableClock() *PausableClock {
	return NewPausableClockWith(NewMonotonicTimeProvider())
}

// NewPausableClockWith creates a running clock over source
func NewPausableClockWith(source TimeProvider) *PausableClock {
	now := source.Now()
	return &PausableClock{
		source:        source,
		realStartTime: now,
		gameStartTime: now,
	}
}

// Now returns current game time (affected by pause)
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused {
		// During pause: return frozen time at pause point
		return pc.gameStartTime.Add(pc.pauseStartTime.Sub(pc.realStartTime) - pc.totalPausedTime)
	}

	// Game elapsed = real elapsed - total paused time
	realElapsed := pc.source.Now().Sub(pc.realStartTime)
	return pc.gameStartTime.Add(realElapsed - pc.totalPausedTime)
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.isPaused {
		return
	}
	pc.isPaused = true
	pc.pauseStartTime = pc.source.Now()
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.isPaused {
		return
	}
	pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
	pc.isPaused = false
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.isPaused
}

// TotalPauseDuration returns cumulative pause time, including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused {
		total += pc.source.Now().Sub(pc.pauseStartTime)
	}
	return total
}
