package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// FrameFunc runs one frame; returning false deregisters the loop
// so no further frame runs until the next Start
type FrameFunc func(frame uint64) bool

// FrameScheduler drives a FrameFunc on a fixed interval from one goroutine
// Frames never overlap; Stop waits for the in-flight frame
type FrameScheduler struct {
	interval time.Duration
	spawn    func(func()) // Goroutine launcher, allows crash-safe wrappers

	mu       sync.Mutex // Serializes Start/Stop
	stopChan chan struct{}
	wg       sync.WaitGroup
	running  atomic.Bool

	frameCount atomic.Uint64
}

// NewFrameScheduler creates a stopped scheduler
// spawn launches the loop goroutine; nil uses the go statement
func NewFrameScheduler(interval time.Duration, spawn func(func())) *FrameScheduler {
	if spawn == nil {
		spawn = func(fn func()) { go fn() }
	}
	return &FrameScheduler{
		interval: interval,
		spawn:    spawn,
	}
}

// Start registers fn and begins ticking; no-op if already running
// Must not be called from inside fn
func (fs *FrameScheduler) Start(fn FrameFunc) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if fs.running.Load() {
		return
	}

	// A loop that deregistered itself may still be unwinding
	fs.wg.Wait()

	stop := make(chan struct{})
	fs.stopChan = stop
	fs.running.Store(true)
	fs.wg.Add(1)
	fs.spawn(func() { fs.loop(fn, stop) })
}

// Stop deregisters the pending frame and waits for an in-flight one
// Must not be called from inside the FrameFunc; return false there instead
func (fs *FrameScheduler) Stop() {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if fs.stopChan != nil {
		select {
		case <-fs.stopChan:
		default:
			close(fs.stopChan)
		}
	}
	fs.wg.Wait()
}

// Running reports whether a loop is registered
func (fs *FrameScheduler) Running() bool {
	return fs.running.Load()
}

// FrameCount returns the number of frames executed since creation
func (fs *FrameScheduler) FrameCount() uint64 {
	return fs.frameCount.Load()
}

func (fs *FrameScheduler) loop(fn FrameFunc, stop <-chan struct{}) {
	defer fs.wg.Done()
	defer fs.running.Store(false)

	ticker := time.NewTicker(fs.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}

		// Stop wins over a tick that became ready at the same time
		select {
		case <-stop:
			return
		default:
		}

		frame := fs.frameCount.Add(1)
		if !fn(frame) {
			return
		}
	}
}
