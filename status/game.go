package status

import (
	"sync/atomic"
	"time"
)

// Metric keys
const (
	KeyFrames       = "game.frames"
	KeyShots        = "game.shots"
	KeyHits         = "game.hits"
	KeyKills        = "game.kills"
	KeyDamageTaken  = "game.damage_taken"
	KeyWavesCleared = "game.waves_cleared"
	KeyFrameMs      = "frame.ms"
	KeyFrameMaxMs   = "frame.max_ms"
	KeyAudio        = "audio.enabled"
	KeyPhase        = "game.phase"
)

// GameMetrics caches the registry pointers written by the frame loop
type GameMetrics struct {
	Frames       *atomic.Int64
	Shots        *atomic.Int64
	Hits         *atomic.Int64
	Kills        *atomic.Int64
	DamageTaken  *atomic.Int64
	WavesCleared *atomic.Int64

	FrameMs    *AtomicFloat // Exponential moving average of frame work time
	FrameMaxMs *AtomicFloat

	Audio *atomic.Bool
	Phase *AtomicString
}

// frameSmoothing is the weight of the newest sample in FrameMs
const frameSmoothing = 0.1

// NewGameMetrics registers the game metrics in r
func NewGameMetrics(r *Registry) *GameMetrics {
	return &GameMetrics{
		Frames:       r.Ints.Get(KeyFrames),
		Shots:        r.Ints.Get(KeyShots),
		Hits:         r.Ints.Get(KeyHits),
		Kills:        r.Ints.Get(KeyKills),
		DamageTaken:  r.Ints.Get(KeyDamageTaken),
		WavesCleared: r.Ints.Get(KeyWavesCleared),
		FrameMs:      r.Floats.Get(KeyFrameMs),
		FrameMaxMs:   r.Floats.Get(KeyFrameMaxMs),
		Audio:        r.Bools.Get(KeyAudio),
		Phase:        r.Strings.Get(KeyPhase),
	}
}

// ObserveFrame counts a frame and folds its work time into the average
// Called from the frame goroutine only
func (m *GameMetrics) ObserveFrame(d time.Duration) {
	ms := float64(d) / float64(time.Millisecond)
	if m.Frames.Add(1) == 1 {
		m.FrameMs.Set(ms)
	} else {
		m.FrameMs.Set(m.FrameMs.Get()*(1-frameSmoothing) + ms*frameSmoothing)
	}
	m.FrameMaxMs.Max(ms)
}
