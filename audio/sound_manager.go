package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/sketchy-shooter/parameter"
)

// SoundManager plays one-shot effects through a shared mixer
// All methods are safe to call before Initialize or after Cleanup; playback is then a no-op
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	lastPlayed  [soundTypeCount]time.Time
	played      uint64
	dropped     uint64

	// now is replaceable for tests
	now func() time.Time
	// sink receives streamers instead of the speaker when set
	sink func(beep.Streamer)
}

// NewSoundManager creates a new sound manager, nil config uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
		now:    time.Now,
	}
}

// Initialize sets up the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.config.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
// beep offers no speaker shutdown beyond Clear, the device stays open until exit
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	sm.mixer.Clear()
	sm.initialized = false
}

// Play starts an effect unless muted, uninitialized, or repeated within MinSoundGap
func (sm *SoundManager) Play(s SoundType) {
	if s < 0 || s >= soundTypeCount {
		return
	}

	sm.mu.Lock()
	if sm.muted || !sm.config.Enabled || (!sm.initialized && sm.sink == nil) {
		sm.mu.Unlock()
		return
	}
	now := sm.now()
	if last := sm.lastPlayed[s]; !last.IsZero() && now.Sub(last) < sm.config.MinSoundGap {
		sm.dropped++
		sm.mu.Unlock()
		return
	}
	sm.lastPlayed[s] = now
	sm.played++
	sink := sm.sink
	sm.mu.Unlock()

	streamer := GetSoundEffect(s, sm.config)
	if streamer == nil {
		return
	}
	if sink != nil {
		sink(streamer)
		return
	}
	// Mixer is read by the speaker goroutine
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// SetMuted toggles playback without tearing down the device
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// IsMuted reports mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// IsEnabled reports whether sounds can actually be heard
func (sm *SoundManager) IsEnabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && sm.config.Enabled && !sm.muted
}

// Stats returns the number of played and throttled effects
func (sm *SoundManager) Stats() (played, dropped uint64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played, sm.dropped
}
