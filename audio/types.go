package audio

import "time"

// SoundType represents different sound effects
type SoundType int

const (
	SoundShot      SoundType = iota // Accepted shot
	SoundHit                        // Bullet hit an enemy
	SoundKill                       // Enemy destroyed, coins granted
	SoundHurt                       // Contact damage
	SoundWaveClear                  // Wave cleared
	SoundGameOver                   // Player died
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"shot", "hit", "kill", "hurt", "wave_clear", "game_over"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSoundType resolves a sound name as used in config files
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64               // 0.0-1.0
	EffectVolumes map[SoundType]float64 // Per-effect multiplier, 1.0 when absent
	MinSoundGap   time.Duration         // Minimum interval between repeats of one effect
	SampleRate    int
}
