package audio

import (
	"github.com/lixenwraith/sketchy-shooter/parameter"
)

// DefaultAudioConfig returns the built-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		EffectVolumes: map[SoundType]float64{
			SoundShot:      0.5,
			SoundHit:       0.6,
			SoundKill:      0.8,
			SoundHurt:      0.7,
			SoundWaveClear: 0.9,
			SoundGameOver:  1.0,
		},
		MinSoundGap: parameter.AudioMinSoundGap,
		SampleRate:  parameter.AudioSampleRate,
	}
}

// Volume returns the effective volume for a sound
func (c *AudioConfig) Volume(s SoundType) float64 {
	v, ok := c.EffectVolumes[s]
	if !ok {
		v = 1
	}
	return clamp01(v) * clamp01(c.MasterVolume)
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
