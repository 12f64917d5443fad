package parameter

import "time"

// Audio
const (
	AudioSampleRate   = 44100
	AudioMasterVolume = 0.6
	// AudioMinSoundGap throttles repeats of the same effect
	AudioMinSoundGap = 40 * time.Millisecond
	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Sound effect shapes
const (
	ShotSoundDuration = 45 * time.Millisecond
	ShotSoundAttack   = 2 * time.Millisecond
	ShotSoundRelease  = 35 * time.Millisecond

	HitSoundDuration = 30 * time.Millisecond
	HitSoundAttack   = 1 * time.Millisecond
	HitSoundRelease  = 25 * time.Millisecond

	KillNoteDuration = 70 * time.Millisecond
	KillNoteAttack   = 3 * time.Millisecond
	KillNoteRelease  = 50 * time.Millisecond

	HurtSoundDuration = 120 * time.Millisecond
	HurtSoundAttack   = 5 * time.Millisecond
	HurtSoundRelease  = 60 * time.Millisecond

	WaveNoteDuration = 110 * time.Millisecond
	WaveNoteAttack   = 5 * time.Millisecond
	WaveNoteRelease  = 70 * time.Millisecond

	GameOverSoundDuration = 700 * time.Millisecond
	GameOverSoundAttack   = 10 * time.Millisecond
	GameOverSoundRelease  = 400 * time.Millisecond
)
