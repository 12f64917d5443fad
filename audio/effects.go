package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/sketchy-shooter/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally sweeping frequency
type oscillator struct {
	freq     float64
	sweep    float64 // Frequency change per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from one frequency to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		sweep:    (to - from) / duration.Seconds(),
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.sweep*float64(o.position)/float64(o.rate)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly
// math.Log2(0) is -Inf, so zero volume is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is one shaped oscillator
func tone(from, to float64, wave WaveType, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewSweep(from, to, d, wave, rate), d, attack, release, rate)
}

// Sound effect generators

// CreateShotSound is a short descending square blip
func CreateShotSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(880, 440, WaveSquare, parameter.ShotSoundDuration, parameter.ShotSoundAttack, parameter.ShotSoundRelease, rate)
	return newVolume(s, 0.3*cfg.Volume(SoundShot))
}

// CreateHitSound is a noise tick
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(0, 0, WaveNoise, parameter.HitSoundDuration, parameter.HitSoundAttack, parameter.HitSoundRelease, rate)
	return newVolume(s, 0.4*cfg.Volume(SoundHit))
}

// CreateKillSound is a rising two-note chime
func CreateKillSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d, a, r := parameter.KillNoteDuration, parameter.KillNoteAttack, parameter.KillNoteRelease
	s := beep.Seq(
		tone(988, 988, WaveSine, d, a, r, rate),   // B5
		tone(1319, 1319, WaveSine, d, a, r, rate), // E6
	)
	return newVolume(s, 0.6*cfg.Volume(SoundKill))
}

// CreateHurtSound is a low saw buzz
func CreateHurtSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(140, 90, WaveSaw, parameter.HurtSoundDuration, parameter.HurtSoundAttack, parameter.HurtSoundRelease, rate)
	return newVolume(s, 0.5*cfg.Volume(SoundHurt))
}

// CreateWaveClearSound is a major arpeggio
func CreateWaveClearSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d, a, r := parameter.WaveNoteDuration, parameter.WaveNoteAttack, parameter.WaveNoteRelease
	s := beep.Seq(
		tone(523, 523, WaveSine, d, a, r, rate), // C5
		tone(659, 659, WaveSine, d, a, r, rate), // E5
		tone(784, 784, WaveSine, d, a, r, rate), // G5
		tone(1047, 1047, WaveSine, d, a, r, rate),
	)
	return newVolume(s, 0.6*cfg.Volume(SoundWaveClear))
}

// CreateGameOverSound is a long falling saw
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	s := tone(440, 55, WaveSaw, parameter.GameOverSoundDuration, parameter.GameOverSoundAttack, parameter.GameOverSoundRelease, rate)
	return newVolume(s, 0.5*cfg.Volume(SoundGameOver))
}

// GetSoundEffect builds a fresh streamer for a sound type
// Returns nil for unknown types
func GetSoundEffect(s SoundType, cfg *AudioConfig) beep.Streamer {
	switch s {
	case SoundShot:
		return CreateShotSound(cfg)
	case SoundHit:
		return CreateHitSound(cfg)
	case SoundKill:
		return CreateKillSound(cfg)
	case SoundHurt:
		return CreateHurtSound(cfg)
	case SoundWaveClear:
		return CreateWaveClearSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
