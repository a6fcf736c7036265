package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-pong/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates raw audio waves for a fixed duration
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
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
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope over duration
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

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol. Log2(0) is -Inf, so zero volume is silenced
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreatePaddleSound generates a short square blip for paddle hits
func CreatePaddleSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(constants.PaddleSoundFreq, constants.PaddleSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.PaddleSoundDuration, constants.PaddleSoundAttack, constants.PaddleSoundRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundPaddle]*cfg.MasterVolume)
}

// CreateWallSound generates a lower, shorter sine blip for wall bounces
func CreateWallSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(constants.WallSoundFreq, constants.WallSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constants.WallSoundDuration, constants.WallSoundAttack, constants.WallSoundRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundWall]*cfg.MasterVolume)
}

// CreateGameOverSound generates a descending two-note saw buzz
func CreateGameOverSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(constants.GameOverNote1Freq, constants.GameOverNote1Duration, WaveSaw, rate)
	n1Shaped := NewEnvelope(n1, constants.GameOverNote1Duration, constants.GameOverAttack, constants.GameOverNote1Release, rate)

	// Octave-down note with a quiet fifth on top
	n2 := NewOscillator(constants.GameOverNote2Freq, constants.GameOverNote2Duration, WaveSaw, rate)
	n2Shaped := NewEnvelope(n2, constants.GameOverNote2Duration, constants.GameOverAttack, constants.GameOverNote2Release, rate)
	fifth := NewOscillator(constants.GameOverNote2Freq*1.5, constants.GameOverNote2Duration, WaveSine, rate)
	fifthShaped := NewEnvelope(fifth, constants.GameOverNote2Duration, constants.GameOverAttack, constants.GameOverNote2Release, rate)

	tail := beep.Mix(
		newVolume(n2Shaped, 0.7),
		newVolume(fifthShaped, 0.3),
	)

	return newVolume(beep.Seq(n1Shaped, tail), cfg.EffectVolumes[SoundGameOver]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for soundType, nil when unknown
func GetSoundEffect(soundType SoundType, cfg *Config) beep.Streamer {
	switch soundType {
	case SoundPaddle:
		return CreatePaddleSound(cfg)
	case SoundWall:
		return CreateWallSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
