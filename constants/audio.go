package constants

import "time"

// Paddle Sound Timing
const (
	PaddleSoundDuration = 60 * time.Millisecond
	PaddleSoundAttack   = 2 * time.Millisecond
	PaddleSoundRelease  = 30 * time.Millisecond
	PaddleSoundFreq     = 440.0
)

// Wall Sound Timing
const (
	WallSoundDuration = 40 * time.Millisecond
	WallSoundAttack   = 2 * time.Millisecond
	WallSoundRelease  = 25 * time.Millisecond
	WallSoundFreq     = 226.0
)

// Game Over Sound Timing
const (
	GameOverNote1Duration = 150 * time.Millisecond
	GameOverNote2Duration = 350 * time.Millisecond
	GameOverAttack        = 5 * time.Millisecond
	GameOverNote1Release  = 50 * time.Millisecond
	GameOverNote2Release  = 250 * time.Millisecond
	GameOverNote1Freq     = 196.0
	GameOverNote2Freq     = 98.0
)

// Speaker
const (
	// SpeakerBufferDuration is the beep speaker buffer length
	SpeakerBufferDuration = 100 * time.Millisecond
)
