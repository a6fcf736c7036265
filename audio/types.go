package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundPaddle   SoundType = iota // Ball bounced off a paddle
	SoundWall                      // Ball bounced off the top or bottom wall
	SoundGameOver                  // Ball left the field
	soundTypeCount
)

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrUnknownSound   = errors.New("unknown sound type")
)
