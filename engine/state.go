package engine

import (
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Direction is a paddle movement intent: -1 up, 0 idle, 1 down
type Direction int8

const (
	DirUp   Direction = -1
	DirNone Direction = 0
	DirDown Direction = 1
)

// Paddle is one side's bat. X is the left edge of its rectangle, Y its vertical center
type Paddle struct {
	X   float64
	Y   float64
	Dir Direction
}

// Ball is a square projectile centered at Pos
type Ball struct {
	Pos vmath.Point2D
	Vel vmath.Point2D
}

// State is the whole session state, owned exclusively by the frame driver
type State struct {
	Left  Paddle
	Right Paddle
	Balls []Ball

	// Running ends the session once false; never set back to true
	Running bool

	// LastTicks is the clock tick count of the previous frame
	LastTicks uint32
}

// Input is the per-frame directive derived from the input source
type Input struct {
	Left  Direction
	Right Direction
	Quit  bool
}

// Events reports what happened during a single step
type Events struct {
	PaddleHits int
	WallHits   int
	Escaped    bool
	Quit       bool
}

// Any reports whether the step produced anything worth reacting to
func (e Events) Any() bool {
	return e.PaddleHits > 0 || e.WallHits > 0 || e.Escaped || e.Quit
}

// newPaddle returns a vertically centered paddle at x
func newPaddle(x float64) Paddle {
	return Paddle{X: x, Y: constants.FieldHeight / 2}
}
