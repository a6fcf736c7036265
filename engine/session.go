package engine

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/vmath"
)

// NewRand returns a PCG-backed generator; seed 0 derives one from the wall clock
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSession builds the initial state: centered paddles and 1-4 balls launched
// from the field center. More balls move proportionally slower
func NewSession(rng *rand.Rand) *State {
	if rng == nil {
		rng = NewRand(0)
	}

	count := constants.MinBallCount + rng.IntN(constants.MaxBallCount-constants.MinBallCount+1)

	s := &State{
		Left:    newPaddle(constants.LeftPaddleX),
		Right:   newPaddle(constants.RightPaddleX),
		Balls:   make([]Ball, 0, count),
		Running: true,
	}

	center := vmath.Point2D{X: constants.FieldWidth / 2, Y: constants.FieldHeight / 2}
	for i := 0; i < count; i++ {
		s.Balls = append(s.Balls, Ball{
			Pos: center,
			Vel: vmath.Point2D{
				X: launchSpeed(rng, count),
				Y: launchSpeed(rng, count),
			},
		})
	}
	return s
}

// launchSpeed draws one signed velocity component. Division is integral and
// truncates toward zero
func launchSpeed(rng *rand.Rand, count int) float64 {
	v := constants.MinBallSpeed + rng.IntN(constants.MaxBallSpeed-constants.MinBallSpeed+1)
	if rng.IntN(2) == 0 {
		v = -v
	}
	return float64(v / count)
}
