package engine

import (
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Step advances s by one frame of elapsed seconds and reports whether the session
// continues. Elapsed is clamped to constants.MaxDeltaSeconds; negative values count as 0
func Step(s *State, in Input, elapsed float64) (Events, bool) {
	var ev Events

	dt := vmath.MinF(elapsed, constants.MaxDeltaSeconds)
	if dt < 0 {
		dt = 0
	}

	if in.Quit {
		ev.Quit = true
		s.Running = false
	}

	s.Left.Dir = in.Left
	s.Right.Dir = in.Right
	movePaddle(&s.Left, dt)
	movePaddle(&s.Right, dt)

	for i := range s.Balls {
		stepBall(s, &s.Balls[i], dt, &ev)
	}

	return ev, s.Running
}

func movePaddle(p *Paddle, dt float64) {
	if p.Dir == DirNone {
		return
	}
	p.Y += float64(p.Dir) * constants.PaddleSpeed * dt
	p.Y = vmath.ClampF(p.Y, constants.PaddleMinY, constants.PaddleMaxY)
}

// stepBall integrates one ball and resolves its collisions. Balls never interact,
// so the order in which they are stepped does not matter
func stepBall(s *State, b *Ball, dt float64, ev *Events) {
	b.Pos = vmath.P2Integrate(b.Pos, b.Vel, dt)

	hitLeft := inPaddleReach(s.Left, b.Pos) &&
		b.Pos.X >= constants.LeftBandMin && b.Pos.X <= constants.LeftBandMax &&
		b.Vel.X < 0
	hitRight := !hitLeft && inPaddleReach(s.Right, b.Pos) &&
		b.Pos.X >= constants.RightBandMin && b.Pos.X <= constants.RightBandMax &&
		b.Vel.X > 0

	switch {
	case hitLeft, hitRight:
		b.Vel = vmath.ReflectAxisX(b.Vel)
		ev.PaddleHits++
	case b.Pos.X <= 0 || b.Pos.X > constants.FieldWidth:
		ev.Escaped = true
		s.Running = false
	}

	// Walls only reflect a ball heading into them
	if b.Pos.Y <= constants.WallThickness && b.Vel.Y < 0 {
		b.Vel = vmath.ReflectAxisY(b.Vel)
		ev.WallHits++
	} else if b.Pos.Y >= constants.FieldHeight-constants.WallThickness && b.Vel.Y > 0 {
		b.Vel = vmath.ReflectAxisY(b.Vel)
		ev.WallHits++
	}
}

func inPaddleReach(p Paddle, pos vmath.Point2D) bool {
	return vmath.AbsF(p.Y-pos.Y) <= constants.PaddleHeight/2
}
