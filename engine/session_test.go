package engine

import (
	"math"
	"testing"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/vmath"
)

func TestNewSessionLayout(t *testing.T) {
	s := NewSession(NewRand(7))

	if !s.Running {
		t.Error("new session should be running")
	}
	if s.Left.X != constants.LeftPaddleX || s.Right.X != constants.RightPaddleX {
		t.Errorf("paddle X = %v, %v", s.Left.X, s.Right.X)
	}
	if s.Left.Y != constants.FieldHeight/2 || s.Right.Y != constants.FieldHeight/2 {
		t.Errorf("paddles not centered: %v, %v", s.Left.Y, s.Right.Y)
	}
	if s.Left.Dir != DirNone || s.Right.Dir != DirNone {
		t.Error("paddles should start idle")
	}

	center := vmath.Point2D{X: constants.FieldWidth / 2, Y: constants.FieldHeight / 2}
	for i, b := range s.Balls {
		if b.Pos != center {
			t.Errorf("ball %d starts at %+v, want center", i, b.Pos)
		}
	}
}

func TestNewSessionDistribution(t *testing.T) {
	rng := NewRand(12345)
	seen := make(map[int]int)

	for run := 0; run < 1000; run++ {
		s := NewSession(rng)
		n := len(s.Balls)
		if n < constants.MinBallCount || n > constants.MaxBallCount {
			t.Fatalf("run %d: ball count %d out of range", run, n)
		}
		seen[n]++

		for i, b := range s.Balls {
			for _, v := range []float64{b.Vel.X, b.Vel.Y} {
				mag := math.Abs(v)
				if mag != math.Trunc(mag) {
					t.Fatalf("run %d ball %d: velocity %v is not integral", run, i, v)
				}
				if int(mag) < constants.MinBallSpeed/n || int(mag) > constants.MaxBallSpeed/n {
					t.Fatalf("run %d ball %d: |vel| %v outside [%d, %d] for %d balls",
						run, i, mag, constants.MinBallSpeed/n, constants.MaxBallSpeed/n, n)
				}
				if mag < constants.MinBallSpeed/constants.MaxBallCount || mag > constants.MaxBallSpeed {
					t.Fatalf("run %d ball %d: |vel| %v outside global range", run, i, mag)
				}
			}
		}
	}

	for n := constants.MinBallCount; n <= constants.MaxBallCount; n++ {
		if seen[n] == 0 {
			t.Errorf("ball count %d never drawn in 1000 sessions", n)
		}
	}
}

func TestNewSessionSignsVary(t *testing.T) {
	rng := NewRand(99)
	var negX, posX, negY, posY int

	for run := 0; run < 200; run++ {
		for _, b := range NewSession(rng).Balls {
			if b.Vel.X < 0 {
				negX++
			} else {
				posX++
			}
			if b.Vel.Y < 0 {
				negY++
			} else {
				posY++
			}
		}
	}

	if negX == 0 || posX == 0 || negY == 0 || posY == 0 {
		t.Errorf("velocity signs not randomized: x-%d x+%d y-%d y+%d", negX, posX, negY, posY)
	}
}

func TestNewSessionDeterministicSeed(t *testing.T) {
	a := NewSession(NewRand(2024))
	b := NewSession(NewRand(2024))

	if len(a.Balls) != len(b.Balls) {
		t.Fatalf("ball counts differ: %d vs %d", len(a.Balls), len(b.Balls))
	}
	for i := range a.Balls {
		if a.Balls[i] != b.Balls[i] {
			t.Errorf("ball %d differs: %+v vs %+v", i, a.Balls[i], b.Balls[i])
		}
	}
}

func TestNewSessionNilRand(t *testing.T) {
	s := NewSession(nil)
	if n := len(s.Balls); n < constants.MinBallCount || n > constants.MaxBallCount {
		t.Errorf("ball count %d out of range", n)
	}
}

func TestLaunchSpeedTruncates(t *testing.T) {
	// Integer division toward zero: 161/4 = 40, -161/4 = -40
	rng := NewRand(1)
	for i := 0; i < 500; i++ {
		v := launchSpeed(rng, 3)
		if v != math.Trunc(v) {
			t.Fatalf("launchSpeed returned fractional %v", v)
		}
		if math.Abs(v) < 53 || math.Abs(v) > 133 {
			t.Fatalf("launchSpeed for 3 balls = %v, want |v| in [53, 133]", v)
		}
	}
}
