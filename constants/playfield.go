package constants

// Playfield dimensions in world units
const (
	FieldWidth  = 1024.0
	FieldHeight = 768.0

	// WallThickness is both the wall bar height and the collision offset of the
	// top and bottom walls
	WallThickness = 15.0
)

// Paddles
const (
	PaddleHeight    = 100.0
	PaddleThickness = WallThickness

	// PaddleSpeed in world units per second
	PaddleSpeed = 800.0

	// PaddleMargin is the gap between a field edge and the outer paddle face
	PaddleMargin = 10.0

	LeftPaddleX  = PaddleMargin
	RightPaddleX = FieldWidth - PaddleMargin - PaddleThickness

	PaddleMinY = PaddleHeight/2 + WallThickness
	PaddleMaxY = FieldHeight - PaddleHeight/2 - WallThickness
)

// Paddle bands: x-range just inside each paddle face that triggers a bounce
const (
	LeftBandMin  = 20.0
	LeftBandMax  = 25.0
	RightBandMin = FieldWidth - 25.0
	RightBandMax = FieldWidth - 20.0
)

// Balls
const (
	BallSize = WallThickness

	MinBallCount = 1
	MaxBallCount = 4

	// Per-axis initial speed range before division by ball count
	MinBallSpeed = 160
	MaxBallSpeed = 400
)
