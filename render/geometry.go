package render

import (
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
)

// ShapeKind identifies what a drawn rectangle represents
type ShapeKind uint8

const (
	ShapeWall ShapeKind = iota
	ShapePaddle
	ShapeBall
)

// Rect is an axis-aligned rectangle in world units, X/Y is the top-left corner
type Rect struct {
	X, Y, W, H float64
}

// Shape is one filled rectangle of a frame
type Shape struct {
	Kind ShapeKind
	Rect Rect
}

// Shapes lists everything a frame draws, in draw order: walls, paddles, balls
func Shapes(s *engine.State) []Shape {
	shapes := make([]Shape, 0, 4+len(s.Balls))

	shapes = append(shapes,
		Shape{ShapeWall, Rect{X: 0, Y: 0, W: constants.FieldWidth, H: constants.WallThickness}},
		Shape{ShapeWall, Rect{X: 0, Y: constants.FieldHeight - constants.WallThickness, W: constants.FieldWidth, H: constants.WallThickness}},
		Shape{ShapePaddle, paddleRect(s.Left)},
		Shape{ShapePaddle, paddleRect(s.Right)},
	)

	for _, b := range s.Balls {
		shapes = append(shapes, Shape{ShapeBall, Rect{
			X: b.Pos.X - constants.BallSize/2,
			Y: b.Pos.Y - constants.BallSize/2,
			W: constants.BallSize,
			H: constants.BallSize,
		}})
	}
	return shapes
}

func paddleRect(p engine.Paddle) Rect {
	return Rect{
		X: p.X,
		Y: p.Y - constants.PaddleHeight/2,
		W: constants.PaddleThickness,
		H: constants.PaddleHeight,
	}
}
