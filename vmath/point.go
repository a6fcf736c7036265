package vmath

// Point2D is a float64 2D vector in playfield world units
// Used for both positions and velocities
type Point2D struct {
	X, Y float64
}

// P2Integrate returns pos advanced by vel over dt seconds
func P2Integrate(pos, vel Point2D, dt float64) Point2D {
	return Point2D{pos.X + vel.X*dt, pos.Y + vel.Y*dt}
}

// ReflectAxisX returns velocity reflected off a vertical surface (paddle face)
func ReflectAxisX(v Point2D) Point2D {
	return Point2D{-v.X, v.Y}
}

// ReflectAxisY returns velocity reflected off a horizontal surface (top/bottom wall)
func ReflectAxisY(v Point2D) Point2D {
	return Point2D{v.X, -v.Y}
}
