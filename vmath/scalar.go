package vmath

// AbsF returns |x|
func AbsF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// ClampF restricts v to [lo, hi] by direct reassignment at either bound
func ClampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MinF returns the smaller of a and b
func MinF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
