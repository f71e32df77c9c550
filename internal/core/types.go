package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Clamp limits v to the inclusive range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Smoothstep evaluates the cubic 3t^2-2t^3 blend for t clamped to [0,1].
func Smoothstep(t float64) float64 {
	t = Clamp(t, 0, 1)
	return t * t * (3 - 2*t)
}
