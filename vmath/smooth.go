package vmath

// Smooth moves cur toward target by rate and returns the new value.
// Rate in (0,1] is a contraction: repeated application converges to target
// without overshoot. The fixed point is target itself.
func Smooth(cur, target, rate float64) float64 {
	return cur + (target-cur)*rate
}

// V3FSmooth applies Smooth per component
func V3FSmooth(cur, target Vec3F, rate float64) Vec3F {
	return Vec3F{
		Smooth(cur.X, target.X, rate),
		Smooth(cur.Y, target.Y, rate),
		Smooth(cur.Z, target.Z, rate),
	}
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp interpolates linearly between a and b, t in [0,1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
