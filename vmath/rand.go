package vmath

import (
	"math"
)

// FastRand is a xorshift64 generator. Not cryptographic; seeded explicitly
// so point cloud generation is reproducible in tests.
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a uniform value in [0,1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a uniform value in [lo,hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// Signed returns a uniform value in [-1,1)
func (r *FastRand) Signed() float64 {
	return r.Float64()*2 - 1
}

// CubicSigned returns a value in (-1,1) biased toward zero by a cubic
// falloff. Used for spiral arm jitter: most particles stay near the arm,
// a few stray far.
func (r *FastRand) CubicSigned() float64 {
	u := r.Float64()
	v := u * u * u
	if r.Next()&1 == 0 {
		return -v
	}
	return v
}

// UnitSphere returns a direction uniformly distributed on the unit sphere.
// Polar angle via inverse cosine sampling to avoid pole clustering.
func (r *FastRand) UnitSphere() Vec3F {
	theta := math.Acos(1 - 2*r.Float64())
	phi := 2 * math.Pi * r.Float64()
	sinTheta, cosTheta := math.Sincos(theta)
	sinPhi, cosPhi := math.Sincos(phi)
	return Vec3F{
		X: sinTheta * cosPhi,
		Y: cosTheta,
		Z: sinTheta * sinPhi,
	}
}

// DiskPoint returns a point uniformly distributed on a disk of the given
// radius in the XZ plane. Radius via sqrt of uniform for uniform area density.
func (r *FastRand) DiskPoint(radius float64) (x, z float64) {
	rr := radius * math.Sqrt(r.Float64())
	sin, cos := math.Sincos(2 * math.Pi * r.Float64())
	return rr * cos, rr * sin
}
