package shape

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/glowfield/vmath"
)

// GalaxyParams controls the spiral generator
type GalaxyParams struct {
	Radius   float64
	Branches int
	Spin     float64 // spin angle per unit radius
	Jitter   float64 // cubic-falloff scatter scale
	Inside   colorful.Color
	Outside  colorful.Color
}

// Galaxy builds a spiral point cloud. Each particle sits on one of Branches
// arms at a uniform random radius, twisted by Spin·radius, scattered by a
// cubic-falloff jitter that grows with radius. Color is the inside→outside
// gradient by radius fraction.
func Galaxy(count int, p GalaxyParams, rng *vmath.FastRand) *PointSet {
	set := NewPointSet(count)
	if count <= 0 {
		return set
	}

	branches := p.Branches
	if branches < 1 {
		branches = 1
	}

	for i := 0; i < count; i++ {
		radius := rng.Float64() * p.Radius
		branchAngle := float64(i%branches) / float64(branches) * 2 * math.Pi
		spinAngle := radius * p.Spin

		sin, cos := math.Sincos(branchAngle + spinAngle)

		jx := rng.CubicSigned() * p.Jitter * radius
		jy := rng.CubicSigned() * p.Jitter * radius
		jz := rng.CubicSigned() * p.Jitter * radius

		set.setPosition(i, vmath.Vec3F{
			X: cos*radius + jx,
			Y: jy,
			Z: sin*radius + jz,
		})

		var t float64
		if p.Radius > 0 {
			t = radius / p.Radius
		}
		set.setColor(i, p.Inside.BlendRgb(p.Outside, t))
	}

	return set
}
