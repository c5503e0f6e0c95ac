package shape

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/glowfield/vmath"
)

// HeartParams controls the heart curve generator
type HeartParams struct {
	Scale     float64
	Thickness float64 // random depth jitter on Z
	Top       colorful.Color
	Bottom    colorful.Color
}

// Heart builds the classic parametric heart curve:
//
//	x = 16·sin³t
//	y = 13·cos t − 5·cos 2t − 2·cos 3t − cos 4t
//
// with t spread evenly over [0,2π) across the particles and a random Z
// thickness. Color runs top-to-bottom along the curve's vertical extent.
func Heart(count int, p HeartParams, rng *vmath.FastRand) *PointSet {
	set := NewPointSet(count)
	if count <= 0 {
		return set
	}

	yMin, yMax := math.Inf(1), math.Inf(-1)
	for i := 0; i < count; i++ {
		t := 2 * math.Pi * float64(i) / float64(count)

		sin := math.Sin(t)
		x := 16 * sin * sin * sin
		y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
		z := rng.Signed() * p.Thickness

		set.setPosition(i, vmath.Vec3F{
			X: x * p.Scale,
			Y: y * p.Scale,
			Z: z,
		})

		if wy := y * p.Scale; wy < yMin {
			yMin = wy
		}
		if wy := y * p.Scale; wy > yMax {
			yMax = wy
		}
	}

	// Second pass: color by normalized height
	span := yMax - yMin
	for i := 0; i < count; i++ {
		t := 0.5
		if span > 0 {
			t = (set.Position(i).Y - yMin) / span
		}
		set.setColor(i, p.Bottom.BlendRgb(p.Top, t))
	}

	return set
}
