// Package shape generates target point clouds for the particle effects.
// Generators are pure given their FastRand: same seed, same cloud.
package shape

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/glowfield/particle"
	"github.com/lixenwraith/glowfield/vmath"
)

// PointSet is a precomputed point cloud with per-point colors. Computed once
// at effect activation and read-only afterwards; effects interpolate the live
// buffer toward it.
type PointSet struct {
	Positions []float64 // xyz interleaved, stride 3
	Colors    []float64 // rgb interleaved, stride 3
}

// NewPointSet allocates a zeroed set for count points
func NewPointSet(count int) *PointSet {
	if count < 0 {
		count = 0
	}
	return &PointSet{
		Positions: make([]float64, count*particle.Stride),
		Colors:    make([]float64, count*particle.Stride),
	}
}

// Len returns the number of points in the set
func (s *PointSet) Len() int {
	return len(s.Positions) / particle.Stride
}

// Position returns point i
func (s *PointSet) Position(i int) vmath.Vec3F {
	base := i * particle.Stride
	return vmath.Vec3F{
		X: s.Positions[base],
		Y: s.Positions[base+1],
		Z: s.Positions[base+2],
	}
}

func (s *PointSet) setPosition(i int, v vmath.Vec3F) {
	base := i * particle.Stride
	s.Positions[base] = v.X
	s.Positions[base+1] = v.Y
	s.Positions[base+2] = v.Z
}

// Color returns point i's color as rgb in [0,1]
func (s *PointSet) Color(i int) vmath.Vec3F {
	base := i * particle.Stride
	return vmath.Vec3F{
		X: s.Colors[base],
		Y: s.Colors[base+1],
		Z: s.Colors[base+2],
	}
}

func (s *PointSet) setColor(i int, c colorful.Color) {
	base := i * particle.Stride
	s.Colors[base] = c.R
	s.Colors[base+1] = c.G
	s.Colors[base+2] = c.B
}

// CopyTo seeds a particle buffer with the set's points. Buffer and set must
// hold the same count.
func (s *PointSet) CopyTo(buf *particle.Buffer) {
	copy(buf.Positions, s.Positions)
	copy(buf.Colors, s.Colors)
}
