// Package particle holds per-particle state as flat, index-addressed arrays.
// Index i refers to the same logical particle across every array for the
// lifetime of a buffer; effects mutate the arrays in place each frame and the
// renderer reads them wholesale, so nothing allocates on the frame path.
package particle

import (
	"github.com/lixenwraith/glowfield/vmath"
)

// Stride is the number of floats per particle in the position and color arrays
const Stride = 3

// Buffer is the mutable particle state owned by exactly one active effect.
// Positions and Colors are xyz / rgb interleaved with a fixed stride of 3.
// Effect-private arrays (velocities, phase scratch) live on the effect itself,
// indexed by the same particle id.
type Buffer struct {
	Count     int
	Positions []float64
	Colors    []float64
}

// NewBuffer allocates a zeroed buffer for count particles
func NewBuffer(count int) *Buffer {
	if count < 0 {
		count = 0
	}
	return &Buffer{
		Count:     count,
		Positions: make([]float64, count*Stride),
		Colors:    make([]float64, count*Stride),
	}
}

// Position returns particle i's position
func (b *Buffer) Position(i int) vmath.Vec3F {
	base := i * Stride
	return vmath.Vec3F{
		X: b.Positions[base],
		Y: b.Positions[base+1],
		Z: b.Positions[base+2],
	}
}

// SetPosition stores particle i's position
func (b *Buffer) SetPosition(i int, v vmath.Vec3F) {
	base := i * Stride
	b.Positions[base] = v.X
	b.Positions[base+1] = v.Y
	b.Positions[base+2] = v.Z
}

// Color returns particle i's color as rgb in [0,1]
func (b *Buffer) Color(i int) vmath.Vec3F {
	base := i * Stride
	return vmath.Vec3F{
		X: b.Colors[base],
		Y: b.Colors[base+1],
		Z: b.Colors[base+2],
	}
}

// SetColor stores particle i's color
func (b *Buffer) SetColor(i int, v vmath.Vec3F) {
	base := i * Stride
	b.Colors[base] = v.X
	b.Colors[base+1] = v.Y
	b.Colors[base+2] = v.Z
}
