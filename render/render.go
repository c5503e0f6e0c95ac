// Package render draws particle buffers as point clouds. The stage talks to
// a PointRenderer only; the terminal and window backends are interchangeable.
package render

import (
	"github.com/lixenwraith/glowfield/particle"
)

// PointRenderer is the boundary to the rendering backend. Render reads the
// buffer wholesale after the frame's mutation; Dispose releases whatever the
// backend holds for the current buffer and must be idempotent — the stage
// calls it on every effect switch and again on teardown.
type PointRenderer interface {
	Render(buf *particle.Buffer, size float64)
	Dispose()
}

// camera projection shared by both backends
const (
	// cameraDistance along +Z looking at the origin
	cameraDistance = 12.0

	// focalLength scales the perspective divide into screen space
	focalLength = 1.8

	// nearPlane culls points behind or grazing the camera
	nearPlane = 0.1
)

// project maps a world position to normalized screen coordinates in [-1,1]
// (before aspect correction). ok is false for culled points.
func project(x, y, z float64) (sx, sy float64, ok bool) {
	depth := cameraDistance - z
	if depth < nearPlane {
		return 0, 0, false
	}
	scale := focalLength / depth
	return x * scale, y * scale, true
}
