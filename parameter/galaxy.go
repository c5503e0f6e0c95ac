package parameter

import "github.com/lucasb-eyer/go-colorful"

// Galaxy Generator
const (
	// GalaxyRadius is the outer radius of the spiral
	GalaxyRadius = 5.0

	// GalaxyBranches is the number of spiral arms
	GalaxyBranches = 3

	// GalaxySpin is the spin angle per unit radius (twist of the arms)
	GalaxySpin = 1.0

	// GalaxyJitter scales the cubic-falloff scatter around each arm.
	// Scatter grows with radius so arms stay tight near the core.
	GalaxyJitter = 0.3

	// GalaxySpinRate is the idle rotation speed (radians/sec)
	GalaxySpinRate = 0.15
)

// Galaxy inner/outer gradient endpoints
var (
	GalaxyInsideColor  = colorful.Color{R: 1.0, G: 0.42, B: 0.20}
	GalaxyOutsideColor = colorful.Color{R: 0.11, G: 0.40, B: 1.0}
)
