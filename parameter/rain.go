package parameter

import "github.com/lucasb-eyer/go-colorful"

// Rain Effect
const (
	// RainSpread is the half-width of the rain volume on X and Z
	RainSpread = 5.0

	// RainCeiling and RainFloor bound particle fall; a particle crossing the
	// floor resets to the ceiling on the same frame
	RainCeiling = 5.0
	RainFloor   = -5.0

	// RainSpeedMin/Max bound the per-particle fall speed (units/sec)
	RainSpeedMin = 1.5
	RainSpeedMax = 4.5
)

var RainColor = colorful.Color{R: 0.35, G: 0.55, B: 1.0}
