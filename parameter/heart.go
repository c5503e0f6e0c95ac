package parameter

import "github.com/lucasb-eyer/go-colorful"

// Heart Curve Generator
// Classic parametric heart: x=16sin³t, y=13cos t−5cos 2t−2cos 3t−cos 4t
const (
	// HeartScale maps curve units to world units (curve spans roughly ±17)
	HeartScale = 0.18

	// HeartThickness is the random depth jitter on the Z axis
	HeartThickness = 0.25
)

// Heart top-to-bottom gradient endpoints
var (
	HeartTopColor    = colorful.Color{R: 1.0, G: 0.30, B: 0.45}
	HeartBottomColor = colorful.Color{R: 0.65, G: 0.05, B: 0.25}
)
