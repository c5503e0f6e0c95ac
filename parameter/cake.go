package parameter

import "github.com/lucasb-eyer/go-colorful"

// Cake Composite Generator
// Band proportions are fixed fractions of the particle count; the remainder
// after the text band is the dynamic flame subrange with no precomputed target.
const (
	CakeBaseFraction   = 0.40
	CakeTopFraction    = 0.30
	CakeCandleFraction = 0.05
	CakeTextFraction   = 0.20

	// Base layer cylinder
	CakeBaseRadius = 2.2
	CakeBaseBottom = -1.5
	CakeBaseTop    = -0.3

	// Top layer cylinder
	CakeTopRadius  = 1.5
	CakeTopBottom  = -0.3
	CakeTopHeight  = 0.7

	// Candle cylinder
	CakeCandleRadius = 0.12
	CakeCandleBottom = 0.7
	CakeCandleTip    = 1.6

	// Text plaque placement (front face of the base layer)
	CakeTextScale = 0.012
	CakeTextY     = -0.9
	CakeTextZ     = 2.3

	// CakeBlendRate is the per-frame smoothing rate toward the cake shape
	CakeBlendRate = 0.1
)

var (
	CakeBaseColor   = colorful.Color{R: 0.95, G: 0.75, B: 0.80}
	CakeTopColor    = colorful.Color{R: 1.0, G: 0.95, B: 0.85}
	CakeCandleColor = colorful.Color{R: 0.95, G: 0.30, B: 0.30}
	CakeTextColor   = colorful.Color{R: 0.95, G: 0.85, B: 0.30}
)
