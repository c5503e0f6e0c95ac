package parameter

import "github.com/lucasb-eyer/go-colorful"

// Wave Effect (grid of particles undulating on the XZ plane)
const (
	// WaveExtent is the half-width of the particle grid
	WaveExtent = 5.0

	// WaveFrequency is the spatial frequency of the undulation
	WaveFrequency = 1.2

	// WaveAmplitude is the vertical displacement of the undulation
	WaveAmplitude = 0.8

	// WaveRate is the temporal frequency multiplier
	WaveRate = 1.6
)

var (
	WaveLowColor  = colorful.Color{R: 0.05, G: 0.25, B: 0.55}
	WaveHighColor = colorful.Color{R: 0.55, G: 0.90, B: 1.0}
)
