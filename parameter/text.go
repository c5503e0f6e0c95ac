package parameter

// Rasterized Text Generator
const (
	// TextRasterWidth/Height is the off-screen raster resolution. Fixed so
	// pixel-to-world mapping stays stable across hosts.
	TextRasterWidth  = 320
	TextRasterHeight = 160

	// TextFontSize in raster pixels
	TextFontSize = 96.0

	// TextThreshold is the minimum pixel luminance counted as a glyph pixel
	TextThreshold = 0.5

	// TextWorldScale maps raster pixels to world units
	TextWorldScale = 0.035

	// TextJitter is the random world-space scatter added per particle so
	// cyclic broadcast over few candidates still reads as a cloud
	TextJitter = 0.04

	// TextMorphBlendRate is the per-frame smoothing rate of the text morph
	TextMorphBlendRate = 0.07
)
