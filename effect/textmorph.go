package effect

import (
	"github.com/lixenwraith/glowfield/parameter"
	"github.com/lixenwraith/glowfield/particle"
	"github.com/lixenwraith/glowfield/shape"
	"github.com/lixenwraith/glowfield/vmath"
)

// TextMorph blends every particle between two target clouds: the galaxy
// while the gesture is inactive, the rasterized text while it is active.
// One boolean branch per frame picks the target; exponential smoothing keeps
// the transition jitter-free and idempotent at the fixed point.
type TextMorph struct {
	rng *vmath.FastRand
	cfg Config

	galaxy *shape.PointSet
	text   *shape.PointSet
}

func (e *TextMorph) Kind() Kind {
	return KindTextMorph
}

func (e *TextMorph) Rebuild(cfg Config) *particle.Buffer {
	e.cfg = cfg

	e.galaxy = shape.Galaxy(cfg.Count, shape.GalaxyParams{
		Radius:   parameter.GalaxyRadius,
		Branches: parameter.GalaxyBranches,
		Spin:     parameter.GalaxySpin,
		Jitter:   parameter.GalaxyJitter,
		Inside:   parameter.GalaxyInsideColor,
		Outside:  parameter.GalaxyOutsideColor,
	}, e.rng)

	e.text = shape.Text(cfg.Count, shape.TextParams{
		Text:         cfg.Text,
		RasterWidth:  parameter.TextRasterWidth,
		RasterHeight: parameter.TextRasterHeight,
		FontSize:     parameter.TextFontSize,
		Threshold:    parameter.TextThreshold,
		WorldScale:   parameter.TextWorldScale,
		Jitter:       parameter.TextJitter,
		Color:        cfg.BaseColor,
	}, e.rng)

	buf := particle.NewBuffer(cfg.Count)
	e.galaxy.CopyTo(buf)
	return buf
}

func (e *TextMorph) Advance(buf *particle.Buffer, ctx Context) {
	target := e.galaxy
	if ctx.Gesture {
		target = e.text
	}

	rate := parameter.TextMorphBlendRate
	for i := 0; i < len(buf.Positions); i++ {
		buf.Positions[i] = vmath.Smooth(buf.Positions[i], target.Positions[i], rate)
		buf.Colors[i] = vmath.Smooth(buf.Colors[i], target.Colors[i], rate)
	}
}
