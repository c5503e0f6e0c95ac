package effect

import (
	"math"

	"github.com/lixenwraith/glowfield/parameter"
	"github.com/lixenwraith/glowfield/particle"
	"github.com/lixenwraith/glowfield/vmath"
)

// Wave undulates a square grid of particles on the XZ plane. Height is a
// pure function of position and elapsed time, bounded by the amplitude.
type Wave struct {
	cfg  Config
	side int
}

func (e *Wave) Kind() Kind {
	return KindWave
}

func (e *Wave) Rebuild(cfg Config) *particle.Buffer {
	e.cfg = cfg
	e.side = int(math.Sqrt(float64(cfg.Count)))
	if e.side < 1 {
		e.side = 1
	}

	buf := particle.NewBuffer(cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		col := i % e.side
		row := (i / e.side) % e.side
		buf.SetPosition(i, gridPoint(col, row, e.side))
	}
	return buf
}

func gridPoint(col, row, side int) vmath.Vec3F {
	step := 2 * parameter.WaveExtent / float64(side)
	return vmath.Vec3F{
		X: -parameter.WaveExtent + (float64(col)+0.5)*step,
		Z: -parameter.WaveExtent + (float64(row)+0.5)*step,
	}
}

func (e *Wave) Advance(buf *particle.Buffer, ctx Context) {
	t := ctx.Elapsed * parameter.WaveRate * e.cfg.Speed
	low := parameter.WaveLowColor
	high := parameter.WaveHighColor

	for i := 0; i < buf.Count; i++ {
		base := i * particle.Stride
		x := buf.Positions[base]
		z := buf.Positions[base+2]

		y := math.Sin(x*parameter.WaveFrequency+t) *
			math.Cos(z*parameter.WaveFrequency+t) *
			parameter.WaveAmplitude
		buf.Positions[base+1] = y

		// Height drives the color gradient
		f := (y/parameter.WaveAmplitude + 1) / 2
		c := low.BlendRgb(high, f)
		buf.Colors[base] = c.R
		buf.Colors[base+1] = c.G
		buf.Colors[base+2] = c.B
	}
}
