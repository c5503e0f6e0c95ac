package effect

import (
	"github.com/lixenwraith/glowfield/parameter"
	"github.com/lixenwraith/glowfield/particle"
	"github.com/lixenwraith/glowfield/vmath"
)

// Rain drops particles through a box volume. A particle crossing the floor
// resets to the ceiling on the same frame; the cycle never terminates and
// never escapes the bounds by more than one frame step.
type Rain struct {
	rng *vmath.FastRand
	cfg Config

	// fallSpeed is effect-private per-particle state, index-aligned with
	// the buffer
	fallSpeed []float64
}

func (e *Rain) Kind() Kind {
	return KindRain
}

func (e *Rain) Rebuild(cfg Config) *particle.Buffer {
	e.cfg = cfg
	e.fallSpeed = make([]float64, cfg.Count)

	buf := particle.NewBuffer(cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		buf.SetPosition(i, vmath.Vec3F{
			X: e.rng.Range(-parameter.RainSpread, parameter.RainSpread),
			Y: e.rng.Range(parameter.RainFloor, parameter.RainCeiling),
			Z: e.rng.Range(-parameter.RainSpread, parameter.RainSpread),
		})

		// Slight per-particle brightness variation
		shade := e.rng.Range(0.6, 1.0)
		buf.SetColor(i, vmath.Vec3F{
			X: cfg.BaseColor.R * shade,
			Y: cfg.BaseColor.G * shade,
			Z: cfg.BaseColor.B * shade,
		})

		e.fallSpeed[i] = e.rng.Range(parameter.RainSpeedMin, parameter.RainSpeedMax)
	}
	return buf
}

func (e *Rain) Advance(buf *particle.Buffer, ctx Context) {
	for i := 0; i < buf.Count; i++ {
		base := i * particle.Stride
		y := buf.Positions[base+1] - e.fallSpeed[i]*e.cfg.Speed*ctx.Dt
		if y < parameter.RainFloor {
			y = parameter.RainCeiling
		}
		buf.Positions[base+1] = y
	}
}
