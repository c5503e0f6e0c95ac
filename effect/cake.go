package effect

import (
	"math"

	"github.com/lixenwraith/glowfield/parameter"
	"github.com/lixenwraith/glowfield/particle"
	"github.com/lixenwraith/glowfield/shape"
	"github.com/lixenwraith/glowfield/vmath"
)

// Cake is the rain/cake hybrid: while the gesture is inactive all particles
// fall as rain; while it is active they smooth toward the cake shape and the
// flame band runs its own cyclic respawn system at the candle tip.
type Cake struct {
	rng *vmath.FastRand
	cfg Config

	target *shape.PointSet
	bands  shape.CakeBands

	// fallSpeed covers every particle for the rain branch; flameRise covers
	// only the flame band, indexed relative to the band start
	fallSpeed []float64
	flameRise []float64
}

func (e *Cake) Kind() Kind {
	return KindCake
}

func (e *Cake) Rebuild(cfg Config) *particle.Buffer {
	e.cfg = cfg

	e.target, e.bands = shape.Cake(cfg.Count, shape.CakeParams{
		BaseFraction:   parameter.CakeBaseFraction,
		TopFraction:    parameter.CakeTopFraction,
		CandleFraction: parameter.CakeCandleFraction,
		TextFraction:   parameter.CakeTextFraction,
		BaseRadius:     parameter.CakeBaseRadius,
		BaseBottom:     parameter.CakeBaseBottom,
		BaseTop:        parameter.CakeBaseTop,
		TopRadius:      parameter.CakeTopRadius,
		TopBottom:      parameter.CakeTopBottom,
		TopTop:         parameter.CakeTopHeight,
		CandleRadius:   parameter.CakeCandleRadius,
		CandleBottom:   parameter.CakeCandleBottom,
		CandleTip:      parameter.CakeCandleTip,
		Text:           cfg.Text,
		TextScale:      parameter.CakeTextScale,
		TextY:          parameter.CakeTextY,
		TextZ:          parameter.CakeTextZ,
		BaseColor:      parameter.CakeBaseColor,
		TopColor:       parameter.CakeTopColor,
		CandleColor:    parameter.CakeCandleColor,
		TextColor:      parameter.CakeTextColor,
	}, e.rng)

	e.fallSpeed = make([]float64, cfg.Count)
	e.flameRise = make([]float64, e.bands.Flame.Len())

	buf := particle.NewBuffer(cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		buf.SetPosition(i, vmath.Vec3F{
			X: e.rng.Range(-parameter.RainSpread, parameter.RainSpread),
			Y: e.rng.Range(parameter.RainFloor, parameter.RainCeiling),
			Z: e.rng.Range(-parameter.RainSpread, parameter.RainSpread),
		})
		buf.SetColor(i, vmath.Vec3F{
			X: parameter.RainColor.R,
			Y: parameter.RainColor.G,
			Z: parameter.RainColor.B,
		})
		e.fallSpeed[i] = e.rng.Range(parameter.RainSpeedMin, parameter.RainSpeedMax)
	}
	for i := range e.flameRise {
		e.flameRise[i] = e.rng.Range(parameter.FlameSpeedMin, parameter.FlameSpeedMax)
	}
	return buf
}

func (e *Cake) Advance(buf *particle.Buffer, ctx Context) {
	if !ctx.Gesture {
		e.advanceRain(buf, ctx)
		return
	}

	rate := parameter.CakeBlendRate
	for i := 0; i < e.bands.Flame.Start*particle.Stride; i++ {
		buf.Positions[i] = vmath.Smooth(buf.Positions[i], e.target.Positions[i], rate)
		buf.Colors[i] = vmath.Smooth(buf.Colors[i], e.target.Colors[i], rate)
	}

	e.advanceFlame(buf, ctx)
}

// advanceRain is the gesture-inactive branch: everything falls and wraps
func (e *Cake) advanceRain(buf *particle.Buffer, ctx Context) {
	for i := 0; i < buf.Count; i++ {
		base := i * particle.Stride
		y := buf.Positions[base+1] - e.fallSpeed[i]*e.cfg.Speed*ctx.Dt
		if y < parameter.RainFloor {
			y = parameter.RainCeiling
		}
		buf.Positions[base+1] = y

		buf.Colors[base] = vmath.Smooth(buf.Colors[base], parameter.RainColor.R, parameter.CakeBlendRate)
		buf.Colors[base+1] = vmath.Smooth(buf.Colors[base+1], parameter.RainColor.G, parameter.CakeBlendRate)
		buf.Colors[base+2] = vmath.Smooth(buf.Colors[base+2], parameter.RainColor.B, parameter.CakeBlendRate)
	}
}

// advanceFlame cycles the flame band: rise from a ring at the candle tip,
// blend yellow toward red with height, respawn on the height bound or by
// chance so the flicker never synchronizes
func (e *Cake) advanceFlame(buf *particle.Buffer, ctx Context) {
	tip := parameter.CakeCandleTip

	for i := e.bands.Flame.Start; i < e.bands.Flame.End; i++ {
		base := i * particle.Stride
		rel := i - e.bands.Flame.Start

		y := buf.Positions[base+1] + e.flameRise[rel]*e.cfg.Speed*ctx.Dt
		x := buf.Positions[base] + e.rng.Signed()*parameter.FlameJitter*ctx.Dt
		z := buf.Positions[base+2] + e.rng.Signed()*parameter.FlameJitter*ctx.Dt

		if y > tip+parameter.FlameHeight || e.rng.Float64() < parameter.FlameRespawnChance {
			angle := 2 * math.Pi * e.rng.Float64()
			sin, cos := math.Sincos(angle)
			x = cos * parameter.FlameRingRadius
			z = sin * parameter.FlameRingRadius
			y = tip
			e.flameRise[rel] = e.rng.Range(parameter.FlameSpeedMin, parameter.FlameSpeedMax)
		}

		buf.Positions[base] = x
		buf.Positions[base+1] = y
		buf.Positions[base+2] = z

		h := vmath.Clamp((y-tip)/parameter.FlameHeight, 0, 1)
		c := parameter.FlameBaseColor.BlendRgb(parameter.FlameTipColor, h)
		buf.Colors[base] = c.R
		buf.Colors[base+1] = c.G
		buf.Colors[base+2] = c.B
	}
}
