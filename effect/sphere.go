package effect

import (
	"math"

	"github.com/lixenwraith/glowfield/parameter"
	"github.com/lixenwraith/glowfield/particle"
	"github.com/lixenwraith/glowfield/vmath"
)

// Sphere is a rotating, radially pulsing shell. Directions are sampled once
// at rebuild; per-frame motion is a pure function of elapsed time.
type Sphere struct {
	rng *vmath.FastRand
	cfg Config

	// directions are the fixed unit vectors of each particle on the shell
	directions []vmath.Vec3F
}

func (e *Sphere) Kind() Kind {
	return KindSphere
}

func (e *Sphere) Rebuild(cfg Config) *particle.Buffer {
	e.cfg = cfg
	e.directions = make([]vmath.Vec3F, cfg.Count)

	buf := particle.NewBuffer(cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		dir := e.rng.UnitSphere()
		e.directions[i] = dir
		buf.SetPosition(i, vmath.V3FScale(dir, parameter.SphereRadius))

		// Latitude shading keeps the shell readable while it spins
		shade := (dir.Y + 1) / 2
		buf.SetColor(i, vmath.Vec3F{
			X: cfg.BaseColor.R * (0.4 + 0.6*shade),
			Y: cfg.BaseColor.G * (0.4 + 0.6*shade),
			Z: cfg.BaseColor.B * (0.4 + 0.6*shade),
		})
	}
	return buf
}

func (e *Sphere) Advance(buf *particle.Buffer, ctx Context) {
	radius := parameter.SphereRadius *
		(1 + parameter.SpherePulseAmplitude*math.Sin(ctx.Elapsed*parameter.SpherePulseRate*e.cfg.Speed))
	angle := ctx.Elapsed * parameter.SphereSpinRate * e.cfg.Speed

	for i := 0; i < buf.Count; i++ {
		pos := vmath.V3FScale(e.directions[i], radius)
		buf.SetPosition(i, vmath.V3FRotateY(pos, angle))
	}
}
