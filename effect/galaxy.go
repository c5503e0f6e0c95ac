package effect

import (
	"github.com/lixenwraith/glowfield/parameter"
	"github.com/lixenwraith/glowfield/particle"
	"github.com/lixenwraith/glowfield/shape"
	"github.com/lixenwraith/glowfield/vmath"
)

// Galaxy spins the spiral point cloud around the vertical axis. Positions are
// recomputed from the base set every frame as a pure function of elapsed
// time, so the motion is deterministic and drift-free.
type Galaxy struct {
	rng  *vmath.FastRand
	base *shape.PointSet
	cfg  Config
}

func (e *Galaxy) Kind() Kind {
	return KindGalaxy
}

func (e *Galaxy) Rebuild(cfg Config) *particle.Buffer {
	e.cfg = cfg
	e.base = shape.Galaxy(cfg.Count, shape.GalaxyParams{
		Radius:   parameter.GalaxyRadius,
		Branches: parameter.GalaxyBranches,
		Spin:     parameter.GalaxySpin,
		Jitter:   parameter.GalaxyJitter,
		Inside:   parameter.GalaxyInsideColor,
		Outside:  parameter.GalaxyOutsideColor,
	}, e.rng)

	buf := particle.NewBuffer(cfg.Count)
	e.base.CopyTo(buf)
	return buf
}

func (e *Galaxy) Advance(buf *particle.Buffer, ctx Context) {
	angle := ctx.Elapsed * parameter.GalaxySpinRate * e.cfg.Speed
	for i := 0; i < buf.Count; i++ {
		buf.SetPosition(i, vmath.V3FRotateY(e.base.Position(i), angle))
	}
}
