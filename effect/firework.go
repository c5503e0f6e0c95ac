package effect

import (
	"github.com/lixenwraith/glowfield/parameter"
	"github.com/lixenwraith/glowfield/particle"
	"github.com/lixenwraith/glowfield/shape"
	"github.com/lixenwraith/glowfield/vmath"
)

// Phase is the discrete stage of the firework state machine
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseLaunch
	PhaseExplode
)

func (p Phase) String() string {
	switch p {
	case PhaseLaunch:
		return "launch"
	case PhaseExplode:
		return "explode"
	default:
		return "idle"
	}
}

// Firework is the heart firework: particles hold a heart shape while idle,
// gather into a rising column while the gesture is held, then burst with
// spherical-uniform velocities once the column clears the launch threshold.
//
// Losing the gesture during LAUNCH snaps the machine back to IDLE with no
// retained progress. During EXPLODE, particles falling below the floor
// respawn at the launch origin only while the gesture is held; once released
// they freeze at the floor instead of respawning.
type Firework struct {
	rng *vmath.FastRand
	cfg Config

	heart *shape.PointSet

	phase        Phase
	launchHeight float64

	// columnOffset is a fixed small lateral scatter per particle so the
	// launch column has body instead of collapsing to a line
	columnOffset []vmath.Vec3F

	// velocity is live only during EXPLODE
	velocity []vmath.Vec3F
}

func (e *Firework) Kind() Kind {
	return KindFirework
}

// CurrentPhase exposes the machine stage, mainly for tests and the status line
func (e *Firework) CurrentPhase() Phase {
	return e.phase
}

func (e *Firework) Rebuild(cfg Config) *particle.Buffer {
	e.cfg = cfg
	e.phase = PhaseIdle
	e.launchHeight = 0

	e.heart = shape.Heart(cfg.Count, shape.HeartParams{
		Scale:     parameter.HeartScale,
		Thickness: parameter.HeartThickness,
		Top:       parameter.HeartTopColor,
		Bottom:    parameter.HeartBottomColor,
	}, e.rng)

	e.columnOffset = make([]vmath.Vec3F, cfg.Count)
	e.velocity = make([]vmath.Vec3F, cfg.Count)
	for i := range e.columnOffset {
		x, z := e.rng.DiskPoint(parameter.FireworkColumnRadius)
		e.columnOffset[i] = vmath.Vec3F{X: x, Z: z}
	}

	buf := particle.NewBuffer(cfg.Count)
	e.heart.CopyTo(buf)
	return buf
}

func (e *Firework) Advance(buf *particle.Buffer, ctx Context) {
	switch e.phase {
	case PhaseLaunch:
		e.advanceLaunch(buf, ctx)
	case PhaseExplode:
		e.advanceExplode(buf, ctx)
	default:
		e.advanceIdle(buf, ctx)
	}
}

// advanceIdle smooths particles toward the heart shape and arms the launch
func (e *Firework) advanceIdle(buf *particle.Buffer, ctx Context) {
	rate := parameter.FireworkBlendRate
	for i := 0; i < len(buf.Positions); i++ {
		buf.Positions[i] = vmath.Smooth(buf.Positions[i], e.heart.Positions[i], rate)
		buf.Colors[i] = vmath.Smooth(buf.Colors[i], e.heart.Colors[i], rate)
	}

	if ctx.Gesture {
		e.phase = PhaseLaunch
		e.launchHeight = 0
	}
}

// advanceLaunch pulls particles into a narrow column whose target height
// rises a fixed step per frame. Losing the gesture aborts immediately:
// particles resume smoothing toward the heart from wherever they are.
func (e *Firework) advanceLaunch(buf *particle.Buffer, ctx Context) {
	if !ctx.Gesture {
		e.phase = PhaseIdle
		e.launchHeight = 0
		return
	}

	e.launchHeight += parameter.FireworkLaunchStep

	rate := parameter.FireworkBlendRate
	for i := 0; i < buf.Count; i++ {
		target := e.columnOffset[i]
		target.Y = e.launchHeight
		buf.SetPosition(i, vmath.V3FSmooth(buf.Position(i), target, rate))
	}

	if e.launchHeight > parameter.FireworkLaunchThreshold {
		for i := range e.velocity {
			speed := e.rng.Range(parameter.FireworkSpeedMin, parameter.FireworkSpeedMax)
			e.velocity[i] = vmath.V3FScale(e.rng.UnitSphere(), speed)
		}
		e.phase = PhaseExplode
	}
}

// advanceExplode integrates stored velocities with per-frame damping and a
// vertical gravity decrement. The fountain keeps feeding from the launch
// origin while the gesture holds; released, spent particles freeze at the
// floor (decided behavior, see DESIGN.md).
func (e *Firework) advanceExplode(buf *particle.Buffer, ctx Context) {
	dt := ctx.Dt * e.cfg.Speed

	for i := 0; i < buf.Count; i++ {
		v := vmath.V3FScale(e.velocity[i], parameter.FireworkDamping)
		v.Y -= parameter.FireworkGravity

		pos := vmath.V3FAdd(buf.Position(i), vmath.V3FScale(v, dt))

		if pos.Y < parameter.FireworkFloor {
			if ctx.Gesture {
				pos = vmath.Vec3F{}
				speed := e.rng.Range(parameter.FireworkSpeedMin, parameter.FireworkSpeedMax)
				v = vmath.V3FScale(e.rng.UnitSphere(), speed)
			} else {
				pos.Y = parameter.FireworkFloor
				v = vmath.Vec3F{}
			}
		}

		e.velocity[i] = v
		buf.SetPosition(i, pos)
	}
}
