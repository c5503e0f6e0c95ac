// Package stage owns the active effect: it swaps effects, forwards frame
// ticks, and fans the gesture signal into the state machines.
package stage

import (
	"github.com/lixenwraith/glowfield/effect"
	"github.com/lixenwraith/glowfield/gesture"
	"github.com/lixenwraith/glowfield/particle"
	"github.com/lixenwraith/glowfield/render"
	"github.com/lixenwraith/glowfield/vmath"
)

// Cue is the audio side channel fired on a gesture rising edge. The concrete
// implementation lives in the audio package; the indirection keeps the
// director testable without a speaker.
type Cue interface {
	Trigger()
	Cancel()
}

// Director drives the scene lifecycle. All methods except SetGesture must be
// called from the render goroutine; SetGesture is the single cross-goroutine
// entry and only touches the atomic signal and the cue guard.
type Director struct {
	renderer render.PointRenderer
	cue      Cue
	signal   gesture.Signal
	rng      *vmath.FastRand

	eff effect.Effect
	buf *particle.Buffer
	cfg effect.Config

	// Host clock bookkeeping: effects see time since their own activation
	activatedAt float64
	lastTick    float64
	ticked      bool

	prevGesture bool
}

// New wires a director to its renderer and audio cue. Seed feeds every
// generator, so a fixed seed reproduces entire sessions.
func New(renderer render.PointRenderer, cue Cue, seed uint64) *Director {
	return &Director{
		renderer: renderer,
		cue:      cue,
		rng:      vmath.NewFastRand(seed),
	}
}

// Activate replaces the current effect. The old buffer is detached from the
// renderer before the new one is built, so no frame ever draws a
// half-initialized buffer, and any in-flight audio cue is cancelled.
func (d *Director) Activate(kind effect.Kind, cfg effect.Config) {
	if d.buf != nil {
		d.renderer.Dispose()
		d.buf = nil
	}
	if d.cue != nil {
		d.cue.Cancel()
	}

	d.eff = effect.New(kind, d.rng)
	d.buf = d.eff.Rebuild(cfg)
	d.cfg = cfg
	d.ticked = false
}

// Tick advances the active effect once and hands the buffer to the renderer.
// Safe no-op with nothing active. now is the host clock in seconds.
func (d *Director) Tick(now float64) {
	if d.eff == nil || d.buf == nil {
		return
	}

	if !d.ticked {
		d.activatedAt = now
		d.lastTick = now
		d.ticked = true
	}

	ctx := effect.Context{
		Elapsed: now - d.activatedAt,
		Dt:      now - d.lastTick,
		Gesture: d.signal.Active(),
	}
	d.lastTick = now

	d.eff.Advance(d.buf, ctx)
	d.renderer.Render(d.buf, d.cfg.Size)
}

// SetGesture updates the shared signal. A false→true edge fires the audio
// cue; the cue's own guard prevents overlap.
func (d *Director) SetGesture(active bool) {
	d.signal.Set(active)

	if active && !d.prevGesture && d.cue != nil {
		d.cue.Trigger()
	}
	d.prevGesture = active
}

// Signal exposes the gesture signal for the detection feed
func (d *Director) Signal() *gesture.Signal {
	return &d.signal
}

// ActiveKind reports the current effect, ok false when nothing is active
func (d *Director) ActiveKind() (effect.Kind, bool) {
	if d.eff == nil {
		return 0, false
	}
	return d.eff.Kind(), true
}

// Buffer exposes the live buffer; nil when nothing is active
func (d *Director) Buffer() *particle.Buffer {
	return d.buf
}

// Teardown disposes the current effect and cancels the cue. Idempotent;
// ticks after teardown are no-ops.
func (d *Director) Teardown() {
	if d.buf != nil {
		d.renderer.Dispose()
		d.buf = nil
	}
	if d.cue != nil {
		d.cue.Cancel()
	}
	d.eff = nil
}
