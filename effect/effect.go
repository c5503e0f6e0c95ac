// Package effect implements the per-frame particle state machines. Each
// effect builds its own buffer and target sets on activation, then mutates
// the buffer in place exactly once per render frame.
package effect

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/glowfield/parameter"
	"github.com/lixenwraith/glowfield/particle"
	"github.com/lixenwraith/glowfield/vmath"
)

// Kind selects one particle effect
type Kind uint8

const (
	KindGalaxy Kind = iota
	KindRain
	KindWave
	KindSphere
	KindTextMorph
	KindCake
	KindFirework
)

var kindNames = map[Kind]string{
	KindGalaxy:    "galaxy",
	KindRain:      "rain",
	KindWave:      "wave",
	KindSphere:    "sphere",
	KindTextMorph: "text",
	KindCake:      "cake",
	KindFirework:  "firework",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind resolves an effect name; ok is false for unknown names
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Config is the immutable per-activation configuration. Changing any field
// means rebuilding the effect; nothing reconfigures live.
type Config struct {
	Count     int
	Size      float64 // renderer point size
	Speed     float64 // speed multiplier applied to effect motion
	BaseColor colorful.Color
	Text      string // text-morph and cake plaque content
}

// DefaultConfig returns the stock configuration for a kind
func DefaultConfig(k Kind) Config {
	cfg := Config{
		Count:     parameter.DefaultParticleCount,
		Size:      parameter.DefaultParticleSize,
		Speed:     parameter.DefaultSpeed,
		BaseColor: parameter.RainColor,
		Text:      "HELLO",
	}
	switch k {
	case KindFirework:
		cfg.BaseColor = parameter.HeartTopColor
	case KindCake:
		cfg.Text = "HB"
	}
	return cfg
}

// Context carries the per-frame inputs into Advance. The gesture flag rides
// in explicitly rather than through a shared global, so state machines are
// testable in isolation.
type Context struct {
	Elapsed float64 // seconds since activation
	Dt      float64 // seconds since the previous frame
	Gesture bool
}

// Effect is one particle effect. Rebuild allocates fresh buffer and target
// state for a configuration; Advance mutates the buffer in place, called
// exactly once per render frame.
type Effect interface {
	Kind() Kind
	Rebuild(cfg Config) *particle.Buffer
	Advance(buf *particle.Buffer, ctx Context)
}

// New constructs the effect variant for a kind. The generator draws from rng,
// so a fixed seed reproduces the exact point clouds.
func New(kind Kind, rng *vmath.FastRand) Effect {
	switch kind {
	case KindRain:
		return &Rain{rng: rng}
	case KindWave:
		return &Wave{}
	case KindSphere:
		return &Sphere{rng: rng}
	case KindTextMorph:
		return &TextMorph{rng: rng}
	case KindCake:
		return &Cake{rng: rng}
	case KindFirework:
		return &Firework{rng: rng}
	default:
		return &Galaxy{rng: rng}
	}
}
