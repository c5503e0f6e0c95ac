package parameter

import "github.com/lucasb-eyer/go-colorful"

// Candle Flame Sub-Effect
const (
	// FlameRingRadius is the spawn ring around the candle tip
	FlameRingRadius = 0.08

	// FlameHeight is the rise distance before forced respawn
	FlameHeight = 0.5

	// FlameSpeedMin/Max bound the upward spawn velocity (units/sec)
	FlameSpeedMin = 0.4
	FlameSpeedMax = 0.9

	// FlameRespawnChance is the per-frame probability of early respawn,
	// which keeps the flame flickering instead of pulsing in lockstep
	FlameRespawnChance = 0.03

	// FlameJitter is the per-frame lateral scatter (units/sec)
	FlameJitter = 0.25
)

var (
	FlameBaseColor = colorful.Color{R: 1.0, G: 0.85, B: 0.20}
	FlameTipColor  = colorful.Color{R: 0.95, G: 0.20, B: 0.05}
)
