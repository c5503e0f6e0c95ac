package parameter

import "time"

// Frame Loop
const (
	// FrameInterval is the terminal render frame interval (~60 FPS)
	FrameInterval = 16 * time.Millisecond
)

// Particle Defaults
const (
	// DefaultParticleCount used when an effect gives no count of its own
	DefaultParticleCount = 4000

	// DefaultParticleSize is the renderer point size in world units
	DefaultParticleSize = 0.02

	// DefaultSpeed is the baseline speed multiplier
	DefaultSpeed = 1.0
)

// Detection Feed
const (
	// FeedRedialDelay between websocket reconnect attempts
	FeedRedialDelay = 2 * time.Second

	// FeedMinScore is the minimum detection confidence for object presence
	FeedMinScore = 0.5
)
