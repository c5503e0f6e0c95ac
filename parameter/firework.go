package parameter

// Heart Firework State Machine
const (
	// FireworkBlendRate is the per-frame smoothing rate in IDLE and LAUNCH
	FireworkBlendRate = 0.08

	// FireworkLaunchStep is the column height increment per frame
	FireworkLaunchStep = 0.12

	// FireworkLaunchThreshold is the accumulated height that fires the explosion
	FireworkLaunchThreshold = 6.0

	// FireworkColumnRadius is the lateral scatter of the launch column
	FireworkColumnRadius = 0.15

	// FireworkSpeedMin/Max bound the random explosion velocity magnitude
	FireworkSpeedMin = 2.0
	FireworkSpeedMax = 5.0

	// FireworkDamping multiplies velocity each frame during EXPLODE
	FireworkDamping = 0.985

	// FireworkGravity is the vertical velocity decrement per frame
	FireworkGravity = 0.06

	// FireworkFloor is the lower bound below which spent particles respawn
	// (gesture held) or freeze (gesture released)
	FireworkFloor = -4.0
)
