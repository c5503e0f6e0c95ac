package parameter

// Sphere Effect
const (
	// SphereRadius is the shell radius
	SphereRadius = 3.0

	// SpherePulseAmplitude is the radial pulse as a fraction of radius
	SpherePulseAmplitude = 0.12

	// SpherePulseRate is the pulse frequency (radians/sec)
	SpherePulseRate = 2.0

	// SphereSpinRate is the idle rotation speed (radians/sec)
	SphereSpinRate = 0.25
)
