package parameter

// Hit particles
const (
	// ParticleBurstMin and ParticleBurstMax bound the particles emitted per hit
	ParticleBurstMin = 3
	ParticleBurstMax = 5

	// ParticleLife is the particle lifetime in frames
	ParticleLife = 15

	// ParticleSpread is the velocity range per axis, centered on zero
	ParticleSpread = 4.0

	// ParticleColor is the hit burst color
	ParticleColor = "#ef4444"
)
