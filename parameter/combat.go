package parameter

// Bullets
const (
	// BulletSpeed is the per-frame bullet displacement
	BulletSpeed = 8.0

	// BulletHitRadius is the bullet-enemy collision distance
	BulletHitRadius = 20.0
)

// Contact
const (
	// ContactRadius is the player-enemy contact distance
	ContactRadius = 25.0

	// ContactDamage is applied per touching enemy per frame
	ContactDamage = 1
)
