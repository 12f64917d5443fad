package parameter

// Player
const (
	// PlayerMaxHealth is the starting and maximum player health
	PlayerMaxHealth = 100

	// PlayerStartCoins is the coin balance of a fresh session
	PlayerStartCoins = 50

	// PlayerMoveSpeed is the per-frame movement step (frame-count scaled)
	PlayerMoveSpeed = 3.0

	// PlayerTurnSpeed is the per-frame heading change in first-person view (radians)
	PlayerTurnSpeed = 0.05

	// PlayerStartX, PlayerStartY place the player in the arena center
	PlayerStartX = 400.0
	PlayerStartY = 300.0

	// StartWeaponID is equipped on a fresh session
	StartWeaponID = "pistol"
)

// Progression
const (
	// LevelEveryWaves grants a level each time a multiple of this wave is cleared
	LevelEveryWaves = 5

	// ScorePerReward multiplies an enemy's coin reward into score
	ScorePerReward = 10
)
