package parameter

// Spawning
const (
	// SpawnBaseCap is the live enemy cap at wave 0; the cap grows by one per wave
	SpawnBaseCap = 3

	// SpawnChance is the per-frame probability of a spawn while under the cap
	SpawnChance = 0.02

	// SpawnEdgeOffset places top-down spawns this far outside the arena edge
	SpawnEdgeOffset = 30.0

	// SpawnRadius is the first-person spawn distance from the player
	SpawnRadius = 400.0

	// DespawnRadius removes first-person enemies that drift beyond it
	DespawnRadius = 800.0
)

// Enemy stats scale linearly with the wave number
const (
	EnemyBaseHealth    = 50
	EnemyHealthPerWave = 10

	EnemyBaseSpeed    = 1.0
	EnemySpeedPerWave = 0.2

	EnemyBaseReward    = 10
	EnemyRewardPerWave = 2
)
