package systems

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"

	"github.com/lixenwraith/sketchy-shooter/engine"
	"github.com/lixenwraith/sketchy-shooter/parameter"
)

// TestFireRateGate covers the 300ms pistol cooldown
func TestFireRateGate(t *testing.T) {
	s := playingState()
	s.Input.Pointer = engine.Vec{X: 600, Y: 300}

	shots := []struct {
		at    time.Duration
		want  int
		fired int
	}{
		{0, 1, 1},
		{100 * time.Millisecond, 1, 0},
		{301 * time.Millisecond, 2, 1},
	}

	for _, shot := range shots {
		s = engine.Reduce(s, engine.RequestFire{})
		var res Result
		s, res = step(s, testEnv(noSpawn, t0.Add(shot.at)))

		if len(s.Bullets) != shot.want {
			t.Errorf("At %v: expected %d bullets, got %d", shot.at, shot.want, len(s.Bullets))
		}
		if s.Input.FirePending() {
			t.Errorf("At %v: fire request not acknowledged", shot.at)
		}
		if got := countEvents(res, EventShotFired); got != shot.fired {
			t.Errorf("At %v: expected %d ShotFired events, got %d", shot.at, shot.fired, got)
		}
	}

	if !s.LastShot.Equal(t0.Add(301 * time.Millisecond)) {
		t.Errorf("Expected last shot at 301ms, got %v", s.LastShot.Sub(t0))
	}
}

func TestShotDirection(t *testing.T) {
	tests := []struct {
		name    string
		pointer engine.Vec
		want    engine.Vec
	}{
		{"toward pointer", engine.Vec{X: 400, Y: 100}, engine.Vec{X: 0, Y: -parameter.BulletSpeed}},
		{"pointer on player fires right", engine.Vec{X: 400, Y: 300}, engine.Vec{X: parameter.BulletSpeed}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := playingState()
			s.Input.Pointer = tt.pointer
			b, ok := Shoot(s, t0, "b")
			if !ok {
				t.Fatal("Expected first shot to be accepted")
			}
			if b.Vel != tt.want {
				t.Errorf("Expected velocity %v, got %v", tt.want, b.Vel)
			}
			if b.Damage != 25 || b.MaxTravel != 300 {
				t.Errorf("Expected pistol damage 25 range 300, got %d %v", b.Damage, b.MaxTravel)
			}
		})
	}
}

// TestKillScenario covers a lethal hit with a particle burst and reward
func TestKillScenario(t *testing.T) {
	s := playingState()
	s.Enemies = []engine.Enemy{{ID: "e1", Pos: engine.Vec{X: 120, Y: 100}, Health: 10, MaxHealth: 50, Reward: 20}}
	s.Bullets = []engine.Bullet{{ID: "b1", Pos: engine.Vec{X: 100, Y: 100}, Vel: engine.Vec{X: 8}, Damage: 25, MaxTravel: 300}}

	next, res := step(s, testEnv(noSpawn, t0))

	if len(next.Enemies) != 0 {
		t.Errorf("Expected enemy removed, got %d enemies", len(next.Enemies))
	}
	if len(next.Bullets) != 0 {
		t.Errorf("Expected bullet consumed, got %d bullets", len(next.Bullets))
	}
	if next.Coins != s.Coins+20 || next.Score != 200 {
		t.Errorf("Expected coins %d score 200, got %d %d", s.Coins+20, next.Coins, next.Score)
	}
	if n := len(next.Particles); n < parameter.ParticleBurstMin || n > parameter.ParticleBurstMax {
		t.Fatalf("Expected 3-5 particles, got %d", n)
	}
	for _, p := range next.Particles {
		if p.Pos != (engine.Vec{X: 120, Y: 100}) || p.Life != parameter.ParticleLife {
			t.Errorf("Unexpected particle %+v", p)
		}
	}
	if countEvents(res, EventEnemyKilled) != 1 || countEvents(res, EventEnemyHit) != 1 {
		t.Errorf("Expected one hit and one kill event, got %v", res.Events)
	}
}

func TestNonLethalHit(t *testing.T) {
	s := playingState()
	s.Enemies = []engine.Enemy{{ID: "e1", Pos: engine.Vec{X: 120, Y: 100}, Health: 50, MaxHealth: 50, Reward: 20}}
	s.Bullets = []engine.Bullet{{ID: "b1", Pos: engine.Vec{X: 100, Y: 100}, Vel: engine.Vec{X: 8}, Damage: 25}}

	next, _ := step(s, testEnv(noSpawn, t0))

	if len(next.Enemies) != 1 || next.Enemies[0].Health != 25 {
		t.Fatalf("Expected enemy at 25 health, got %+v", next.Enemies)
	}
	if next.Coins != s.Coins {
		t.Errorf("Coins changed on a non-lethal hit: %d", next.Coins)
	}
}

func TestNoDoubleKill(t *testing.T) {
	s := playingState()
	s.Enemies = []engine.Enemy{{ID: "e1", Pos: engine.Vec{X: 120, Y: 100}, Health: 10, MaxHealth: 50, Reward: 20}}
	s.Bullets = []engine.Bullet{
		{ID: "b1", Pos: engine.Vec{X: 100, Y: 100}, Vel: engine.Vec{X: 8}, Damage: 25},
		{ID: "b2", Pos: engine.Vec{X: 100, Y: 102}, Vel: engine.Vec{X: 8}, Damage: 25},
	}

	next, res := step(s, testEnv(noSpawn, t0))

	if next.Coins != s.Coins+20 {
		t.Errorf("Expected one reward, coins %d", next.Coins)
	}
	if countEvents(res, EventEnemyKilled) != 1 {
		t.Errorf("Expected a single kill event, got %d", countEvents(res, EventEnemyKilled))
	}
	if len(next.Bullets) != 1 || next.Bullets[0].ID != "b2" {
		t.Errorf("Expected second bullet to survive, got %+v", next.Bullets)
	}
}

func TestFirstEnemyWinsHit(t *testing.T) {
	s := playingState()
	s.Enemies = []engine.Enemy{
		{ID: "far", Pos: engine.Vec{X: 125, Y: 100}, Health: 100, MaxHealth: 100},
		{ID: "near", Pos: engine.Vec{X: 109, Y: 100}, Health: 100, MaxHealth: 100},
	}
	s.Bullets = []engine.Bullet{{ID: "b1", Pos: engine.Vec{X: 100, Y: 100}, Vel: engine.Vec{X: 8}, Damage: 25}}

	next, _ := step(s, testEnv(noSpawn, t0))

	if next.Enemies[0].Health != 75 || next.Enemies[1].Health != 100 {
		t.Errorf("Expected first enemy in order to take the hit, got %d/%d", next.Enemies[0].Health, next.Enemies[1].Health)
	}
}

func TestContactDamage(t *testing.T) {
	s := playingState()
	s.Enemies = []engine.Enemy{
		{ID: "a", Pos: s.Player.Pos, Health: 50, MaxHealth: 50},
		{ID: "b", Pos: s.Player.Pos.Add(engine.Vec{X: 10}), Health: 50, MaxHealth: 50},
		{ID: "c", Pos: s.Player.Pos.Add(engine.Vec{X: 200}), Health: 50, MaxHealth: 50},
	}

	next, res := step(s, testEnv(noSpawn, t0))

	if next.Player.Health != 98 {
		t.Errorf("Expected 2 contact damage, health %d", next.Player.Health)
	}
	if countEvents(res, EventPlayerHurt) != 1 {
		t.Error("Expected a PlayerHurt event")
	}
	if next.Phase != engine.PhasePlaying {
		t.Errorf("Expected still playing, got %v", next.Phase)
	}
}

func TestEnemiesTrackMovedPlayer(t *testing.T) {
	t.Run("contact after move", func(t *testing.T) {
		s := playingState()
		s.Enemies = []engine.Enemy{{ID: "a", Pos: engine.Vec{X: 427, Y: 300}, Health: 50, MaxHealth: 50}}
		s = engine.Reduce(s, engine.PressKey{Key: engine.KeyD})

		next, _ := step(s, testEnv(noSpawn, t0))

		if next.Player.Pos != (engine.Vec{X: 403, Y: 300}) {
			t.Fatalf("Expected player at (403,300), got %v", next.Player.Pos)
		}
		if next.Player.Health != 99 {
			t.Errorf("Expected contact at the moved position, health %d", next.Player.Health)
		}
	})

	t.Run("chase toward move", func(t *testing.T) {
		s := playingState()
		s.Enemies = []engine.Enemy{{ID: "a", Pos: engine.Vec{X: 400, Y: 302}, Health: 50, MaxHealth: 50, Speed: 1}}
		s = engine.Reduce(s, engine.PressKey{Key: engine.KeyS})

		next, _ := step(s, testEnv(noSpawn, t0))

		if got := next.Enemies[0].Pos; got != (engine.Vec{X: 400, Y: 303}) {
			t.Errorf("Expected enemy stepped to (400,303), got %v", got)
		}
	})
}

func TestDeathEndsGame(t *testing.T) {
	s := playingState()
	s.Player.Health = 2
	for _, id := range []string{"a", "b", "c"} {
		s.Enemies = append(s.Enemies, engine.Enemy{ID: id, Pos: s.Player.Pos, Health: 50, MaxHealth: 50})
	}

	next, res := step(s, testEnv(noSpawn, t0))

	if next.Player.Health != 0 {
		t.Errorf("Expected health floored at 0, got %d", next.Player.Health)
	}
	if next.Phase != engine.PhaseGameOver {
		t.Errorf("Expected game over, got %v", next.Phase)
	}
	if countEvents(res, EventPlayerDied) != 1 {
		t.Error("Expected a PlayerDied event")
	}
}

func TestWaveClear(t *testing.T) {
	enemy := engine.Enemy{ID: "e", Pos: engine.Vec{X: 10, Y: 10}, Health: 50, MaxHealth: 50}

	tests := []struct {
		name    string
		setup   func(*engine.State)
		cleared bool
	}{
		{"empty arena clears", func(*engine.State) {}, true},
		{"already pending", func(s *engine.State) { s.WavePending = true }, false},
		{"enemies alive", func(s *engine.State) { s.Enemies = []engine.Enemy{enemy} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := playingState()
			tt.setup(&s)
			next, res := step(s, testEnv(noSpawn, t0))

			got := countEvents(res, EventWaveCleared) == 1
			if got != tt.cleared {
				t.Errorf("Expected cleared=%v, got %v", tt.cleared, got)
			}
			if tt.cleared && !next.WavePending {
				t.Error("Expected wave advance to be marked pending")
			}
		})
	}
}

func TestKillingLastEnemyDoesNotClearSameFrame(t *testing.T) {
	s := playingState()
	s.Enemies = []engine.Enemy{{ID: "e1", Pos: engine.Vec{X: 120, Y: 100}, Health: 10, MaxHealth: 50, Reward: 20}}
	s.Bullets = []engine.Bullet{{ID: "b1", Pos: engine.Vec{X: 100, Y: 100}, Vel: engine.Vec{X: 8}, Damage: 25}}

	s, res := step(s, testEnv(noSpawn, t0))
	if countEvents(res, EventWaveCleared) != 0 {
		t.Fatal("Wave cleared in the frame that still started with enemies")
	}

	_, res = step(s, testEnv(noSpawn, t0))
	if countEvents(res, EventWaveCleared) != 1 {
		t.Error("Expected wave clear on the following empty frame")
	}
}

func TestSpawn(t *testing.T) {
	s := playingState()
	s.Wave = 3
	s.WavePending = true

	next, _ := step(s, testEnv(alwaysSpawn, t0))
	if len(next.Enemies) != 1 {
		t.Fatalf("Expected one spawn, got %d", len(next.Enemies))
	}

	e := next.Enemies[0]
	if e.Health != 80 || e.MaxHealth != 80 || e.Reward != 16 {
		t.Errorf("Expected wave 3 stats health 80 reward 16, got %d %d", e.Health, e.Reward)
	}
	if math.Abs(e.Speed-1.6) > 1e-9 {
		t.Errorf("Expected speed 1.6, got %v", e.Speed)
	}
	// Top edge spawn, then one step toward the player
	if e.Pos.Y > 0 {
		t.Errorf("Expected spawn above the arena, got %v", e.Pos)
	}
}

func TestSpawnCap(t *testing.T) {
	s := playingState()
	s.Wave = 1
	for i := range parameter.SpawnBaseCap + 1 {
		s.Enemies = append(s.Enemies, engine.Enemy{ID: string(rune('a' + i)), Pos: engine.Vec{X: 10, Y: float64(10 + 40*i)}, Health: 50, MaxHealth: 50})
	}

	next, _ := step(s, testEnv(alwaysSpawn, t0))
	if len(next.Enemies) != len(s.Enemies) {
		t.Errorf("Expected no spawn at cap, got %d enemies", len(next.Enemies))
	}
}

func TestMovementClamped(t *testing.T) {
	tests := []struct {
		name  string
		start engine.Vec
		keys  []engine.Key
		want  engine.Vec
	}{
		{"right", engine.Vec{X: 400, Y: 300}, []engine.Key{engine.KeyD}, engine.Vec{X: 403, Y: 300}},
		{"diagonal", engine.Vec{X: 400, Y: 300}, []engine.Key{engine.ArrowUp, engine.ArrowLeft}, engine.Vec{X: 397, Y: 297}},
		{"left edge", engine.Vec{X: 21, Y: 300}, []engine.Key{engine.KeyA}, engine.Vec{X: 20, Y: 300}},
		{"bottom edge", engine.Vec{X: 400, Y: 579}, []engine.Key{engine.KeyS}, engine.Vec{X: 400, Y: 580}},
		{"opposing cancel", engine.Vec{X: 400, Y: 300}, []engine.Key{engine.KeyA, engine.KeyD}, engine.Vec{X: 400, Y: 300}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := playingState()
			s.Player.Pos = tt.start
			for _, k := range tt.keys {
				s = engine.Reduce(s, engine.PressKey{Key: k})
			}
			next, _ := step(s, testEnv(noSpawn, t0))
			if next.Player.Pos != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, next.Player.Pos)
			}
		})
	}
}

func TestBulletCulledOutsideArena(t *testing.T) {
	s := playingState()
	s.WavePending = true
	s.Bullets = []engine.Bullet{{ID: "b", Pos: engine.Vec{X: 795, Y: 300}, Vel: engine.Vec{X: 8}, Damage: 25, MaxTravel: 10000}}

	next, _ := step(s, testEnv(noSpawn, t0))
	if len(next.Bullets) != 0 {
		t.Errorf("Expected bullet culled, got %+v", next.Bullets)
	}
}

func TestParticlesAge(t *testing.T) {
	s := playingState()
	s.Particles = []engine.Particle{
		{ID: "old", Pos: engine.Vec{X: 10, Y: 10}, Vel: engine.Vec{X: 1}, Life: 1},
		{ID: "young", Pos: engine.Vec{X: 10, Y: 10}, Vel: engine.Vec{X: 1}, Life: 5},
	}

	next, _ := step(s, testEnv(noSpawn, t0))
	if len(next.Particles) != 1 || next.Particles[0].ID != "young" {
		t.Fatalf("Expected only the young particle, got %+v", next.Particles)
	}
	if p := next.Particles[0]; p.Life != 4 || p.Pos != (engine.Vec{X: 11, Y: 10}) {
		t.Errorf("Unexpected aged particle %+v", p)
	}
}

func TestStepOutsidePlayingIsEmpty(t *testing.T) {
	for _, phase := range []engine.Phase{engine.PhaseMenu, engine.PhasePaused, engine.PhaseGameOver} {
		s := playingState()
		s.Phase = phase
		if res := Step(s, testEnv(alwaysSpawn, t0)); len(res.Actions)+len(res.Events) != 0 {
			t.Errorf("%v: expected empty result, got %+v", phase, res)
		}
	}
}

func TestStepDoesNotMutateSnapshot(t *testing.T) {
	build := func() engine.State {
		s := playingState()
		s.Enemies = []engine.Enemy{
			{ID: "e1", Pos: engine.Vec{X: 120, Y: 100}, Health: 10, MaxHealth: 50, Speed: 1, Reward: 20},
			{ID: "e2", Pos: engine.Vec{X: 700, Y: 500}, Health: 50, MaxHealth: 50, Speed: 1, Reward: 20},
		}
		s.Bullets = []engine.Bullet{{ID: "b1", Pos: engine.Vec{X: 100, Y: 100}, Vel: engine.Vec{X: 8}, Damage: 25}}
		s.Particles = []engine.Particle{{ID: "p", Life: 3}}
		return s
	}

	s := build()
	Step(s, testEnv(alwaysSpawn, t0))

	if diff := cmp.Diff(build(), s); diff != "" {
		t.Errorf("Step mutated its input (-want +got):\n%s", diff)
	}
}

func TestFirstPerson(t *testing.T) {
	base := func() engine.State {
		s := playingState()
		s.View = engine.ViewFirstPerson
		s.WavePending = true
		s.Player.Heading = 0
		return s
	}

	t.Run("turn", func(t *testing.T) {
		s := engine.Reduce(base(), engine.PressKey{Key: engine.KeyD})
		next, _ := step(s, testEnv(noSpawn, t0))
		if math.Abs(next.Player.Heading-parameter.PlayerTurnSpeed) > 1e-9 {
			t.Errorf("Expected heading %v, got %v", parameter.PlayerTurnSpeed, next.Player.Heading)
		}
	})

	t.Run("walk moves the world", func(t *testing.T) {
		s := engine.Reduce(base(), engine.PressKey{Key: engine.KeyW})
		s.Enemies = []engine.Enemy{{ID: "e", Pos: engine.Vec{X: 100}, Health: 50, MaxHealth: 50}}
		next, _ := step(s, testEnv(noSpawn, t0))
		if got := next.Enemies[0].Pos.X; math.Abs(got-(100-parameter.PlayerMoveSpeed)) > 1e-9 {
			t.Errorf("Expected enemy at %v, got %v", 100-parameter.PlayerMoveSpeed, got)
		}
		if next.Player.Pos != s.Player.Pos {
			t.Error("Player position changed in first-person view")
		}
	})

	t.Run("shoot along heading", func(t *testing.T) {
		s := base()
		s.Player.Heading = math.Pi / 2
		b, ok := Shoot(s, t0, "b")
		if !ok {
			t.Fatal("Expected shot accepted")
		}
		if b.Pos != (engine.Vec{}) || math.Abs(b.Vel.Y-parameter.BulletSpeed) > 1e-9 || math.Abs(b.Vel.X) > 1e-9 {
			t.Errorf("Unexpected bullet %+v", b)
		}
	})

	t.Run("bullet culled by travel", func(t *testing.T) {
		s := base()
		s.Bullets = []engine.Bullet{{ID: "b", Pos: engine.Vec{X: -5000}, Vel: engine.Vec{X: 8}, Traveled: 295, MaxTravel: 300}}
		next, _ := step(s, testEnv(noSpawn, t0))
		if len(next.Bullets) != 0 {
			t.Errorf("Expected bullet culled after max travel, got %+v", next.Bullets)
		}
	})

	t.Run("spawn at radius and despawn", func(t *testing.T) {
		s := base()
		s.Enemies = []engine.Enemy{{ID: "gone", Pos: engine.Vec{X: 900}, Health: 50, MaxHealth: 50, Speed: 1}}
		next, _ := step(s, testEnv(alwaysSpawn, t0))
		if len(next.Enemies) != 1 || next.Enemies[0].ID == "gone" {
			t.Fatalf("Expected only the fresh spawn, got %+v", next.Enemies)
		}
		if d := next.Enemies[0].Pos.Len(); math.Abs(d-(parameter.SpawnRadius-next.Enemies[0].Speed)) > 1e-6 {
			t.Errorf("Expected spawn one step inside radius, got distance %v", d)
		}
	})
}

// TestStepInvariantsProperty drives random frames and checks the
// clamping and lifecycle invariants after each one
func TestStepInvariantsProperty(t *testing.T) {
	keys := []engine.Key{engine.KeyW, engine.KeyA, engine.KeyS, engine.KeyD, engine.ArrowUp, engine.ArrowLeft}

	rapid.Check(t, func(t *rapid.T) {
		s := playingState()
		s.View = engine.ViewMode(rapid.IntRange(0, 1).Draw(t, "view"))
		env := testEnv(rand.NewSource(rapid.Int64().Draw(t, "seed")), t0)

		frames := rapid.IntRange(1, 200).Draw(t, "frames")
		for i := range frames {
			if s.Phase != engine.PhasePlaying {
				break
			}
			if rapid.Bool().Draw(t, "fire") {
				s = engine.Reduce(s, engine.RequestFire{})
			}
			if rapid.Bool().Draw(t, "toggle") {
				k := rapid.SampledFrom(keys).Draw(t, "key")
				if s.Input.Keys.Has(k) {
					s = engine.Reduce(s, engine.ReleaseKey{Key: k})
				} else {
					s = engine.Reduce(s, engine.PressKey{Key: k})
				}
			}
			s.Input.Pointer = engine.Vec{X: rapid.Float64Range(0, 800).Draw(t, "px"), Y: rapid.Float64Range(0, 600).Draw(t, "py")}

			env.Now = t0.Add(time.Duration(i) * parameter.GameClockStep)
			prevCoins := s.Coins
			s, _ = step(s, env)

			if s.Player.Health < 0 || s.Player.Health > s.Player.MaxHealth {
				t.Fatalf("Health out of range: %d", s.Player.Health)
			}
			if s.Coins < prevCoins {
				t.Fatalf("Simulation lost coins: %d -> %d", prevCoins, s.Coins)
			}
			if s.View == engine.ViewTopDown {
				p := s.Player.Pos
				if p.X < parameter.ArenaMargin || p.X > parameter.ArenaWidth-parameter.ArenaMargin ||
					p.Y < parameter.ArenaMargin || p.Y > parameter.ArenaHeight-parameter.ArenaMargin {
					t.Fatalf("Player left the arena: %v", p)
				}
			}
			for _, e := range s.Enemies {
				if e.Health <= 0 {
					t.Fatalf("Dead enemy kept: %+v", e)
				}
			}
			for _, p := range s.Particles {
				if p.Life <= 0 || p.Life > parameter.ParticleLife {
					t.Fatalf("Particle life out of range: %d", p.Life)
				}
			}
			if len(s.Enemies) > parameter.SpawnBaseCap+s.Wave {
				t.Fatalf("Enemy cap exceeded: %d", len(s.Enemies))
			}
		}
	})
}
