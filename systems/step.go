package systems

import (
	"math"
	"slices"

	"github.com/lixenwraith/sketchy-shooter/engine"
	"github.com/lixenwraith/sketchy-shooter/parameter"
)

// Result is the outcome of one step: actions to dispatch as a single batch,
// and events for side-effect consumers
type Result struct {
	Actions []engine.Action
	Events  []Event
}

// Batch wraps the actions for one atomic dispatch
func (r Result) Batch() engine.Batch {
	return engine.Batch(r.Actions)
}

// frame holds the working copies of one step
// Stages run in a fixed order and read the output of earlier stages
type frame struct {
	s   engine.State
	env Env

	firstPerson bool
	target      engine.Vec // Where enemies walk to and contact is measured
	shift       engine.Vec // First-person world displacement this frame

	fired   bool
	player  engine.Player
	enemies []engine.Enemy
	bullets []engine.Bullet
	fresh   []engine.Particle

	coins  int
	score  int
	damage int

	events []Event
}

// Step computes the next frame from snapshot s
// s is read once and never modified; a step outside the playing phase is empty
func Step(s engine.State, env Env) Result {
	if s.Phase != engine.PhasePlaying {
		return Result{}
	}

	f := &frame{
		s:           s,
		env:         env,
		firstPerson: s.View == engine.ViewFirstPerson,
		player:      s.Player,
		enemies:     slices.Clone(s.Enemies),
		bullets:     slices.Clone(s.Bullets),
	}
	f.shoot()
	f.move()
	// Top-down enemies chase and touch the player where this frame moved them
	if !f.firstPerson {
		f.target = f.player.Pos
	}
	f.spawn()
	f.advanceEnemies()
	f.advanceBullets()
	f.collide()
	particles := f.advanceParticles()
	f.contact()
	pending := f.waveClear()

	return f.commit(particles, pending)
}

// shoot consumes a latched fire request
func (f *frame) shoot() {
	if !f.s.Input.FirePending() {
		return
	}
	b, ok := Shoot(f.s, f.env.Now, f.env.id())
	if !ok {
		return
	}
	f.fired = true
	f.bullets = append(f.bullets, b)
	f.emit(Event{Kind: EventShotFired, Pos: b.Pos, Amount: b.Damage, Weapon: f.s.Player.Weapon})
}

// move applies held keys
// Top-down moves the player inside the arena; first-person turns on the
// horizontal axis and walks by translating the world opposite the heading
func (f *frame) move() {
	dx, dy := f.s.Input.Keys.Axes()
	if dx == 0 && dy == 0 {
		return
	}

	if !f.firstPerson {
		pos := f.player.Pos.Add(engine.Vec{X: float64(dx), Y: float64(dy)}.Scale(parameter.PlayerMoveSpeed))
		pos.X = clamp(pos.X, parameter.ArenaMargin, parameter.ArenaWidth-parameter.ArenaMargin)
		pos.Y = clamp(pos.Y, parameter.ArenaMargin, parameter.ArenaHeight-parameter.ArenaMargin)
		f.player.Pos = pos
		return
	}

	f.player.Heading += float64(dx) * parameter.PlayerTurnSpeed
	if dy == 0 {
		return
	}
	// Forward is -dy: W and ArrowUp report dy = -1
	f.shift = engine.FromAngle(f.player.Heading).Scale(float64(-dy) * parameter.PlayerMoveSpeed)
	for i := range f.enemies {
		f.enemies[i].Pos = f.enemies[i].Pos.Sub(f.shift)
	}
	for i := range f.bullets {
		f.bullets[i].Pos = f.bullets[i].Pos.Sub(f.shift)
	}
}

// spawn adds at most one enemy per frame while under the wave cap
func (f *frame) spawn() {
	limit := parameter.SpawnBaseCap + f.s.Wave
	if len(f.enemies) >= limit || f.env.Rand.Float64() >= parameter.SpawnChance {
		return
	}

	wave := f.s.Wave
	health := parameter.EnemyBaseHealth + parameter.EnemyHealthPerWave*wave
	f.enemies = append(f.enemies, engine.Enemy{
		ID:        f.env.id(),
		Pos:       f.spawnPoint(),
		Health:    health,
		MaxHealth: health,
		Speed:     parameter.EnemyBaseSpeed + parameter.EnemySpeedPerWave*float64(wave),
		Reward:    parameter.EnemyBaseReward + parameter.EnemyRewardPerWave*wave,
		Kind:      engine.EnemyBasic,
	})
}

// spawnPoint picks a random arena edge just offscreen, or a random bearing
// at the spawn radius in first-person
func (f *frame) spawnPoint() engine.Vec {
	r := f.env.Rand
	if f.firstPerson {
		return engine.FromAngle(r.Float64() * 2 * math.Pi).Scale(parameter.SpawnRadius)
	}

	const off = parameter.SpawnEdgeOffset
	switch r.Intn(4) {
	case 0: // Top
		return engine.Vec{X: r.Float64() * parameter.ArenaWidth, Y: -off}
	case 1: // Right
		return engine.Vec{X: parameter.ArenaWidth + off, Y: r.Float64() * parameter.ArenaHeight}
	case 2: // Bottom
		return engine.Vec{X: r.Float64() * parameter.ArenaWidth, Y: parameter.ArenaHeight + off}
	default: // Left
		return engine.Vec{X: -off, Y: r.Float64() * parameter.ArenaHeight}
	}
}

// advanceEnemies steps every live enemy toward the target
func (f *frame) advanceEnemies() {
	out := f.enemies[:0]
	for _, e := range f.enemies {
		if e.Health <= 0 {
			continue
		}
		d := f.target.Sub(e.Pos)
		if dist := d.Len(); dist > 0 {
			e.Pos = e.Pos.Add(d.Norm().Scale(min(e.Speed, dist)))
		}
		if f.firstPerson && e.Pos.Len() > parameter.DespawnRadius {
			continue
		}
		out = append(out, e)
	}
	f.enemies = out
}

// advanceBullets integrates bullets and culls the ones that left play
func (f *frame) advanceBullets() {
	out := f.bullets[:0]
	for _, b := range f.bullets {
		b.Pos = b.Pos.Add(b.Vel)
		b.Traveled += b.Vel.Len()
		if f.firstPerson {
			if b.Traveled > b.MaxTravel {
				continue
			}
		} else if !inArena(b.Pos) {
			continue
		}
		out = append(out, b)
	}
	f.bullets = out
}

// collide resolves bullet hits; each bullet hits the first enemy in range
// in iteration order, and a killed enemy leaves the set immediately
func (f *frame) collide() {
	out := f.bullets[:0]
	for _, b := range f.bullets {
		hit := slices.IndexFunc(f.enemies, func(e engine.Enemy) bool {
			return b.Pos.Dist(e.Pos) < parameter.BulletHitRadius
		})
		if hit < 0 {
			out = append(out, b)
			continue
		}

		e := &f.enemies[hit]
		e.Health -= b.Damage
		f.burst(e.Pos)
		f.emit(Event{Kind: EventEnemyHit, Pos: e.Pos, Amount: b.Damage})

		if e.Health <= 0 {
			f.coins += e.Reward
			f.score += e.Reward * parameter.ScorePerReward
			f.emit(Event{Kind: EventEnemyKilled, Pos: e.Pos, Amount: e.Reward})
			f.enemies = slices.Delete(f.enemies, hit, hit+1)
		}
	}
	f.bullets = out
}

// burst emits a particle spray at pos
func (f *frame) burst(pos engine.Vec) {
	r := f.env.Rand
	n := parameter.ParticleBurstMin + r.Intn(parameter.ParticleBurstMax-parameter.ParticleBurstMin+1)
	for range n {
		f.fresh = append(f.fresh, engine.Particle{
			ID:    f.env.id(),
			Pos:   pos,
			Vel:   engine.Vec{X: (r.Float64() - 0.5) * parameter.ParticleSpread, Y: (r.Float64() - 0.5) * parameter.ParticleSpread},
			Life:  parameter.ParticleLife,
			Color: parameter.ParticleColor,
		})
	}
}

// advanceParticles ages the previous frame's particles and appends this
// frame's bursts at full life
func (f *frame) advanceParticles() []engine.Particle {
	out := make([]engine.Particle, 0, len(f.s.Particles)+len(f.fresh))
	for _, p := range f.s.Particles {
		p.Pos = p.Pos.Add(p.Vel).Sub(f.shift)
		p.Life--
		if p.Life > 0 {
			out = append(out, p)
		}
	}
	return append(out, f.fresh...)
}

// contact applies damage for every enemy touching the player
func (f *frame) contact() {
	for _, e := range f.enemies {
		if e.Pos.Dist(f.target) < parameter.ContactRadius {
			f.damage += parameter.ContactDamage
		}
	}
	if f.damage > 0 {
		f.emit(Event{Kind: EventPlayerHurt, Pos: f.target, Amount: f.damage})
	}
}

// waveClear reports whether this frame should schedule a wave advance
func (f *frame) waveClear() bool {
	if len(f.s.Enemies) > 0 || len(f.enemies) > 0 || f.s.WavePending {
		return false
	}
	f.emit(Event{Kind: EventWaveCleared, Amount: f.s.Wave})
	return true
}

func (f *frame) emit(e Event) {
	f.events = append(f.events, e)
}

// commit turns the working copies into store actions
// Counters are sent as deltas so input dispatched during the frame is kept
func (f *frame) commit(particles []engine.Particle, pending bool) Result {
	actions := []engine.Action{engine.AdvanceClock{Delta: parameter.GameClockStep}}

	if f.s.Input.FirePending() {
		actions = append(actions, engine.AckFire{Seq: f.s.Input.FireSeq})
	}
	if f.fired {
		actions = append(actions, engine.SetLastShot{At: f.env.Now})
	}
	if f.player.Pos != f.s.Player.Pos {
		actions = append(actions, engine.SetPlayerPosition{Pos: f.player.Pos})
	}
	if f.player.Heading != f.s.Player.Heading {
		actions = append(actions, engine.SetHeading{Heading: f.player.Heading})
	}

	actions = append(actions,
		engine.SetEnemies{Enemies: f.enemies},
		engine.SetBullets{Bullets: f.bullets},
		engine.SetParticles{Particles: particles},
	)

	if f.coins > 0 {
		actions = append(actions, engine.AddCoins{Amount: f.coins}, engine.AddScore{Amount: f.score})
	}
	if f.damage > 0 {
		health := max(0, f.s.Player.Health-f.damage)
		actions = append(actions, engine.SetPlayerHealth{Health: health})
		if health == 0 {
			actions = append(actions, engine.SetPhase{Phase: engine.PhaseGameOver})
			f.emit(Event{Kind: EventPlayerDied, Pos: f.target})
		}
	}
	if pending {
		actions = append(actions, engine.SetWavePending{Pending: true})
	}

	return Result{Actions: actions, Events: f.events}
}

func inArena(p engine.Vec) bool {
	return p.X >= 0 && p.X <= parameter.ArenaWidth && p.Y >= 0 && p.Y <= parameter.ArenaHeight
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
