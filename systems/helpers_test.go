package systems

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lixenwraith/sketchy-shooter/catalog"
	"github.com/lixenwraith/sketchy-shooter/engine"
)

// constSource makes math/rand deterministic per draw:
// Float64 returns v/2^63 and Intn(n) for a power of two returns (v>>32)&(n-1)
type constSource int64

func (c constSource) Int63() int64 { return int64(c) }
func (constSource) Seed(int64)     {}

const (
	// Float64 = 0.5 (never spawns), Intn(3) = 1 (four-particle bursts)
	noSpawn constSource = 1 << 62
	// Float64 = 0 (always spawns), Intn(4) = 0 (top edge)
	alwaysSpawn constSource = 0
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func testEnv(src rand.Source, now time.Time) Env {
	n := 0
	return Env{
		Now:  now,
		Rand: rand.New(src),
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	}
}

func playingState() engine.State {
	s := engine.NewState(catalog.Default())
	s.Phase = engine.PhasePlaying
	return s
}

// step runs one frame and applies it the way the frame loop does
func step(s engine.State, env Env) (engine.State, Result) {
	res := Step(s, env)
	return engine.Reduce(s, res.Batch()), res
}

func countEvents(res Result, kind EventKind) int {
	n := 0
	for _, e := range res.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
