// Package game wires the store, frame scheduler, renderer and audio into one session
package game

//go:generate go tool mockgen -destination=mock_sound_player_test.go -package=game . SoundPlayer

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/sketchy-shooter/audio"
	"github.com/lixenwraith/sketchy-shooter/engine"
	"github.com/lixenwraith/sketchy-shooter/parameter"
	"github.com/lixenwraith/sketchy-shooter/status"
	"github.com/lixenwraith/sketchy-shooter/systems"
)

// SoundPlayer plays one-shot effects
type SoundPlayer interface {
	Play(s audio.SoundType)
}

// FrameRenderer draws a committed state
type FrameRenderer interface {
	RenderFrame(s engine.State)
}

// Options configures a Game; zero fields get working defaults
type Options struct {
	Interval time.Duration
	Rand     *rand.Rand
	Clock    *engine.PausableClock
	Timers   engine.Timers
	Sound    SoundPlayer
	Renderer FrameRenderer
	Metrics  *status.GameMetrics
	Log      logrus.FieldLogger
	Spawn    func(func())        // Goroutine launcher for the frame loop
	Wrap     func(func()) func() // Decorates real timer callbacks
	NewID    func() string
	Wall     engine.TimeProvider // Real time for frame cost measurement
}

// Game owns the session: it starts frames when the phase becomes playing,
// stops them when it leaves, and routes step events to audio, metrics and
// the wave timer
type Game struct {
	store     *engine.Store
	scheduler *engine.FrameScheduler
	clock     *engine.PausableClock
	timers    engine.Timers
	sound     SoundPlayer
	renderer  FrameRenderer
	metrics   *status.GameMetrics
	log       logrus.FieldLogger
	rand      *rand.Rand // Frame goroutine only
	newID     func() string
	wall      engine.TimeProvider

	// signal wakes Run after a dispatch that may change phase or needs a redraw
	signal chan struct{}

	quitOnce sync.Once
	quit     chan struct{}
}

// New creates a game around store
func New(store *engine.Store, opts Options) *Game {
	if opts.Interval <= 0 {
		opts.Interval = parameter.FrameUpdateInterval
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Clock == nil {
		opts.Clock = engine.NewPausableClock()
	}
	if opts.Timers == nil {
		opts.Timers = engine.RealTimers{Wrap: opts.Wrap}
	}
	if opts.Sound == nil {
		opts.Sound = silent{}
	}
	if opts.Renderer == nil {
		opts.Renderer = noRender{}
	}
	if opts.Metrics == nil {
		opts.Metrics = status.NewGameMetrics(status.NewRegistry())
	}
	if opts.Log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		opts.Log = l
	}
	if opts.Wall == nil {
		opts.Wall = engine.NewMonotonicTimeProvider()
	}

	g := &Game{
		store:     store,
		scheduler: engine.NewFrameScheduler(opts.Interval, opts.Spawn),
		clock:     opts.Clock,
		timers:    opts.Timers,
		sound:     opts.Sound,
		renderer:  opts.Renderer,
		metrics:   opts.Metrics,
		log:       opts.Log,
		rand:      opts.Rand,
		newID:     opts.NewID,
		wall:      opts.Wall,
		signal:    make(chan struct{}, 1),
		quit:      make(chan struct{}),
	}

	// Game time only advances while playing
	if store.State().Phase != engine.PhasePlaying {
		g.clock.Pause()
	}

	store.Subscribe(g.onDispatch)
	return g
}

// Store returns the session store
func (g *Game) Store() *engine.Store {
	return g.store
}

// Done is closed when the player quits
func (g *Game) Done() <-chan struct{} {
	return g.quit
}

// Run supervises the frame scheduler until ctx ends or the player quits
// Scheduler start and stop happen here so the frame goroutine never waits on itself
func (g *Game) Run(ctx context.Context) error {
	g.sync()
	for {
		select {
		case <-ctx.Done():
			g.scheduler.Stop()
			return nil
		case <-g.quit:
			g.scheduler.Stop()
			return nil
		case <-g.signal:
			g.sync()
		}
	}
}

// Redraw requests a render outside the frame loop, used after resize
func (g *Game) Redraw() {
	g.wake()
}

func (g *Game) wake() {
	select {
	case g.signal <- struct{}{}:
	default:
	}
}

func (g *Game) onDispatch(prev, next engine.State) {
	// While playing the frame loop renders; other phases redraw on change
	if prev.Phase != next.Phase || next.Phase != engine.PhasePlaying {
		g.wake()
	}
}

// sync aligns scheduler and clock with the current phase
func (g *Game) sync() {
	s := g.store.State()
	g.metrics.Phase.Store(s.Phase.String())

	if s.Phase == engine.PhasePlaying {
		g.clock.Resume()
		if !g.scheduler.Running() {
			g.log.WithField("wave", s.Wave).Debug("frame loop started")
		}
		g.scheduler.Start(g.frame)
		return
	}

	if g.scheduler.Running() {
		g.scheduler.Stop()
		g.log.WithField("phase", s.Phase.String()).Debug("frame loop stopped")
	}
	g.clock.Pause()
	g.renderer.RenderFrame(g.store.State())
}

// frame is one simulation and render pass
func (g *Game) frame(uint64) bool {
	start := g.wall.Now()

	s := g.store.State()
	if s.Phase != engine.PhasePlaying {
		// Run observes the phase change and stops the loop
		return true
	}

	res := systems.Step(s, systems.Env{
		Now:   g.clock.Now(),
		Rand:  g.rand,
		NewID: g.newID,
	})
	next := g.store.Dispatch(res.Batch())
	g.handleEvents(next, res.Events)
	g.renderer.RenderFrame(next)

	g.metrics.ObserveFrame(g.wall.Now().Sub(start))
	return true
}

func (g *Game) handleEvents(s engine.State, events []systems.Event) {
	for _, e := range events {
		switch e.Kind {
		case systems.EventShotFired:
			g.metrics.Shots.Add(1)
			g.sound.Play(audio.SoundShot)
		case systems.EventEnemyHit:
			g.metrics.Hits.Add(1)
			g.sound.Play(audio.SoundHit)
		case systems.EventEnemyKilled:
			g.metrics.Kills.Add(1)
			g.sound.Play(audio.SoundKill)
		case systems.EventPlayerHurt:
			g.metrics.DamageTaken.Add(int64(e.Amount))
			g.sound.Play(audio.SoundHurt)
		case systems.EventPlayerDied:
			g.sound.Play(audio.SoundGameOver)
			g.log.WithFields(logrus.Fields{
				"score": s.Score,
				"wave":  s.Wave,
			}).Info("player died")
		case systems.EventWaveCleared:
			g.metrics.WavesCleared.Add(1)
			g.sound.Play(audio.SoundWaveClear)
			g.scheduleWave(s.Session, e.Amount)
		}
	}
}

// scheduleWave dispatches AdvanceWave after the delay
// A reset in between changes the session and the reducer drops the stale advance
func (g *Game) scheduleWave(session uint64, wave int) {
	g.log.WithField("wave", wave).Debug("wave cleared")
	g.timers.AfterFunc(parameter.WaveAdvanceDelay, func() {
		g.store.Dispatch(engine.AdvanceWave{Session: session})
	})
}

type silent struct{}

func (silent) Play(audio.SoundType) {}

type noRender struct{}

func (noRender) RenderFrame(engine.State) {}
