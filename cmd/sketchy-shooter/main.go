package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/sketchy-shooter/audio"
	"github.com/lixenwraith/sketchy-shooter/config"
	"github.com/lixenwraith/sketchy-shooter/core"
	"github.com/lixenwraith/sketchy-shooter/engine"
	"github.com/lixenwraith/sketchy-shooter/game"
	"github.com/lixenwraith/sketchy-shooter/input"
	"github.com/lixenwraith/sketchy-shooter/parameter"
	"github.com/lixenwraith/sketchy-shooter/render"
	"github.com/lixenwraith/sketchy-shooter/render/renderer"
	"github.com/lixenwraith/sketchy-shooter/status"
)

func main() {
	// Panic Recovery: ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Parse("sketchy-shooter", args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "sketchy-shooter: %v\n", err)
		return 2
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	logger := core.Log.WithField("component", "main")

	weapons, err := cfg.Weapons()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sketchy-shooter: %v\n", err)
		return 1
	}
	keys, err := loadKeys(cfg.KeymapFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sketchy-shooter: %v\n", err)
		return 1
	}
	view, _ := cfg.ViewMode() // validated by Parse

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	// Crash handler restores the terminal from any goroutine
	core.SetCrashHook(screen.Fini)
	defer screen.Fini()

	registry := status.NewRegistry()
	metrics := status.NewGameMetrics(registry)

	sound := startAudio(cfg, metrics, logger)
	if sm, ok := sound.(*audio.SoundManager); ok {
		defer sm.Cleanup()
	}

	orchestrator := render.NewRenderOrchestrator(screen)
	renderer.RegisterAll(orchestrator, registry, cfg.Debug)

	initial := engine.NewState(weapons)
	initial.View = view
	store := engine.NewStore(initial)

	seed := cfg.Seed64(time.Now())
	g := game.New(store, game.Options{
		Interval: cfg.FrameInterval,
		Rand:     rand.New(rand.NewSource(seed)),
		Sound:    sound,
		Renderer: orchestrator,
		Metrics:  metrics,
		Log:      core.Log,
		Spawn:    core.Go,
		Wrap:     core.Recover,
	})
	listener := input.NewListener(store, g, keys, orchestrator, engine.NewMonotonicTimeProvider())
	store.Subscribe(listener.OnStateChange)

	logger.WithFields(logrus.Fields{
		"seed":    seed,
		"view":    view.String(),
		"weapons": len(weapons),
		"frame":   cfg.FrameInterval,
	}).Info("session starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 256)
	pollDone := ctx.Done()
	core.Go(func() { pollEvents(screen, events, pollDone) })

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(guard(func() error {
		defer cancel() // quitting ends the other loops
		return g.Run(ctx)
	}))
	eg.Go(guard(func() error {
		return listener.Run(ctx, parameter.FrameUpdateInterval)
	}))
	eg.Go(guard(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-events:
				if _, ok := ev.(*tcell.EventResize); ok {
					orchestrator.Resize()
					g.Redraw()
				}
				listener.Handle(ev)
			}
		}
	}))

	if err := eg.Wait(); err != nil {
		logger.WithError(err).Error("session ended with error")
		return 1
	}

	s := store.State()
	logger.WithFields(logrus.Fields{
		"score": s.Score,
		"wave":  s.Wave,
		"kills": metrics.Kills.Load(),
	}).Info("session ended")
	return 0
}

// pollEvents forwards terminal events until the screen is finalized or done closes
func pollEvents(screen tcell.Screen, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

// guard routes a panic in an errgroup goroutine through the crash handler
func guard(fn func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				core.HandleCrash(r)
			}
		}()
		return fn()
	}
}

// startAudio returns a sound player, or nil when audio is off or unavailable
func startAudio(cfg config.Config, metrics *status.GameMetrics, logger logrus.FieldLogger) game.SoundPlayer {
	if !cfg.Audio.Enabled {
		return nil
	}
	acfg := audio.DefaultAudioConfig()
	acfg.MasterVolume = cfg.Audio.Volume

	sm := audio.NewSoundManager(acfg)
	if err := sm.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		logger.WithError(err).Warn("audio initialization failed, continuing without audio")
		return nil
	}
	metrics.Audio.Store(true)
	return sm
}

// loadKeys merges an optional TOML keymap over the default bindings
func loadKeys(path string) (*input.KeyTable, error) {
	keys := input.DefaultKeyTable()
	if path == "" {
		return keys, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keymap: %w", err)
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	return input.MergeKeyTable(keys, override), nil
}
