// Package config resolves runtime settings from an optional TOML file and command-line flags
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/sketchy-shooter/catalog"
	"github.com/lixenwraith/sketchy-shooter/engine"
	"github.com/lixenwraith/sketchy-shooter/parameter"
)

// Config holds settings that may vary per run
// Arena geometry and economy stay compile-time in parameter
type Config struct {
	FrameInterval time.Duration `toml:"frame_interval"`
	View          string        `toml:"view"`
	Seed          int64         `toml:"seed"` // 0 seeds from the clock
	Debug         bool          `toml:"debug"`
	WeaponsFile   string        `toml:"weapons_file"`
	KeymapFile    string        `toml:"keymap_file"`
	Audio         AudioSection  `toml:"audio"`
}

// AudioSection is the [audio] table
type AudioSection struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

var (
	ErrInvalidView     = errors.New("invalid view mode")
	ErrInvalidInterval = errors.New("frame interval must be positive")
)

// Default returns the built-in configuration
func Default() Config {
	return Config{
		FrameInterval: parameter.FrameUpdateInterval,
		View:          engine.ViewTopDown.String(),
		Audio: AudioSection{
			Enabled: true,
			Volume:  parameter.AudioMasterVolume,
		},
	}
}

// LoadFile overlays the TOML file at path onto c
// Keys absent from the file keep their current values
func (c *Config) LoadFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return nil
}

// Parse builds a Config from defaults, the file named by -config, then explicit flags
// Flags win over the file regardless of order on the command line
func Parse(name string, args []string, stderr io.Writer) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	path := fs.String("config", "", "path to TOML config file")
	flagCfg := Default()
	fs.DurationVar(&flagCfg.FrameInterval, "frame", flagCfg.FrameInterval, "frame interval")
	fs.StringVar(&flagCfg.View, "view", flagCfg.View, "starting view: top-down or first-person")
	fs.Int64Var(&flagCfg.Seed, "seed", 0, "random seed, 0 for time-based")
	fs.BoolVar(&flagCfg.Debug, "debug", false, "write logs and show the debug overlay")
	fs.StringVar(&flagCfg.WeaponsFile, "weapons", "", "YAML weapon catalog override")
	fs.StringVar(&flagCfg.KeymapFile, "keymap", "", "TOML key binding overrides")
	fs.BoolVar(&flagCfg.Audio.Enabled, "audio", flagCfg.Audio.Enabled, "enable sound effects")
	fs.Float64Var(&flagCfg.Audio.Volume, "volume", flagCfg.Audio.Volume, "master volume 0.0-1.0")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if *path != "" {
		if err := cfg.LoadFile(*path); err != nil {
			return cfg, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "frame":
			cfg.FrameInterval = flagCfg.FrameInterval
		case "view":
			cfg.View = flagCfg.View
		case "seed":
			cfg.Seed = flagCfg.Seed
		case "debug":
			cfg.Debug = flagCfg.Debug
		case "weapons":
			cfg.WeaponsFile = flagCfg.WeaponsFile
		case "keymap":
			cfg.KeymapFile = flagCfg.KeymapFile
		case "audio":
			cfg.Audio.Enabled = flagCfg.Audio.Enabled
		case "volume":
			cfg.Audio.Volume = flagCfg.Audio.Volume
		}
	})

	return cfg, cfg.Validate()
}

// Validate checks ranges and normalizes the volume
func (c *Config) Validate() error {
	if c.FrameInterval <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInterval, c.FrameInterval)
	}
	if _, err := c.ViewMode(); err != nil {
		return err
	}
	c.Audio.Volume = max(0, min(1, c.Audio.Volume))
	return nil
}

// ViewMode resolves the configured view name
func (c *Config) ViewMode() (engine.ViewMode, error) {
	switch c.View {
	case "", engine.ViewTopDown.String(), "topdown":
		return engine.ViewTopDown, nil
	case engine.ViewFirstPerson.String(), "fps":
		return engine.ViewFirstPerson, nil
	default:
		return engine.ViewTopDown, fmt.Errorf("%w: %q", ErrInvalidView, c.View)
	}
}

// Weapons returns the weapon catalog, reading WeaponsFile when set
func (c *Config) Weapons() ([]catalog.Weapon, error) {
	if c.WeaponsFile == "" {
		return catalog.Default(), nil
	}
	data, err := os.ReadFile(c.WeaponsFile)
	if err != nil {
		return nil, fmt.Errorf("weapons file: %w", err)
	}
	weapons, err := catalog.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("weapons file %s: %w", c.WeaponsFile, err)
	}
	return weapons, nil
}

// Seed64 returns Seed, or a clock-derived seed when Seed is zero
func (c *Config) Seed64(now time.Time) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return now.UnixNano()
}
