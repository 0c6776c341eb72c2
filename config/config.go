// Package config holds the runtime settings shared by the tetrapit binaries.
package config

import (
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/plus3/tetrapit/pit"
)

const (
	DefaultWidth   = 10
	DefaultHeight  = 20
	DefaultGravity = time.Second

	// MaxDimension bounds both pit dimensions so the renderers stay usable.
	MaxDimension = 200
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Width   int
	Height  int
	Gravity time.Duration
	// Seed drives piece selection. Zero picks a seed from the clock.
	Seed    uint64
	Debug   bool
	Audio   bool
	LogPath string
}

func Default() Config {
	return Config{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Gravity: DefaultGravity,
	}
}

// Register binds the config fields to flags on fs. Current field values are
// used as flag defaults.
func (c *Config) Register(fs *flag.FlagSet) {
	c.RegisterHeadless(fs)
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Enable debug output.")
	fs.BoolVar(&c.Audio, "audio", c.Audio, "Play sound cues on lock and line clear.")
}

// RegisterHeadless binds only the fields that matter without a display or
// speaker: pit size, gravity, seed and log path.
func (c *Config) RegisterHeadless(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "Pit width in cells.")
	fs.IntVar(&c.Height, "height", c.Height, "Pit height in cells.")
	fs.DurationVar(&c.Gravity, "gravity", c.Gravity, "Time between automatic downward moves.")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Seed for piece selection (0 = random).")
	fs.StringVar(&c.LogPath, "log", c.LogPath, "Write logs to this file instead of stderr.")
}

// Parse registers c on a new flag set named name and parses args into it.
func Parse(name string, args []string) (Config, error) {
	c := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	c.Register(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the game cannot run with. Widths below
// pit.MinSpawnWidth are refused because spawn positions are fixed.
func (c Config) Validate() error {
	if c.Width < pit.MinSpawnWidth || c.Width > MaxDimension {
		return fmt.Errorf("%w: width %d not in [%d, %d]", ErrInvalid, c.Width, pit.MinSpawnWidth, MaxDimension)
	}
	if c.Height < 2 || c.Height > MaxDimension {
		return fmt.Errorf("%w: height %d not in [2, %d]", ErrInvalid, c.Height, MaxDimension)
	}
	if c.Gravity <= 0 {
		return fmt.Errorf("%w: gravity must be positive, got %s", ErrInvalid, c.Gravity)
	}
	return nil
}

// Rand returns the random source for piece selection.
func (c Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>32|seed<<32))
}

// NewPit builds a pit from the configured dimensions and seed.
func (c Config) NewPit() *pit.Pit {
	return pit.New(c.Width, c.Height, c.Rand())
}
