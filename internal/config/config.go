// Package config resolves gotris settings from .env, the environment and
// command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/hersh/tetromino/internal/board"
	"github.com/hersh/tetromino/internal/piece"
)

const envFile = ".env"

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Name         string
	Width        int
	Height       int
	Seed         int64 // 0 picks a time-based seed
	Randomizer   string
	DropInterval time.Duration
	LogFile      string
	LogLevel     string
}

func Default() Config {
	return Config{
		Name:         defaultName(),
		Width:        board.DefaultWidth,
		Height:       board.DefaultHeight,
		Randomizer:   piece.RandomizerUniform,
		DropInterval: 800 * time.Millisecond,
		LogFile:      "gotris.log",
		LogLevel:     "info",
	}
}

func defaultName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "Player"
}

// Load builds a Config from defaults, GOTRIS_* variables (optionally from a
// .env file in the working directory) and args.
func Load(args []string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	flags := flag.NewFlagSet("gotris", flag.ContinueOnError)
	flags.StringVar(&cfg.Name, "name", cfg.Name, "Player name (defaults to OS username)")
	flags.IntVar(&cfg.Width, "width", cfg.Width, "Board width in cells")
	flags.IntVar(&cfg.Height, "height", cfg.Height, "Board height in cells")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Shape sequence seed (0 = random)")
	flags.StringVar(&cfg.Randomizer, "randomizer", cfg.Randomizer, "Shape randomizer: uniform or bag")
	flags.DurationVar(&cfg.DropInterval, "drop-interval", cfg.DropInterval, "Time between automatic drops")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Log file path")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	// A bare positional argument is the player name.
	if flags.NArg() > 0 {
		cfg.Name = flags.Arg(0)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("GOTRIS_NAME"); v != "" {
		c.Name = v
	}
	if v := os.Getenv("GOTRIS_RANDOMIZER"); v != "" {
		c.Randomizer = v
	}
	if v := os.Getenv("GOTRIS_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("GOTRIS_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if err := envInt("GOTRIS_WIDTH", &c.Width); err != nil {
		return err
	}
	if err := envInt("GOTRIS_HEIGHT", &c.Height); err != nil {
		return err
	}
	if v := os.Getenv("GOTRIS_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("GOTRIS_SEED: %w", err)
		}
		c.Seed = seed
	}
	if v := os.Getenv("GOTRIS_DROP_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("GOTRIS_DROP_INTERVAL: %w", err)
		}
		c.DropInterval = d
	}
	return nil
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

// Validate checks that every shape can spawn and the remaining settings
// are usable.
func (c Config) Validate() error {
	// Shapes reach one column either side of the spawn anchor at width/2-1
	// and span four rows from row 0.
	if c.Width < 4 || c.Height < 4 {
		return fmt.Errorf("%w: board %dx%d is smaller than 4x4", ErrInvalid, c.Width, c.Height)
	}
	if c.DropInterval <= 0 {
		return fmt.Errorf("%w: drop interval %s must be positive", ErrInvalid, c.DropInterval)
	}
	switch c.Randomizer {
	case piece.RandomizerUniform, piece.RandomizerBag:
	default:
		return fmt.Errorf("%w: unknown randomizer %q", ErrInvalid, c.Randomizer)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// ResolvedSeed returns Seed, or a time-based seed when Seed is zero.
func (c Config) ResolvedSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
