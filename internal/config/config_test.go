package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Width)
	assert.Equal(t, 20, cfg.Height)
	assert.Equal(t, "uniform", cfg.Randomizer)
	assert.Equal(t, 800*time.Millisecond, cfg.DropInterval)
	assert.NotEmpty(t, cfg.Name)
}

func TestLoadPrecedence(t *testing.T) {
	t.Setenv("GOTRIS_WIDTH", "12")
	t.Setenv("GOTRIS_HEIGHT", "24")
	t.Setenv("GOTRIS_SEED", "77")
	t.Setenv("GOTRIS_RANDOMIZER", "bag")
	t.Setenv("GOTRIS_DROP_INTERVAL", "250ms")

	cfg, err := Load([]string{"--width", "8", "--name", "ada"})
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Width, "flag beats env")
	assert.Equal(t, 24, cfg.Height)
	assert.Equal(t, int64(77), cfg.Seed)
	assert.Equal(t, "bag", cfg.Randomizer)
	assert.Equal(t, 250*time.Millisecond, cfg.DropInterval)
	assert.Equal(t, "ada", cfg.Name)
	assert.Equal(t, int64(77), cfg.ResolvedSeed())
}

func TestLoadPositionalName(t *testing.T) {
	cfg, err := Load([]string{"--seed", "3", "grace"})
	require.NoError(t, err)
	assert.Equal(t, "grace", cfg.Name)
}

func TestLoadRejectsBadEnv(t *testing.T) {
	t.Setenv("GOTRIS_WIDTH", "wide")
	_, err := Load(nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"narrow board", func(c *Config) { c.Width = 2 }},
		{"width 3", func(c *Config) { c.Width = 3 }},
		{"short board", func(c *Config) { c.Height = 3 }},
		{"zero interval", func(c *Config) { c.DropInterval = 0 }},
		{"unknown randomizer", func(c *Config) { c.Randomizer = "shuffle" }},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}

	assert.NoError(t, Default().Validate())

	smallest := Default()
	smallest.Width, smallest.Height = 4, 4
	assert.NoError(t, smallest.Validate())
}

func TestResolvedSeedFallsBackToClock(t *testing.T) {
	cfg := Default()
	assert.NotZero(t, cfg.ResolvedSeed())
}
