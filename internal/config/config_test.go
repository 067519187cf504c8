package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ModeDuel, cfg.Mode)
	assert.Equal(t, "knight", cfg.P1Class)
	assert.Equal(t, "magician", cfg.P2Class)
	assert.Equal(t, 1, cfg.Matches)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TBC_MODE", "gauntlet")
	t.Setenv("TBC_P1_CLASS", "alchemist")
	t.Setenv("TBC_MATCHES", "3")
	t.Setenv("TBC_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ModeGauntlet, cfg.Mode)
	assert.Equal(t, "alchemist", cfg.P1Class)
	assert.Equal(t, 3, cfg.Matches)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	t.Setenv("TBC_MODE", "brawl")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}

func TestLoadRejectsUnknownClass(t *testing.T) {
	t.Setenv("TBC_P1_CLASS", "bard")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TBC_P1_CLASS")
}

func TestLoadRejectsZeroMatches(t *testing.T) {
	t.Setenv("TBC_MATCHES", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TBC_MATCHES")
}
