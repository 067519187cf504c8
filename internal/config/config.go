// Package config provides environment-driven runtime configuration.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/ewhitmore/trialbycombat/internal/combat"
)

// Simulation modes.
const (
	ModeDuel     = "duel"
	ModeGauntlet = "gauntlet"
)

// Config holds the simulator's runtime options, parsed from TBC_* variables.
type Config struct {
	// Seed for the process-wide random source. Zero means seed from the
	// current time.
	Seed int64 `env:"TBC_SEED"`
	// Mode selects what to simulate: "duel" (1v1) or "gauntlet" (1v3).
	Mode string `env:"TBC_MODE" envDefault:"duel"`
	// P1Class and P2Class are class IDs ("knight", "magician", "alchemist").
	// P2Class is ignored in gauntlet mode.
	P1Class string `env:"TBC_P1_CLASS" envDefault:"knight"`
	P2Class string `env:"TBC_P2_CLASS" envDefault:"magician"`
	// Matches is how many sessions to autoplay.
	Matches int `env:"TBC_MATCHES" envDefault:"1"`
	// Logging options for the zap logger.
	LogLevel  string `env:"TBC_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"TBC_LOG_FORMAT" envDefault:"console"`
}

// Load parses and validates configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks mode, class IDs, and match count.
func (c Config) Validate() error {
	if c.Mode != ModeDuel && c.Mode != ModeGauntlet {
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if _, err := combat.ParseClass(c.P1Class); err != nil {
		return fmt.Errorf("TBC_P1_CLASS: %w", err)
	}
	if _, err := combat.ParseClass(c.P2Class); err != nil {
		return fmt.Errorf("TBC_P2_CLASS: %w", err)
	}
	if c.Matches < 1 {
		return fmt.Errorf("TBC_MATCHES must be at least 1, got %d", c.Matches)
	}
	return nil
}
