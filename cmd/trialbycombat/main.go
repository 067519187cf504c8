// Package main is the entry point for the trialbycombat headless simulator.
// It autoplays duels or gauntlet runs with the decision policy choosing
// every move, and streams the battle log through the structured logger.
package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ewhitmore/trialbycombat/internal/combat"
	"github.com/ewhitmore/trialbycombat/internal/config"
	"github.com/ewhitmore/trialbycombat/internal/match"
	"github.com/ewhitmore/trialbycombat/internal/observability"
	"github.com/ewhitmore/trialbycombat/internal/telemetry"
)

func main() {
	// Load .env for local development; env vars may also be set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Warn("telemetry setup failed; continuing without observability", zap.Error(err))
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Error("telemetry shutdown", zap.Error(err))
			}
		}()
	}

	// One process-wide random source, seeded once at startup.
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	logger.Info("starting simulation",
		zap.String("mode", cfg.Mode),
		zap.Int64("seed", seed),
		zap.Int("matches", cfg.Matches),
	)

	for i := 0; i < cfg.Matches; i++ {
		switch cfg.Mode {
		case config.ModeGauntlet:
			runGauntlet(ctx, logger, cfg, rng)
		default:
			runDuel(ctx, logger, cfg, rng)
		}
	}
}

// runDuel autoplays one 1v1 match, both sides driven by the decision policy.
func runDuel(ctx context.Context, logger *zap.Logger, cfg config.Config, rng *rand.Rand) {
	class1, _ := combat.ParseClass(cfg.P1Class)
	class2, _ := combat.ParseClass(cfg.P2Class)

	d := match.NewDuel(ctx, "Player 1", class1, "Player 2", class2)
	for {
		turn := d.Turn
		moveA := combat.ChooseMove(d.P1, d.P2, rng)
		moveB := combat.ChooseMove(d.P2, d.P1, rng)
		res := d.PlayRound(ctx, moveA, moveB, rng)

		for _, line := range d.Log.Lines() {
			logger.Info(line, zap.Int("turn", turn))
		}
		if res.Done {
			logger.Info(res.Message,
				zap.String("match_id", d.ID.String()),
				zap.Int("turns", d.Turn),
				zap.Int("p1_hp", d.P1.DisplayHP()),
				zap.Int("p2_hp", d.P2.DisplayHP()),
			)
			return
		}
	}
}

// runGauntlet autoplays one gauntlet run; the player targets the first
// living opponent each round.
func runGauntlet(ctx context.Context, logger *zap.Logger, cfg config.Config, rng *rand.Rand) {
	class, _ := combat.ParseClass(cfg.P1Class)

	g := match.NewGauntlet(ctx, "Champion", class)
	for {
		turn := g.Turn
		target := g.FirstAliveEnemy()
		move := combat.ChooseMove(g.Player, g.Enemies[target], rng)
		res := g.PlayRound(ctx, move, target, rng)

		for _, line := range g.Log.Lines() {
			logger.Info(line, zap.Int("turn", turn))
		}
		if res.Done {
			logger.Info(res.Message,
				zap.String("match_id", g.ID.String()),
				zap.Int("turns", g.Turn),
				zap.Int("player_hp", g.Player.DisplayHP()),
			)
			return
		}
	}
}
