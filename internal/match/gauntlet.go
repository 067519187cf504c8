package match

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/ewhitmore/trialbycombat/internal/combat"
	"github.com/ewhitmore/trialbycombat/internal/telemetry"
)

// Gauntlet is a 1v3 session: one player fighter against three independently
// acting opponents.
type Gauntlet struct {
	ID      uuid.UUID
	Player  *combat.Fighter
	Enemies []*combat.Fighter
	Log     combat.BattleLog
	Turn    int
}

// NewGauntlet creates a gauntlet run: a fresh player fighter with rescaled
// HP and the three class opponents.
func NewGauntlet(ctx context.Context, name string, class combat.Class) *Gauntlet {
	player := combat.NewFighter(name, class)
	enemies := combat.InitGauntlet(player)

	g := &Gauntlet{
		ID:      uuid.New(),
		Player:  player,
		Enemies: enemies,
		Turn:    1,
	}

	_, span := telemetry.Tracer("match").Start(ctx, "combat.start")
	span.SetAttributes(
		attribute.String("match_id", g.ID.String()),
		attribute.String("mode", "gauntlet"),
		attribute.String("player_class", class.ID()),
		attribute.Int("enemy_count", len(enemies)),
	)
	span.End()

	return g
}

// PlayRound clears the log, resolves one gauntlet round with the chosen move
// and target indices, and reports the outcome.
func (g *Gauntlet) PlayRound(ctx context.Context, move, target int, src combat.Source) Result {
	ctx, span := telemetry.Tracer("match").Start(ctx, "combat.turn")
	span.SetAttributes(
		attribute.String("match_id", g.ID.String()),
		attribute.Int("turn", g.Turn),
		attribute.Int("target", target),
	)
	defer span.End()

	g.Log.Clear()
	combat.ResolveGauntletTurn(g.Player, g.Enemies, move, target, &g.Log, src)

	res := g.result()
	if res.Done {
		g.end(ctx, res)
	} else {
		g.Turn++
	}
	return res
}

// FirstAliveEnemy returns the index of the first living opponent, or -1.
func (g *Gauntlet) FirstAliveEnemy() int {
	for i, e := range g.Enemies {
		if e.IsAlive() {
			return i
		}
	}
	return -1
}

// AllEnemiesDown reports whether every opponent has fallen.
func (g *Gauntlet) AllEnemiesDown() bool {
	return g.FirstAliveEnemy() == -1
}

func (g *Gauntlet) result() Result {
	if !g.Player.IsAlive() {
		return Result{Done: true, Message: "You fell... the Gauntlet wins."}
	}
	if g.AllEnemiesDown() {
		return Result{Done: true, Message: "GAUNTLET CLEARED! Champion stands alone!"}
	}
	if g.Turn >= MaxTurns {
		return Result{Done: true, Message: "Time expired. The Gauntlet is unfinished."}
	}
	return Result{}
}

func (g *Gauntlet) end(ctx context.Context, res Result) {
	_, span := telemetry.Tracer("match").Start(ctx, "combat.end")
	span.SetAttributes(
		attribute.String("match_id", g.ID.String()),
		attribute.String("outcome", res.Message),
		attribute.Int("turns_taken", g.Turn),
		attribute.Int("player_hp_remaining", g.Player.DisplayHP()),
	)
	span.End()
}
